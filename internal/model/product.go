package model

import "math"

type Product struct {
	BaseModel
	AuditMixin

	// --- 租户隔离 ---
	StoreID int64  `gorm:"index;uniqueIndex:idx_products_store_slug;not null" json:"store_id"`
	Store   *Store `gorm:"foreignKey:StoreID" json:"-"`

	// --- 商品基本信息 ---
	Name           string `gorm:"size:255;not null" json:"name"`
	Slug           string `gorm:"size:255;uniqueIndex:idx_products_store_slug;not null" json:"slug"`
	Description    string `gorm:"type:text" json:"description"`
	Specifications string `gorm:"type:text" json:"specifications"`
	SKU            string `gorm:"size:100;index" json:"sku"`

	// --- 价格与库存 ---
	Price           float64  `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	DiscountedPrice *float64 `gorm:"type:decimal(10,2)" json:"discounted_price"`
	DiscountActive  bool     `gorm:"not null" json:"discount_active"`
	Currency        string   `gorm:"size:5;not null;default:'USD'" json:"currency"`
	Stock           int      `gorm:"not null;default:0" json:"stock"`

	// --- 分类与标签 ---
	CategoryID *int64    `gorm:"index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Tags       []Tag     `gorm:"many2many:product_tags;" json:"tags,omitempty"`

	// Boolean 不设置 default，避免 false 被默认值覆盖
	IsActive bool `gorm:"not null;index" json:"is_active"`

	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE;" json:"images,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// OnSale 是否处于促销状态
func (p *Product) OnSale() bool {
	return p.DiscountActive && p.DiscountedPrice != nil && *p.DiscountedPrice > 0
}

// EffectivePrice 实际售价
func (p *Product) EffectivePrice() float64 {
	if p.OnSale() {
		return *p.DiscountedPrice
	}
	return p.Price
}

// DiscountPercent 折扣百分比 (四舍五入)，非促销时返回 0
func (p *Product) DiscountPercent() int {
	if !p.OnSale() || p.Price <= 0 {
		return 0
	}
	return int(math.Round((p.Price - *p.DiscountedPrice) / p.Price * 100))
}

// InStock 是否有库存
func (p *Product) InStock() bool {
	return p.Stock > 0
}

type ProductImage struct {
	BaseModel

	ProductID int64    `gorm:"index;not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`

	URL       string `gorm:"size:512;not null" json:"url"`
	SortOrder int    `gorm:"not null;default:0" json:"order"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
