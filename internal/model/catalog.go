package model

// Category 商品分类
type Category struct {
	BaseModel
	AuditMixin

	StoreID     int64  `gorm:"index;uniqueIndex:idx_categories_store_slug;not null" json:"store_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex:idx_categories_store_slug;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"size:512" json:"image"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// Tag 商品标签
type Tag struct {
	BaseModel
	AuditMixin

	StoreID int64  `gorm:"index;uniqueIndex:idx_tags_store_slug;not null" json:"store_id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex:idx_tags_store_slug;not null" json:"slug"`
}

func (Tag) TableName() string {
	return "tags"
}

// PromotionalBanner 店面促销横幅
type PromotionalBanner struct {
	BaseModel
	AuditMixin

	StoreID     int64  `gorm:"index;not null" json:"store_id"`
	Title       string `gorm:"size:255" json:"title"`
	Subtitle    string `gorm:"size:255" json:"subtitle"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:512" json:"image_url"`
	LinkURL     string `gorm:"size:512" json:"link_url"`
	SortOrder   int    `gorm:"not null;default:0" json:"order"`
	IsActive    bool   `gorm:"not null" json:"is_active"`
}

func (PromotionalBanner) TableName() string {
	return "promotional_banners"
}

// StoreMessage 店面联系表单留言
type StoreMessage struct {
	BaseModel

	StoreID int64  `gorm:"index;not null" json:"store_id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
	Subject string `gorm:"size:255" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
	IsRead  bool   `gorm:"not null;index" json:"is_read"`
}

func (StoreMessage) TableName() string {
	return "store_messages"
}
