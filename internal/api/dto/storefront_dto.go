package dto

// ================== Storefront (公开店面) DTO ==================

// StorefrontReq 店面查询参数
type StorefrontReq struct {
	Lang     string `form:"lang"`
	Category string `form:"category"`
}

// StorefrontTheme 店面主题
type StorefrontTheme struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	DisplayMode    string `json:"display_mode"`
}

// StorefrontHeader 店铺头部信息
type StorefrontHeader struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// StorefrontLanguage 当前语言与切换项
type StorefrontLanguage struct {
	Code        string   `json:"code"`
	Direction   string   `json:"direction"`
	ToggleTo    string   `json:"toggle_to"`
	ToggleLabel string   `json:"toggle_label"`
	Available   []string `json:"available"`
}

// StorefrontBanner 促销横幅
type StorefrontBanner struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	LinkURL     string `json:"link_url"`
	LinkLabel   string `json:"link_label,omitempty"`
}

// StorefrontCategory 分类卡片
type StorefrontCategory struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
	ProductCount int64  `json:"product_count"`
	CountLabel   string `json:"count_label"`
	Selected     bool   `json:"selected"`
}

// StorefrontProductCard 商品卡片
type StorefrontProductCard struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	Image          string  `json:"image,omitempty"`
	CategoryName   string  `json:"category_name,omitempty"`
	Price          float64 `json:"price"`
	EffectivePrice float64 `json:"effective_price"`
	PriceLabel     string  `json:"price_label"`
	OriginalLabel  string  `json:"original_label,omitempty"`
	Currency       string  `json:"currency"`
	OnSale         bool    `json:"on_sale"`
	OutOfStock     bool    `json:"out_of_stock"`
}

// StorefrontResp 店面首页
type StorefrontResp struct {
	Store      StorefrontHeader        `json:"store"`
	Theme      StorefrontTheme         `json:"theme"`
	Language   StorefrontLanguage      `json:"language"`
	Labels     map[string]string       `json:"labels"`
	Banners    []StorefrontBanner      `json:"banners"`
	Categories []StorefrontCategory    `json:"categories"`
	Products   []StorefrontProductCard `json:"products"`
}

// ShareLinks 分享链接
type ShareLinks struct {
	URL       string `json:"url"`
	WhatsApp  string `json:"whatsapp"`
	Messenger string `json:"messenger"`
}

// StorefrontProductResp 商品详情页
type StorefrontProductResp struct {
	Store           StorefrontHeader      `json:"store"`
	Theme           StorefrontTheme       `json:"theme"`
	Language        StorefrontLanguage    `json:"language"`
	Labels          map[string]string     `json:"labels"`
	Product         StorefrontProductCard `json:"product"`
	Description     string                `json:"description"`
	Specifications  string                `json:"specifications"`
	SKU             string                `json:"sku"`
	Images          []string              `json:"images"`
	Tags            []string              `json:"tags"`
	DiscountPercent int                   `json:"discount_percent"`
	DiscountLabel   string                `json:"discount_label,omitempty"`
	Stock           int                   `json:"stock"`
	StockMessage    string                `json:"stock_message"`
	Share           ShareLinks            `json:"share"`
}
