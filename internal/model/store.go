package model

// 展示模式
const (
	DisplayModeGrid  = "grid"
	DisplayModeCards = "cards"
)

// 店铺默认配置
const (
	DefaultLanguage       = "en"
	DefaultPrimaryColor   = "#4F46E5"
	DefaultSecondaryColor = "#FFFFFF"
	DefaultCurrency       = "USD"
)

// Store 店铺 (租户根)
type Store struct {
	BaseModel
	AuditMixin

	// 1. 核心身份
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;uniqueIndex:idx_stores_slug;not null;comment:URL 标识" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Logo        string `gorm:"size:512" json:"logo"`

	// 2. 所有者 (隐式 Owner 角色)
	OwnerID int64 `gorm:"index;not null" json:"owner_id"`
	Owner   *User `gorm:"foreignKey:OwnerID" json:"-"`

	// 3. 关联关系
	Settings   *StoreSettings      `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE;" json:"settings,omitempty"`
	Members    []StoreMember       `gorm:"foreignKey:StoreID" json:"-"`
	Products   []Product           `gorm:"foreignKey:StoreID" json:"-"`
	Categories []Category          `gorm:"foreignKey:StoreID" json:"-"`
	Tags       []Tag               `gorm:"foreignKey:StoreID" json:"-"`
	Banners    []PromotionalBanner `gorm:"foreignKey:StoreID" json:"-"`
}

// StoreSettings 店铺展示设置 (1:1)
type StoreSettings struct {
	BaseModel
	StoreID int64 `gorm:"uniqueIndex:idx_store_settings_store;not null" json:"store_id"`

	Language       string `gorm:"size:10;not null;default:'en'" json:"language"`
	PrimaryColor   string `gorm:"size:20;not null;default:'#4F46E5'" json:"primary_color"`
	SecondaryColor string `gorm:"size:20;not null;default:'#FFFFFF'" json:"secondary_color"`
	DisplayMode    string `gorm:"size:20;not null;default:'grid';comment:grid/cards" json:"display_mode"`
	Currency       string `gorm:"size:5;not null;default:'USD'" json:"currency"`

	// 店面可切换的语言列表
	Languages StringList `json:"languages"`
}

// DefaultStoreSettings 新建店铺时的默认设置
func DefaultStoreSettings() *StoreSettings {
	return &StoreSettings{
		Language:       DefaultLanguage,
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
		DisplayMode:    DisplayModeGrid,
		Currency:       DefaultCurrency,
		Languages:      StringList{"en", "ar"},
	}
}

func (Store) TableName() string {
	return "stores"
}

func (StoreSettings) TableName() string {
	return "store_settings"
}
