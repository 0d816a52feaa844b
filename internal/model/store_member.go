package model

// StoreMember 定义用户和店铺的关联关系及权限
// 联合唯一索引确保一个用户在一个店铺里只有一条记录
type StoreMember struct {
	BaseModel
	AuditMixin

	UserID  int64 `gorm:"index;uniqueIndex:idx_store_members_user_store;not null" json:"user_id"`
	StoreID int64 `gorm:"index;uniqueIndex:idx_store_members_user_store;not null" json:"store_id"`

	// 角色: Editor, Viewer
	Role Role `gorm:"size:20;not null;default:'Viewer'" json:"role"`

	// 关联对象 (Belongs To)
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Store *Store `gorm:"foreignKey:StoreID" json:"-"`
}

func (StoreMember) TableName() string {
	return "store_members"
}
