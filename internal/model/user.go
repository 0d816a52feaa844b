package model

// User 平台用户 (店主 / 团队成员)
// 注意区分：用户本身没有全局角色，角色只存在于店铺维度 (见 Role / StoreMember)
type User struct {
	BaseModel
	Email    string `gorm:"size:100;uniqueIndex:idx_users_email;not null" json:"email"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt 哈希
	IsActive bool   `gorm:"not null" json:"is_active"`

	// 用户拥有的店铺
	OwnedStores []Store `gorm:"foreignKey:OwnerID" json:"-"`
	// 用户在其他店铺的成员身份
	Memberships []StoreMember `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
