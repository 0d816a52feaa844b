package model

import "time"

// RevokedToken 已注销的 Token (服务端登出)
// 过期后由定时任务清理
type RevokedToken struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	JTI       string    `gorm:"size:64;uniqueIndex:idx_revoked_tokens_jti;not null" json:"jti"`
	UserID    int64     `gorm:"index;not null" json:"user_id"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}

// AllModels 需要 AutoMigrate 的模型
func AllModels() []interface{} {
	return []interface{}{
		// Account
		&User{}, &RevokedToken{},
		// Store
		&Store{}, &StoreSettings{}, &StoreMember{},
		// Catalog
		&Category{}, &Tag{}, &Product{}, &ProductImage{}, &PromotionalBanner{},
		// Inbox & Audit
		&StoreMessage{}, &ActivityLog{},
	}
}
