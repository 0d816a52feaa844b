package model

import (
	"time"
)

type BaseModel struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuditMixin 审计字段 (只记录，不参与 WHERE 查询权限)
// 由 middleware.RegisterAuditCallbacks 根据请求身份自动填充
type AuditMixin struct {
	CreatedBy int64 `gorm:"index;default:0;comment:创建人ID" json:"created_by"`
	UpdatedBy int64 `gorm:"default:0;comment:更新人ID" json:"updated_by"`
}
