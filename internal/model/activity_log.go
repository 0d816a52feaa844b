package model

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog 店铺操作审计日志
// 只追加，写入后不允许修改或删除
type ActivityLog struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	StoreID  int64  `gorm:"index;not null;comment:店铺ID" json:"store_id"`
	UserID   int64  `gorm:"index;not null;comment:操作人ID" json:"user_id"`
	UserName string `gorm:"size:100;comment:操作人名称" json:"user_name"`

	Action   ActivityAction `gorm:"size:20;index;not null" json:"action"`
	Entity   ActivityEntity `gorm:"size:20;index;not null" json:"entity"`
	EntityID *int64         `gorm:"comment:实体ID (可选)" json:"entity_id,omitempty"`

	// 详情 (JSON 文本)
	Details datatypes.JSON `json:"details,omitempty"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ErrActivityLogImmutable 审计日志不可修改
var ErrActivityLogImmutable = errors.New("审计日志只允许追加，不允许修改或删除")

// BeforeUpdate 拒绝更新
func (*ActivityLog) BeforeUpdate(*gorm.DB) error {
	return ErrActivityLogImmutable
}

// BeforeDelete 拒绝删除
func (*ActivityLog) BeforeDelete(*gorm.DB) error {
	return ErrActivityLogImmutable
}

// ==================== 操作类型常量 ====================

type ActivityAction string

const (
	ActionCreate     ActivityAction = "create"
	ActionUpdate     ActivityAction = "update"
	ActionDelete     ActivityAction = "delete"
	ActionActivate   ActivityAction = "activate"
	ActionDeactivate ActivityAction = "deactivate"
	ActionLogin      ActivityAction = "login"
	ActionLogout     ActivityAction = "logout"
)

// Valid 是否为已定义的操作
func (a ActivityAction) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionActivate, ActionDeactivate, ActionLogin, ActionLogout:
		return true
	}
	return false
}

// ==================== 实体类型常量 ====================

type ActivityEntity string

const (
	EntityProduct  ActivityEntity = "product"
	EntityCategory ActivityEntity = "category"
	EntityTag      ActivityEntity = "tag"
	EntitySettings ActivityEntity = "settings"
	EntityUser     ActivityEntity = "user"
	EntityBanner   ActivityEntity = "banner"
	EntityImage    ActivityEntity = "image"
	EntityStore    ActivityEntity = "store"
)

// Valid 是否为已定义的实体
func (e ActivityEntity) Valid() bool {
	switch e {
	case EntityProduct, EntityCategory, EntityTag, EntitySettings, EntityUser, EntityBanner, EntityImage, EntityStore:
		return true
	}
	return false
}
