package dto

import "time"

// ================== Store && Settings DTO ==================

// StoreCreateReq 创建店铺请求
type StoreCreateReq struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"max=5000"`
	Logo        string `json:"logo" binding:"omitempty,max=512"`
}

// StoreUpdateReq 更新店铺请求 (局部更新)
type StoreUpdateReq struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Logo        *string `json:"logo" binding:"omitempty,max=512"`
}

// StoreSettingsReq 更新店铺设置请求 (局部更新)
type StoreSettingsReq struct {
	Language       *string  `json:"language" binding:"omitempty,oneof=en ar"`
	PrimaryColor   *string  `json:"primary_color" binding:"omitempty,hexcolor"`
	SecondaryColor *string  `json:"secondary_color" binding:"omitempty,hexcolor"`
	DisplayMode    *string  `json:"display_mode" binding:"omitempty,oneof=grid cards"`
	Currency       *string  `json:"currency" binding:"omitempty,len=3,alpha"`
	Languages      []string `json:"languages" binding:"omitempty,dive,oneof=en ar"`
}

// StoreSettingsResp 店铺设置
type StoreSettingsResp struct {
	Language       string   `json:"language"`
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	DisplayMode    string   `json:"display_mode"`
	Currency       string   `json:"currency"`
	Languages      []string `json:"languages"`
}

// StoreResp 店铺响应
type StoreResp struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description string             `json:"description"`
	Logo        string             `json:"logo"`
	OwnerID     int64              `json:"owner_id"`
	Role        string             `json:"role"`
	CanEdit     bool               `json:"can_edit"`
	Settings    *StoreSettingsResp `json:"settings,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// StoreDashboardResp 店铺概览
type StoreDashboardResp struct {
	StoreResp
	ProductCount   int64 `json:"product_count"`
	ActiveProducts int64 `json:"active_products"`
	UnreadMessages int64 `json:"unread_messages"`
}

// ================== Member DTO ==================

// MemberAddReq 添加成员请求
type MemberAddReq struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

// MemberUpdateReq 修改成员角色请求
type MemberUpdateReq struct {
	Role string `json:"role" binding:"required"`
}

// MemberResp 成员响应
type MemberResp struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsOwner   bool      `json:"is_owner"`
	CreatedAt time.Time `json:"created_at"`
}
