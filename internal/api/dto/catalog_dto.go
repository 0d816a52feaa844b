package dto

// ==================== Category DTO ====================

// CategoryReq 创建/更新分类请求
type CategoryReq struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Slug        string `json:"slug" binding:"omitempty,max=100"`
	Description string `json:"description"`
	Image       string `json:"image" binding:"omitempty,max=512"`
}

// CategoryResp 分类响应
type CategoryResp struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int64  `json:"product_count"`
}

// ==================== Tag DTO ====================

// TagReq 创建/更新标签请求
type TagReq struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Slug string `json:"slug" binding:"omitempty,max=100"`
}

// ==================== Banner DTO ====================

// BannerReq 创建/更新横幅请求
type BannerReq struct {
	Title       string `json:"title" binding:"max=255"`
	Subtitle    string `json:"subtitle" binding:"max=255"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" binding:"omitempty,max=512"`
	LinkURL     string `json:"link_url" binding:"omitempty,max=512"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

// ==================== Message DTO ====================

// MessageCreateReq 联系表单
type MessageCreateReq struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Subject string `json:"subject" binding:"omitempty,max=255"`
	Message string `json:"message" binding:"required,min=1,max=5000"`
}

// MessageListReq 留言列表请求
type MessageListReq struct {
	PageReq
	Unread bool `form:"unread"`
}

// ==================== Activity DTO ====================

// ActivityListReq 审计日志列表请求
type ActivityListReq struct {
	PageReq
	Entity string `form:"entity"`
	Action string `form:"action"`
	UserID int64  `form:"user_id"`
}
