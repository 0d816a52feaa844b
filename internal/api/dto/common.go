package dto

// ==================== 通用分页 ====================

// PageReq 分页请求
type PageReq struct {
	Page     int `form:"page,default=1" binding:"min=0"`
	PageSize int `form:"page_size,default=20" binding:"min=0,max=200"`
}

// PageResp 分页响应
type PageResp[T any] struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	List     []T   `json:"list"`
}

// NewPageResp 构造分页响应，list 为 nil 时输出空数组
func NewPageResp[T any](list []T, total int64, page, pageSize int) *PageResp[T] {
	if list == nil {
		list = []T{}
	}
	if page <= 0 {
		page = 1
	}
	return &PageResp[T]{Total: total, Page: page, PageSize: pageSize, List: list}
}
