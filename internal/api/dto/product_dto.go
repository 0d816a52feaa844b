package dto

// ==================== Product DTO ====================

// ProductListReq 商品列表请求
type ProductListReq struct {
	PageReq
	Keyword    string `form:"keyword"`
	CategoryID *int64 `form:"category_id"`
	Active     *bool  `form:"active"`
}

// ProductCreateReq 创建商品请求
type ProductCreateReq struct {
	Name            string   `json:"name" binding:"required,min=1,max=255"`
	Slug            string   `json:"slug" binding:"omitempty,max=255"`
	Description     string   `json:"description"`
	Specifications  string   `json:"specifications"`
	SKU             string   `json:"sku" binding:"max=100"`
	Price           float64  `json:"price" binding:"gte=0"`
	DiscountedPrice *float64 `json:"discounted_price" binding:"omitempty,gte=0"`
	DiscountActive  bool     `json:"discount_active"`
	Currency        string   `json:"currency" binding:"omitempty,len=3,alpha"`
	Stock           int      `json:"stock" binding:"gte=0"`
	CategoryID      *int64   `json:"category_id"`
	TagIDs          []int64  `json:"tag_ids"`
	IsActive        *bool    `json:"is_active"`
	Images          []string `json:"images" binding:"omitempty,dive,url"`
}

// ProductUpdateReq 局部更新商品请求
// 只更新传入的字段；category_id=0 清空分类，discounted_price<=0 清空折扣价
type ProductUpdateReq struct {
	Name            *string  `json:"name" binding:"omitempty,min=1,max=255"`
	Slug            *string  `json:"slug" binding:"omitempty,min=1,max=255"`
	Description     *string  `json:"description"`
	Specifications  *string  `json:"specifications"`
	SKU             *string  `json:"sku" binding:"omitempty,max=100"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
	DiscountedPrice *float64 `json:"discounted_price"`
	DiscountActive  *bool    `json:"discount_active"`
	Currency        *string  `json:"currency" binding:"omitempty,len=3,alpha"`
	Stock           *int     `json:"stock" binding:"omitempty,gte=0"`
	CategoryID      *int64   `json:"category_id"`
	TagIDs          *[]int64 `json:"tag_ids"`
	IsActive        *bool    `json:"is_active"`
}

// OnlyActiveToggle 是否只修改了上架状态
func (r *ProductUpdateReq) OnlyActiveToggle() bool {
	return r.IsActive != nil && r.othersEmpty()
}

// Empty 是否没有任何字段
func (r *ProductUpdateReq) Empty() bool {
	return r.IsActive == nil && r.othersEmpty()
}

// othersEmpty 除 is_active 外的字段是否都为空
func (r *ProductUpdateReq) othersEmpty() bool {
	return r.Name == nil && r.Slug == nil && r.Description == nil && r.Specifications == nil &&
		r.SKU == nil && r.Price == nil && r.DiscountedPrice == nil && r.DiscountActive == nil &&
		r.Currency == nil && r.Stock == nil && r.CategoryID == nil && r.TagIDs == nil
}
