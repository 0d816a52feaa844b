package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/service"
)

// CatalogController 分类 / 标签 / 横幅
type CatalogController struct {
	catalogSvc *service.CatalogService
}

func NewCatalogController(catalogSvc *service.CatalogService) *CatalogController {
	return &CatalogController{catalogSvc: catalogSvc}
}

// ==================== Category ====================

// ListCategories
// @Summary 分类列表
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Success 200 {object} map[string]interface{} "[]dto.CategoryResp"
// @Router /api/stores/{storeId}/categories [get]
func (ctrl *CatalogController) ListCategories(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	list, err := ctrl.catalogSvc.ListCategories(c.Request.Context(), storeID)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", list)
}

// CreateCategory
// @Summary 创建分类
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param request body dto.CategoryReq true "分类"
// @Success 201 {object} map[string]interface{} "dto.CategoryResp"
// @Router /api/stores/{storeId}/categories [post]
func (ctrl *CatalogController) CreateCategory(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	category, err := ctrl.catalogSvc.CreateCategory(c.Request.Context(), storeID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, "创建成功", category)
}

// UpdateCategory
// @Summary 修改分类
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param categoryId path int true "分类ID"
// @Param request body dto.CategoryReq true "分类"
// @Success 200 {object} map[string]interface{} "dto.CategoryResp"
// @Router /api/stores/{storeId}/categories/{categoryId} [put]
func (ctrl *CatalogController) UpdateCategory(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return
	}
	var req dto.CategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	category, err := ctrl.catalogSvc.UpdateCategory(c.Request.Context(), storeID, categoryID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "更新成功", category)
}

// DeleteCategory
// @Summary 删除分类
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param categoryId path int true "分类ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/stores/{storeId}/categories/{categoryId} [delete]
func (ctrl *CatalogController) DeleteCategory(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return
	}
	if err := ctrl.catalogSvc.DeleteCategory(c.Request.Context(), storeID, categoryID); err != nil {
		handleError(c, err)
		return
	}
	success(c, "删除成功", nil)
}

// ==================== Tag ====================

// ListTags
// @Summary 标签列表
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Success 200 {object} map[string]interface{} "[]model.Tag"
// @Router /api/stores/{storeId}/tags [get]
func (ctrl *CatalogController) ListTags(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	list, err := ctrl.catalogSvc.ListTags(c.Request.Context(), storeID)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", list)
}

// CreateTag
// @Summary 创建标签
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param request body dto.TagReq true "标签"
// @Success 201 {object} map[string]interface{} "model.Tag"
// @Router /api/stores/{storeId}/tags [post]
func (ctrl *CatalogController) CreateTag(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var req dto.TagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	tag, err := ctrl.catalogSvc.CreateTag(c.Request.Context(), storeID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, "创建成功", tag)
}

// UpdateTag
// @Summary 修改标签
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param tagId path int true "标签ID"
// @Param request body dto.TagReq true "标签"
// @Success 200 {object} map[string]interface{} "model.Tag"
// @Router /api/stores/{storeId}/tags/{tagId} [put]
func (ctrl *CatalogController) UpdateTag(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	tagID, ok := parseID(c, "tagId")
	if !ok {
		return
	}
	var req dto.TagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	tag, err := ctrl.catalogSvc.UpdateTag(c.Request.Context(), storeID, tagID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "更新成功", tag)
}

// DeleteTag
// @Summary 删除标签
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param tagId path int true "标签ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/stores/{storeId}/tags/{tagId} [delete]
func (ctrl *CatalogController) DeleteTag(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	tagID, ok := parseID(c, "tagId")
	if !ok {
		return
	}
	if err := ctrl.catalogSvc.DeleteTag(c.Request.Context(), storeID, tagID); err != nil {
		handleError(c, err)
		return
	}
	success(c, "删除成功", nil)
}

// ==================== Banner ====================

// ListBanners
// @Summary 促销横幅列表
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Success 200 {object} map[string]interface{} "[]model.PromotionalBanner"
// @Router /api/stores/{storeId}/banners [get]
func (ctrl *CatalogController) ListBanners(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	list, err := ctrl.catalogSvc.ListBanners(c.Request.Context(), storeID)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", list)
}

// CreateBanner
// @Summary 创建促销横幅
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param request body dto.BannerReq true "横幅"
// @Success 201 {object} map[string]interface{} "model.PromotionalBanner"
// @Router /api/stores/{storeId}/banners [post]
func (ctrl *CatalogController) CreateBanner(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var req dto.BannerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	banner, err := ctrl.catalogSvc.CreateBanner(c.Request.Context(), storeID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, "创建成功", banner)
}

// UpdateBanner
// @Summary 修改促销横幅
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param bannerId path int true "横幅ID"
// @Param request body dto.BannerReq true "横幅"
// @Success 200 {object} map[string]interface{} "model.PromotionalBanner"
// @Router /api/stores/{storeId}/banners/{bannerId} [put]
func (ctrl *CatalogController) UpdateBanner(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	bannerID, ok := parseID(c, "bannerId")
	if !ok {
		return
	}
	var req dto.BannerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	banner, err := ctrl.catalogSvc.UpdateBanner(c.Request.Context(), storeID, bannerID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "更新成功", banner)
}

// DeleteBanner
// @Summary 删除促销横幅
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param bannerId path int true "横幅ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/stores/{storeId}/banners/{bannerId} [delete]
func (ctrl *CatalogController) DeleteBanner(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	bannerID, ok := parseID(c, "bannerId")
	if !ok {
		return
	}
	if err := ctrl.catalogSvc.DeleteBanner(c.Request.Context(), storeID, bannerID); err != nil {
		handleError(c, err)
		return
	}
	success(c, "删除成功", nil)
}
