package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/service"
)

// StorefrontController 公开店面，无需登录
type StorefrontController struct {
	storefrontSvc *service.StorefrontService
}

func NewStorefrontController(storefrontSvc *service.StorefrontService) *StorefrontController {
	return &StorefrontController{storefrontSvc: storefrontSvc}
}

// GetStorefront
// @Summary 店面首页
// @Description 店铺头部、主题、横幅、分类和上架商品；语言优先级 lang > Accept-Language > 店铺默认
// @Tags Storefront (公开店面)
// @Produce json
// @Param slug path string true "店铺 slug"
// @Param lang query string false "语言 en/ar"
// @Param category query string false "分类 slug"
// @Success 200 {object} map[string]interface{} "dto.StorefrontResp"
// @Failure 404 {object} map[string]interface{} "店铺不存在"
// @Router /api/storefront/{slug} [get]
func (ctrl *StorefrontController) GetStorefront(c *gin.Context) {
	var req dto.StorefrontReq
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := ctrl.storefrontSvc.Home(c.Request.Context(), c.Param("slug"), req, c.GetHeader("Accept-Language"))
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", resp)
}

// GetStorefrontProduct
// @Summary 店面商品详情
// @Description 图片、标签、折扣、库存提示与分享链接
// @Tags Storefront (公开店面)
// @Produce json
// @Param slug path string true "店铺 slug"
// @Param productSlug path string true "商品 slug"
// @Param lang query string false "语言 en/ar"
// @Success 200 {object} map[string]interface{} "dto.StorefrontProductResp"
// @Failure 404 {object} map[string]interface{} "商品不存在"
// @Router /api/storefront/{slug}/products/{productSlug} [get]
func (ctrl *StorefrontController) GetStorefrontProduct(c *gin.Context) {
	resp, err := ctrl.storefrontSvc.Product(
		c.Request.Context(),
		c.Param("slug"),
		c.Param("productSlug"),
		c.Query("lang"),
		c.GetHeader("Accept-Language"),
	)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", resp)
}
