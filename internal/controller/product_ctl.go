package controller

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/service"
	"github.com/asad200-stack/ONEWEB/pkg/utils"
)

type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// ==================== 查询接口 ====================

// GetProducts 获取商品列表
// @Summary 获取店铺商品列表 (含下架商品)
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param keyword query string false "名称/SKU 搜索"
// @Param category_id query int false "分类ID"
// @Param active query bool false "上架状态"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} map[string]interface{} "dto.PageResp[model.Product]"
// @Router /api/stores/{storeId}/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var req dto.ProductListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := ctrl.productService.List(c.Request.Context(), storeID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", resp)
}

// GetProduct 获取商品详情
// @Summary 获取单个商品详情
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param productId path int true "商品ID"
// @Success 200 {object} map[string]interface{} "model.Product"
// @Failure 404 {object} map[string]interface{} "商品不存在"
// @Router /api/stores/{storeId}/products/{productId} [get]
func (ctrl *ProductController) GetProduct(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	product, err := ctrl.productService.Get(c.Request.Context(), storeID, productID)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", product)
}

// ==================== 写接口 ====================

// CreateProduct 创建商品
// @Summary 创建商品
// @Tags Product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param request body dto.ProductCreateReq true "商品信息"
// @Success 201 {object} map[string]interface{} "model.Product"
// @Router /api/stores/{storeId}/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var req dto.ProductCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := ctrl.productService.Create(c.Request.Context(), storeID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, "创建成功", product)
}

// UpdateProduct 局部更新商品
// @Summary 更新商品
// @Description 只更新传入字段；仅传 is_active 时视为上架/下架
// @Tags Product
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param productId path int true "商品ID"
// @Param request body dto.ProductUpdateReq true "更新内容"
// @Success 200 {object} map[string]interface{} "model.Product"
// @Router /api/stores/{storeId}/products/{productId} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}
	var req dto.ProductUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := ctrl.productService.Update(c.Request.Context(), storeID, productID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "更新成功", product)
}

// DeleteProduct 删除商品
// @Summary 删除商品
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param productId path int true "商品ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/stores/{storeId}/products/{productId} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	if err := ctrl.productService.Delete(c.Request.Context(), storeID, productID); err != nil {
		handleError(c, err)
		return
	}
	success(c, "删除成功", nil)
}

// ==================== 图片 ====================

// UploadImage 上传商品图片
// @Summary 上传商品图片
// @Description multipart 字段 file，支持 jpeg/png/webp/gif，最大 5MB
// @Tags Product
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param productId path int true "商品ID"
// @Param file formData file true "图片"
// @Success 201 {object} map[string]interface{} "model.ProductImage"
// @Router /api/stores/{storeId}/products/{productId}/images [post]
func (ctrl *ProductController) UploadImage(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, "缺少图片文件")
		return
	}
	if fileHeader.Size > utils.MaxImageSize {
		fail(c, http.StatusBadRequest, fmt.Sprintf("图片超过 %d MB", utils.MaxImageSize>>20))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "读取图片失败")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, utils.MaxImageSize+1))
	if err != nil {
		fail(c, http.StatusBadRequest, "读取图片失败")
		return
	}

	image, err := ctrl.productService.UploadImage(c.Request.Context(), storeID, productID, fileHeader.Filename, data)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, "上传成功", image)
}

// DeleteImage 删除商品图片
// @Summary 删除商品图片
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param productId path int true "商品ID"
// @Param imageId path int true "图片ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/stores/{storeId}/products/{productId}/images/{imageId} [delete]
func (ctrl *ProductController) DeleteImage(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}
	imageID, ok := parseID(c, "imageId")
	if !ok {
		return
	}

	if err := ctrl.productService.DeleteImage(c.Request.Context(), storeID, productID, imageID); err != nil {
		handleError(c, err)
		return
	}
	success(c, "删除成功", nil)
}
