package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/service"
)

type StoreController struct {
	storeSvc *service.StoreService
}

func NewStoreController(storeSvc *service.StoreService) *StoreController {
	return &StoreController{storeSvc: storeSvc}
}

// ListStores 我的店铺
// @Summary 获取店铺列表
// @Description 当前用户拥有或加入的店铺，附带角色
// @Tags Store (店铺管理)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "[]dto.StoreResp"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Router /api/stores [get]
func (ctrl *StoreController) ListStores(c *gin.Context) {
	list, err := ctrl.storeSvc.ListMine(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", list)
}

// CreateStore 创建店铺
// @Summary 创建店铺
// @Description 创建者自动成为店主，slug 为空时根据名称生成
// @Tags Store (店铺管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StoreCreateReq true "店铺信息"
// @Success 201 {object} map[string]interface{} "dto.StoreResp"
// @Failure 400 {object} map[string]interface{} "参数错误"
// @Failure 409 {object} map[string]interface{} "slug 已被占用"
// @Router /api/stores [post]
func (ctrl *StoreController) CreateStore(c *gin.Context) {
	var req dto.StoreCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	store, err := ctrl.storeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, "创建成功", store)
}

// GetStore 店铺详情
// @Summary 获取店铺详情
// @Description 店铺信息及商品、留言统计，需要 Viewer
// @Tags Store (店铺管理)
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Success 200 {object} map[string]interface{} "dto.StoreDashboardResp"
// @Failure 403 {object} map[string]interface{} "无权访问"
// @Router /api/stores/{storeId} [get]
func (ctrl *StoreController) GetStore(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}

	resp, err := ctrl.storeSvc.Get(c.Request.Context(), storeID)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", resp)
}

// UpdateStore 修改店铺
// @Summary 修改店铺信息
// @Tags Store (店铺管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param request body dto.StoreUpdateReq true "修改内容"
// @Success 200 {object} map[string]interface{} "dto.StoreResp"
// @Failure 403 {object} map[string]interface{} "需要 Editor"
// @Router /api/stores/{storeId} [put]
func (ctrl *StoreController) UpdateStore(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}

	var req dto.StoreUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := ctrl.storeSvc.Update(c.Request.Context(), storeID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "更新成功", resp)
}

// UpdateSettings 修改店铺设置
// @Summary 修改店铺展示设置
// @Description 语言、主题色、展示模式、币种
// @Tags Store (店铺管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param request body dto.StoreSettingsReq true "设置"
// @Success 200 {object} map[string]interface{} "dto.StoreSettingsResp"
// @Failure 403 {object} map[string]interface{} "需要 Editor"
// @Router /api/stores/{storeId}/settings [put]
func (ctrl *StoreController) UpdateSettings(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}

	var req dto.StoreSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := ctrl.storeSvc.UpdateSettings(c.Request.Context(), storeID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "更新成功", resp)
}

// DeleteStore 删除店铺
// @Summary 删除店铺
// @Description 删除店铺及全部商品、分类、成员等数据，仅店主
// @Tags Store (店铺管理)
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{} "仅店主"
// @Router /api/stores/{storeId} [delete]
func (ctrl *StoreController) DeleteStore(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}

	if err := ctrl.storeSvc.Delete(c.Request.Context(), storeID); err != nil {
		handleError(c, err)
		return
	}
	success(c, "删除成功", nil)
}
