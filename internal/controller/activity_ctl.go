package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/service"
)

type ActivityController struct {
	activitySvc *service.ActivityService
}

func NewActivityController(activitySvc *service.ActivityService) *ActivityController {
	return &ActivityController{activitySvc: activitySvc}
}

// ListActivity 审计日志
// @Summary 店铺操作日志
// @Description 需要 Editor，按时间倒序
// @Tags Activity (审计日志)
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param entity query string false "实体类型 product/category/tag/settings/user/banner/image/store"
// @Param action query string false "操作类型 create/update/delete/activate/deactivate/login/logout"
// @Param user_id query int false "操作人"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} map[string]interface{} "dto.PageResp[model.ActivityLog]"
// @Router /api/stores/{storeId}/activity [get]
func (ctrl *ActivityController) ListActivity(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var req dto.ActivityListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := ctrl.activitySvc.List(c.Request.Context(), storeID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", resp)
}

// ActivitySummary
// @Summary 最近 7 天操作统计
// @Tags Activity (审计日志)
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/stores/{storeId}/activity/summary [get]
func (ctrl *ActivityController) ActivitySummary(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	summary, err := ctrl.activitySvc.Summary(c.Request.Context(), storeID)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", summary)
}
