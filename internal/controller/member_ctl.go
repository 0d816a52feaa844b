package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/service"
)

type MemberController struct {
	memberSvc *service.MemberService
}

func NewMemberController(memberSvc *service.MemberService) *MemberController {
	return &MemberController{memberSvc: memberSvc}
}

// ListMembers
// @Summary 团队成员列表
// @Tags Member (团队管理)
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Success 200 {object} map[string]interface{} "[]dto.MemberResp"
// @Router /api/stores/{storeId}/members [get]
func (ctrl *MemberController) ListMembers(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	list, err := ctrl.memberSvc.List(c.Request.Context(), storeID)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", list)
}

// AddMember
// @Summary 添加成员
// @Description 按邮箱添加 Editor 或 Viewer，仅店主
// @Tags Member (团队管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param request body dto.MemberAddReq true "成员信息"
// @Success 201 {object} map[string]interface{} "dto.MemberResp"
// @Failure 409 {object} map[string]interface{} "已是成员"
// @Router /api/stores/{storeId}/members [post]
func (ctrl *MemberController) AddMember(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var req dto.MemberAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := ctrl.memberSvc.Add(c.Request.Context(), storeID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, "添加成功", member)
}

// UpdateMember
// @Summary 修改成员角色
// @Tags Member (团队管理)
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param memberId path int true "成员ID"
// @Param request body dto.MemberUpdateReq true "角色"
// @Success 200 {object} map[string]interface{} "dto.MemberResp"
// @Router /api/stores/{storeId}/members/{memberId} [put]
func (ctrl *MemberController) UpdateMember(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	memberID, ok := parseID(c, "memberId")
	if !ok {
		return
	}
	var req dto.MemberUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := ctrl.memberSvc.UpdateRole(c.Request.Context(), storeID, memberID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "更新成功", member)
}

// RemoveMember
// @Summary 移除成员
// @Tags Member (团队管理)
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param memberId path int true "成员ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/stores/{storeId}/members/{memberId} [delete]
func (ctrl *MemberController) RemoveMember(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	memberID, ok := parseID(c, "memberId")
	if !ok {
		return
	}

	if err := ctrl.memberSvc.Remove(c.Request.Context(), storeID, memberID); err != nil {
		handleError(c, err)
		return
	}
	success(c, "已移除", nil)
}
