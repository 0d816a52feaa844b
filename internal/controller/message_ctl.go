package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/service"
)

type MessageController struct {
	messageSvc *service.MessageService
}

func NewMessageController(messageSvc *service.MessageService) *MessageController {
	return &MessageController{messageSvc: messageSvc}
}

// SubmitMessage 访客留言
// @Summary 提交联系表单
// @Description 公开接口，同一 IP 对同一店铺有提交间隔限制
// @Tags Message (店铺留言)
// @Accept json
// @Produce json
// @Param storeId path int true "店铺ID"
// @Param request body dto.MessageCreateReq true "留言"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "参数错误"
// @Failure 429 {object} map[string]interface{} "提交过于频繁"
// @Router /api/stores/{storeId}/messages [post]
func (ctrl *MessageController) SubmitMessage(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var req dto.MessageCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	msg, err := ctrl.messageSvc.Submit(c.Request.Context(), storeID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, "留言已发送", gin.H{"id": msg.ID})
}

// ListMessages
// @Summary 留言列表
// @Tags Message (店铺留言)
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param unread query bool false "仅未读"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} map[string]interface{} "dto.PageResp[model.StoreMessage]"
// @Router /api/stores/{storeId}/messages [get]
func (ctrl *MessageController) ListMessages(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	var req dto.MessageListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := ctrl.messageSvc.List(c.Request.Context(), storeID, req)
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", resp)
}

// MarkRead
// @Summary 标记已读
// @Tags Message (店铺留言)
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param messageId path int true "留言ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/stores/{storeId}/messages/{messageId}/read [put]
func (ctrl *MessageController) MarkRead(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	messageID, ok := parseID(c, "messageId")
	if !ok {
		return
	}
	if err := ctrl.messageSvc.MarkRead(c.Request.Context(), storeID, messageID); err != nil {
		handleError(c, err)
		return
	}
	success(c, "已标记为已读", nil)
}

// DeleteMessage
// @Summary 删除留言
// @Tags Message (店铺留言)
// @Produce json
// @Security BearerAuth
// @Param storeId path int true "店铺ID"
// @Param messageId path int true "留言ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/stores/{storeId}/messages/{messageId} [delete]
func (ctrl *MessageController) DeleteMessage(c *gin.Context) {
	storeID, ok := parseID(c, "storeId")
	if !ok {
		return
	}
	messageID, ok := parseID(c, "messageId")
	if !ok {
		return
	}
	if err := ctrl.messageSvc.Delete(c.Request.Context(), storeID, messageID); err != nil {
		handleError(c, err)
		return
	}
	success(c, "删除成功", nil)
}
