package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asad200-stack/ONEWEB/internal/service"
)

// ==================== 统一响应 ====================

const msgInternalError = "服务器内部错误"

func success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": message, "data": data})
}

func created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": message, "data": data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"code": status, "message": message})
}

// handleError 业务错误映射为 HTTP 状态码
// 500 只返回通用提示，原始错误挂到 c.Errors 由请求日志记录
func handleError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		fail(c, status, msgInternalError)
		return
	}
	fail(c, status, err.Error())
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrAccessDenied),
		errors.Is(err, service.ErrUserDisabled):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrSlugExists),
		errors.Is(err, service.ErrMemberExists):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrOwnerNotMember),
		errors.Is(err, service.ErrInvalidImage):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ==================== 参数解析 ====================

// parseID 解析路径参数中的正整数 ID
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, "无效的 "+name)
		return 0, false
	}
	return id, true
}

func bindError(c *gin.Context, err error) {
	fail(c, http.StatusBadRequest, "参数错误: "+err.Error())
}
