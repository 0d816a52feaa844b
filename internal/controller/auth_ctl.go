package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asad200-stack/ONEWEB/internal/api/dto"
	"github.com/asad200-stack/ONEWEB/internal/middleware"
	"github.com/asad200-stack/ONEWEB/internal/service"
)

type AuthController struct {
	authService *service.AuthService
	jwt         *middleware.JWTManager
}

func NewAuthController(s *service.AuthService, jwt *middleware.JWTManager) *AuthController {
	return &AuthController{authService: s, jwt: jwt}
}

// Register
// @Summary 注册
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "注册信息"
// @Success 201 {object} map[string]interface{} "用户信息"
// @Failure 400 {object} map[string]interface{} "参数错误"
// @Failure 409 {object} map[string]interface{} "邮箱已存在"
// @Router /api/auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	created(c, "注册成功", user)
}

// Login
// @Summary 登录
// @Description 校验邮箱密码，签发 JWT 并写入 HttpOnly Cookie
// @Tags Auth (认证模块)
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} map[string]interface{} "Token 与用户信息"
// @Failure 401 {object} map[string]interface{} "邮箱或密码错误"
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	ctrl.jwt.SetTokenCookie(c, resp.AccessToken)
	success(c, "登录成功", resp)
}

// Logout
// @Summary 登出
// @Description 注销当前 Token 并清除 Cookie
// @Tags Auth (认证模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{} "未登录"
// @Router /api/auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.authService.Logout(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	ctrl.jwt.ClearTokenCookie(c)
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "已退出登录"})
}

// Me
// @Summary 当前用户
// @Description 当前用户信息及可访问的店铺
// @Tags Auth (认证模块)
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "dto.ProfileResp"
// @Failure 401 {object} map[string]interface{} "未登录"
// @Router /api/auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	profile, err := ctrl.authService.Profile(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	success(c, "success", profile)
}
