package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey      string        // 签名密钥
	AccessTokenTTL time.Duration // Access Token 有效期
	Issuer         string        // 签发者
	CookieName     string        // HttpOnly Cookie 名称
	CookieSecure   bool
}

// DefaultJWTConfig 默认配置
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey:      "oneweb-secret-key-change-in-production",
		AccessTokenTTL: 24 * time.Hour,
		Issuer:         "oneweb",
		CookieName:     "token",
	}
}

// RevocationChecker 判断 Token 是否已被注销
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

var (
	ErrTokenMissing = errors.New("未提供认证信息")
	ErrTokenInvalid = errors.New("Token 无效或已过期")
	ErrTokenRevoked = errors.New("Token 已注销")
)

// ==================== Claims 定义 ====================

// UserClaims 用户声明
type UserClaims struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// ==================== JWTManager ====================

// JWTManager 负责签发、解析 Token 以及 gin 认证中间件
type JWTManager struct {
	cfg     *JWTConfig
	revoked RevocationChecker
	logger  *zap.Logger
}

// NewJWTManager 创建 JWT 管理器
// revoked 可为 nil，此时不检查注销状态
func NewJWTManager(cfg *JWTConfig, revoked RevocationChecker, logger *zap.Logger) *JWTManager {
	if cfg == nil {
		cfg = DefaultJWTConfig()
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "token"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JWTManager{cfg: cfg, revoked: revoked, logger: logger}
}

// Config 获取配置
func (m *JWTManager) Config() *JWTConfig {
	return m.cfg
}

// GenerateAccessToken 生成 Access Token，返回 token 与其身份信息
func (m *JWTManager) GenerateAccessToken(userID int64, name, email string) (string, *Identity, error) {
	now := time.Now()
	expiresAt := now.Add(m.cfg.AccessTokenTTL)
	jti := uuid.NewString()

	claims := &UserClaims{
		UserID: userID,
		Name:   name,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    m.cfg.Issuer,
			Subject:   "access",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.SecretKey))
	if err != nil {
		return "", nil, err
	}

	return signed, &Identity{
		UserID:    userID,
		Name:      name,
		Email:     email,
		TokenID:   jti,
		ExpiresAt: expiresAt,
	}, nil
}

// ParseToken 解析 Token
func (m *JWTManager) ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(m.cfg.SecretKey), nil
	}, jwt.WithIssuer(m.cfg.Issuer))
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.Subject != "access" || claims.UserID <= 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Authenticate 从请求中解析身份
// 优先读取 Authorization: Bearer，其次读取 Cookie
func (m *JWTManager) Authenticate(c *gin.Context) (*Identity, error) {
	raw := m.extractToken(c)
	if raw == "" {
		return nil, ErrTokenMissing
	}

	claims, err := m.ParseToken(raw)
	if err != nil {
		return nil, err
	}

	if m.revoked != nil && claims.ID != "" {
		revoked, err := m.revoked.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			m.logger.Error("查询 Token 注销状态失败", zap.String("jti", claims.ID), zap.Error(err))
			return nil, ErrTokenInvalid
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	identity := &Identity{
		UserID:  claims.UserID,
		Name:    claims.Name,
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

func (m *JWTManager) extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := c.Cookie(m.cfg.CookieName); err == nil {
		return cookie
	}
	return ""
}

// ==================== Cookie ====================

// SetTokenCookie 写入 HttpOnly Cookie
func (m *JWTManager) SetTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, token, int(m.cfg.AccessTokenTTL.Seconds()), "/", "", m.cfg.CookieSecure, true)
}

// ClearTokenCookie 清除 Cookie
func (m *JWTManager) ClearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, "", -1, "/", "", m.cfg.CookieSecure, true)
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyIdentity = "identity"
)

// JWTAuth JWT 认证中间件
func (m *JWTManager) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := m.Authenticate(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": err.Error(),
			})
			c.Abort()
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth 可选认证中间件（不强制登录）
func (m *JWTManager) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, err := m.Authenticate(c); err == nil {
			setIdentity(c, identity)
		}
		c.Next()
	}
}

// setIdentity 注入身份到 gin.Context 与 request context
func setIdentity(c *gin.Context, identity *Identity) {
	c.Set(ContextKeyIdentity, identity)
	c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
}

// ==================== 辅助函数 ====================

// GetIdentity 从 gin.Context 获取身份
func GetIdentity(c *gin.Context) *Identity {
	if v, exists := c.Get(ContextKeyIdentity); exists {
		if identity, ok := v.(*Identity); ok {
			return identity
		}
	}
	return nil
}

// GetUserID 从 Context 获取用户 ID
func GetUserID(c *gin.Context) int64 {
	if identity := GetIdentity(c); identity != nil {
		return identity.UserID
	}
	return 0
}
