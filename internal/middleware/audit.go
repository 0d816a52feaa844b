package middleware

import (
	"context"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ==================== 请求身份 ====================

type identityContextKey struct{}

// Identity 当前请求的认证身份
// 由 JWT 中间件写入 request context，供 Service 层与 GORM 回调读取
type Identity struct {
	UserID    int64
	Name      string
	Email     string
	TokenID   string    // jti，注销时使用
	ExpiresAt time.Time // Token 过期时间
}

// WithIdentity 注入身份到 context
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext 从 context 获取身份，未登录返回 nil
func IdentityFromContext(ctx context.Context) *Identity {
	if ctx == nil {
		return nil
	}
	if identity, ok := ctx.Value(identityContextKey{}).(*Identity); ok {
		return identity
	}
	return nil
}

// GetAuditUserID 从 context 获取审计用户 ID
func GetAuditUserID(ctx context.Context) int64 {
	if identity := IdentityFromContext(ctx); identity != nil {
		return identity.UserID
	}
	return 0
}

// ==================== Gin 中间件 ====================

// AuditContext 审计上下文中间件
// 将 gin.Context 中的身份同步到 request context，供 GORM 回调使用
func AuditContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity := GetIdentity(c); identity != nil && IdentityFromContext(c.Request.Context()) == nil {
			c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))
		}
		c.Next()
	}
}

// ==================== GORM 回调 ====================

// RegisterAuditCallbacks 注册 GORM 审计回调
// 在 Create/Update 时自动填充 CreatedBy/UpdatedBy
func RegisterAuditCallbacks(db *gorm.DB) error {
	err := db.Callback().Create().Before("gorm:create").Register("audit:create", func(tx *gorm.DB) {
		userID := GetAuditUserID(tx.Statement.Context)
		if userID == 0 {
			return
		}
		setAuditField(tx, "CreatedBy", userID)
		setAuditField(tx, "UpdatedBy", userID)
	})
	if err != nil {
		return err
	}

	return db.Callback().Update().Before("gorm:update").Register("audit:update", func(tx *gorm.DB) {
		userID := GetAuditUserID(tx.Statement.Context)
		if userID == 0 {
			return
		}

		// map 形式的 Updates 直接追加字段
		if fields, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			if tx.Statement.Schema != nil && tx.Statement.Schema.LookUpField("UpdatedBy") != nil {
				fields["updated_by"] = userID
			}
			return
		}
		setAuditField(tx, "UpdatedBy", userID)
	})
}

// setAuditField 设置审计字段 (仅在字段为零值时)
func setAuditField(tx *gorm.DB, fieldName string, value int64) {
	if tx.Statement.Schema == nil {
		return
	}

	field := tx.Statement.Schema.LookUpField(fieldName)
	if field == nil {
		return
	}

	switch tx.Statement.ReflectValue.Kind() {
	case reflect.Struct:
		if _, isZero := field.ValueOf(tx.Statement.Context, tx.Statement.ReflectValue); isZero {
			_ = field.Set(tx.Statement.Context, tx.Statement.ReflectValue, value)
		}
	case reflect.Slice:
		// 批量插入
		for i := 0; i < tx.Statement.ReflectValue.Len(); i++ {
			rv := tx.Statement.ReflectValue.Index(i)
			if rv.Kind() == reflect.Ptr {
				rv = rv.Elem()
			}
			if _, isZero := field.ValueOf(tx.Statement.Context, rv); isZero {
				_ = field.Set(tx.Statement.Context, rv, value)
			}
		}
	}
}
