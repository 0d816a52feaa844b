package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type auditedRecord struct {
	ID        int64 `gorm:"primaryKey"`
	Name      string
	CreatedBy int64
	UpdatedBy int64
}

func setupAuditDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, RegisterAuditCallbacks(db))
	require.NoError(t, db.AutoMigrate(&auditedRecord{}))
	return db
}

func TestAuditCallbacks(t *testing.T) {
	db := setupAuditDB(t)
	ctx := WithIdentity(context.Background(), &Identity{UserID: 5})

	rec := &auditedRecord{Name: "a"}
	require.NoError(t, db.WithContext(ctx).Create(rec).Error)
	assert.Equal(t, int64(5), rec.CreatedBy)
	assert.Equal(t, int64(5), rec.UpdatedBy)

	// 显式指定的值不覆盖
	preset := &auditedRecord{Name: "b", CreatedBy: 9}
	require.NoError(t, db.WithContext(ctx).Create(preset).Error)
	assert.Equal(t, int64(9), preset.CreatedBy)

	other := WithIdentity(context.Background(), &Identity{UserID: 6})
	fields := map[string]interface{}{"name": "renamed"}
	require.NoError(t, db.WithContext(other).Model(&auditedRecord{}).Where("id = ?", rec.ID).Updates(fields).Error)
	assert.Equal(t, int64(6), fields["updated_by"])

	var got auditedRecord
	require.NoError(t, db.First(&got, rec.ID).Error)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, int64(5), got.CreatedBy)
	assert.Equal(t, int64(6), got.UpdatedBy)

	// 无身份时不填充
	anon := &auditedRecord{Name: "anon"}
	require.NoError(t, db.Create(anon).Error)
	assert.Zero(t, anon.CreatedBy)
}

func TestIdentityContext(t *testing.T) {
	assert.Nil(t, IdentityFromContext(context.Background()))
	assert.Zero(t, GetAuditUserID(context.Background()))

	ctx := WithIdentity(context.Background(), &Identity{UserID: 3})
	assert.Equal(t, int64(3), GetAuditUserID(ctx))
}

func TestRequestLoggerAndRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	r := gin.New()
	r.Use(Recovery(log), RequestLogger(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	assert.Equal(t, 1, logs.FilterMessage("请求完成").Len())
	assert.Equal(t, 1, logs.FilterMessage("请求处理 panic").Len())
	entry := logs.FilterMessage("请求完成").All()[0]
	assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
}
