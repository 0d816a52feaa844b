package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/asad200-stack/ONEWEB/internal/middleware"
	"github.com/asad200-stack/ONEWEB/internal/model"
	"github.com/asad200-stack/ONEWEB/internal/repository"
)

// ==================== 测试辅助 ====================

// setupServiceTestDB 内存 sqlite，单连接保证所有 goroutine 看到同一个库
func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, middleware.RegisterAuditCallbacks(db))
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

// memoryActivityWriter 收集审计记录
type memoryActivityWriter struct {
	mu   sync.Mutex
	logs []*model.ActivityLog
}

func (w *memoryActivityWriter) Create(ctx context.Context, log *model.ActivityLog) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logs = append(w.logs, log)
	return nil
}

func (w *memoryActivityWriter) all() []*model.ActivityLog {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*model.ActivityLog, len(w.logs))
	copy(out, w.logs)
	return out
}

// testEnv 服务层测试环境
type testEnv struct {
	db         *gorm.DB
	users      repository.UserRepository
	stores     repository.StoreRepository
	members    repository.StoreMemberRepository
	categories repository.CategoryRepository
	tags       repository.TagRepository
	banners    repository.BannerRepository
	products   repository.ProductRepository
	messages   repository.MessageRepository
	logs       repository.ActivityLogRepository

	guard    *AccessGuard
	writer   *memoryActivityWriter
	activity *ActivityLogger
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupServiceTestDB(t)
	env := &testEnv{
		db:         db,
		users:      repository.NewUserRepository(db),
		stores:     repository.NewStoreRepository(db),
		members:    repository.NewStoreMemberRepository(db),
		categories: repository.NewCategoryRepository(db),
		tags:       repository.NewTagRepository(db),
		banners:    repository.NewBannerRepository(db),
		products:   repository.NewProductRepository(db),
		messages:   repository.NewMessageRepository(db),
		logs:       repository.NewActivityLogRepository(db),
		writer:     &memoryActivityWriter{},
	}
	env.guard = NewAccessGuard(NewContextAuthenticator(env.users), NewRoleResolver(env.stores, env.members))
	env.activity = NewActivityLogger(env.writer, nil, ActivityLoggerConfig{QueueSize: 128})
	t.Cleanup(func() { _ = env.activity.Close(context.Background()) })
	return env
}

// flushActivity 关闭记录器并等待写入完成，返回全部记录
func (e *testEnv) flushActivity(t *testing.T) []*model.ActivityLog {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, e.activity.Close(ctx))
	return e.writer.all()
}

func (e *testEnv) createUser(t *testing.T, email string) *model.User {
	user := &model.User{Email: email, Name: email, Password: "x", IsActive: true}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) createStore(t *testing.T, owner *model.User, slug string) *model.Store {
	store := &model.Store{Name: slug, Slug: slug, OwnerID: owner.ID, Settings: model.DefaultStoreSettings()}
	require.NoError(t, e.stores.Create(context.Background(), store))
	return store
}

func (e *testEnv) addMember(t *testing.T, store *model.Store, user *model.User, role model.Role) *model.StoreMember {
	member := &model.StoreMember{StoreID: store.ID, UserID: user.ID, Role: role}
	require.NoError(t, e.members.Create(context.Background(), member))
	return member
}

func (e *testEnv) createProduct(t *testing.T, storeID int64, slug string, active bool) *model.Product {
	product := &model.Product{
		StoreID:  storeID,
		Name:     slug,
		Slug:     slug,
		Price:    10,
		Currency: model.DefaultCurrency,
		Stock:    5,
		IsActive: active,
	}
	require.NoError(t, e.products.Create(context.Background(), product))
	return product
}

// asUser 模拟 JWT 中间件写入身份
func asUser(user *model.User) context.Context {
	return middleware.WithIdentity(context.Background(), &middleware.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	})
}

func ptr[T any](v T) *T { return &v }
