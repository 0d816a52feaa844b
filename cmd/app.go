package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/asad200-stack/ONEWEB/internal/config"
	"github.com/asad200-stack/ONEWEB/internal/controller"
	"github.com/asad200-stack/ONEWEB/internal/middleware"
	"github.com/asad200-stack/ONEWEB/internal/repository"
	"github.com/asad200-stack/ONEWEB/internal/router"
	"github.com/asad200-stack/ONEWEB/internal/service"
	"github.com/asad200-stack/ONEWEB/internal/task"
	"github.com/asad200-stack/ONEWEB/pkg/database"
	"github.com/asad200-stack/ONEWEB/pkg/i18n"
	"github.com/asad200-stack/ONEWEB/pkg/logger"
)

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
	JWT         *middleware.JWTManager
	Limiter     *middleware.RateLimiter
	Activity    *service.ActivityLogger
}

// Repositories 仓库集合
type Repositories struct {
	User     repository.UserRepository
	Revoked  repository.RevokedTokenRepository
	Store    repository.StoreRepository
	Member   repository.StoreMemberRepository
	Category repository.CategoryRepository
	Tag      repository.TagRepository
	Banner   repository.BannerRepository
	Product  repository.ProductRepository
	Message  repository.MessageRepository
	Activity repository.ActivityLogRepository
}

// Services 服务集合
type Services struct {
	Guard      *service.AccessGuard
	Auth       *service.AuthService
	Store      *service.StoreService
	Member     *service.MemberService
	Product    *service.ProductService
	Catalog    *service.CatalogService
	Message    *service.MessageService
	Activity   *service.ActivityService
	Storefront *service.StorefrontService
	Storage    *service.StorageService
	Seed       *service.SeedService
}

// ==================== 初始化函数 ====================

// bootstrap 读取配置、初始化日志与数据库
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("配置校验失败: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Open(database.Options{
		Driver:          cfg.DB.Driver,
		DSN:             cfg.DB.DSN,
		LogLevel:        cfg.DB.LogLevel,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("数据库连接成功", zap.String("driver", cfg.DB.Driver))
	return cfg, log, db, nil
}

// initRepositories 初始化所有仓库
func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     repository.NewUserRepository(db),
		Revoked:  repository.NewRevokedTokenRepository(db),
		Store:    repository.NewStoreRepository(db),
		Member:   repository.NewStoreMemberRepository(db),
		Category: repository.NewCategoryRepository(db),
		Tag:      repository.NewTagRepository(db),
		Banner:   repository.NewBannerRepository(db),
		Product:  repository.NewProductRepository(db),
		Message:  repository.NewMessageRepository(db),
		Activity: repository.NewActivityLogRepository(db),
	}
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, log *zap.Logger, db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := initRepositories(db)

	// -------- 基础组件 --------
	jwtManager := middleware.NewJWTManager(&middleware.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenTTL: cfg.JWT.AccessTTL,
		Issuer:         cfg.JWT.Issuer,
		CookieName:     "token",
		CookieSecure:   cfg.JWT.CookieSecure,
	}, repos.Revoked, log)

	activity := service.NewActivityLogger(repos.Activity, log, service.ActivityLoggerConfig{
		QueueSize:    cfg.Audit.QueueSize,
		WriteTimeout: cfg.Audit.WriteTimeout,
	})

	storageSvc := initStorageService(cfg, log)

	guard := service.NewAccessGuard(
		service.NewContextAuthenticator(repos.User),
		service.NewRoleResolver(repos.Store, repos.Member),
	)

	// -------- 业务服务 --------
	services := &Services{
		Guard:   guard,
		Storage: storageSvc,
	}
	services.Auth = service.NewAuthService(repos.User, repos.Store, repos.Revoked, jwtManager, activity)
	services.Store = service.NewStoreService(guard, repos.Store, repos.Product, repos.Message, activity)
	services.Member = service.NewMemberService(guard, repos.Store, repos.Member, repos.User, activity)
	services.Product = service.NewProductService(guard, repos.Product, repos.Category, repos.Tag, storageSvc, activity, log)
	services.Catalog = service.NewCatalogService(guard, repos.Category, repos.Tag, repos.Banner, repos.Product, activity)
	services.Message = service.NewMessageService(guard, repos.Store, repos.Message)
	services.Activity = service.NewActivityService(guard, repos.Activity)
	services.Storefront = service.NewStorefrontService(
		repos.Store, repos.Product, repos.Category, repos.Banner,
		i18n.Default(), cfg.Public.BaseURL,
	)
	services.Seed = service.NewSeedService(repos.User, repos.Store, repos.Category, repos.Product, repos.Banner, log)

	return &Dependencies{
		Config:      cfg,
		Logger:      log,
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: initControllers(services, jwtManager),
		JWT:         jwtManager,
		Limiter:     middleware.NewRateLimiter(),
		Activity:    activity,
	}
}

// initStorageService 初始化存储服务，失败时图片上传不可用
func initStorageService(cfg *config.Config, log *zap.Logger) *service.StorageService {
	storageCfg := service.StorageConfig{
		Provider:  cfg.Storage.Provider,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
		CDNDomain: cfg.Storage.CDNDomain,
		BasePath:  cfg.Storage.BasePath,
	}
	if cfg.Storage.Provider == "local" || cfg.Storage.Provider == "" {
		storageCfg.BasePath = cfg.Storage.LocalDir
		storageCfg.BaseURL = cfg.Storage.LocalURL
	}

	storageSvc, err := service.NewStorageService(storageCfg)
	if err != nil {
		log.Warn("存储服务初始化失败，图片上传已禁用", zap.Error(err))
		return nil
	}
	return storageSvc
}

// initControllers 初始化所有控制器
func initControllers(svc *Services, jwtManager *middleware.JWTManager) *router.Controllers {
	return &router.Controllers{
		Auth:       controller.NewAuthController(svc.Auth, jwtManager),
		Store:      controller.NewStoreController(svc.Store),
		Member:     controller.NewMemberController(svc.Member),
		Product:    controller.NewProductController(svc.Product),
		Catalog:    controller.NewCatalogController(svc.Catalog),
		Message:    controller.NewMessageController(svc.Message),
		Activity:   controller.NewActivityController(svc.Activity),
		Storefront: controller.NewStorefrontController(svc.Storefront),
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) (*task.Manager, error) {
	manager := task.NewManager(deps.Logger, 5*time.Minute)

	jobs := []task.Job{
		task.NewTokenCleanupTask(deps.Repos.Revoked, deps.Logger),
		task.NewLimiterSweepTask(deps.Limiter, 10*deps.Config.RateMsgs, deps.Logger),
	}
	for _, job := range jobs {
		if err := manager.Register(job); err != nil {
			return nil, err
		}
	}
	manager.Start()
	return manager, nil
}

// ==================== 命令实现 ====================

func runMigrate() error {
	_, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Info("数据库迁移完成")
	return nil
}

func runSeed(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if err := database.Migrate(db); err != nil {
		return err
	}
	deps := initDependencies(cfg, log, db)
	defer deps.Activity.Close(context.Background()) //nolint:errcheck

	return deps.Services.Seed.Run(ctx)
}

func runServe() error {
	cfg, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if err := database.Migrate(db); err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	deps := initDependencies(cfg, log, db)

	tasks, err := initTasks(deps)
	if err != nil {
		return err
	}

	opts := router.Options{
		JWT:             deps.JWT,
		Limiter:         deps.Limiter,
		MessageInterval: cfg.RateMsgs,
		Logger:          log,
		CORSOrigins:     cfg.Server.CORSOrigins,
	}
	if deps.Services.Storage != nil && (cfg.Storage.Provider == "local" || cfg.Storage.Provider == "") {
		opts.UploadDir = cfg.Storage.LocalDir
		opts.UploadURL = cfg.Storage.LocalURL
	}
	r := router.SetupRouter(deps.Controllers, opts)

	return startServer(r, deps, tasks)
}

// ==================== 服务启动 ====================

// startServer 启动服务并等待退出信号
func startServer(r *gin.Engine, deps *Dependencies, tasks *task.Manager) error {
	log := deps.Logger
	port := deps.Config.Server.Port

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	// 异步启动服务
	go func() {
		log.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("服务启动失败: %w", err)
	case <-quit:
	}

	log.Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("服务强制关闭", zap.Error(err))
	}
	if err := tasks.Stop(ctx); err != nil {
		log.Warn("定时任务未完全停止", zap.Error(err))
	}
	// 最后关闭审计队列，确保关闭前的操作全部落库
	if err := deps.Activity.Close(ctx); err != nil {
		log.Warn("审计日志未全部写入", zap.Error(err))
	}

	log.Info("服务已退出")
	return nil
}
