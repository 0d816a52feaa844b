package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/asad200-stack/ONEWEB/internal/controller"
	"github.com/asad200-stack/ONEWEB/internal/middleware"

	_ "github.com/asad200-stack/ONEWEB/docs"
)

// Controllers 控制器集合
type Controllers struct {
	Auth       *controller.AuthController
	Store      *controller.StoreController
	Member     *controller.MemberController
	Product    *controller.ProductController
	Catalog    *controller.CatalogController
	Message    *controller.MessageController
	Activity   *controller.ActivityController
	Storefront *controller.StorefrontController
}

// Options 路由依赖
type Options struct {
	JWT             *middleware.JWTManager
	Limiter         *middleware.RateLimiter
	MessageInterval time.Duration
	Logger          *zap.Logger
	CORSOrigins     []string
	UploadDir       string // 本地存储目录，为空时不挂载
	UploadURL       string
}

// SetupRouter 创建 gin.Engine 并注册所有路由
func SetupRouter(ctrls *Controllers, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Limiter == nil {
		opts.Limiter = middleware.NewRateLimiter()
	}

	r := gin.New()
	r.Use(middleware.Recovery(opts.Logger), middleware.RequestLogger(opts.Logger))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"code": 0, "message": "ok"})
	})

	if opts.UploadDir != "" {
		uploadURL := opts.UploadURL
		if uploadURL == "" {
			uploadURL = "/uploads"
		}
		r.Static(uploadURL, opts.UploadDir)
	}

	InitRoutes(r, ctrls, opts)
	return r
}

// InitRoutes 注册所有 API 路由
func InitRoutes(r *gin.Engine, ctrls *Controllers, opts Options) {
	api := r.Group("/api")
	authRequired := opts.JWT.JWTAuth()

	// auth 认证组
	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrls.Auth.Register)
		auth.POST("/login", ctrls.Auth.Login)
		auth.POST("/logout", authRequired, ctrls.Auth.Logout)
		auth.GET("/me", authRequired, ctrls.Auth.Me)
	}

	// storefront 公开店面
	storefront := api.Group("/storefront")
	{
		storefront.GET("/:slug", ctrls.Storefront.GetStorefront)
		storefront.GET("/:slug/products/:productSlug", ctrls.Storefront.GetStorefrontProduct)
	}

	// 联系表单: 公开 + 限流
	api.POST("/stores/:storeId/messages",
		middleware.MessageRateLimit(opts.Limiter, opts.MessageInterval),
		ctrls.Message.SubmitMessage,
	)

	// stores 店铺后台，全部需要登录
	stores := api.Group("/stores", authRequired, middleware.AuditContext())
	{
		stores.GET("", ctrls.Store.ListStores)
		stores.POST("", ctrls.Store.CreateStore)
		stores.GET("/:storeId", ctrls.Store.GetStore)
		stores.PUT("/:storeId", ctrls.Store.UpdateStore)
		stores.DELETE("/:storeId", ctrls.Store.DeleteStore)
		stores.PUT("/:storeId/settings", ctrls.Store.UpdateSettings)

		// members 团队
		stores.GET("/:storeId/members", ctrls.Member.ListMembers)
		stores.POST("/:storeId/members", ctrls.Member.AddMember)
		stores.PUT("/:storeId/members/:memberId", ctrls.Member.UpdateMember)
		stores.DELETE("/:storeId/members/:memberId", ctrls.Member.RemoveMember)

		// products 商品
		stores.GET("/:storeId/products", ctrls.Product.GetProducts)
		stores.POST("/:storeId/products", ctrls.Product.CreateProduct)
		stores.GET("/:storeId/products/:productId", ctrls.Product.GetProduct)
		stores.PUT("/:storeId/products/:productId", ctrls.Product.UpdateProduct)
		stores.DELETE("/:storeId/products/:productId", ctrls.Product.DeleteProduct)
		stores.POST("/:storeId/products/:productId/images", ctrls.Product.UploadImage)
		stores.DELETE("/:storeId/products/:productId/images/:imageId", ctrls.Product.DeleteImage)

		// categories / tags / banners
		stores.GET("/:storeId/categories", ctrls.Catalog.ListCategories)
		stores.POST("/:storeId/categories", ctrls.Catalog.CreateCategory)
		stores.PUT("/:storeId/categories/:categoryId", ctrls.Catalog.UpdateCategory)
		stores.DELETE("/:storeId/categories/:categoryId", ctrls.Catalog.DeleteCategory)

		stores.GET("/:storeId/tags", ctrls.Catalog.ListTags)
		stores.POST("/:storeId/tags", ctrls.Catalog.CreateTag)
		stores.PUT("/:storeId/tags/:tagId", ctrls.Catalog.UpdateTag)
		stores.DELETE("/:storeId/tags/:tagId", ctrls.Catalog.DeleteTag)

		stores.GET("/:storeId/banners", ctrls.Catalog.ListBanners)
		stores.POST("/:storeId/banners", ctrls.Catalog.CreateBanner)
		stores.PUT("/:storeId/banners/:bannerId", ctrls.Catalog.UpdateBanner)
		stores.DELETE("/:storeId/banners/:bannerId", ctrls.Catalog.DeleteBanner)

		// messages 留言 (提交接口见上方公开路由)
		stores.GET("/:storeId/messages", ctrls.Message.ListMessages)
		stores.PUT("/:storeId/messages/:messageId/read", ctrls.Message.MarkRead)
		stores.DELETE("/:storeId/messages/:messageId", ctrls.Message.DeleteMessage)

		// activity 审计日志
		stores.GET("/:storeId/activity", ctrls.Activity.ListActivity)
		stores.GET("/:storeId/activity/summary", ctrls.Activity.ActivitySummary)
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", "Retry-After", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
