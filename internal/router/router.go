package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"buyingbd_storefront/internal/controller"
	"buyingbd_storefront/internal/middleware"

	_ "buyingbd_storefront/docs"
)

// Controllers 控制器集合
type Controllers struct {
	Storefront *controller.StorefrontController
	Auth       *controller.AuthController
	Order      *controller.OrderController
	Shop       *controller.ShopController
	Advisor    *controller.AdvisorController
	Admin      *controller.AdminController
}

// Options 路由级中间件参数
type Options struct {
	Logger          *zap.Logger
	Limiter         *middleware.CooldownLimiter
	AdvisorCooldown time.Duration
	Debug           bool
}

// SetupRouter 创建 gin 引擎并注册所有路由
func SetupRouter(ctls *Controllers, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Limiter == nil {
		opts.Limiter = middleware.NewCooldownLimiter()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if opts.Debug {
		r.Use(gin.Logger())
	}

	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 2. API 路由组，所有接口按设备区分状态
	api := r.Group("/api")
	api.Use(middleware.DeviceIdentity())
	{
		api.GET("/state", ctls.Storefront.GetState)
		api.POST("/view", ctls.Storefront.Navigate)
		api.POST("/search", ctls.Storefront.Search)

		// 目录
		products := api.Group("/products")
		{
			products.GET("", ctls.Storefront.ListProducts)
			products.GET("/recommended", ctls.Storefront.Recommended)
			products.GET("/:id", ctls.Storefront.GetProduct)
		}

		// 弹窗
		modals := api.Group("/modals/:name")
		{
			modals.POST("/open", ctls.Storefront.OpenModal)
			modals.POST("/close", ctls.Storefront.CloseModal)
		}

		// 登录
		auth := api.Group("/auth")
		{
			auth.POST("/login", ctls.Auth.Login)
			auth.POST("/logout", ctls.Auth.Logout)
			auth.POST("/refresh", ctls.Auth.RefreshToken)
		}

		// 购物车与下单
		cart := api.Group("/cart")
		{
			cart.GET("", ctls.Order.GetCart)
			cart.POST("/items", ctls.Order.AddItem)
			cart.DELETE("/items/:productId/:variantId", ctls.Order.RemoveItem)
		}
		api.POST("/checkout", ctls.Order.Checkout)

		// 商家入驻
		api.POST("/vendor-applications", ctls.Shop.SubmitApplication)

		// 采购顾问
		advisor := api.Group("/advisor")
		{
			advisor.POST("/ask",
				middleware.DeviceCooldown(opts.Limiter, "advisor_ask", opts.AdvisorCooldown),
				ctls.Advisor.Ask,
			)
			advisor.GET("/history", ctls.Advisor.History)
		}

		// 管理后台：令牌 + 管理员角色
		admin := api.Group("/admin")
		admin.Use(
			middleware.JWTAuth(),
			middleware.RequireRole("admin"),
			middleware.AdminAudit(opts.Logger),
		)
		{
			admin.GET("/dashboard", ctls.Admin.Dashboard)
			admin.POST("/tab", ctls.Admin.SetTab)

			admin.GET("/orders", ctls.Admin.ListOrders)
			admin.PUT("/orders/:id/status", ctls.Admin.UpdateOrderStatus)

			admin.GET("/applications", ctls.Admin.ListApplications)
			admin.POST("/applications/:id/decision", ctls.Admin.DecideApplication)

			admin.POST("/products", ctls.Admin.CreateProduct)
			admin.DELETE("/products/:id", ctls.Admin.DeleteProduct)

			admin.GET("/advisor/usage", ctls.Admin.AdvisorUsage)
		}
	}

	return r
}
