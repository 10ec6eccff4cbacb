package router

import (
	"fmt"
	"strings"

	"github.com/laga-admin/internal/cache"
	"github.com/laga-admin/internal/config"
	adminhandlers "github.com/laga-admin/internal/http/handlers/admin"
	"github.com/laga-admin/internal/logger"
	"github.com/laga-admin/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "laga"
	}
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "登录尝试过于频繁，请稍后再试",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 上传文件静态服务
	r.Static("/uploads", cfg.Upload.Dir)

	api := r.Group("/api/admin")
	{
		// 登录接口（无需鉴权）
		api.POST("/login", RateLimitMiddleware(cache.Client(), loginRule, KeyByIPAndJSONField("username")), adminHandler.Login)

		// 需要鉴权的接口
		authorized := api.Group("")
		authorized.Use(JWTAuthMiddleware(c.AuthService))
		{
			// 账号
			authorized.GET("/me", adminHandler.Me)
			authorized.PUT("/password", adminHandler.ChangePassword)

			// 仪表盘与报表
			authorized.GET("/dashboard", adminHandler.Dashboard)
			authorized.GET("/reports/sales", adminHandler.ListSalesReports)
			authorized.GET("/reports/sales/summary", adminHandler.SalesSummary)

			// 商品分类
			authorized.GET("/categories", adminHandler.ListCategories)
			authorized.POST("/categories", adminHandler.CreateCategory)
			authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
			authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

			// 商品与规格
			authorized.GET("/products", adminHandler.ListProducts)
			authorized.GET("/products/:id", adminHandler.GetProduct)
			authorized.POST("/products", adminHandler.CreateProduct)
			authorized.PUT("/products/:id", adminHandler.UpdateProduct)
			authorized.DELETE("/products/:id", adminHandler.DeleteProduct)
			authorized.PUT("/products/:id/stock", adminHandler.UpdateProductStock)
			authorized.POST("/products/:id/variants", adminHandler.AddProductVariant)
			authorized.PUT("/products/variants/:variant_id", adminHandler.UpdateProductVariant)
			authorized.DELETE("/products/variants/:variant_id", adminHandler.DeleteProductVariant)

			// 订单
			authorized.GET("/orders", adminHandler.ListOrders)
			authorized.GET("/orders/:id", adminHandler.GetOrder)
			authorized.POST("/orders", adminHandler.CreateOrder)
			authorized.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			authorized.PUT("/orders/:id/tracking", adminHandler.UpdateOrderTracking)

			// 优惠券
			authorized.GET("/vouchers", adminHandler.ListVouchers)
			authorized.GET("/vouchers/check", adminHandler.CheckVoucher)
			authorized.GET("/vouchers/:id", adminHandler.GetVoucher)
			authorized.POST("/vouchers", adminHandler.CreateVoucher)
			authorized.PUT("/vouchers/:id", adminHandler.UpdateVoucher)
			authorized.PUT("/vouchers/:id/toggle", adminHandler.ToggleVoucher)
			authorized.DELETE("/vouchers/:id", adminHandler.DeleteVoucher)

			// 物流费率
			authorized.GET("/logistics/provinces", adminHandler.ListProvinces)
			authorized.GET("/logistics/rates", adminHandler.ListLogisticsRates)
			authorized.GET("/logistics/rates/:province_id", adminHandler.GetLogisticsRate)
			authorized.POST("/logistics/rates", adminHandler.CreateLogisticsRate)
			authorized.PUT("/logistics/rates/:province_id", adminHandler.UpdateLogisticsRate)
			authorized.DELETE("/logistics/rates/:province_id", adminHandler.DeleteLogisticsRate)

			// 通知
			authorized.GET("/notifications", adminHandler.ListNotifications)
			authorized.GET("/notifications/unread-count", adminHandler.UnreadNotificationCount)
			authorized.PUT("/notifications/:id/read", adminHandler.MarkNotificationRead)
			authorized.PUT("/notifications/read-all", adminHandler.MarkAllNotificationsRead)

			// 电视内容
			authorized.GET("/tv/categories", adminHandler.ListTvCategories)
			authorized.GET("/tv/categories/next-order", adminHandler.NextTvCategoryOrder)
			authorized.GET("/tv/categories/:id", adminHandler.GetTvCategory)
			authorized.POST("/tv/categories", adminHandler.CreateTvCategory)
			authorized.PUT("/tv/categories/:id", adminHandler.UpdateTvCategory)
			authorized.DELETE("/tv/categories/:id", adminHandler.DeleteTvCategory)
			authorized.GET("/tv/categories/:id/contents", adminHandler.ListTvContents)
			authorized.POST("/tv/categories/:id/contents", adminHandler.CreateTvContent)
			authorized.PUT("/tv/contents/:content_id", adminHandler.UpdateTvContent)
			authorized.DELETE("/tv/contents/:content_id", adminHandler.DeleteTvContent)

			// 赛事活动与报名
			authorized.GET("/fantasies", adminHandler.ListFantasies)
			authorized.GET("/fantasies/:id", adminHandler.GetFantasy)
			authorized.POST("/fantasies", adminHandler.CreateFantasy)
			authorized.PUT("/fantasies/:id", adminHandler.UpdateFantasy)
			authorized.DELETE("/fantasies/:id", adminHandler.DeleteFantasy)
			authorized.GET("/registrations", adminHandler.ListRegistrations)
			authorized.GET("/registrations/:id", adminHandler.GetRegistration)
			authorized.POST("/registrations", adminHandler.CreateRegistration)
			authorized.PUT("/registrations/:id", adminHandler.UpdateRegistration)
			authorized.PUT("/registrations/:id/payment", adminHandler.UpdateRegistrationPayment)
			authorized.DELETE("/registrations/:id", adminHandler.DeleteRegistration)

			// 队伍
			authorized.GET("/teams", adminHandler.ListTeams)
			authorized.GET("/teams/:id", adminHandler.GetTeam)
			authorized.POST("/teams", adminHandler.CreateTeam)
			authorized.PUT("/teams/:id", adminHandler.UpdateTeam)
			authorized.DELETE("/teams/:id", adminHandler.DeleteTeam)

			// 球鞋
			authorized.GET("/shoes", adminHandler.ListShoes)
			authorized.GET("/shoes/:id", adminHandler.GetShoe)
			authorized.POST("/shoes", adminHandler.CreateShoe)
			authorized.PUT("/shoes/:id", adminHandler.UpdateShoe)
			authorized.DELETE("/shoes/:id", adminHandler.DeleteShoe)

			// 支付记录（只读）
			authorized.GET("/payments", adminHandler.ListPayments)
			authorized.GET("/payments/:id", adminHandler.GetPayment)

			// 文件上传
			authorized.POST("/upload", adminHandler.Upload)
		}
	}

	return r
}
