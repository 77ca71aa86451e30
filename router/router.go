package router

import (
	"time"

	"gagyebu/api"
	"gagyebu/config"
	_ "gagyebu/docs"
	"gagyebu/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 라우터 구성
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())

	// 카카오 로그인 (세션 없이 접근)
	authHandler := api.NewAuthHandler(cfg)
	auth := r.Group("/auth")
	{
		auth.GET("/kakao", authHandler.KakaoLogin)
		auth.GET("/kakao/callback", authHandler.KakaoCallback)
		auth.POST("/logout", authHandler.Logout)

		// dev 로그인은 debug 모드 전용이며 IP 당 분당 5회로 제한한다
		auth.POST("/dev-login", middleware.LoginRateLimit(5, time.Minute), authHandler.DevLogin)
	}

	// Swagger 문서
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 (PWA 클라이언트)
	v1 := r.Group("/api/v1")
	authorized := v1.Group("")
	authorized.Use(middleware.JWTAuth())
	{
		authorized.GET("/profile", authHandler.Profile)

		// 지출
		expenseHandler := api.NewExpenseHandler()
		expenses := authorized.Group("/expenses")
		{
			expenses.POST("", expenseHandler.Create)
			expenses.GET("", expenseHandler.List)
			expenses.GET("/:id", expenseHandler.Get)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}

		// 예산 카테고리
		categoryHandler := api.NewCategoryHandler()
		categories := authorized.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/balances", categoryHandler.Balances)
			categories.POST("", categoryHandler.Create)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		// 계좌
		accountHandler := api.NewAccountHandler()
		accounts := authorized.Group("/accounts")
		{
			accounts.GET("", accountHandler.List)
			accounts.POST("", accountHandler.Create)
			accounts.PUT("/:id", accountHandler.Update)
			accounts.DELETE("/:id", accountHandler.Delete)
		}

		// 결제 수단
		paymentHandler := api.NewPaymentHandler()
		payments := authorized.Group("/payment-methods")
		{
			payments.GET("", paymentHandler.List)
			payments.POST("", paymentHandler.Create)
			payments.PUT("/:id", paymentHandler.Update)
			payments.DELETE("/:id", paymentHandler.Delete)
		}

		// 월 입금 사이클
		depositHandler := api.NewDepositHandler()
		deposits := authorized.Group("/deposits")
		{
			deposits.GET("/cycle", depositHandler.GetCycle)
			deposits.POST("", depositHandler.Create)
			deposits.PUT("/items/:id", depositHandler.CompleteItem)
			deposits.PUT("/:id/salary", depositHandler.UpdateSalary)
			deposits.DELETE("/:id", depositHandler.Reset)
		}

		// 정산
		settlementHandler := api.NewSettlementHandler()
		settlements := authorized.Group("/settlements")
		{
			settlements.GET("", settlementHandler.List)
			settlements.PUT("/:id", settlementHandler.Complete)
		}

		// 설정
		settingsHandler := api.NewSettingsHandler()
		settings := authorized.Group("/settings")
		{
			settings.PUT("/profile", settingsHandler.UpdateProfile)
			settings.GET("/category-accounts", settingsHandler.ListCategoryAccounts)
			settings.PUT("/category-accounts", settingsHandler.UpsertCategoryAccount)
		}

		// 오프라인 동기화
		syncHandler := api.NewSyncHandler()
		authorized.POST("/sync", syncHandler.Sync)
		authorized.GET("/sync", syncHandler.Status)

		// 내보내기
		exportHandler := api.NewExportHandler()
		export := authorized.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}

		// 대시보드
		authorized.GET("/summary", api.NewSummaryHandler().Dashboard)
	}

	// 헬스체크
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 미들웨어. PWA 가 쿠키를 보내므로 Credentials 를 허용한다.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
