package routes

import (
	"log"

	"github.com/bhavesharora02/Euron-Water-Supply/config"
	"github.com/bhavesharora02/Euron-Water-Supply/controllers"
	"github.com/bhavesharora02/Euron-Water-Supply/middlewares"
	"github.com/bhavesharora02/Euron-Water-Supply/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	// shared infrastructure
	rt := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
	}
	services.InitAlertDeps(config.DB, rt, push)

	intakeSvc := services.NewIntakeService(config.DB)
	analyticsSvc := services.NewAnalyticsService(config.DB)
	advisorSvc := services.NewAdvisorService(services.NewHFGenerator())

	intakeCtl := controllers.NewIntakeController(intakeSvc)
	analyticsCtl := controllers.NewAnalyticsController(analyticsSvc)
	dashboardCtl := controllers.NewDashboardController(intakeSvc, analyticsSvc, advisorSvc)
	realtimeCtl := controllers.NewRealtimeController(rt)

	// Server-rendered dashboard, usable without a login
	r.GET("/", dashboardCtl.Home)
	r.GET("/dashboard", dashboardCtl.Show)
	r.POST("/dashboard/log", dashboardCtl.LogIntake)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/report/email", controllers.EmailWeeklyReport)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	// Intake CRUD
	intake := r.Group("/intake")
	intake.Use(middlewares.AuthMiddleware())
	{
		intake.POST("", intakeCtl.Create)
		intake.GET("", intakeCtl.List)
		intake.GET("/recent", intakeCtl.Recent)
		intake.DELETE("/:id", intakeCtl.Delete)
	}

	// Goals
	goal := r.Group("/goal")
	goal.Use(middlewares.AuthMiddleware())
	{
		goal.GET("", controllers.GetGoal)
		goal.PUT("", controllers.UpdateGoal)
	}

	// Aggregated views
	analytics := r.Group("/analytics")
	analytics.Use(middlewares.AuthMiddleware())
	{
		analytics.GET("/summary", analyticsCtl.GetSummary)
		analytics.GET("/today", analyticsCtl.GetToday)
		analytics.GET("/trends", analyticsCtl.GetTrends)
		analytics.GET("/charts", analyticsCtl.GetCharts)
	}

	// AI feedback, alerts, realtime, devices
	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("advisor/feedback", controllers.GetFeedback)
		protected.GET("alerts", controllers.ListAlerts)
		protected.GET("ws/alerts", realtimeCtl.AlertsWS)

		if push != nil {
			deviceCtl := controllers.NewDeviceController(push)
			protected.POST("devices", deviceCtl.Register)
			protected.POST("devices/remind", deviceCtl.Remind)
		}
	}

	return r
}
