package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/config"
	"github.com/mariahavens/restaurant-pos/controllers"
	"github.com/mariahavens/restaurant-pos/middlewares"
	"github.com/mariahavens/restaurant-pos/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Uploaded menu images are the only static surface.
	r.Static("/uploads", config.AppConfig.Upload.Dir)

	authCtrl := controllers.NewAuthController(db)
	staffCtrl := controllers.NewStaffController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	itemCtrl := controllers.NewMenuItemController(db)
	uploadCtrl := controllers.NewUploadController(config.AppConfig.Upload.Dir, config.AppConfig.Upload.BaseURL)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db)
	receptionCtrl := controllers.NewReceptionistController(db)
	perfCtrl := controllers.NewPerformanceController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Login sits outside the auth group behind a stricter limiter.
	public := r.Group("/api")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", authCtrl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/logout", authCtrl.Logout)
		api.POST("/verify-pin", middlewares.RequirePermission(models.PermPOS), authCtrl.VerifyPin)

		api.GET("/staff", staffCtrl.GetAllStaff)
		staff := api.Group("/staff", middlewares.RequirePermission(models.PermManageStaff))
		{
			staff.POST("", staffCtrl.CreateStaff)
			staff.PUT("/:id", staffCtrl.UpdateStaff)
			staff.DELETE("/:id", staffCtrl.DeleteStaff)
		}

		api.GET("/menu/categories", categoryCtrl.GetAllCategories)
		api.GET("/menu/items", itemCtrl.GetAllItems)
		menu := api.Group("/menu", middlewares.RequirePermission(models.PermManageMenu))
		{
			menu.POST("/categories", categoryCtrl.CreateCategory)
			menu.PUT("/categories/:id", categoryCtrl.UpdateCategory)
			menu.DELETE("/categories/:id", categoryCtrl.DeleteCategory)
			menu.POST("/items", itemCtrl.CreateItem)
			menu.PUT("/items/:id", itemCtrl.UpdateItem)
			menu.DELETE("/items/:id", itemCtrl.DeleteItem)
		}
		api.POST("/upload", middlewares.RequirePermission(models.PermManageMenu), uploadCtrl.UploadImage)

		api.GET("/tables", tableCtrl.GetAllTables)
		tables := api.Group("/tables", middlewares.RequirePermission(models.PermManageTables))
		{
			tables.POST("", tableCtrl.CreateTable)
			tables.PUT("/:id/status", tableCtrl.UpdateTableStatus)
		}

		api.POST("/orders", middlewares.RequirePermission(models.PermPOS), orderCtrl.CreateOrder)
		api.GET("/waiter/dashboard", middlewares.RequirePermission(models.PermPOS), orderCtrl.GetWaiterDashboard)

		kitchen := api.Group("/kitchen", middlewares.RequirePermission(models.PermKitchen))
		{
			kitchen.GET("/orders", orderCtrl.GetKitchenOrders)
			kitchen.PUT("/orders/:id/status", orderCtrl.UpdateKitchenOrderStatus)
		}

		reception := api.Group("/receptionist", middlewares.RequirePermission(models.PermManageTables))
		{
			reception.GET("/dashboard", receptionCtrl.GetDashboard)
			reception.GET("/available-tables", receptionCtrl.GetAvailableTables)
			reception.POST("/reservation", receptionCtrl.CreateReservation)
			reception.POST("/waiting-guest", receptionCtrl.AddWaitingGuest)
			reception.POST("/checkin", receptionCtrl.CheckinGuest)
			reception.POST("/seat-guest", receptionCtrl.SeatWaitingGuest)
		}

		performance := api.Group("/performance", middlewares.RequirePermission(models.PermViewAnalytics))
		{
			performance.GET("/staff", perfCtrl.GetStaffPerformance)
			performance.GET("/staff/:id", perfCtrl.GetStaffPerformanceByID)
			performance.GET("/summary", perfCtrl.GetSummary)
			performance.GET("/trends", perfCtrl.GetTrends)
			performance.GET("/by-role", perfCtrl.GetByRole)
			performance.GET("/export", perfCtrl.Export)
			performance.POST("/initialize", perfCtrl.Initialize)
		}
	}

	return r
}
