package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"farmsoc-api/cart"
	"farmsoc-api/config"
	"farmsoc-api/controllers"
	"farmsoc-api/middleware"
	"farmsoc-api/models"
	"farmsoc-api/repositories"
	"farmsoc-api/services"
)

func SetupRoutes(router *gin.Engine) {
	cartKV := repositories.NewCartRepository(config.RedisClient)
	carts := cart.NewManager(cartKV)

	authCtrl := controllers.NewAuthController(services.NewAuthService(), carts)
	productCtrl := controllers.NewProductController()
	farmerCtrl := &controllers.FarmerController{}
	feedCtrl := controllers.NewFeedController()
	eventCtrl := &controllers.EventController{}
	cropReqCtrl := &controllers.CropRequestController{}
	cartCtrl := controllers.NewCartController(carts, repositories.NewProductRepository())
	checkoutCtrl := controllers.NewCheckoutController(carts)
	searchCtrl := controllers.NewSearchController()
	dashboardCtrl := &controllers.DashboardController{}
	settingsCtrl := controllers.NewSettingsController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/farmers", farmerCtrl.GetAllFarmers)
	router.GET("/farmers/:id", farmerCtrl.GetFarmerByID)
	router.GET("/feed", feedCtrl.GetFeed)
	router.GET("/events", eventCtrl.GetEvents)
	router.GET("/crop-requests", cropReqCtrl.GetCropRequests)
	router.GET("/search", searchCtrl.Search)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/auth/logout", authCtrl.Logout)
		auth.POST("/auth/role", authCtrl.SetRole)
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.DELETE("/cart", cartCtrl.ClearCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:productId", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
		auth.POST("/checkout", checkoutCtrl.Checkout)

		auth.POST("/farmers/:id/follow", farmerCtrl.FollowFarmer)
		auth.POST("/crop-requests", cropReqCtrl.CreateCropRequest)
		auth.GET("/settings", settingsCtrl.GetSettings)
	}

	farmer := router.Group("/")
	farmer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.RoleFarmer))
	{
		farmer.POST("/products", productCtrl.CreateProduct)
		farmer.POST("/feed", feedCtrl.CreatePost)
		farmer.POST("/events", eventCtrl.CreateEvent)
		farmer.PATCH("/events/:id/publish", eventCtrl.PublishEvent)
		farmer.GET("/farmer/events", eventCtrl.GetFarmerEvents)
		farmer.GET("/farmer/dashboard", dashboardCtrl.GetDashboard)
		farmer.POST("/crop-requests/:id/fulfill", cropReqCtrl.FulfillCropRequest)
	}

	router.Static("/uploads", "./uploads")
}
