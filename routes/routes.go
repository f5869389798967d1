package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foodmarket/configs"
	"foodmarket/controllers"
	"foodmarket/middlewares"
	"foodmarket/repository"
	"foodmarket/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	geoRepo := repository.NewGeoRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	driverRepo := repository.NewDriverRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo, geoRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, customerRepo, restRepo, menuRepo, paymentRepo)
	deliverySvc := services.NewDeliveryService(db, deliveryRepo, orderRepo, driverRepo)
	reviewSvc := services.NewReviewService(reviewRepo, orderRepo, deliveryRepo, customerRepo)
	profileSvc := services.NewProfileService(customerRepo, driverRepo, userRepo, geoRepo, paymentRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	geoCtrl := controllers.NewGeoController(geoRepo)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	deliveryCtrl := controllers.NewDeliveryController(deliverySvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", auth(), authCtrl.Me)

	// Reference data (public)
	geo := r.Group("/geo")
	{
		geo.GET("/states", geoCtrl.States)
		geo.GET("/cities", geoCtrl.Cities)
		geo.GET("/zipcodes", geoCtrl.ZipCodes)
		geo.GET("/zipcodes/:code", geoCtrl.ZipCode)
	}

	// Catalog (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/categories", menuCtrl.ListCategories)
	r.GET("/restaurants/:id/items", menuCtrl.ListItems)
	r.GET("/restaurants/:id/reviews", reviewCtrl.ForRestaurant)
	r.GET("/items/:id", menuCtrl.GetItem)

	// Profile
	profile := r.Group("/profile", auth())
	{
		profile.POST("/customer", profileCtrl.CreateCustomer)
		profile.GET("/customer", profileCtrl.GetCustomer)
		profile.PATCH("/customer", profileCtrl.UpdateCustomer)
		profile.POST("/driver", profileCtrl.CreateDriver)
		profile.GET("/driver", profileCtrl.GetDriver)
		profile.POST("/cards", profileCtrl.AddCard)
		profile.GET("/cards", profileCtrl.ListCards)
		profile.DELETE("/cards/:id", profileCtrl.RemoveCard)
	}

	// Cart
	cart := r.Group("/cart", auth())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.DELETE("/items", cartCtrl.Remove)
		cart.PATCH("/order-date", cartCtrl.SetOrderDate)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	// Orders (customer)
	u := r.Group("/orders", auth())
	{
		u.POST("", orderCtrl.Create)
		u.GET("", orderCtrl.List)
		u.GET("/:id", orderCtrl.Detail)
		u.GET("/:id/review", reviewCtrl.ForOrder)
	}
	r.POST("/reviews", auth(), reviewCtrl.Create)

	// Partner Restaurant (owner/admin)
	partnerRest := r.Group("/partner/restaurants", auth("owner", "admin"))
	{
		partnerRest.POST("", restCtrl.Create)
		partnerRest.PATCH("/:id", restCtrl.Update)
		partnerRest.DELETE("/:id", restCtrl.Delete)
		partnerRest.GET("/:id/orders", orderCtrl.ListForRestaurant)
		partnerRest.POST("/:id/categories", menuCtrl.CreateCategory)
		partnerRest.PATCH("/:id/categories/:catId", menuCtrl.RenameCategory)
		partnerRest.DELETE("/:id/categories/:catId", menuCtrl.DeleteCategory)
		partnerRest.POST("/:id/items", menuCtrl.CreateItem)
		partnerRest.PATCH("/:id/items/:itemId", menuCtrl.UpdateItem)
		partnerRest.DELETE("/:id/items/:itemId", menuCtrl.DeleteItem)
	}

	// Partner Driver (driver/admin)
	partnerDriver := r.Group("/partner/driver", auth("driver", "admin"))
	{
		partnerDriver.GET("/orders", deliveryCtrl.OpenOrders)
		partnerDriver.POST("/deliveries", deliveryCtrl.Claim)
		partnerDriver.PATCH("/deliveries/:id/finish", deliveryCtrl.Finish)
		partnerDriver.GET("/histories", deliveryCtrl.History)
	}
}
