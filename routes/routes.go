package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hardware-store/backend"
	"hardware-store/controllers"
	"hardware-store/middleware"
	"hardware-store/services"
	"hardware-store/session"
)

func SetupRoutes(router *gin.Engine, bc *backend.Client, store session.Store, mailer *services.EmailService) {
	cartSvc := services.NewCartService(bc, store)
	checkoutSvc := services.NewCheckoutService(bc, cartSvc, store, mailer)
	rentalSvc := services.NewRentalService(bc, cartSvc, store)
	catalogSvc := services.NewCatalogService(bc)

	authCtrl := &controllers.AuthController{Backend: bc, Sessions: store, Rentals: rentalSvc}
	cartCtrl := &controllers.CartController{Cart: cartSvc}
	checkoutCtrl := &controllers.CheckoutController{Checkout: checkoutSvc}
	rentalCtrl := &controllers.RentalController{Rentals: rentalSvc, Catalog: catalogSvc}
	catalogCtrl := &controllers.CatalogController{Catalog: catalogSvc}
	orderCtrl := &controllers.OrderController{Backend: bc}
	adminCtrl := &controllers.AdminController{Backend: bc}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/products", catalogCtrl.GetProducts)
	router.GET("/products/:productId", catalogCtrl.GetProduct)
	router.GET("/tools", catalogCtrl.GetTools)
	router.GET("/tools/:toolId", catalogCtrl.GetTool)
	router.GET("/tools/:toolId/estimate", rentalCtrl.EstimateRental)
	router.GET("/rentals/pending/:intentId", rentalCtrl.PendingRental)

	// Booking works logged out too; the attempt is stashed and
	// replayed after login.
	router.POST("/rentals/book",
		middleware.OptionalAuthMiddleware(store), rentalCtrl.BookRental)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(store))
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)
		auth.POST("/auth/logout", authCtrl.Logout)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/product", cartCtrl.AddProduct)
		auth.PUT("/cart/product/:productId", cartCtrl.UpdateProductQuantity)
		auth.DELETE("/cart/product/:productId", cartCtrl.RemoveProduct)
		auth.PUT("/cart/rental/:rentalId", cartCtrl.UpdateRental)
		auth.DELETE("/cart/rental/:rentalId", cartCtrl.RemoveRental)
		auth.PUT("/cart/select", cartCtrl.SelectLine)
		auth.PUT("/cart/select-all", cartCtrl.SelectAll)
		auth.POST("/cart/checkout", checkoutCtrl.CheckoutCart)

		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/rentals", orderCtrl.GetMyRentals)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(store), middleware.AdminMiddleware())
	{
		admin.GET("/users", adminCtrl.ListUsers)
		admin.GET("/users/:id", adminCtrl.GetUser)
		admin.PUT("/users/:id", adminCtrl.UpdateUser)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)

		admin.POST("/products", adminCtrl.CreateProduct)
		admin.PUT("/products/:id", adminCtrl.UpdateProduct)
		admin.DELETE("/products/:id", adminCtrl.DeleteProduct)

		admin.POST("/tools", adminCtrl.CreateTool)
		admin.PUT("/tools/:id", adminCtrl.UpdateTool)
		admin.DELETE("/tools/:id", adminCtrl.DeleteTool)

		admin.GET("/rentals", adminCtrl.ListRentals)
		admin.POST("/rentals", adminCtrl.CreateRental)
		admin.PUT("/rentals/:id", adminCtrl.UpdateRental)
		admin.DELETE("/rentals/:id", adminCtrl.DeleteRental)

		admin.PUT("/orders/:id/status", adminCtrl.UpdateOrderStatus)
		admin.DELETE("/orders/:id", adminCtrl.DeleteOrder)
	}
}
