package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hardware-store/backend"
	"hardware-store/config"
	_ "hardware-store/docs"
	"hardware-store/middleware"
	"hardware-store/routes"
	"hardware-store/services"
	"hardware-store/session"
)

// @title Hardware Store API
// @version 1.0
// @description Storefront and rental API for the SRVK hardware store
// @host localhost:8082
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	bc := backend.New(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout)
	store := session.Connect()

	mailer, err := services.NewEmailService()
	if err != nil {
		log.Printf("Order confirmation emails disabled: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, bc, store, mailer)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
