package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"hardware-store/backend"
	"hardware-store/config"
	"hardware-store/middleware"
	"hardware-store/routes"
	"hardware-store/services"
	"hardware-store/session"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		bc := backend.New(config.AppConfig.APIBaseURL, config.AppConfig.APITimeout)
		store := session.Connect()

		mailer, err := services.NewEmailService()
		if err != nil {
			log.Printf("Order confirmation emails disabled: %v", err)
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, bc, store, mailer)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
