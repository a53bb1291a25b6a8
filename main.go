package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scheduledash/config"
	"scheduledash/handlers"
	"scheduledash/middleware"
	"scheduledash/routes"
	"scheduledash/services/remote"
	"scheduledash/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A local .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config.LoadConfig()
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	client := remote.NewClient(config.AppConfig.APIBaseURL, config.APITimeout())
	registry := utils.NewSessionRegistry(config.SessionTTL())
	dashboardHandler := handlers.NewDashboardHandler(client, registry)

	routes.RegisterRoutes(router, dashboardHandler, registry)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s, remote API %s", srv.Addr, config.AppConfig.APIBaseURL)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
