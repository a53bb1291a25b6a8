package routes

import (
	"net/http"
	"time"

	"scheduledash/handlers"
	"scheduledash/middleware"
	"scheduledash/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the dashboard endpoints onto the router.
func RegisterRoutes(r *gin.Engine, h *handlers.DashboardHandler, registry *utils.SessionRegistry) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, h)
	RegisterDashboardRoutes(r, h, registry)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterAuthRoutes registers the public sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, h *handlers.DashboardHandler) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", h.LoginHandler)
		api.POST("/logout", h.LogoutHandler)
	}
}

// RegisterDashboardRoutes registers the session-protected dashboard
// endpoints.
func RegisterDashboardRoutes(r *gin.Engine, h *handlers.DashboardHandler, registry *utils.SessionRegistry) {
	api := r.Group("/api/dashboard")
	api.Use(middleware.SessionAuthMiddleware(registry))
	{
		api.GET("", h.StateHandler)
		api.POST("/load", h.LoadHandler)
		api.GET("/export", h.ExportHandler)
		api.DELETE("/notification", h.DismissNotificationHandler)

		api.PUT("/schedule/field", h.ScheduleFieldHandler)
		api.POST("/schedule", h.SubmitScheduleHandler)

		api.PUT("/timeoff/draft", h.DraftFieldHandler)
		api.POST("/timeoff", h.AddTimeOffHandler)
		api.POST("/timeoff/:id/edit", h.EditTimeOffHandler)
		api.PUT("/timeoff/edit/field", h.EditFieldHandler)
		api.POST("/timeoff/edit/save", h.SaveTimeOffHandler)
		api.POST("/timeoff/edit/cancel", h.CancelEditHandler)
		api.DELETE("/timeoff/:id", h.DeleteTimeOffHandler)
	}
}
