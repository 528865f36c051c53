package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"bookwise/handlers"
	"bookwise/utils"
)

// RegisterResolveRoutes registers the resolution endpoint.
func RegisterResolveRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/resolve", hb.ResolveHandler)
	}
}

// RegisterMemoryRoutes registers continuity-store endpoints.
func RegisterMemoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/memory")
	{
		api.GET("/:userID", hb.GetMemoryHandler)
		api.DELETE("/:userID", hb.ClearMemoryHandler)
	}
}

// RegisterHistoryRoutes registers archived-resolution endpoints.
func RegisterHistoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/history")
	{
		api.GET("/:userID", hb.GetHistoryHandler)
		api.DELETE("/record/:id", hb.DeleteHistoryHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterResolveRoutes(r, hb)
	RegisterMemoryRoutes(r, hb)
	RegisterHistoryRoutes(r, hb)
	RegisterHealthRoute(r)
}
