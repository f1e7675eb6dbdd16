package routes

import (
	"net/http"
	"time"

	"movebook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Movebook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// The widget is embedded cross-origin on customer sites, so CORS is wide open.
func RegisterRoutes(r *gin.Engine, widget *handlers.WidgetHandler, company *handlers.CompanyHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterWidgetRoutes(r, widget)
	RegisterCompanyRoutes(r, company)
}
