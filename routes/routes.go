package routes

import (
	"net/http"
	"time"

	"glowstudio/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, catalogHandler *handlers.CatalogHandler, bookingHandler *handlers.BookingHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Client-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, catalogHandler)
	RegisterBookingRoutes(r, bookingHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Glow Studio"})
	})
}

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, h *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", h.GetCategoriesHandler)
		api.GET("/services", h.GetServicesHandler)
		api.GET("/services/:id", h.GetServiceByIDHandler)
		api.GET("/services/:id/staff", h.GetStaffForServiceHandler)
		api.GET("/staff/:id", h.GetStaffByIDHandler)
	}
}
