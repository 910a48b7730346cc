package handlers

import (
	"net/http"

	"glowstudio/models"
	"glowstudio/services/catalog"
	"glowstudio/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the read-only studio catalog.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: c}
}

// GetCategoriesHandler lists the browsable categories, with the "all"
// pseudo-category first for the client's filter bar.
func (h *CatalogHandler) GetCategoriesHandler(c *gin.Context) {
	categories := append(
		[]models.Category{{ID: models.CategoryAll, Name: "All services", Icon: "✨"}},
		h.Catalog.Categories()...,
	)
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetServicesHandler lists services, optionally filtered by ?category=.
func (h *CatalogHandler) GetServicesHandler(c *gin.Context) {
	category := c.DefaultQuery("category", models.CategoryAll)
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.ServicesByCategory(category)})
}

// GetServiceByIDHandler fetches one service with display labels for the
// client's service card.
func (h *CatalogHandler) GetServiceByIDHandler(c *gin.Context) {
	id := c.Param("id")
	service, ok := h.Catalog.ServiceByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "service not found", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"service":       service,
		"priceLabel":    utils.FormatPrice(service.Price),
		"durationLabel": utils.FormatDuration(service.Duration),
	})
}

// GetStaffForServiceHandler lists staff members specialized in the service's category.
func (h *CatalogHandler) GetStaffForServiceHandler(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, gin.H{"staff": h.Catalog.StaffForService(id)})
}

// GetStaffByIDHandler fetches one staff member.
func (h *CatalogHandler) GetStaffByIDHandler(c *gin.Context) {
	id := c.Param("id")
	staff, ok := h.Catalog.StaffByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "staff member not found", id)
		return
	}
	c.JSON(http.StatusOK, staff)
}
