package v1

import (
	"net/http"

	"portfolio-backend/internal/repository"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *repository.Catalog
}

// NewCatalogHandler registers the read-only content routes
func NewCatalogHandler(api *gin.RouterGroup, catalog *repository.Catalog) {
	handler := &CatalogHandler{catalog: catalog}

	api.GET("/services", handler.ListServices)
	api.GET("/team", handler.GetTeam)
}

// ListServices godoc
// @Summary      Service Catalog
// @Description  Returns the static service descriptions keyed by service id.
// @Tags         content
// @Produce      json
// @Success      200  {object}  map[string]repository.Service
// @Router       /api/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Services())
}

// GetTeam godoc
// @Summary      Team Roster
// @Description  Returns the static team bios.
// @Tags         content
// @Produce      json
// @Success      200  {object}  repository.TeamRoster
// @Router       /api/team [get]
func (h *CatalogHandler) GetTeam(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Team())
}
