package v1

import (
	"net/http"

	"portfolio-backend/config"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	cfg *config.Config
}

// NewStatusHandler registers the root banner and the configuration self-test
func NewStatusHandler(r *gin.Engine, api *gin.RouterGroup, cfg *config.Config) {
	handler := &StatusHandler{cfg: cfg}

	r.GET("/", handler.Root)
	api.GET("/test", handler.Test)
}

// Root godoc
// @Summary      API Banner
// @Description  Lists the available endpoints.
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Portfolio API Server is running!",
		"endpoints": []string{
			"/api/contact",
			"/api/chat",
			"/api/test",
			"/api/services",
			"/api/team",
		},
	})
}

// Test godoc
// @Summary      Configuration Self-Test
// @Description  Reports which required settings are present, without echoing any values.
// @Tags         status
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/test [get]
func (h *StatusHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "API is working",
		"env": gin.H{
			"EMAIL_USER":     h.cfg.EmailUser != "",
			"EMAIL_PASS":     h.cfg.EmailPass != "",
			"EMAIL_TO":       h.cfg.EmailTo != "",
			"GEMINI_API_KEY": h.cfg.GeminiAPIKey != "",
			"APP_ENV":        h.cfg.Environment,
		},
	})
}
