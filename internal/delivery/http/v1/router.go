package v1

import (
	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ChatUC    domain.ChatUsecase
	Catalog   *repository.Catalog
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Unknown-shaped payloads are rejected instead of silently ignored
	binding.EnableDecoderDisallowUnknownFields = true

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// All routes are public; the site has no authenticated surface
	NewStatusHandler(r, api, deps.Config)
	NewContactHandler(api, deps.ContactUC, deps.Config.IsDevelopment())
	NewChatHandler(api, deps.ChatUC)
	NewCatalogHandler(api, deps.Catalog)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
