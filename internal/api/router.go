package api

import (
	"github.com/gin-gonic/gin"
	"github.com/liliang-cn/datagenie/internal/api/admin"
	"github.com/liliang-cn/datagenie/internal/api/community"
	"github.com/liliang-cn/datagenie/internal/api/middleware"
	"github.com/liliang-cn/datagenie/internal/api/wizard"
	"github.com/liliang-cn/datagenie/internal/service"
	"github.com/liliang-cn/datagenie/internal/store"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	APIKey       string
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	wizardService *service.WizardService,
	communityService *service.CommunityService,
	adminService *service.AdminService,
	st *store.Store,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", Health)

	apiGroup := r.Group("/api")

	// Wizard API (problem sessions)
	wizardHandler := wizard.NewHandler(wizardService)
	wizardHandler.RegisterRoutes(apiGroup.Group("/problems"))

	// Catalog + community API
	communityHandler := community.NewHandler(communityService)
	communityHandler.RegisterRoutes(apiGroup)

	// State change stream
	apiGroup.GET("/events", Events(st))

	// Admin API (requires API key)
	adminHandler := admin.NewHandler(adminService)
	adminGroup := apiGroup.Group("/admin")
	adminGroup.Use(middleware.Auth(cfg.APIKey))
	adminHandler.RegisterRoutes(adminGroup)

	return r
}
