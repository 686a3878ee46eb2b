package handlers

import (
	portssvc "github.com/centsworth/monetize_app/internal/core/ports/services"
	"github.com/centsworth/monetize_app/internal/middleware"
	"github.com/centsworth/monetize_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// ServiceContainer bundles the service interfaces the HTTP layer depends on.
type ServiceContainer struct {
	Currency portssvc.CurrencySvcFacade
	Parser   portssvc.AmountParserSvc
}

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *ServiceContainer) {
	r.GET("/health", GetHealth)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *ServiceContainer) {
	groupMiddleware := []gin.HandlerFunc{}
	if cfg.JWTSecret != "" {
		groupMiddleware = append(groupMiddleware, middleware.AuthMiddleware(cfg.JWTSecret))
	}

	v1 := r.Group("/api/v1", groupMiddleware...)

	// Per-IP rate limit on the parse endpoint only; registry reads are cheap.
	rate, _ := limiter.NewRateFromFormatted(cfg.ParseRateLimit)
	store := memory.NewStore()
	parseLimiter := limiter.New(store, rate)

	registerParseRoutes(v1, services.Parser, middleware.RateLimit(parseLimiter))
	registerCurrencyRoutes(v1, services.Currency)
}
