// Package app provides router configuration.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/config"
	"github.com/FindTheRhythm/stellar-burgers/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	handler := http.NewHandler(services.Store, services.Client, http.WithWaitTimeout(cfg.Server.WaitTimeout))
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	healthHandler.RegisterCircuitBreaker("upstream_api", services.Client.Breaker())
	if dbComponents != nil {
		if dbComponents.CredentialsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_credentials", dbComponents.CredentialsCircuitBreaker)
		}
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
	}

	st := services.Store
	healthHandler.RegisterInfo("session", func() any {
		return gin.H{
			"id":            cfg.Session.ID,
			"authenticated": st.User.State().IsAuthenticated,
			"catalog_size":  len(st.Ingredients.State().Items),
		}
	})

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		SessionID:         cfg.Session.ID,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
