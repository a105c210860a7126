// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/FindTheRhythm/stellar-burgers/config"
	"github.com/FindTheRhythm/stellar-burgers/internal/http"
	"github.com/FindTheRhythm/stellar-burgers/internal/store"
)

// App is the wired state service.
type App struct {
	Router   *gin.Engine
	Store    *store.Store
	services *ServiceComponents
	database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies and starts
// the startup loads of the session.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(ctx, cfg)

	services, err := InitializeServices(cfg, dbComponents.Credentials)
	if err != nil {
		closeDatabase(ctx, dbComponents)
		return nil, err
	}

	RestoreSession(ctx, services.Store, dbComponents.Credentials, cfg.Session)

	routerComponents := InitializeRouter(services, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Store:    services.Store,
		services: services,
		database: dbComponents,
	}, nil
}

// Close releases the order cache and the database connection.
func (a *App) Close(ctx context.Context) error {
	if a.services != nil && a.services.OrderCache != nil {
		a.services.OrderCache.Stop()
	}
	return closeDatabase(ctx, a.database)
}

func closeDatabase(ctx context.Context, db *DatabaseComponents) error {
	if db == nil || db.DB == nil {
		return nil
	}
	if err := db.DB.Close(ctx); err != nil {
		return fmt.Errorf("close mongodb: %w", err)
	}
	return nil
}
