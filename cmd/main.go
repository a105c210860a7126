// Package main is the entry point for the stellar-burgers state service.
//
// @title           Stellar Burgers State API
// @version         1.0.0
// @description     Local state service of one Stellar Burgers client session.
//
//	It keeps the ingredient catalog, the burger builder, orders, the public feed
//	and the user session, and relays remote calls to the Stellar Burgers backend.
//
// @contact.name   API Support
// @contact.email  support@example.com
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        State
// @tag.description Whole-session snapshot
//
// @tag.name        Ingredients
// @tag.description Ingredient catalog
//
// @tag.name        Builder
// @tag.description Burger builder
//
// @tag.name        Orders
// @tag.description Order submission, lookup and history
//
// @tag.name        Feed
// @tag.description Public order feed
//
// @tag.name        Auth
// @tag.description Session and profile endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/FindTheRhythm/stellar-burgers/docs" // swagger docs

	"github.com/FindTheRhythm/stellar-burgers/config"
	"github.com/FindTheRhythm/stellar-burgers/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load .env")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.InitializeApp(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	runErr := app.NewServer(a.Router, cfg.Server).Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Failed to release resources")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
