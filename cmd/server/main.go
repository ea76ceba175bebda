package main

import (
	"fmt"

	_ "github.com/eaglebank/eaglebank/docs"
	"github.com/eaglebank/eaglebank/infra/initializer"
	"github.com/eaglebank/eaglebank/pkg/app"
	"github.com/eaglebank/eaglebank/pkg/config"
	"github.com/eaglebank/eaglebank/webapi"
	log "github.com/charmbracelet/log"
)

// @title Eagle Bank API
// @version 1.0.0
// @description REST API for users, accounts and transactions
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(*deps, cfg)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}
