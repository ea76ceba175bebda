// Package initializer builds the application dependencies from
// configuration.
package initializer

import (
	"github.com/eaglebank/eaglebank/infra"
	infrarepository "github.com/eaglebank/eaglebank/infra/repository"
	"github.com/eaglebank/eaglebank/pkg/app"
	"github.com/eaglebank/eaglebank/pkg/config"
	"github.com/eaglebank/eaglebank/pkg/idgen"
)

// InitializeDependencies sets up the logger, runs migrations, opens the
// database, and returns the assembled dependency set.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	if err := infra.RunMigrations(cfg.DB); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		return nil, err
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}

	deps.Uow = infrarepository.NewUoW(db)
	deps.IDs = idgen.NewDefault()

	return deps, nil
}
