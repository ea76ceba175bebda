// Package app assembles the services from their dependencies.
package app

import (
	"log/slog"

	"github.com/eaglebank/eaglebank/pkg/config"
	"github.com/eaglebank/eaglebank/pkg/idgen"
	"github.com/eaglebank/eaglebank/pkg/repository"
	accountsvc "github.com/eaglebank/eaglebank/pkg/service/account"
	authsvc "github.com/eaglebank/eaglebank/pkg/service/auth"
	ledgersvc "github.com/eaglebank/eaglebank/pkg/service/ledger"
	usersvc "github.com/eaglebank/eaglebank/pkg/service/user"
)

// Deps carries the infrastructure dependencies the services are built on.
type Deps struct {
	Uow    repository.UnitOfWork
	IDs    *idgen.Generator
	Logger *slog.Logger
}

// App holds the wired services and the configuration they were built with.
type App struct {
	Deps

	Config *config.App

	AccountService *accountsvc.Service
	AuthService    *authsvc.Service
	LedgerService  *ledgersvc.Service
	UserService    *usersvc.Service
}

// New wires the services from deps and cfg.
func New(deps Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
		AccountService: accountsvc.New(
			deps.Uow, deps.IDs, cfg.Ledger.AccountNumberAttempts, deps.Logger),
		AuthService:   authsvc.New(deps.Uow, cfg.Jwt, deps.Logger),
		LedgerService: ledgersvc.New(deps.Uow, deps.IDs, deps.Logger),
		UserService:   usersvc.New(deps.Uow, deps.IDs, deps.Logger),
	}
}
