package app

import (
	"log/slog"

	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/metrics"
	"github.com/amirasaad/pocketpilot/pkg/repository"
	"github.com/amirasaad/pocketpilot/pkg/service/auth"
	"github.com/amirasaad/pocketpilot/pkg/service/budget"
	"github.com/amirasaad/pocketpilot/pkg/service/goal"
	"github.com/amirasaad/pocketpilot/pkg/service/ledger"
	"github.com/amirasaad/pocketpilot/pkg/service/savings"
	"github.com/amirasaad/pocketpilot/pkg/service/user"
	"github.com/amirasaad/pocketpilot/pkg/service/voice"
)

// Deps contains the process-wide dependencies the services are built from.
type Deps struct {
	Uow      repository.UnitOfWork
	Sessions voice.SessionStore
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AuthService    *auth.Service
	UserService    *user.Service
	LedgerService  *ledger.Service
	BudgetService  *budget.Service
	GoalService    *goal.Service
	SavingsService *savings.Service
	VoiceService   *voice.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}

	ledgerOpts := []ledger.Option{ledger.WithMetrics(deps.Metrics)}
	if cfg.Savings != nil && cfg.Savings.SMSDuplicateWindow > 0 {
		ledgerOpts = append(ledgerOpts, ledger.WithSMSDuplicateWindow(cfg.Savings.SMSDuplicateWindow))
	}

	app.AuthService = auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger)
	app.UserService = user.New(deps.Uow, deps.Logger)
	app.LedgerService = ledger.New(deps.Uow, deps.Logger, ledgerOpts...)
	app.BudgetService = budget.New(deps.Uow, deps.Logger)
	app.GoalService = goal.New(deps.Uow, deps.Logger)
	app.SavingsService = savings.New(deps.Uow, deps.Logger, deps.Metrics)
	app.VoiceService = voice.New(
		deps.Uow,
		deps.Sessions,
		app.LedgerService,
		deps.Logger,
		deps.Metrics,
	)
	return app
}
