package app

import (
	"database/sql"
	"time"

	"github.com/fintrack/fintrack/internal/config"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/budget"
	"github.com/fintrack/fintrack/pkg/category"
	"github.com/fintrack/fintrack/pkg/dashboard"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/income"
	"github.com/fintrack/fintrack/pkg/session"
	"github.com/fintrack/fintrack/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	UserService user.Service
	UserHandler *user.Handler

	SessionService session.Service
	SessionHandler *session.Handler

	CategoryService category.Service
	CategoryHandler *category.Handler

	ExpenseService expense.Service
	ExpenseHandler *expense.Handler

	IncomeService income.Service
	IncomeHandler *income.Handler

	BudgetService budget.Service
	BudgetHandler *budget.Handler

	DashboardService dashboard.Service
	DashboardHandler *dashboard.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour
	deps.SessionService = session.NewService(session.NewRepo(db), sessionTTL)
	deps.SessionHandler = session.NewHandler(deps.SessionService, deps.UserService, cfg.Session.SecureCookie)

	deps.CategoryService = category.NewService(category.NewRepo(db))
	deps.CategoryHandler = category.NewHandler(deps.CategoryService)

	deps.ExpenseService = expense.NewService(expense.NewRepo(db), deps.CategoryService)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.IncomeService = income.NewService(income.NewRepo(db))
	deps.IncomeHandler = income.NewHandler(deps.IncomeService)

	deps.BudgetService = budget.NewService(budget.NewRepo(db), deps.CategoryService, deps.ExpenseService)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService, deps.Clock)

	deps.DashboardService = dashboard.NewService(deps.ExpenseService, deps.IncomeService, deps.BudgetService, deps.CategoryService, deps.Clock)
	deps.DashboardHandler = dashboard.NewHandler(deps.DashboardService)

	return deps
}
