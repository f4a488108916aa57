package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Authentication
	r.HandleFunc("/api/auth/register", deps.UserHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", deps.SessionHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/logout", deps.SessionHandler.Logout).Methods("POST")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.DeleteCurrentUser).Methods("DELETE")

	// Dashboard
	r.HandleFunc("/api/dashboard", deps.DashboardHandler.Get).Methods("GET")

	// Expenses
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Income
	r.HandleFunc("/api/income", deps.IncomeHandler.List).Methods("GET")
	r.HandleFunc("/api/income", deps.IncomeHandler.Create).Methods("POST")
	r.HandleFunc("/api/income/{id}", deps.IncomeHandler.Update).Methods("PUT")
	r.HandleFunc("/api/income/{id}", deps.IncomeHandler.Delete).Methods("DELETE")

	// Categories
	r.HandleFunc("/api/categories", deps.CategoryHandler.List).Methods("GET")
	r.HandleFunc("/api/categories", deps.CategoryHandler.Create).Methods("POST")
	r.HandleFunc("/api/categories/{id}", deps.CategoryHandler.Update).Methods("PUT")
	r.HandleFunc("/api/categories/{id}", deps.CategoryHandler.Delete).Methods("DELETE")

	// Budgets
	r.HandleFunc("/api/budgets", deps.BudgetHandler.List).Methods("GET")
	r.HandleFunc("/api/budgets", deps.BudgetHandler.Create).Methods("POST")
	r.HandleFunc("/api/budgets/{id}", deps.BudgetHandler.Update).Methods("PUT")
	r.HandleFunc("/api/budgets/{id}", deps.BudgetHandler.Delete).Methods("DELETE")
}
