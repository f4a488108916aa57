package dashboard

import (
	"net/http"

	"github.com/fintrack/fintrack/internal/rest"
	"github.com/fintrack/fintrack/pkg/budget"
	"github.com/fintrack/fintrack/pkg/category"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/income"
)

type SnapshotDTO struct {
	Year           int                    `json:"year"`
	Month          int                    `json:"month"`
	TotalExpenses  string                 `json:"totalExpenses"`
	TotalIncome    string                 `json:"totalIncome"`
	Balance        string                 `json:"balance"`
	Breakdown      []CategoryTotalDTO     `json:"breakdown"`
	Budgets        []BudgetStatusDTO      `json:"budgets"`
	Alerts         []BudgetStatusDTO      `json:"alerts"`
	RecentExpenses []expense.ExpenseDTO   `json:"recentExpenses"`
	RecentIncomes  []income.IncomeDTO     `json:"recentIncomes"`
	Categories     []category.CategoryDTO `json:"categories"`
}

type CategoryTotalDTO struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type BudgetStatusDTO struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Limit    string `json:"limit"`
	Spent    string `json:"spent"`
	Exceeded bool   `json:"exceeded"`
}

type Handler struct {
	dashboardService Service
}

func NewHandler(dashboardService Service) *Handler {
	return &Handler{dashboardService}
}

// Get godoc
// @Summary The current user's dashboard for a month
// @Tags Dashboard
// @Produce json
// @Param year query int false "Year, defaults to the current one"
// @Param month query int false "Month (1-12), defaults to the current one"
// @Success 200 {object} SnapshotDTO
// @Router /api/dashboard [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboardService.GetSnapshot(r.Context(), r.URL.Query().Get("year"), r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, toDTO(snapshot))
}

func toDTO(snapshot Snapshot) SnapshotDTO {
	breakdown := make([]CategoryTotalDTO, 0, len(snapshot.Breakdown))
	for _, entry := range snapshot.Breakdown {
		breakdown = append(breakdown, CategoryTotalDTO{Category: entry.Category, Total: entry.Total.StringFixed(2)})
	}
	expenses := make([]expense.ExpenseDTO, 0, len(snapshot.RecentExpenses))
	for _, e := range snapshot.RecentExpenses {
		expenses = append(expenses, expense.ToDTO(e))
	}
	incomes := make([]income.IncomeDTO, 0, len(snapshot.RecentIncomes))
	for _, i := range snapshot.RecentIncomes {
		incomes = append(incomes, income.ToDTO(i))
	}
	categories := make([]category.CategoryDTO, 0, len(snapshot.Categories))
	for _, c := range snapshot.Categories {
		categories = append(categories, category.CategoryDTO{ID: c.ID, Name: c.Name})
	}
	return SnapshotDTO{
		Year:           snapshot.Period.Year,
		Month:          snapshot.Period.Month,
		TotalExpenses:  snapshot.TotalExpenses.StringFixed(2),
		TotalIncome:    snapshot.TotalIncome.StringFixed(2),
		Balance:        snapshot.Balance.StringFixed(2),
		Breakdown:      breakdown,
		Budgets:        budgetStatuses(snapshot.Budgets),
		Alerts:         budgetStatuses(snapshot.Alerts),
		RecentExpenses: expenses,
		RecentIncomes:  incomes,
		Categories:     categories,
	}
}

func budgetStatuses(budgets []budget.WithSpending) []BudgetStatusDTO {
	dtos := make([]BudgetStatusDTO, 0, len(budgets))
	for _, b := range budgets {
		dtos = append(dtos, BudgetStatusDTO{
			ID:       b.ID,
			Category: b.CategoryName,
			Limit:    b.Limit.StringFixed(2),
			Spent:    b.Spent.StringFixed(2),
			Exceeded: b.Exceeded(),
		})
	}
	return dtos
}
