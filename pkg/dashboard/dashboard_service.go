package dashboard

import (
	"context"
	"sort"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/fintrack/fintrack/pkg/budget"
	"github.com/fintrack/fintrack/pkg/category"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/income"
	"github.com/shopspring/decimal"
)

// uncategorizedLabel groups expenses whose category was removed or never set.
const uncategorizedLabel = "Uncategorized"

// recentLimit caps the recent-activity lists.
const recentLimit = 50

type Service interface {
	GetSnapshot(ctx context.Context, yearRaw string, monthRaw string) (Snapshot, error)
}

type ServiceImpl struct {
	expenses   expense.Service
	incomes    income.Service
	budgets    budget.Service
	categories category.Service
	clock      utils.Clock
}

func NewService(
	expenses expense.Service,
	incomes income.Service,
	budgets budget.Service,
	categories category.Service,
	clock utils.Clock,
) *ServiceImpl {
	return &ServiceImpl{
		expenses:   expenses,
		incomes:    incomes,
		budgets:    budgets,
		categories: categories,
		clock:      clock,
	}
}

// GetSnapshot aggregates the current user's month into a single read model.
// Malformed period input never fails the request, it falls back to the current
// month; only store failures surface as errors.
func (s *ServiceImpl) GetSnapshot(ctx context.Context, yearRaw string, monthRaw string) (Snapshot, error) {
	year, month := utils.ResolvePeriod(s.clock.Now(), yearRaw, monthRaw)

	monthExpenses, err := s.expenses.FindByMonth(ctx, year, month)
	if err != nil {
		return Snapshot{}, err
	}
	monthIncomes, err := s.incomes.FindByMonth(ctx, year, month)
	if err != nil {
		return Snapshot{}, err
	}

	totalExpenses := decimal.Zero
	for _, e := range monthExpenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}
	totalIncome := decimal.Zero
	for _, i := range monthIncomes {
		totalIncome = totalIncome.Add(i.Amount)
	}

	budgets, err := s.budgets.StatusForPeriod(ctx, year, month, monthExpenses)
	if err != nil {
		return Snapshot{}, err
	}
	alerts := make([]budget.WithSpending, 0)
	for _, b := range budgets {
		if b.Exceeded() {
			alerts = append(alerts, b)
		}
	}

	recentExpenses, err := s.expenses.FindRecent(ctx, recentLimit)
	if err != nil {
		return Snapshot{}, err
	}
	recentIncomes, err := s.incomes.FindRecent(ctx, recentLimit)
	if err != nil {
		return Snapshot{}, err
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Period:         Period{Year: year, Month: month},
		TotalExpenses:  totalExpenses,
		TotalIncome:    totalIncome,
		Balance:        totalIncome.Sub(totalExpenses),
		Breakdown:      breakdownByCategory(monthExpenses),
		Budgets:        budgets,
		Alerts:         alerts,
		RecentExpenses: recentExpenses,
		RecentIncomes:  recentIncomes,
		Categories:     categories,
	}, nil
}

// breakdownByCategory groups the month's expenses by category name, biggest
// spender first. Name order breaks ties so equal totals render stably.
func breakdownByCategory(expenses []expense.Expense) []CategoryTotal {
	totals := map[string]decimal.Decimal{}
	for _, e := range expenses {
		name := e.CategoryName
		if e.CategoryID == nil {
			name = uncategorizedLabel
		}
		totals[name] = totals[name].Add(e.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(totals))
	for name, total := range totals {
		breakdown = append(breakdown, CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if !breakdown[i].Total.Equal(breakdown[j].Total) {
			return breakdown[i].Total.GreaterThan(breakdown[j].Total)
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}
