package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/pkg/category"
	"github.com/fintrack/fintrack/pkg/expense"
	"github.com/fintrack/fintrack/pkg/user"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrCategoryNotAllowed is returned when a budget references a category the
	// current user does not own.
	ErrCategoryNotAllowed = errors.New("category does not exist or is not owned by the user")
	// ErrDuplicateBudget is returned when the user already has a budget for the
	// same category and period.
	ErrDuplicateBudget = errors.New("a budget for this category and period already exists")
)

type Service interface {
	ListWithSpending(ctx context.Context, year int, month int) ([]WithSpending, error)
	StatusForPeriod(ctx context.Context, year int, month int, expenses []expense.Expense) ([]WithSpending, error)
	Create(ctx context.Context, budget Budget) (Budget, error)
	Update(ctx context.Context, budget Budget) (Budget, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo       Repo
	categories category.Service
	expenses   expense.Service
}

func NewService(repo Repo, categories category.Service, expenses expense.Service) *ServiceImpl {
	return &ServiceImpl{repo: repo, categories: categories, expenses: expenses}
}

// ListWithSpending returns every budget of the current user together with the
// spending counted against it. A period-scoped budget is measured against its
// own month; a general budget against the month given here.
func (s *ServiceImpl) ListWithSpending(ctx context.Context, year int, month int) ([]WithSpending, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	budgets, err := s.repo.GetAll(ctx, userId)
	if err != nil {
		return nil, err
	}

	type period struct{ year, month int }
	cache := map[period][]expense.Expense{}
	monthExpenses := func(p period) ([]expense.Expense, error) {
		if cached, ok := cache[p]; ok {
			return cached, nil
		}
		found, err := s.expenses.FindByMonth(ctx, p.year, p.month)
		if err != nil {
			return nil, err
		}
		cache[p] = found
		return found, nil
	}

	result := make([]WithSpending, 0, len(budgets))
	for _, budget := range budgets {
		target := period{year, month}
		if !budget.IsGeneral() {
			target = period{*budget.Year, *budget.Month}
		}
		expenses, err := monthExpenses(target)
		if err != nil {
			return nil, err
		}
		result = append(result, WithSpending{Budget: budget, Spent: spentOn(budget.CategoryID, expenses)})
	}
	return result, nil
}

// StatusForPeriod computes spending for the budgets that apply to one calendar
// month, against an expense set the caller already fetched for that month.
func (s *ServiceImpl) StatusForPeriod(ctx context.Context, year int, month int, expenses []expense.Expense) ([]WithSpending, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	budgets, err := s.repo.FindForPeriod(ctx, userId, year, month)
	if err != nil {
		return nil, err
	}
	result := make([]WithSpending, 0, len(budgets))
	for _, budget := range budgets {
		result = append(result, WithSpending{Budget: budget, Spent: spentOn(budget.CategoryID, expenses)})
	}
	return result, nil
}

func (s *ServiceImpl) Create(ctx context.Context, budget Budget) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.check(ctx, userId, budget, 0); err != nil {
		return Budget{}, err
	}
	id, err := s.repo.Store(ctx, userId, budget)
	if err != nil {
		return Budget{}, err
	}
	return s.repo.Get(ctx, userId, id)
}

func (s *ServiceImpl) Update(ctx context.Context, budget Budget) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.check(ctx, userId, budget, budget.ID); err != nil {
		return Budget{}, err
	}
	updated, err := s.repo.Update(ctx, userId, budget)
	if err != nil {
		return Budget{}, err
	}
	if !updated {
		log.Warnf("budget not updated, probably because it does not exist (%d) or the user (%d) is not the owner", budget.ID, userId)
		return Budget{}, ErrBudgetNotFound
	}
	return s.repo.Get(ctx, userId, budget.ID)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("budget not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
	}
	return deleted, nil
}

func (s *ServiceImpl) check(ctx context.Context, userId int, budget Budget, excludeId int) error {
	owned, err := s.categories.Exists(ctx, budget.CategoryID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrCategoryNotAllowed
	}
	duplicate, err := s.repo.Exists(ctx, userId, budget.CategoryID, budget.Year, budget.Month, excludeId)
	if err != nil {
		return err
	}
	if duplicate {
		return ErrDuplicateBudget
	}
	return nil
}

func spentOn(categoryId int, expenses []expense.Expense) decimal.Decimal {
	spent := decimal.Zero
	for _, e := range expenses {
		if e.CategoryID != nil && *e.CategoryID == categoryId {
			spent = spent.Add(e.Amount)
		}
	}
	return spent
}
