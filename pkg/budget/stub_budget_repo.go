package budget

import (
	"context"
	"sort"
)

type StubBudgetRepository struct {
	nextId int
	data   map[int]map[int]Budget
}

func NewStubBudgetRepository() *StubBudgetRepository {
	return &StubBudgetRepository{data: map[int]map[int]Budget{}}
}

func (s *StubBudgetRepository) Store(ctx context.Context, userId int, budget Budget) (int, error) {
	s.nextId++
	budget.ID = s.nextId
	if s.data[userId] == nil {
		s.data[userId] = map[int]Budget{}
	}
	s.data[userId][budget.ID] = budget
	return budget.ID, nil
}

func (s *StubBudgetRepository) GetAll(ctx context.Context, userId int) ([]Budget, error) {
	budgets := make([]Budget, 0, len(s.data[userId]))
	for _, budget := range s.data[userId] {
		budgets = append(budgets, budget)
	}
	sort.Slice(budgets, func(i, j int) bool {
		a, b := budgets[i], budgets[j]
		if a.IsGeneral() != b.IsGeneral() {
			return !a.IsGeneral()
		}
		if !a.IsGeneral() {
			if *a.Year != *b.Year {
				return *a.Year > *b.Year
			}
			if *a.Month != *b.Month {
				return *a.Month > *b.Month
			}
		}
		return a.CategoryName < b.CategoryName
	})
	return budgets, nil
}

func (s *StubBudgetRepository) Get(ctx context.Context, userId int, budgetId int) (Budget, error) {
	budget, ok := s.data[userId][budgetId]
	if !ok {
		return Budget{}, ErrBudgetNotFound
	}
	return budget, nil
}

func (s *StubBudgetRepository) Update(ctx context.Context, userId int, budget Budget) (bool, error) {
	if _, ok := s.data[userId][budget.ID]; !ok {
		return false, nil
	}
	s.data[userId][budget.ID] = budget
	return true, nil
}

func (s *StubBudgetRepository) Delete(ctx context.Context, userId int, budgetId int) (bool, error) {
	if _, ok := s.data[userId][budgetId]; !ok {
		return false, nil
	}
	delete(s.data[userId], budgetId)
	return true, nil
}

func (s *StubBudgetRepository) FindForPeriod(ctx context.Context, userId int, year int, month int) ([]Budget, error) {
	budgets := make([]Budget, 0)
	for _, budget := range s.data[userId] {
		if budget.IsGeneral() || (*budget.Year == year && *budget.Month == month) {
			budgets = append(budgets, budget)
		}
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].CategoryName < budgets[j].CategoryName
	})
	return budgets, nil
}

func (s *StubBudgetRepository) Exists(ctx context.Context, userId int, categoryId int, year *int, month *int, excludeId int) (bool, error) {
	same := func(a, b *int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return *a == *b
	}
	for _, budget := range s.data[userId] {
		if budget.ID == excludeId {
			continue
		}
		if budget.CategoryID == categoryId && same(budget.Year, year) && same(budget.Month, month) {
			return true, nil
		}
	}
	return false, nil
}
