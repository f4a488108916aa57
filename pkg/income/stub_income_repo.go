package income

import (
	"context"
	"sort"
	"time"
)

type StubIncomeRepository struct {
	nextId int
	data   map[int]map[int]Income
}

func NewStubIncomeRepository() *StubIncomeRepository {
	return &StubIncomeRepository{data: map[int]map[int]Income{}}
}

func (s *StubIncomeRepository) Store(ctx context.Context, userId int, income Income) (int, error) {
	s.nextId++
	income.ID = s.nextId
	if income.CreatedAt.IsZero() {
		income.CreatedAt = time.Unix(int64(s.nextId), 0)
	}
	if s.data[userId] == nil {
		s.data[userId] = map[int]Income{}
	}
	s.data[userId][income.ID] = income
	return income.ID, nil
}

func (s *StubIncomeRepository) GetAll(ctx context.Context, userId int) ([]Income, error) {
	incomes := make([]Income, 0, len(s.data[userId]))
	for _, income := range s.data[userId] {
		incomes = append(incomes, income)
	}
	sortNewestFirst(incomes)
	return incomes, nil
}

func (s *StubIncomeRepository) Get(ctx context.Context, userId int, incomeId int) (Income, error) {
	income, ok := s.data[userId][incomeId]
	if !ok {
		return Income{}, ErrIncomeNotFound
	}
	return income, nil
}

func (s *StubIncomeRepository) Update(ctx context.Context, userId int, income Income) (bool, error) {
	existing, ok := s.data[userId][income.ID]
	if !ok {
		return false, nil
	}
	income.CreatedAt = existing.CreatedAt
	s.data[userId][income.ID] = income
	return true, nil
}

func (s *StubIncomeRepository) Delete(ctx context.Context, userId int, incomeId int) (bool, error) {
	if _, ok := s.data[userId][incomeId]; !ok {
		return false, nil
	}
	delete(s.data[userId], incomeId)
	return true, nil
}

func (s *StubIncomeRepository) FindByMonth(ctx context.Context, userId int, year int, month int) ([]Income, error) {
	incomes := make([]Income, 0)
	for _, income := range s.data[userId] {
		if income.Date.Year() == year && int(income.Date.Month()) == month {
			incomes = append(incomes, income)
		}
	}
	sortNewestFirst(incomes)
	return incomes, nil
}

func (s *StubIncomeRepository) FindRecent(ctx context.Context, userId int, limit int) ([]Income, error) {
	incomes, _ := s.GetAll(ctx, userId)
	if len(incomes) > limit {
		incomes = incomes[:limit]
	}
	return incomes, nil
}

func sortNewestFirst(incomes []Income) {
	sort.Slice(incomes, func(i, j int) bool {
		if !incomes[i].Date.Equal(incomes[j].Date) {
			return incomes[i].Date.After(incomes[j].Date)
		}
		return incomes[i].CreatedAt.After(incomes[j].CreatedAt)
	})
}
