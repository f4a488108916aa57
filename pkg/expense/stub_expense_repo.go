package expense

import (
	"context"
	"sort"
	"time"
)

type StubExpenseRepository struct {
	nextId    int
	data      map[int]map[int]Expense
	createdAt map[int]time.Time
}

func NewStubExpenseRepository() *StubExpenseRepository {
	return &StubExpenseRepository{
		data:      map[int]map[int]Expense{},
		createdAt: map[int]time.Time{},
	}
}

func (s *StubExpenseRepository) Store(ctx context.Context, userId int, expense Expense) (int, error) {
	s.nextId++
	expense.ID = s.nextId
	if expense.CreatedAt.IsZero() {
		// Monotonic creation times keep recency tie-breaks deterministic.
		expense.CreatedAt = time.Unix(int64(s.nextId), 0)
	}
	if s.data[userId] == nil {
		s.data[userId] = map[int]Expense{}
	}
	s.data[userId][expense.ID] = expense
	return expense.ID, nil
}

func (s *StubExpenseRepository) GetAll(ctx context.Context, userId int) ([]Expense, error) {
	expenses := make([]Expense, 0, len(s.data[userId]))
	for _, expense := range s.data[userId] {
		expenses = append(expenses, expense)
	}
	sortNewestFirst(expenses)
	return expenses, nil
}

func (s *StubExpenseRepository) Get(ctx context.Context, userId int, expenseId int) (Expense, error) {
	expense, ok := s.data[userId][expenseId]
	if !ok {
		return Expense{}, ErrExpenseNotFound
	}
	return expense, nil
}

func (s *StubExpenseRepository) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	existing, ok := s.data[userId][expense.ID]
	if !ok {
		return false, nil
	}
	expense.CreatedAt = existing.CreatedAt
	s.data[userId][expense.ID] = expense
	return true, nil
}

func (s *StubExpenseRepository) Delete(ctx context.Context, userId int, expenseId int) (bool, error) {
	if _, ok := s.data[userId][expenseId]; !ok {
		return false, nil
	}
	delete(s.data[userId], expenseId)
	return true, nil
}

func (s *StubExpenseRepository) FindByMonth(ctx context.Context, userId int, year int, month int) ([]Expense, error) {
	expenses := make([]Expense, 0)
	for _, expense := range s.data[userId] {
		if expense.Date.Year() == year && int(expense.Date.Month()) == month {
			expenses = append(expenses, expense)
		}
	}
	sortNewestFirst(expenses)
	return expenses, nil
}

func (s *StubExpenseRepository) FindRecent(ctx context.Context, userId int, limit int) ([]Expense, error) {
	expenses, _ := s.GetAll(ctx, userId)
	if len(expenses) > limit {
		expenses = expenses[:limit]
	}
	return expenses, nil
}

func sortNewestFirst(expenses []Expense) {
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
}
