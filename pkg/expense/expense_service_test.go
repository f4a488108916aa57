package expense

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack/pkg/category"
	"github.com/fintrack/fintrack/pkg/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*ServiceImpl, category.Service, context.Context, context.Context) {
	t.Helper()
	categories := category.NewService(category.NewStubCategoryRepository())
	service := NewService(NewStubExpenseRepository(), categories)
	userA := user.WithUser(context.Background(), user.User{Id: 1, Username: "user-a"})
	userB := user.WithUser(context.Background(), user.User{Id: 2, Username: "user-b"})
	return service, categories, userA, userB
}

func newExpense(title string, amount string, date time.Time) Expense {
	return Expense{Title: title, Amount: decimal.RequireFromString(amount), Date: date}
}

func TestServiceImpl_Create_RejectsForeignCategory(t *testing.T) {
	service, categories, userA, userB := setupService(t)
	foreign, err := categories.Create(userB, category.Category{Name: "Food"})
	require.NoError(t, err)

	expense := newExpense("Lunch", "12.50", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	expense.CategoryID = &foreign.ID

	_, err = service.Create(userA, expense)
	assert.ErrorIs(t, err, ErrCategoryNotAllowed)
}

func TestServiceImpl_Create_AcceptsOwnCategory(t *testing.T) {
	service, categories, userA, _ := setupService(t)
	owned, err := categories.Create(userA, category.Category{Name: "Food"})
	require.NoError(t, err)

	expense := newExpense("Lunch", "12.50", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	expense.CategoryID = &owned.ID

	created, err := service.Create(userA, expense)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestServiceImpl_Update_NotOwned(t *testing.T) {
	service, _, userA, userB := setupService(t)
	created, err := service.Create(userA, newExpense("Lunch", "12.50", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	created.Title = "Hijacked"
	_, err = service.Update(userB, created)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}

func TestServiceImpl_FindByMonth(t *testing.T) {
	service, _, userA, _ := setupService(t)
	_, err := service.Create(userA, newExpense("In March", "10.00", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = service.Create(userA, newExpense("In April", "20.00", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	march, err := service.FindByMonth(userA, 2024, 3)
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "In March", march[0].Title)
}
