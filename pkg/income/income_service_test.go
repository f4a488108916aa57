package income

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack/pkg/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (*ServiceImpl, context.Context, context.Context) {
	t.Helper()
	service := NewService(NewStubIncomeRepository())
	userA := user.WithUser(context.Background(), user.User{Id: 1, Username: "user-a"})
	userB := user.WithUser(context.Background(), user.User{Id: 2, Username: "user-b"})
	return service, userA, userB
}

func newIncome(title string, amount string, date time.Time) Income {
	return Income{Title: title, Amount: decimal.RequireFromString(amount), Date: date}
}

func TestServiceImpl_Update_NotOwned(t *testing.T) {
	service, userA, userB := setupService(t)
	created, err := service.Create(userA, newIncome("Salary", "2500.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	created.Title = "Hijacked"
	_, err = service.Update(userB, created)
	assert.ErrorIs(t, err, ErrIncomeNotFound)
}

func TestServiceImpl_Delete_NotOwned(t *testing.T) {
	service, userA, userB := setupService(t)
	created, err := service.Create(userA, newIncome("Salary", "2500.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	deleted, err := service.Delete(userB, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	kept, err := service.List(userA)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}

func TestServiceImpl_FindByMonth(t *testing.T) {
	service, userA, _ := setupService(t)
	_, err := service.Create(userA, newIncome("March salary", "2500.00", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = service.Create(userA, newIncome("April salary", "2500.00", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	march, err := service.FindByMonth(userA, 2024, 3)
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "March salary", march[0].Title)
}
