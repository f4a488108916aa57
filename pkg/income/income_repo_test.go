package income

import (
	"context"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/test_utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepoImpl_MonthFilterAndOrdering(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	userId := test_utils.SeedUser(t, db, "alice")
	repo := NewRepo(db)
	ctx := context.Background()

	store := func(title string, day time.Time) {
		t.Helper()
		_, err := repo.Store(ctx, userId, Income{
			Title:  title,
			Amount: decimal.RequireFromString("100.00"),
			Date:   day,
		})
		require.NoError(t, err)
	}
	store("end of feb", date(2024, time.February, 29))
	store("start of march", date(2024, time.March, 1))
	store("end of march", date(2024, time.March, 31))
	store("start of april", date(2024, time.April, 1))

	march, err := repo.FindByMonth(ctx, userId, 2024, 3)
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, "end of march", march[0].Title)
	assert.Equal(t, "start of march", march[1].Title)
}

func TestRepoImpl_OwnerScoping(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	alice := test_utils.SeedUser(t, db, "alice")
	bob := test_utils.SeedUser(t, db, "bob")
	repo := NewRepo(db)
	ctx := context.Background()

	id, err := repo.Store(ctx, alice, Income{
		Title:  "Salary",
		Amount: decimal.RequireFromString("2500.00"),
		Date:   date(2024, time.March, 1),
	})
	require.NoError(t, err)

	_, err = repo.Get(ctx, bob, id)
	assert.ErrorIs(t, err, ErrIncomeNotFound)

	updated, err := repo.Update(ctx, bob, Income{ID: id, Title: "Hijacked", Amount: decimal.NewFromInt(1), Date: date(2024, time.March, 1)})
	require.NoError(t, err)
	assert.False(t, updated)

	deleted, err := repo.Delete(ctx, bob, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	own, err := repo.Get(ctx, alice, id)
	require.NoError(t, err)
	assert.Equal(t, "Salary", own.Title)
	assert.Equal(t, "2500", own.Amount.String())
}

func TestRepoImpl_FindRecent(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	userId := test_utils.SeedUser(t, db, "alice")
	repo := NewRepo(db)
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		_, err := repo.Store(ctx, userId, Income{
			Title:  time.Month(day).String(),
			Amount: decimal.NewFromInt(int64(day)),
			Date:   date(2024, time.March, day),
		})
		require.NoError(t, err)
	}

	recent, err := repo.FindRecent(ctx, userId, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 5, recent[0].Date.Day())
	assert.Equal(t, 3, recent[2].Date.Day())
}
