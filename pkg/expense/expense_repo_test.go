package expense

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

func TestRepoImpl_FindByMonth_CalendarBoundaries(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx := context.Background()
	repo := NewRepo(db)
	userId := test_utils.SeedUser(t, db, "owner")

	for _, e := range []Expense{
		{Title: "last of Feb", Amount: decimal.RequireFromString("1.00"), Date: date(2024, time.February, 29)},
		{Title: "first of Mar", Amount: decimal.RequireFromString("2.00"), Date: date(2024, time.March, 1)},
		{Title: "last of Mar", Amount: decimal.RequireFromString("3.00"), Date: date(2024, time.March, 31)},
		{Title: "first of Apr", Amount: decimal.RequireFromString("4.00"), Date: date(2024, time.April, 1)},
	} {
		_, err := repo.Store(ctx, userId, e)
		require.NoError(t, err)
	}

	march, err := repo.FindByMonth(ctx, userId, 2024, 3)
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, "last of Mar", march[0].Title)
	assert.Equal(t, "first of Mar", march[1].Title)
}

func TestRepoImpl_FindByMonth_ScopedToOwner(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx := context.Background()
	repo := NewRepo(db)
	ownerA := test_utils.SeedUser(t, db, "owner-a")
	ownerB := test_utils.SeedUser(t, db, "owner-b")

	_, err := repo.Store(ctx, ownerA, Expense{Title: "mine", Amount: decimal.RequireFromString("1.00"), Date: date(2024, time.March, 5)})
	require.NoError(t, err)
	_, err = repo.Store(ctx, ownerB, Expense{Title: "theirs", Amount: decimal.RequireFromString("2.00"), Date: date(2024, time.March, 5)})
	require.NoError(t, err)

	forA, err := repo.FindByMonth(ctx, ownerA, 2024, 3)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, "mine", forA[0].Title)
}

func TestRepoImpl_FindRecent_OrderAndLimit(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx := context.Background()
	repo := NewRepo(db)
	userId := test_utils.SeedUser(t, db, "owner")

	_, err := repo.Store(ctx, userId, Expense{Title: "older", Amount: decimal.RequireFromString("1.00"), Date: date(2024, time.March, 1)})
	require.NoError(t, err)
	_, err = repo.Store(ctx, userId, Expense{Title: "newer", Amount: decimal.RequireFromString("2.00"), Date: date(2024, time.March, 20)})
	require.NoError(t, err)
	_, err = repo.Store(ctx, userId, Expense{Title: "middle", Amount: decimal.RequireFromString("3.00"), Date: date(2024, time.March, 10)})
	require.NoError(t, err)

	recent, err := repo.FindRecent(ctx, userId, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "newer", recent[0].Title)
	assert.Equal(t, "middle", recent[1].Title)
}

func TestRepoImpl_Get_JoinsCategoryName(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	ctx := context.Background()
	repo := NewRepo(db)
	userId := test_utils.SeedUser(t, db, "owner")

	result, err := db.Exec(`INSERT INTO categories (user_id, name) VALUES (?, ?)`, userId, "Food")
	require.NoError(t, err)
	rawCategoryId, err := result.LastInsertId()
	require.NoError(t, err)
	categoryId := int(rawCategoryId)

	id, err := repo.Store(ctx, userId, Expense{
		Title:      "Lunch",
		Amount:     decimal.RequireFromString("12.50"),
		Date:       date(2024, time.March, 5),
		CategoryID: &categoryId,
	})
	require.NoError(t, err)

	stored, err := repo.Get(ctx, userId, id)
	require.NoError(t, err)
	assert.Equal(t, "Food", stored.CategoryName)
	assert.Equal(t, "12.5", stored.Amount.String())
}
