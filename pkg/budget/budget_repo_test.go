package budget

import (
	"context"
	"testing"

	"github.com/fintrack/fintrack/internal/test_utils"
	"github.com/fintrack/fintrack/pkg/category"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoImpl_FindForPeriod(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	userId := test_utils.SeedUser(t, db, "alice")
	repo := NewRepo(db)
	ctx := context.Background()

	foodId, err := category.NewRepo(db).Store(ctx, userId, category.Category{Name: "Food"})
	require.NoError(t, err)
	rentId, err := category.NewRepo(db).Store(ctx, userId, category.Category{Name: "Rent"})
	require.NoError(t, err)

	limit := decimal.RequireFromString("100.00")
	_, err = repo.Store(ctx, userId, Budget{CategoryID: foodId, Year: intPtr(2024), Month: intPtr(3), Limit: limit})
	require.NoError(t, err)
	_, err = repo.Store(ctx, userId, Budget{CategoryID: foodId, Year: intPtr(2024), Month: intPtr(4), Limit: limit})
	require.NoError(t, err)
	_, err = repo.Store(ctx, userId, Budget{CategoryID: rentId, Limit: limit})
	require.NoError(t, err)

	march, err := repo.FindForPeriod(ctx, userId, 2024, 3)
	require.NoError(t, err)
	require.Len(t, march, 2)
	assert.Equal(t, "Food", march[0].CategoryName)
	assert.Equal(t, "Rent", march[1].CategoryName)
	assert.True(t, march[1].IsGeneral())
}

func TestRepoImpl_UniqueIndexCoversGeneralBudgets(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	userId := test_utils.SeedUser(t, db, "alice")
	repo := NewRepo(db)
	ctx := context.Background()

	foodId, err := category.NewRepo(db).Store(ctx, userId, category.Category{Name: "Food"})
	require.NoError(t, err)

	general := Budget{CategoryID: foodId, Limit: decimal.RequireFromString("100.00")}
	_, err = repo.Store(ctx, userId, general)
	require.NoError(t, err)

	_, err = repo.Store(ctx, userId, general)
	assert.Error(t, err)

	exists, err := repo.Exists(ctx, userId, foodId, nil, nil, 0)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepoImpl_GetAllOrdering(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	userId := test_utils.SeedUser(t, db, "alice")
	repo := NewRepo(db)
	ctx := context.Background()

	foodId, err := category.NewRepo(db).Store(ctx, userId, category.Category{Name: "Food"})
	require.NoError(t, err)

	limit := decimal.RequireFromString("100.00")
	_, err = repo.Store(ctx, userId, Budget{CategoryID: foodId, Limit: limit})
	require.NoError(t, err)
	_, err = repo.Store(ctx, userId, Budget{CategoryID: foodId, Year: intPtr(2024), Month: intPtr(3), Limit: limit})
	require.NoError(t, err)
	_, err = repo.Store(ctx, userId, Budget{CategoryID: foodId, Year: intPtr(2024), Month: intPtr(5), Limit: limit})
	require.NoError(t, err)

	budgets, err := repo.GetAll(ctx, userId)
	require.NoError(t, err)
	require.Len(t, budgets, 3)
	assert.Equal(t, 5, *budgets[0].Month)
	assert.Equal(t, 3, *budgets[1].Month)
	assert.True(t, budgets[2].IsGeneral())
}
