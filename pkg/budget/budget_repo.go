package budget

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var ErrBudgetNotFound = errors.New("budget not found")

type Repo interface {
	Store(ctx context.Context, userId int, budget Budget) (int, error)
	GetAll(ctx context.Context, userId int) ([]Budget, error)
	Get(ctx context.Context, userId int, budgetId int) (Budget, error)
	Update(ctx context.Context, userId int, budget Budget) (bool, error)
	Delete(ctx context.Context, userId int, budgetId int) (bool, error)
	FindForPeriod(ctx context.Context, userId int, year int, month int) ([]Budget, error)
	Exists(ctx context.Context, userId int, categoryId int, year *int, month *int, excludeId int) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

const selectColumns = `
	SELECT b.id, b.category_id, c.name, b.year, b.month, b.limit_amount
	FROM budgets b
	JOIN categories c ON c.id = b.category_id`

func (r *RepoImpl) Store(ctx context.Context, userId int, budget Budget) (int, error) {
	query := `INSERT INTO budgets (user_id, category_id, year, month, limit_amount) VALUES (?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		userId,
		budget.CategoryID,
		intParam(budget.Year),
		intParam(budget.Month),
		budget.Limit.String(),
	)
	if err != nil {
		err := fmt.Errorf("could not store budget: %w", err)
		log.Error(err)
		return 0, err
	}
	lastInsertID, err := result.LastInsertId()
	if err != nil {
		err := fmt.Errorf("could not retrieve last insert id: %w", err)
		log.Error(err)
		return 0, err
	}
	return int(lastInsertID), nil
}

// GetAll returns the user's budgets, most recent period first, general budgets
// last, categories alphabetical within a period.
func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Budget, error) {
	query := selectColumns + `
	WHERE b.user_id = ?
	ORDER BY b.year IS NULL, b.year DESC, b.month DESC, c.name`
	return r.queryBudgets(ctx, query, userId)
}

func (r *RepoImpl) Get(ctx context.Context, userId int, budgetId int) (Budget, error) {
	query := selectColumns + ` WHERE b.id = ? AND b.user_id = ?`
	budgets, err := r.queryBudgets(ctx, query, budgetId, userId)
	if err != nil {
		return Budget{}, err
	}
	if len(budgets) == 0 {
		return Budget{}, ErrBudgetNotFound
	}
	return budgets[0], nil
}

func (r *RepoImpl) Update(ctx context.Context, userId int, budget Budget) (bool, error) {
	query := `UPDATE budgets SET category_id = ?, year = ?, month = ?, limit_amount = ? WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		budget.CategoryID,
		intParam(budget.Year),
		intParam(budget.Month),
		budget.Limit.String(),
		budget.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update budget: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, budgetId int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ? AND user_id = ?`, budgetId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete budget: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

// FindForPeriod returns the budgets that apply to a calendar month: those scoped
// to exactly that month plus all general ones.
func (r *RepoImpl) FindForPeriod(ctx context.Context, userId int, year int, month int) ([]Budget, error) {
	query := selectColumns + `
	WHERE b.user_id = ? AND ((b.year = ? AND b.month = ?) OR (b.year IS NULL AND b.month IS NULL))
	ORDER BY c.name`
	return r.queryBudgets(ctx, query, userId, year, month)
}

func (r *RepoImpl) Exists(ctx context.Context, userId int, categoryId int, year *int, month *int, excludeId int) (bool, error) {
	query := `SELECT COUNT(*) FROM budgets
	WHERE user_id = ? AND category_id = ? AND COALESCE(year, 0) = COALESCE(?, 0) AND COALESCE(month, 0) = COALESCE(?, 0) AND id != ?`
	var count int
	err := r.db.QueryRowContext(ctx, query, userId, categoryId, intParam(year), intParam(month), excludeId).Scan(&count)
	if err != nil {
		err := fmt.Errorf("could not check budget existence: %w", err)
		log.Error(err)
		return false, err
	}
	return count > 0, nil
}

func (r *RepoImpl) queryBudgets(ctx context.Context, query string, args ...any) ([]Budget, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query budgets: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	budgets := make([]Budget, 0)
	for rows.Next() {
		var budget Budget
		var year, month sql.NullInt64
		var limit string
		if err := rows.Scan(&budget.ID, &budget.CategoryID, &budget.CategoryName, &year, &month, &limit); err != nil {
			err := fmt.Errorf("could not scan budget: %w", err)
			log.Error(err)
			return nil, err
		}
		if year.Valid {
			value := int(year.Int64)
			budget.Year = &value
		}
		if month.Valid {
			value := int(month.Int64)
			budget.Month = &value
		}
		parsedLimit, err := decimal.NewFromString(limit)
		if err != nil {
			err := fmt.Errorf("could not parse stored limit %q: %w", limit, err)
			log.Error(err)
			return nil, err
		}
		budget.Limit = parsedLimit
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return budgets, nil
}

func intParam(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
