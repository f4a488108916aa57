package expense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack/internal/utils"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var ErrExpenseNotFound = errors.New("expense not found")

type Repo interface {
	Store(ctx context.Context, userId int, expense Expense) (int, error)
	GetAll(ctx context.Context, userId int) ([]Expense, error)
	Get(ctx context.Context, userId int, expenseId int) (Expense, error)
	Update(ctx context.Context, userId int, expense Expense) (bool, error)
	Delete(ctx context.Context, userId int, expenseId int) (bool, error)
	// FindByMonth returns the owner's expenses dated within the calendar month.
	FindByMonth(ctx context.Context, userId int, year int, month int) ([]Expense, error)
	// FindRecent returns the owner's most recently dated expenses, newest first,
	// created_at as tie-break.
	FindRecent(ctx context.Context, userId int, limit int) ([]Expense, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

const selectColumns = `SELECT e.id, e.title, e.amount, e.date, e.category_id, c.name, e.notes, e.created_at
		FROM expenses e LEFT JOIN categories c ON c.id = e.category_id`

func (r *RepoImpl) Store(ctx context.Context, userId int, expense Expense) (int, error) {
	query := `INSERT INTO expenses (user_id, title, amount, date, category_id, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		userId,
		expense.Title,
		expense.Amount.String(),
		expense.Date.Format(utils.DateFormat),
		categoryParam(expense.CategoryID),
		expense.Notes,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		err := fmt.Errorf("could not store expense: %w", err)
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

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Expense, error) {
	query := selectColumns + ` WHERE e.user_id = ? ORDER BY e.date DESC, e.created_at DESC`
	return r.queryExpenses(ctx, query, userId)
}

func (r *RepoImpl) Get(ctx context.Context, userId int, expenseId int) (Expense, error) {
	query := selectColumns + ` WHERE e.id = ? AND e.user_id = ?`
	expenses, err := r.queryExpenses(ctx, query, expenseId, userId)
	if err != nil {
		return Expense{}, err
	}
	if len(expenses) == 0 {
		return Expense{}, ErrExpenseNotFound
	}
	return expenses[0], nil
}

func (r *RepoImpl) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	query := `UPDATE expenses SET title = ?, amount = ?, date = ?, category_id = ?, notes = ?
		WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		expense.Title,
		expense.Amount.String(),
		expense.Date.Format(utils.DateFormat),
		categoryParam(expense.CategoryID),
		expense.Notes,
		expense.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update expense: %w", err)
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

func (r *RepoImpl) Delete(ctx context.Context, userId int, expenseId int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ? AND user_id = ?`, expenseId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete expense: %w", err)
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

func (r *RepoImpl) FindByMonth(ctx context.Context, userId int, year int, month int) ([]Expense, error) {
	from, to := utils.MonthRange(year, month)
	query := selectColumns + ` WHERE e.user_id = ? AND e.date >= ? AND e.date < ?
		ORDER BY e.date DESC, e.created_at DESC`
	return r.queryExpenses(ctx, query, userId, from, to)
}

func (r *RepoImpl) FindRecent(ctx context.Context, userId int, limit int) ([]Expense, error) {
	query := selectColumns + ` WHERE e.user_id = ? ORDER BY e.date DESC, e.created_at DESC LIMIT ?`
	return r.queryExpenses(ctx, query, userId, limit)
}

func (r *RepoImpl) queryExpenses(ctx context.Context, query string, args ...any) ([]Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query expenses: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	expenses := make([]Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return expenses, nil
}

func scanExpense(rows *sql.Rows) (Expense, error) {
	var expense Expense
	var amount, date, createdAt string
	var categoryId sql.NullInt64
	var categoryName sql.NullString
	if err := rows.Scan(&expense.ID, &expense.Title, &amount, &date, &categoryId, &categoryName, &expense.Notes, &createdAt); err != nil {
		return Expense{}, fmt.Errorf("could not scan expense: %w", err)
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return Expense{}, fmt.Errorf("could not parse stored amount %q: %w", amount, err)
	}
	expense.Amount = parsedAmount

	parsedDate, err := time.Parse(utils.DateFormat, date)
	if err != nil {
		return Expense{}, fmt.Errorf("could not parse stored date %q: %w", date, err)
	}
	expense.Date = parsedDate

	if categoryId.Valid {
		id := int(categoryId.Int64)
		expense.CategoryID = &id
	}
	if categoryName.Valid {
		expense.CategoryName = categoryName.String
	}

	parsedCreatedAt, err := utils.ParseStoredTime(createdAt)
	if err != nil {
		return Expense{}, fmt.Errorf("could not parse stored created_at %q: %w", createdAt, err)
	}
	expense.CreatedAt = parsedCreatedAt

	return expense, nil
}

func categoryParam(categoryId *int) any {
	if categoryId == nil {
		return nil
	}
	return *categoryId
}
