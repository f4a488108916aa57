package income

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

var ErrIncomeNotFound = errors.New("income not found")

type Repo interface {
	Store(ctx context.Context, userId int, income Income) (int, error)
	GetAll(ctx context.Context, userId int) ([]Income, error)
	Get(ctx context.Context, userId int, incomeId int) (Income, error)
	Update(ctx context.Context, userId int, income Income) (bool, error)
	Delete(ctx context.Context, userId int, incomeId int) (bool, error)
	FindByMonth(ctx context.Context, userId int, year int, month int) ([]Income, error)
	FindRecent(ctx context.Context, userId int, limit int) ([]Income, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

const selectColumns = `SELECT id, title, amount, date, notes, created_at FROM incomes`

func (r *RepoImpl) Store(ctx context.Context, userId int, income Income) (int, error) {
	query := `INSERT INTO incomes (user_id, title, amount, date, notes, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query,
		userId,
		income.Title,
		income.Amount.String(),
		income.Date.Format(utils.DateFormat),
		income.Notes,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		err := fmt.Errorf("could not store income: %w", err)
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

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Income, error) {
	query := selectColumns + ` WHERE user_id = ? ORDER BY date DESC, created_at DESC`
	return r.queryIncomes(ctx, query, userId)
}

func (r *RepoImpl) Get(ctx context.Context, userId int, incomeId int) (Income, error) {
	query := selectColumns + ` WHERE id = ? AND user_id = ?`
	incomes, err := r.queryIncomes(ctx, query, incomeId, userId)
	if err != nil {
		return Income{}, err
	}
	if len(incomes) == 0 {
		return Income{}, ErrIncomeNotFound
	}
	return incomes[0], nil
}

func (r *RepoImpl) Update(ctx context.Context, userId int, income Income) (bool, error) {
	query := `UPDATE incomes SET title = ?, amount = ?, date = ?, notes = ? WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query,
		income.Title,
		income.Amount.String(),
		income.Date.Format(utils.DateFormat),
		income.Notes,
		income.ID,
		userId,
	)
	if err != nil {
		err := fmt.Errorf("could not update income: %w", err)
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

func (r *RepoImpl) Delete(ctx context.Context, userId int, incomeId int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = ? AND user_id = ?`, incomeId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete income: %w", err)
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

func (r *RepoImpl) FindByMonth(ctx context.Context, userId int, year int, month int) ([]Income, error) {
	from, to := utils.MonthRange(year, month)
	query := selectColumns + ` WHERE user_id = ? AND date >= ? AND date < ? ORDER BY date DESC, created_at DESC`
	return r.queryIncomes(ctx, query, userId, from, to)
}

func (r *RepoImpl) FindRecent(ctx context.Context, userId int, limit int) ([]Income, error) {
	query := selectColumns + ` WHERE user_id = ? ORDER BY date DESC, created_at DESC LIMIT ?`
	return r.queryIncomes(ctx, query, userId, limit)
}

func (r *RepoImpl) queryIncomes(ctx context.Context, query string, args ...any) ([]Income, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query incomes: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	incomes := make([]Income, 0)
	for rows.Next() {
		var income Income
		var amount, date, createdAt string
		if err := rows.Scan(&income.ID, &income.Title, &amount, &date, &income.Notes, &createdAt); err != nil {
			err := fmt.Errorf("could not scan income: %w", err)
			log.Error(err)
			return nil, err
		}
		parsedAmount, err := decimal.NewFromString(amount)
		if err != nil {
			err := fmt.Errorf("could not parse stored amount %q: %w", amount, err)
			log.Error(err)
			return nil, err
		}
		income.Amount = parsedAmount
		parsedDate, err := time.Parse(utils.DateFormat, date)
		if err != nil {
			err := fmt.Errorf("could not parse stored date %q: %w", date, err)
			log.Error(err)
			return nil, err
		}
		income.Date = parsedDate
		parsedCreatedAt, err := utils.ParseStoredTime(createdAt)
		if err != nil {
			err := fmt.Errorf("could not parse stored created_at %q: %w", createdAt, err)
			log.Error(err)
			return nil, err
		}
		income.CreatedAt = parsedCreatedAt
		incomes = append(incomes, income)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return incomes, nil
}
