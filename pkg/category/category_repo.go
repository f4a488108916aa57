package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrCategoryNotFound = errors.New("category not found")

type Repo interface {
	Store(ctx context.Context, userId int, category Category) (int, error)
	GetAll(ctx context.Context, userId int) ([]Category, error)
	Get(ctx context.Context, userId int, categoryId int) (Category, error)
	Update(ctx context.Context, userId int, category Category) (bool, error)
	Delete(ctx context.Context, userId int, categoryId int) (bool, error)
	NameExists(ctx context.Context, userId int, name string, excludeId int) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Store(ctx context.Context, userId int, category Category) (int, error) {
	query := `INSERT INTO categories (user_id, name) VALUES (?, ?)`
	result, err := r.db.ExecContext(ctx, query, userId, category.Name)
	if err != nil {
		err := fmt.Errorf("could not store category: %w", err)
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

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Category, error) {
	query := `SELECT id, name FROM categories WHERE user_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, userId)
	if err != nil {
		err := fmt.Errorf("could not query categories: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var category Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			err := fmt.Errorf("could not scan category: %w", err)
			log.Error(err)
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}
	return categories, nil
}

func (r *RepoImpl) Get(ctx context.Context, userId int, categoryId int) (Category, error) {
	query := `SELECT id, name FROM categories WHERE id = ? AND user_id = ?`
	var category Category
	err := r.db.QueryRowContext(ctx, query, categoryId, userId).Scan(&category.ID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, ErrCategoryNotFound
	} else if err != nil {
		err := fmt.Errorf("could not get category: %w", err)
		log.Error(err)
		return Category{}, err
	}
	return category, nil
}

func (r *RepoImpl) Update(ctx context.Context, userId int, category Category) (bool, error) {
	query := `UPDATE categories SET name = ? WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, category.Name, category.ID, userId)
	if err != nil {
		err := fmt.Errorf("could not update category: %w", err)
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

// Delete removes a category. Referencing expenses keep their rows with the
// category reference nulled; referencing budgets go with the category.
func (r *RepoImpl) Delete(ctx context.Context, userId int, categoryId int) (bool, error) {
	query := `DELETE FROM categories WHERE id = ? AND user_id = ?`
	result, err := r.db.ExecContext(ctx, query, categoryId, userId)
	if err != nil {
		err := fmt.Errorf("could not delete category: %w", err)
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

func (r *RepoImpl) NameExists(ctx context.Context, userId int, name string, excludeId int) (bool, error) {
	query := `SELECT COUNT(*) FROM categories WHERE user_id = ? AND name = ? AND id != ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, userId, name, excludeId).Scan(&count); err != nil {
		err := fmt.Errorf("could not check category name: %w", err)
		log.Error(err)
		return false, err
	}
	return count > 0, nil
}
