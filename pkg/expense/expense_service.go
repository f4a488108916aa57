package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/pkg/category"
	"github.com/fintrack/fintrack/pkg/user"
	log "github.com/sirupsen/logrus"
)

// ErrCategoryNotAllowed is returned when an expense references a category the
// current user does not own. Foreign ids are not distinguishable from missing ones.
var ErrCategoryNotAllowed = errors.New("category does not exist or is not owned by the user")

type Service interface {
	List(ctx context.Context) ([]Expense, error)
	Create(ctx context.Context, expense Expense) (Expense, error)
	Update(ctx context.Context, expense Expense) (Expense, error)
	Delete(ctx context.Context, id int) (bool, error)
	FindByMonth(ctx context.Context, year int, month int) ([]Expense, error)
	FindRecent(ctx context.Context, limit int) ([]Expense, error)
}

type ServiceImpl struct {
	repo       Repo
	categories category.Service
}

func NewService(repo Repo, categories category.Service) *ServiceImpl {
	return &ServiceImpl{repo: repo, categories: categories}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, expense Expense) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.checkCategory(ctx, expense.CategoryID); err != nil {
		return Expense{}, err
	}

	id, err := s.repo.Store(ctx, userId, expense)
	if err != nil {
		return Expense{}, err
	}
	return s.repo.Get(ctx, userId, id)
}

func (s *ServiceImpl) Update(ctx context.Context, expense Expense) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := s.checkCategory(ctx, expense.CategoryID); err != nil {
		return Expense{}, err
	}

	updated, err := s.repo.Update(ctx, userId, expense)
	if err != nil {
		return Expense{}, err
	}
	if !updated {
		log.Warnf("expense not updated, probably because it does not exist (%d) or the user (%d) is not the owner", expense.ID, userId)
		return Expense{}, ErrExpenseNotFound
	}
	return s.repo.Get(ctx, userId, expense.ID)
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
	}
	return deleted, nil
}

func (s *ServiceImpl) FindByMonth(ctx context.Context, year int, month int) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindByMonth(ctx, userId, year, month)
}

func (s *ServiceImpl) FindRecent(ctx context.Context, limit int) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindRecent(ctx, userId, limit)
}

func (s *ServiceImpl) checkCategory(ctx context.Context, categoryId *int) error {
	if categoryId == nil {
		return nil
	}
	owned, err := s.categories.Exists(ctx, *categoryId)
	if err != nil {
		return err
	}
	if !owned {
		return ErrCategoryNotAllowed
	}
	return nil
}
