package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack/pkg/user"
	log "github.com/sirupsen/logrus"
)

var ErrDuplicateName = errors.New("category with this name already exists")

type Service interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, category Category) (Category, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id int) (bool, error)
	// Exists reports whether the category belongs to the current user. Used by
	// expense and budget validation to keep foreign categories out of forms.
	Exists(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, category Category) (Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Category{}, fmt.Errorf("failed to get current user: %w", err)
	}

	taken, err := s.repo.NameExists(ctx, userId, category.Name, 0)
	if err != nil {
		return Category{}, err
	}
	if taken {
		return Category{}, ErrDuplicateName
	}

	id, err := s.repo.Store(ctx, userId, category)
	if err != nil {
		return Category{}, err
	}
	category.ID = id
	return category, nil
}

func (s *ServiceImpl) Update(ctx context.Context, category Category) (Category, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Category{}, fmt.Errorf("failed to get current user: %w", err)
	}

	taken, err := s.repo.NameExists(ctx, userId, category.Name, category.ID)
	if err != nil {
		return Category{}, err
	}
	if taken {
		return Category{}, ErrDuplicateName
	}

	updated, err := s.repo.Update(ctx, userId, category)
	if err != nil {
		return Category{}, err
	}
	if !updated {
		log.Warnf("category not updated, probably because it does not exist (%d) or the user (%d) is not the owner", category.ID, userId)
		return Category{}, ErrCategoryNotFound
	}
	return category, nil
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
		log.Warnf("category not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
	}
	return deleted, nil
}

func (s *ServiceImpl) Exists(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	_, err = s.repo.Get(ctx, userId, id)
	if errors.Is(err, ErrCategoryNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}
