package income

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	List(ctx context.Context) ([]Income, error)
	Create(ctx context.Context, income Income) (Income, error)
	Update(ctx context.Context, income Income) (Income, error)
	Delete(ctx context.Context, id int) (bool, error)
	FindByMonth(ctx context.Context, year int, month int) ([]Income, error)
	FindRecent(ctx context.Context, limit int) ([]Income, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Income, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) Create(ctx context.Context, income Income) (Income, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Income{}, fmt.Errorf("failed to get current user: %w", err)
	}
	id, err := s.repo.Store(ctx, userId, income)
	if err != nil {
		return Income{}, err
	}
	return s.repo.Get(ctx, userId, id)
}

func (s *ServiceImpl) Update(ctx context.Context, income Income) (Income, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Income{}, fmt.Errorf("failed to get current user: %w", err)
	}
	updated, err := s.repo.Update(ctx, userId, income)
	if err != nil {
		return Income{}, err
	}
	if !updated {
		log.Warnf("income not updated, probably because it does not exist (%d) or the user (%d) is not the owner", income.ID, userId)
		return Income{}, ErrIncomeNotFound
	}
	return s.repo.Get(ctx, userId, income.ID)
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
		log.Warnf("income not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
	}
	return deleted, nil
}

func (s *ServiceImpl) FindByMonth(ctx context.Context, year int, month int) ([]Income, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindByMonth(ctx, userId, year, month)
}

func (s *ServiceImpl) FindRecent(ctx context.Context, limit int) ([]Income, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.FindRecent(ctx, userId, limit)
}
