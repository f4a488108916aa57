package category

import (
	"context"
	"sort"
)

type StubCategoryRepository struct {
	nextId int
	// data is keyed by owner id, matching how the real store scopes every query.
	data map[int]map[int]Category
}

func NewStubCategoryRepository() *StubCategoryRepository {
	return &StubCategoryRepository{data: map[int]map[int]Category{}}
}

func (s *StubCategoryRepository) Store(ctx context.Context, userId int, category Category) (int, error) {
	s.nextId++
	category.ID = s.nextId
	if s.data[userId] == nil {
		s.data[userId] = map[int]Category{}
	}
	s.data[userId][category.ID] = category
	return category.ID, nil
}

func (s *StubCategoryRepository) GetAll(ctx context.Context, userId int) ([]Category, error) {
	categories := make([]Category, 0, len(s.data[userId]))
	for _, category := range s.data[userId] {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (s *StubCategoryRepository) Get(ctx context.Context, userId int, categoryId int) (Category, error) {
	category, ok := s.data[userId][categoryId]
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return category, nil
}

func (s *StubCategoryRepository) Update(ctx context.Context, userId int, category Category) (bool, error) {
	if _, ok := s.data[userId][category.ID]; !ok {
		return false, nil
	}
	s.data[userId][category.ID] = category
	return true, nil
}

func (s *StubCategoryRepository) Delete(ctx context.Context, userId int, categoryId int) (bool, error) {
	if _, ok := s.data[userId][categoryId]; !ok {
		return false, nil
	}
	delete(s.data[userId], categoryId)
	return true, nil
}

func (s *StubCategoryRepository) NameExists(ctx context.Context, userId int, name string, excludeId int) (bool, error) {
	for _, category := range s.data[userId] {
		if category.Name == name && category.ID != excludeId {
			return true, nil
		}
	}
	return false, nil
}
