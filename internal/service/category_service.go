package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"task-manager/internal/model"
	"task-manager/internal/repository"
)

// SeedResult summarizes a seeding run.
type SeedResult struct {
	Created []string
	Skipped []string
	// Total is the number of categories in the database after the run.
	Total int64
}

// Processed is the number of names the run looked at.
func (r SeedResult) Processed() int {
	return len(r.Created) + len(r.Skipped)
}

// CategoryService provides helpers around categories.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, storeFailure("Failed to retrieve categories", err)
	}
	return categories, nil
}

// Seed inserts each name that does not exist yet. Existing names, including
// ones that appear concurrently, are skipped.
func (s *CategoryService) Seed(ctx context.Context, names []string) (SeedResult, error) {
	var result SeedResult
	for _, name := range names {
		_, created, err := s.repo.GetOrCreate(ctx, name)
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			result.Skipped = append(result.Skipped, name)
		case err != nil:
			return result, err
		case created:
			result.Created = append(result.Created, name)
		default:
			result.Skipped = append(result.Skipped, name)
		}
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return result, err
	}
	result.Total = total
	return result, nil
}

// SeedDefaults seeds model.DefaultCategoryNames.
func (s *CategoryService) SeedDefaults(ctx context.Context) (SeedResult, error) {
	return s.Seed(ctx, model.DefaultCategoryNames)
}
