package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

// NewCategoryService constructs a [CategoryService].
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{categoryRepository: categoryRepository, logger: logger}
}

func (c *categoryService) Create(ctx context.Context, principal models.Principal, name string, color string) (models.Category, error) {
	if name == "" {
		return models.Category{}, ErrInvalidDataProvided
	}

	return c.categoryRepository.Save(ctx, models.Category{
		UserID: principal.UserID,
		Name:   name,
		Color:  color,
	})
}

func (c *categoryService) List(ctx context.Context, principal models.Principal) ([]models.Category, error) {
	return c.categoryRepository.GetAll(ctx, principal.UserID)
}

// Delete removes the category only. Credentials that referenced it keep
// their category string untouched.
func (c *categoryService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	return c.categoryRepository.Delete(ctx, id, principal.UserID)
}
