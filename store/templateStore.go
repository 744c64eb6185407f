package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/webirent/webirent-api/errs"
	"github.com/webirent/webirent-api/models"
	"gorm.io/gorm"
)

type TemplateStore interface {
	Create(ctx context.Context, template *models.Template) error
	FindByID(ctx context.Context, id uint) (*models.Template, error)
	List(ctx context.Context, search, category string) ([]models.Template, error)
	SetImageURL(ctx context.Context, id uint, url string) error
}

type GormTemplateStore struct {
	DB *gorm.DB
}

func NewTemplateStore(s *Store) *GormTemplateStore {
	return &GormTemplateStore{DB: s.DB}
}

func (s *GormTemplateStore) Create(ctx context.Context, template *models.Template) error {
	if !models.ValidTemplateCategory(template.Category) {
		return fmt.Errorf("%w: unknown category %q", errs.ErrValidation, template.Category)
	}
	if template.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", errs.ErrValidation)
	}
	if err := s.DB.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return nil
}

func (s *GormTemplateStore) FindByID(ctx context.Context, id uint) (*models.Template, error) {
	var template models.Template
	err := s.DB.WithContext(ctx).First(&template, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: template %d", errs.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return &template, nil
}

// List returns templates, popular ones first, then newest. Search does a
// simple substring match over name, description and tags.
func (s *GormTemplateStore) List(ctx context.Context, search, category string) ([]models.Template, error) {
	query := s.DB.WithContext(ctx).Model(&models.Template{})

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR tags LIKE ?", like, like, like)
	}

	var templates []models.Template
	err := query.Order("is_popular DESC, created_at DESC").Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return templates, nil
}

func (s *GormTemplateStore) SetImageURL(ctx context.Context, id uint, url string) error {
	result := s.DB.WithContext(ctx).Model(&models.Template{}).
		Where("id = ?", id).Update("image_url", url)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", errs.ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: template %d", errs.ErrNotFound, id)
	}
	return nil
}
