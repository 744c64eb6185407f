package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/webirent/webirent-api/errs"
	"github.com/webirent/webirent-api/models"
	"gorm.io/gorm"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id uint, name, email string) error
}

type GormUserStore struct {
	DB *gorm.DB
}

func NewUserStore(s *Store) *GormUserStore {
	return &GormUserStore{DB: s.DB}
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	if err := s.DB.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: email already registered", errs.ErrUniqueness)
		}
		return fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return nil
}

// FindByEmail returns (nil, nil) when no user has the address.
func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return &user, nil
}

func (s *GormUserStore) UpdateProfile(ctx context.Context, id uint, name, email string) error {
	result := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "email": email})
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return fmt.Errorf("%w: email already registered", errs.ErrUniqueness)
		}
		return fmt.Errorf("%w: %v", errs.ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user %d", errs.ErrNotFound, id)
	}
	return nil
}
