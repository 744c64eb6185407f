package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/webirent/webirent-api/errs"
	"github.com/webirent/webirent-api/models"
	"gorm.io/gorm"
)

// OrderStore is the persistence contract the checkout orchestrator
// depends on. Tests swap in a fake.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByPaymentID(ctx context.Context, paymentID string) (*models.Order, error)
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
}

type GormOrderStore struct {
	DB *gorm.DB
}

func NewOrderStore(s *Store) *GormOrderStore {
	return &GormOrderStore{DB: s.DB}
}

func (s *GormOrderStore) Create(ctx context.Context, order *models.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}
	if err := s.DB.WithContext(ctx).Create(order).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %v", errs.ErrUniqueness, err)
		}
		return fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return nil
}

// FindByPaymentID returns (nil, nil) when no order carries the payment
// reference.
func (s *GormOrderStore) FindByPaymentID(ctx context.Context, paymentID string) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).Preload("Template").
		Where("payment_id = ?", paymentID).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return &order, nil
}

func (s *GormOrderStore) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).Preload("Template").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", errs.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return &order, nil
}

func (s *GormOrderStore) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.WithContext(ctx).Preload("Template").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
	}
	return orders, nil
}

func validateOrder(order *models.Order) error {
	switch {
	case order.UserID == 0:
		return fmt.Errorf("%w: order is missing a user", errs.ErrValidation)
	case order.TemplateID == 0:
		return fmt.Errorf("%w: order is missing a template", errs.ErrValidation)
	case order.OrderNumber == "":
		return fmt.Errorf("%w: order is missing an order number", errs.ErrValidation)
	}
	details := order.CustomerDetails
	if details.BusinessName == "" || details.ContactEmail == "" ||
		details.ContactPhone == "" || details.Requirements == "" {
		return fmt.Errorf("%w: incomplete customer details", errs.ErrValidation)
	}
	return nil
}
