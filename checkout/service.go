// Package checkout coordinates the purchase workflow: gateway order
// creation, order persistence after the buyer confirms payment, and the
// notification fan-out.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/webirent/webirent-api/errs"
	"github.com/webirent/webirent-api/mailer"
	"github.com/webirent/webirent-api/models"
	"github.com/webirent/webirent-api/payment"
	"github.com/webirent/webirent-api/store"
	"github.com/webirent/webirent-api/utils"
)

// orderNumberAttempts bounds retries on a same-day order number
// collision before giving up with a persistence error.
const orderNumberAttempts = 3

type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payment.GatewayOrder, error)
}

type Notifier interface {
	Notify(ctx context.Context, order *models.Order, tmpl *models.Template, buyer models.Identity) mailer.NotifyResult
}

type Service struct {
	Templates store.TemplateStore
	Orders    store.OrderStore
	Gateway   Gateway
	Notifier  Notifier
	Currency  string
}

// PaymentOrder is what the browser needs to open the processor's
// checkout widget.
type PaymentOrder struct {
	GatewayOrderID string `json:"gatewayOrderId"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
}

// CreatePaymentOrder prices the template from its current stored price
// and registers a payment intent with the gateway. A failure here has no
// side effects: nothing is persisted and nothing is charged.
func (s *Service) CreatePaymentOrder(ctx context.Context, templateID uint, currency string) (*PaymentOrder, error) {
	tmpl, err := s.Templates.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if currency == "" {
		currency = s.Currency
	}
	amount := int64(math.Round(tmpl.Price * 100))

	gatewayOrder, err := s.Gateway.CreateOrder(ctx, amount, currency, utils.GenerateReceipt())
	if err != nil {
		return nil, err
	}

	return &PaymentOrder{
		GatewayOrderID: gatewayOrder.ID,
		Amount:         gatewayOrder.Amount,
		Currency:       gatewayOrder.Currency,
	}, nil
}

type PlaceOrderInput struct {
	TemplateID      uint
	CustomerDetails models.CustomerDetails
	PaymentID       string
	GatewayOrderID  string
}

type PlaceOrderResult struct {
	Order *models.Order
	// Created is false when the payment reference already had an order
	// and the existing one was returned instead.
	Created bool
}

// PlaceOrder persists the order once the buyer has paid. It is
// idempotent with respect to the payment reference: resubmitting the
// same payment id returns the order already written for it. The template
// is re-validated because it may have vanished while the buyer was with
// the processor. Notification failure never unwinds a persisted order —
// the buyer has already paid.
func (s *Service) PlaceOrder(ctx context.Context, buyer models.Identity, in PlaceOrderInput) (*PlaceOrderResult, error) {
	if in.PaymentID == "" {
		return nil, fmt.Errorf("%w: payment reference is required", errs.ErrValidation)
	}

	existing, err := s.Orders.FindByPaymentID(ctx, in.PaymentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &PlaceOrderResult{Order: existing}, nil
	}

	tmpl, err := s.Templates.FindByID(ctx, in.TemplateID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		orderNumber, err := utils.GenerateOrderNumber(time.Now())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrPersistence, err)
		}

		paymentID := in.PaymentID
		order := &models.Order{
			OrderNumber:     orderNumber,
			UserID:          buyer.ID,
			UserEmail:       buyer.Email,
			TemplateID:      tmpl.ID,
			CustomerDetails: in.CustomerDetails,
			TotalPrice:      tmpl.Price,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusCaptured,
			PaymentID:       &paymentID,
			GatewayOrderID:  in.GatewayOrderID,
		}

		err = s.Orders.Create(ctx, order)
		if err == nil {
			order.Template = *tmpl
			s.notify(ctx, order, tmpl, buyer)
			return &PlaceOrderResult{Order: order, Created: true}, nil
		}

		if errors.Is(err, errs.ErrUniqueness) {
			// Either a concurrent submission won the payment-id index, or
			// two orders drew the same number today. Re-check the payment
			// reference first; only a number collision is worth retrying.
			existing, findErr := s.Orders.FindByPaymentID(ctx, in.PaymentID)
			if findErr == nil && existing != nil {
				return &PlaceOrderResult{Order: existing}, nil
			}
			continue
		}

		return nil, err
	}

	return nil, fmt.Errorf("%w: could not allocate a unique order number", errs.ErrPersistence)
}

func (s *Service) ListOrders(ctx context.Context, buyer models.Identity) ([]models.Order, error) {
	return s.Orders.ListByUser(ctx, buyer.ID)
}

func (s *Service) notify(ctx context.Context, order *models.Order, tmpl *models.Template, buyer models.Identity) {
	result := s.Notifier.Notify(ctx, order, tmpl, buyer)
	if result.AdminErr != nil {
		log.Println("Error sending admin notification:", result.AdminErr)
	}
	if result.CustomerErr != nil {
		log.Println("Error sending customer confirmation:", result.CustomerErr)
	}
}
