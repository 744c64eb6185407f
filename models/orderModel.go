package models

import "gorm.io/gorm"

// Fulfillment states. Payment capture no longer implies the work is
// done, so a freshly paid order starts out pending.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Payment states, tracked separately from fulfillment.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusCaptured = "captured"
	PaymentStatusFailed   = "failed"
)

// CustomerDetails is the free-text fulfillment brief collected at
// checkout. Every field is required.
type CustomerDetails struct {
	BusinessName string `json:"businessName" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone" binding:"required"`
	Requirements string `json:"requirements" binding:"required"`
}

type Order struct {
	gorm.Model
	OrderNumber     string          `json:"orderNumber" gorm:"uniqueIndex;size:16"`
	UserID          uint            `json:"userId"`
	UserEmail       string          `json:"userEmail"`
	TemplateID      uint            `json:"templateId"`
	Template        Template        `json:"template" gorm:"foreignKey:TemplateID"`
	CustomerDetails CustomerDetails `json:"customerDetails" gorm:"embedded;embeddedPrefix:customer_"`
	TotalPrice      float64         `json:"totalPrice"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	// PaymentID is the processor's payment reference. Nil for orders
	// entered without a payment (admin-created); the unique index is what
	// makes order creation idempotent per payment.
	PaymentID      *string `json:"paymentId,omitempty" gorm:"uniqueIndex;size:64"`
	GatewayOrderID string  `json:"gatewayOrderId,omitempty"`
}
