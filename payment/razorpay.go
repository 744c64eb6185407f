// Package payment wraps the Razorpay Orders API. Creating an order
// registers a payment intent with the processor; it moves no funds.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/webirent/webirent-api/errs"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// GatewayOrder is the processor's record of a payment intent. Amount is
// in the currency's minor unit (paise for INR).
type GatewayOrder struct {
	ID       string `json:"gatewayOrderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Client struct {
	keyID     string
	keySecret string
	// BaseURL is overridable so tests can point the client at a stub.
	BaseURL string
	http    *resty.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		BaseURL:   defaultBaseURL,
		http:      resty.New().SetTimeout(30 * time.Second),
	}
}

// CreateOrder registers a payment intent for the given amount, expressed
// in minor units to keep money out of floating point. Every processor
// failure comes back wrapped in errs.ErrPaymentGateway; there is no
// partial success.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be a positive number of minor units", errs.ErrValidation)
	}
	if currency == "" {
		return nil, fmt.Errorf("%w: currency is required", errs.ErrValidation)
	}

	requestBody := map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.keyID, c.keySecret).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(requestBody).
		Post(c.BaseURL + "/orders")

	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrPaymentGateway, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: order request failed with status %d: %s",
			errs.ErrPaymentGateway, resp.StatusCode(), string(resp.Body()))
	}

	var order struct {
		ID       string `json:"id"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, fmt.Errorf("%w: failed to parse order response: %v", errs.ErrPaymentGateway, err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%w: incomplete response from payment gateway", errs.ErrPaymentGateway)
	}

	return &GatewayOrder{ID: order.ID, Amount: order.Amount, Currency: order.Currency}, nil
}
