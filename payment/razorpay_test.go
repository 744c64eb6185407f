package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/webirent/webirent-api/errs"
)

func TestCreateOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotPath, gotUser, gotPass string
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUser, gotPass, _ = r.BasicAuth()
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":       "order_abc",
				"amount":   49900,
				"currency": "INR",
			})
		}))
		defer server.Close()

		client := NewClient("key_id", "key_secret")
		client.BaseURL = server.URL

		order, err := client.CreateOrder(context.Background(), 49900, "INR", "receipt_ab12cd34")
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		if order.ID != "order_abc" || order.Amount != 49900 || order.Currency != "INR" {
			t.Errorf("order = %+v", order)
		}
		if gotPath != "/orders" {
			t.Errorf("path = %q, want /orders", gotPath)
		}
		if gotUser != "key_id" || gotPass != "key_secret" {
			t.Errorf("basic auth = %q:%q", gotUser, gotPass)
		}
		if gotBody["amount"] != float64(49900) || gotBody["receipt"] != "receipt_ab12cd34" {
			t.Errorf("request body = %v", gotBody)
		}
	})

	t.Run("processor error surfaces as a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
		}))
		defer server.Close()

		client := NewClient("bad", "creds")
		client.BaseURL = server.URL

		_, err := client.CreateOrder(context.Background(), 49900, "INR", "receipt_x")
		if !errors.Is(err, errs.ErrPaymentGateway) {
			t.Fatalf("err = %v, want ErrPaymentGateway", err)
		}
	})

	t.Run("incomplete response surfaces as a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient("key_id", "key_secret")
		client.BaseURL = server.URL

		_, err := client.CreateOrder(context.Background(), 49900, "INR", "receipt_x")
		if !errors.Is(err, errs.ErrPaymentGateway) {
			t.Fatalf("err = %v, want ErrPaymentGateway", err)
		}
	})

	t.Run("non-positive amount is rejected before any call", func(t *testing.T) {
		client := NewClient("key_id", "key_secret")
		client.BaseURL = "http://127.0.0.1:0" // would fail if dialed

		_, err := client.CreateOrder(context.Background(), 0, "INR", "receipt_x")
		if !errors.Is(err, errs.ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
	})
}
