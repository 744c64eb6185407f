package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/webirent/webirent-api/errs"
)

func TestClientSend(t *testing.T) {
	t.Run("posts the message to the provider", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "email_123"})
		}))
		defer server.Close()

		client := NewClient("re_test_key")
		client.BaseURL = server.URL

		err := client.Send(context.Background(), Email{
			From:    "orders@webirent.com",
			To:      "a@acme.com",
			Subject: "Your Order #WR-260831-0042",
			HTML:    "<p>hi</p>",
		})
		if err != nil {
			t.Fatalf("Send: %v", err)
		}
		if gotAuth != "Bearer re_test_key" {
			t.Errorf("auth header = %q", gotAuth)
		}
		to, _ := gotBody["to"].([]any)
		if len(to) != 1 || to[0] != "a@acme.com" {
			t.Errorf("to = %v", gotBody["to"])
		}
		if gotBody["subject"] != "Your Order #WR-260831-0042" {
			t.Errorf("subject = %v", gotBody["subject"])
		}
	})

	t.Run("provider failure wraps ErrNotification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"invalid from address"}`))
		}))
		defer server.Close()

		client := NewClient("re_test_key")
		client.BaseURL = server.URL

		err := client.Send(context.Background(), Email{From: "bad", To: "a@acme.com"})
		if !errors.Is(err, errs.ErrNotification) {
			t.Fatalf("err = %v, want ErrNotification", err)
		}
	})
}
