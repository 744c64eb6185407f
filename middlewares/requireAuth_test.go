package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/webirent/webirent-api/models"
)

const testSecret = "test-secret"

func newRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireAuth(testSecret), handler)
	return router
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestRequireAuth(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": 42,
		"email":   "a@acme.com",
		"name":    "Ada Lovelace",
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	t.Run("valid token exposes the identity", func(t *testing.T) {
		var got models.Identity
		router := newRouter(func(ctx *gin.Context) {
			got, _ = CurrentIdentity(ctx)
			ctx.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", recorder.Code)
		}
		want := models.Identity{ID: 42, Email: "a@acme.com", Name: "Ada Lovelace", Role: "admin"}
		if got != want {
			t.Errorf("identity = %+v, want %+v", got, want)
		}
		if !got.IsAdmin() {
			t.Error("expected an admin identity")
		}
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := newRouter(func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", recorder.Code)
		}
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		router := newRouter(func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", claims))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", recorder.Code)
		}
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := jwt.MapClaims{
			"user_id": 42,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		}
		router := newRouter(func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, expired))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", recorder.Code)
		}
	})
}
