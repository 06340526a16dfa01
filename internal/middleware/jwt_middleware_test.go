package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasir/internal/middleware"
	"kasir/internal/models"
	"kasir/internal/services"
)

const secret = "middleware_secret"

type noUsers struct{}

func (noUsers) Create(context.Context, *models.User) error { return nil }
func (noUsers) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, nil
}
func (noUsers) GetByID(context.Context, uint) (*models.User, error) { return nil, nil }

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/private", middleware.AuthRequired(services.NewAuthService(noUsers{}, secret)), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"username": c.Locals("username")})
	})
	return app
}

func sign(t *testing.T, key string, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  1,
		"username": "cashier",
		"exp":      exp.Unix(),
	}).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestAuthRequired(t *testing.T) {
	app := newApp()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Token abc", http.StatusUnauthorized},
		{"bad signature", "Bearer " + sign(t, "other", time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, secret, time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"valid", "Bearer " + sign(t, secret, time.Now().Add(time.Hour)), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			if tt.status == http.StatusOK {
				assert.Equal(t, "cashier", body["username"])
			} else {
				assert.Equal(t, "error", body["status"])
			}
		})
	}
}
