package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmconnect/internal/middleware"
	"farmconnect/internal/repositories"
	"farmconnect/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()
	logger := zap.NewNop()
	auth := services.NewAuthService(repositories.NewMemoryUserRepository(), services.NewMemoryRevocationList(), "test_jwt_secret", time.Hour, logger)

	app := fiber.New()
	app.Get("/whoami", middleware.AuthRequired(auth, logger), func(c *fiber.Ctx) error {
		return c.SendString(middleware.UserID(c))
	})
	return app, auth
}

func TestAuthRequired(t *testing.T) {
	app, auth := setup(t)

	session, err := auth.SignUp(context.Background(), "amina@example.com", "password123", services.SignUpProfile{Name: "Amina", Location: "Nakuru"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Token " + session.Token, fiber.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", fiber.StatusUnauthorized},
		{"valid token", "Bearer " + session.Token, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.status == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, session.User.ID, string(body))
			}
		})
	}
}

func TestAuthRequired_RevokedToken(t *testing.T) {
	app, auth := setup(t)

	session, err := auth.SignUp(context.Background(), "amina@example.com", "password123", services.SignUpProfile{Name: "Amina"})
	require.NoError(t, err)
	require.NoError(t, auth.SignOut(context.Background(), session.Token))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+session.Token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Session has been signed out")
}
