package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/auth"
	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

type singleUserLookup struct {
	user *models.User
}

func (s *singleUserLookup) GetByID(_ context.Context, id uint) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func testResolver() *auth.Resolver {
	return auth.NewResolver(testSecret, &singleUserLookup{
		user: &models.User{ID: 7, Name: "Alice"},
	})
}

func testToken(t *testing.T) string {
	t.Helper()
	token, err := auth.NewIssuer(testSecret).Sign(7)
	require.NoError(t, err)
	return token
}

// echoIdentity responds with the resolved identity name, or "anonymous".
func echoIdentity(c *fiber.Ctx) error {
	if identity := IdentityFrom(c); identity != nil {
		return c.SendString(identity.Name)
	}
	return c.SendString("anonymous")
}

func testRequest(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", RequireAuth(testResolver()), echoIdentity)

	t.Run("valid token passes identity through", func(t *testing.T) {
		resp := testRequest(t, app, "Bearer "+testToken(t))
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not-a-token"},
		{"bare scheme", "Bearer"},
	}
	for _, tt := range tests {
		t.Run(tt.name+" is 401", func(t *testing.T) {
			resp := testRequest(t, app, tt.authorization)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", OptionalAuth(testResolver()), echoIdentity)

	t.Run("valid token resolves identity", func(t *testing.T) {
		resp := testRequest(t, app, "Bearer "+testToken(t))
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid token stays anonymous rather than failing", func(t *testing.T) {
		resp := testRequest(t, app, "Bearer garbage")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("no header stays anonymous", func(t *testing.T) {
		resp := testRequest(t, app, "")
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestIdentityFrom_NoMiddleware(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Nil(t, IdentityFrom(c))
		return c.SendStatus(http.StatusOK)
	})

	resp := testRequest(t, app, "")
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
