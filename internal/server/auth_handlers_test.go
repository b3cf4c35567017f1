package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupLoginRoundTrip(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "super-secret",
	}, "")
	require.Equal(t, http.StatusCreated, status)
	token := body["token"].(string)
	require.NotEmpty(t, token)

	// The issued token authenticates against /api/user.
	status, body = doJSON(t, app, http.MethodGet, "/api/user", nil, token)
	require.Equal(t, http.StatusOK, status)
	user := body["user"].(map[string]any)
	assert.Equal(t, "Alice", user["name"])
	assert.NotContains(t, user, "password")

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "super-secret",
	}, "")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])
}

func TestSignup_Validation(t *testing.T) {
	t.Parallel()

	app, s := newTestApp(t)

	t.Run("per-field errors", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
			"name":     "",
			"email":    "not-an-email",
			"password": "short",
		}, "")
		require.Equal(t, http.StatusUnprocessableEntity, status)

		fields := body["errors"].(map[string]any)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
	})

	t.Run("duplicate email", func(t *testing.T) {
		createTestUser(t, s, "Alice", "taken@example.com")

		status, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
			"name":     "Impostor",
			"email":    "taken@example.com",
			"password": "super-secret",
		}, "")
		require.Equal(t, http.StatusUnprocessableEntity, status)

		fields := body["errors"].(map[string]any)
		assert.Contains(t, fields, "email")
	})
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	app, s := newTestApp(t)
	createTestUser(t, s, "Alice", "alice@example.com")

	t.Run("wrong password", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("unknown email gets the same response", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "password",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Invalid credentials.", body["error"])
	})
}

func TestCurrentUser_RequiresToken(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	status, _ := doJSON(t, app, http.MethodGet, "/api/user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}
