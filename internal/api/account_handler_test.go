package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t, idleGenerator())
	env.register(t, "ada@example.com", "password123", "Ada Lovelace")

	resp := env.login(t, "ada@example.com", "password123")
	assert.NotEmpty(t, resp.UserID)
	assert.Equal(t, 1, resp.Streak)

	again := env.login(t, "ADA@example.com", "password123")
	assert.Equal(t, resp.UserID, again.UserID)
	assert.Equal(t, 1, again.Streak, "same-day login keeps the streak")
}

func TestRegister_Errors(t *testing.T) {
	env := newTestEnv(t, idleGenerator())
	env.register(t, "ada@example.com", "password123", "Ada")

	tests := []struct {
		name    string
		req     RegisterRequest
		status  int
		message string
	}{
		{"missing name", RegisterRequest{Email: "b@example.com", Password: "password123"}, http.StatusBadRequest, "all fields are required"},
		{"short password", RegisterRequest{Email: "b@example.com", Password: "short", FullName: "B"}, http.StatusBadRequest, "password must be at least 8 characters"},
		{"duplicate email", RegisterRequest{Email: "ada@example.com", Password: "password123", FullName: "Ada 2"}, http.StatusConflict, "Email already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/register", tt.req)
			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeBody[ErrorResponse](t, rec).Error)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t, idleGenerator())
	env.register(t, "ada@example.com", "password123", "Ada")

	rec := env.do(t, http.MethodPost, "/login", CredentialsRequest{Email: "ada@example.com", Password: "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid email or password"}`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/login", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMiddleware_RequestIDAndCORS(t *testing.T) {
	env := newTestEnv(t, idleGenerator())

	rec := env.do(t, http.MethodOptions, "/register", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = env.do(t, http.MethodGet, "/generate/status", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
