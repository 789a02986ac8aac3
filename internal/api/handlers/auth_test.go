package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evently-hq/evently/internal/models"
	"github.com/evently-hq/evently/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	users := repositories.NewMemoryUserStore()
	h := NewAuthHandler(users, newTokenService())

	req := jsonRequest(t, http.MethodPost, "/register", map[string]string{
		"name":     "Alice",
		"email":    "Alice@Example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	// Email is stored lowercased, password is not stored in the clear.
	user, err := users.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEqual(t, "hunter22", user.Password)
}

func TestRegister_DuplicateEmailCaseInsensitive(t *testing.T) {
	users := repositories.NewMemoryUserStore()
	h := NewAuthHandler(users, newTokenService())

	first := jsonRequest(t, http.MethodPost, "/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()
	h.Register(rec, first)
	require.Equal(t, http.StatusCreated, rec.Code)

	second := jsonRequest(t, http.MethodPost, "/register", map[string]string{
		"name":     "Impostor",
		"email":    "ALICE@EXAMPLE.COM",
		"password": "different",
	})
	rec = httptest.NewRecorder()
	h.Register(rec, second)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// First record is unchanged.
	user, err := users.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestRegister_Validation(t *testing.T) {
	users := repositories.NewMemoryUserStore()
	h := NewAuthHandler(users, newTokenService())

	cases := []struct {
		name string
		body map[string]string
	}{
		{"short name", map[string]string{"name": "A", "email": "a@example.com", "password": "hunter22"}},
		{"bad email", map[string]string{"name": "Alice", "email": "not-an-email", "password": "hunter22"}},
		{"short password", map[string]string{"name": "Alice", "email": "a@example.com", "password": "12345"}},
		{"empty body", map[string]string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := jsonRequest(t, http.MethodPost, "/register", tc.body)
			rec := httptest.NewRecorder()
			h.Register(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	users := repositories.NewMemoryUserStore()
	tokens := newTokenService()
	h := NewAuthHandler(users, tokens)

	seeded := seedUser(t, users, "Alice", "alice@example.com", "hunter22")

	req := jsonRequest(t, http.MethodPost, "/login", map[string]string{
		"email":    "Alice@Example.com",
		"password": "hunter22",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var data struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	assert.Equal(t, seeded.ID, data.User.ID)

	// The token asserts the logged-in user's id.
	userID, err := tokens.Verify(data.Token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID.String(), userID)

	// The password hash never leaves the trust boundary.
	assert.NotContains(t, rec.Body.String(), seeded.Password)
}

func TestLogin_UniformRejection(t *testing.T) {
	users := repositories.NewMemoryUserStore()
	h := NewAuthHandler(users, newTokenService())

	seedUser(t, users, "Alice", "alice@example.com", "hunter22")

	// Unknown email and wrong password must be indistinguishable.
	var bodies []string
	for _, body := range []map[string]string{
		{"email": "nobody@example.com", "password": "hunter22"},
		{"email": "alice@example.com", "password": "wrong-password"},
	} {
		req := jsonRequest(t, http.MethodPost, "/login", body)
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}
	assert.Equal(t, bodies[0], bodies[1])
}

func TestLogin_RejectsNonPost(t *testing.T) {
	h := NewAuthHandler(repositories.NewMemoryUserStore(), newTokenService())

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
