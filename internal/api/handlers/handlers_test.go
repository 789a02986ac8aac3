package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evently-hq/evently/internal/api/middleware"
	"github.com/evently-hq/evently/internal/auth"
	"github.com/evently-hq/evently/internal/models"
	"github.com/evently-hq/evently/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// envelope mirrors utils.Payload but keeps Data raw so tests can decode
// it into whatever shape they expect.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asUser attaches an authenticated identity the way the auth middleware
// would.
func asUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID.String())
	return req.WithContext(ctx)
}

func newTokenService() *auth.TokenService {
	return auth.NewTokenService([]byte("test-secret"), time.Hour)
}

// seedUser registers a user directly in the store and returns it.
func seedUser(t *testing.T, users repositories.UserStore, name, email, password string) *models.User {
	t.Helper()
	digest, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: digest,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

// seedEvent inserts an event owned by ownerID.
func seedEvent(t *testing.T, events repositories.EventStore, ownerID uuid.UUID, title string, date time.Time) *models.Event {
	t.Helper()
	event := &models.Event{
		Title:  title,
		Date:   date,
		UserID: ownerID,
	}
	require.NoError(t, events.Create(context.Background(), event))
	return event
}
