package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthClient_ValidateSession(t *testing.T) {
	validID := uuid.New()

	t.Run("valid session", func(t *testing.T) {
		var gotToken string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/auth/validate", r.URL.Path)
			require.Equal(t, http.MethodPost, r.Method)

			var req SessionValidationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			gotToken = req.Token

			json.NewEncoder(w).Encode(SessionValidationResponse{
				Valid:  true,
				UserID: validID.String(),
				Email:  "reader@example.com",
			})
		}))
		defer srv.Close()

		c := NewAuthClient(srv.URL, 2*time.Second, zap.NewNop())
		userID, err := c.ValidateSession(context.Background(), "session-token")

		require.NoError(t, err)
		assert.Equal(t, validID, userID)
		assert.Equal(t, "session-token", gotToken)
	})

	t.Run("rejected session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(SessionValidationResponse{
				Valid:   false,
				Message: "session expired",
			})
		}))
		defer srv.Close()

		c := NewAuthClient(srv.URL, 2*time.Second, zap.NewNop())
		userID, err := c.ValidateSession(context.Background(), "stale-token")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "session expired")
		assert.Equal(t, uuid.Nil, userID)
	})

	t.Run("provider error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewAuthClient(srv.URL, 2*time.Second, zap.NewNop())
		_, err := c.ValidateSession(context.Background(), "any-token")

		require.Error(t, err)
	})

	t.Run("malformed user id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(SessionValidationResponse{
				Valid:  true,
				UserID: "not-a-uuid",
			})
		}))
		defer srv.Close()

		c := NewAuthClient(srv.URL, 2*time.Second, zap.NewNop())
		_, err := c.ValidateSession(context.Background(), "any-token")

		require.Error(t, err)
	})

	t.Run("unreachable provider", func(t *testing.T) {
		c := NewAuthClient("http://127.0.0.1:1", 500*time.Millisecond, zap.NewNop())
		_, err := c.ValidateSession(context.Background(), "any-token")

		require.Error(t, err)
	})
}
