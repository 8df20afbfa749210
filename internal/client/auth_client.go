package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthClient handles session validation against the external auth provider
type AuthClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// SessionValidationRequest represents the request to the auth provider
type SessionValidationRequest struct {
	Token string `json:"token"`
}

// SessionValidationResponse represents the response from the auth provider
type SessionValidationResponse struct {
	Valid   bool   `json:"valid"`
	UserID  string `json:"userId"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewAuthClient creates a new AuthClient
func NewAuthClient(baseURL string, timeout time.Duration, logger *zap.Logger) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ValidateSession validates a session token via the auth provider and
// returns the provider-issued user ID.
func (c *AuthClient) ValidateSession(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	url := fmt.Sprintf("%s/api/auth/validate", c.baseURL)

	reqBody := SessionValidationRequest{Token: tokenStr}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to validate session", zap.Error(err))
		return uuid.Nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return uuid.Nil, fmt.Errorf("session validation failed with status: %d", resp.StatusCode)
	}

	var sessionResp SessionValidationResponse
	if err := json.NewDecoder(resp.Body).Decode(&sessionResp); err != nil {
		return uuid.Nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !sessionResp.Valid {
		return uuid.Nil, fmt.Errorf("invalid session: %s", sessionResp.Message)
	}

	userID, err := uuid.Parse(sessionResp.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID format: %w", err)
	}

	return userID, nil
}
