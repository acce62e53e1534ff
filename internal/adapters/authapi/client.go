package authapi_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/port"
)

// Claims is the identity the auth service vouches for.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Client validates bearer tokens against the auth service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ValidateToken exchanges a bearer token for the claims it carries. A
// non-success status means the token is invalid or expired.
func (c *Client) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "AuthApiClient",
		"method":    "ValidateToken",
	})

	payload, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return nil, fmt.Errorf("encoding validate request: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/auth/validate", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		clientLogger.Error("Failed to reach auth service", err, nil)
		return nil, fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		clientLogger.Warn("Auth service rejected the token", port.Fields{"status_code": resp.StatusCode})
		return nil, fmt.Errorf("auth service returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var claims Claims
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		clientLogger.Error("Failed to decode auth service response", err, nil)
		return nil, fmt.Errorf("decoding validate response: %w", err)
	}

	return &claims, nil
}
