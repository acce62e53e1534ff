package predictor_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"
)

// Client talks to the external price scoring endpoint. Failures are mapped
// onto the domain error taxonomy so the use cases never see raw transport
// errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	traceID := contextkeys.TraceIDFromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.httpClient.Do(req)
}

// Predict submits the property attributes and returns the predicted price in
// the endpoint's currency.
func (c *Client) Predict(ctx context.Context, req domain.PredictionRequest) (float64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PredictorClient",
		"method":    "Predict",
	})

	dto := predictRequestDTO{
		Area:        req.Area,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Parking:     req.Parking,
		OverallQual: req.OverallQual,
		YearBuilt:   req.YearBuilt,
		Location:    req.Location,
	}

	payload, err := json.Marshal(dto)
	if err != nil {
		return 0, fmt.Errorf("encoding predict request: %w", err)
	}

	url := fmt.Sprintf("%s/api/predict", c.baseURL)
	clientLogger.Debug("Sending request to the scoring endpoint", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		clientLogger.Error("Failed to reach the scoring endpoint", err, nil)
		return 0, fmt.Errorf("%w: %v", domain.ErrPredictorUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		endpointErr := &domain.EndpointError{
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
		}
		clientLogger.Error("Received error response from the scoring endpoint", endpointErr, port.Fields{"status_code": resp.StatusCode})
		return 0, endpointErr
	}

	var result predictResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		clientLogger.Error("Failed to decode response from the scoring endpoint", err, nil)
		return 0, fmt.Errorf("decoding predict response: %w", err)
	}

	if !result.Success {
		rejection := &domain.PredictionRejectedError{Reason: result.Error}
		clientLogger.Warn("Scoring endpoint rejected the request", port.Fields{"reason": result.Error})
		return 0, rejection
	}

	clientLogger.Info("Successfully received a prediction", port.Fields{"predicted_price": result.PredictedPrice})
	return result.PredictedPrice, nil
}

// Health reports whether the endpoint answers and its model is loaded.
func (c *Client) Health(ctx context.Context) (bool, error) {
	url := fmt.Sprintf("%s/api/health", c.baseURL)

	resp, err := c.doRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrPredictorUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, nil
	}

	var result healthResponseDTO
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decoding health response: %w", err)
	}

	return result.ModelLoaded, nil
}
