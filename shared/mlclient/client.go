// Package mlclient talks to the prediction service over its JSON API.
package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	ErrUnavailable     = errors.New("ML service unavailable")
	ErrBadStatus       = errors.New("ML service error")
	ErrInvalidResponse = errors.New("invalid ML response")
)

type predictRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type predictResponse struct {
	PredictedHours *float64 `json:"predicted_hours"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PredictTime asks the service how many hours the task will take.
func (c *Client) PredictTime(ctx context.Context, title string, description *string) (float64, error) {
	body, err := json.Marshal(predictRequest{Title: title, Description: description})
	if err != nil {
		return 0, fmt.Errorf("encode predict request: %w", err)
	}

	var out predictResponse
	if err := c.do(ctx, http.MethodPost, "/predict", body, &out); err != nil {
		return 0, err
	}
	if out.PredictedHours == nil {
		c.logger.Warn("ML response without predicted_hours")
		return 0, fmt.Errorf("%w: missing predicted_hours", ErrInvalidResponse)
	}
	return *out.PredictedHours, nil
}

// PredictTimeSafe is PredictTime that never fails; ok is false when no
// prediction could be obtained.
func (c *Client) PredictTimeSafe(ctx context.Context, title string, description *string) (hours float64, ok bool) {
	hours, err := c.PredictTime(ctx, title, description)
	if err != nil {
		return 0, false
	}
	return hours, true
}

// Health returns nil when the service answers {"status": "ok"}.
func (c *Client) Health(ctx context.Context) error {
	var out healthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("%w: status %q", ErrBadStatus, out.Status)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ML service unavailable", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		c.logger.Warn("ML service returned error", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: %s %s returned %d", ErrBadStatus, method, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Warn("Failed to parse ML response", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
