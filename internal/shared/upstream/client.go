package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hr-admin/internal/shared/apierror"
	"hr-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

const DefaultTimeout = 10 * time.Second

// Client adalah adapter HTTP keluar ke HR API.
// Tanggung jawabnya sempit: base URL + timeout tetap, attach bearer token
// dari context kalau ada, log diagnostik per kategori status, dan
// mengembalikan *apierror.APIError tanpa mengubah payload error-nya.
// Tidak ada retry, tidak ada transformasi body.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("upstream")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upstream")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  l,
	}
}

func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, nil)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	// logger dari context sudah membawa request_id; fallback ke logger client
	logger := contextutil.GetLogger(ctx, c.logger)

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := contextutil.GetToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("no response from server",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &apierror.APIError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("read response body failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &apierror.APIError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		logStatus(logger, method, path, resp.StatusCode)
		return &apierror.APIError{StatusCode: resp.StatusCode, Body: raw}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

func logStatus(logger *zap.Logger, method, path string, status int) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
	}
	switch status {
	case http.StatusUnauthorized:
		logger.Warn("unauthorized access", fields...)
	case http.StatusForbidden:
		logger.Warn("forbidden access", fields...)
	case http.StatusNotFound:
		logger.Warn("resource not found", fields...)
	case http.StatusInternalServerError:
		logger.Error("server error", fields...)
	default:
		logger.Warn("request failed", fields...)
	}
}
