package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/docbridge/docbridge/internal/core/domain"
)

const (
	requestIDHeader = "X-Request-Id"
	userAgent       = "docbridge"

	// errorBodyLimit bounds how much of a non-2xx body is read for context.
	// The contract does not promise an error body at all.
	errorBodyLimit = 2048
)

func (c *Client) do(req *http.Request, operation string) (*http.Response, error) {
	ctx := req.Context()
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			c.observe(operation, 0, duration, ctxErr)
			return nil, ctxErr
		}
		connErr := &domain.ConnectivityError{Operation: operation, Err: err}
		c.observe(operation, 0, duration, connErr)
		c.logger.Warn("api_request_failed",
			"operation", operation,
			"request_id", requestID,
			"error", err,
		)
		return nil, connErr
	}

	c.observe(operation, resp.StatusCode, duration, nil)
	c.logger.Debug("api_request",
		"operation", operation,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration_ms", float64(duration.Microseconds())/1000.0,
	)
	return resp, nil
}

func (c *Client) observe(operation string, status int, duration time.Duration, err error) {
	if c.observer != nil {
		c.observer.ObserveRequest(operation, status, duration, err)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any, operation string) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}

	resp, err := c.do(req, operation)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, operation); err != nil {
		return err
	}
	return decodeBody(resp.Body, out, operation)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any, operation string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req, operation)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, operation); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeBody(resp.Body, out, operation)
}

func (c *Client) deleteResource(ctx context.Context, path, operation string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}

	resp, err := c.do(req, operation)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkStatus(resp, operation)
}

func checkStatus(resp *http.Response, operation string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	return &domain.TransportError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(body),
	}
}

func decodeBody(body io.Reader, out any, operation string) error {
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return &domain.DecodeError{Operation: operation, Err: err}
	}
	return nil
}
