package follwit

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

	"github.com/google/uuid"
)

const (
	maskedKey = "***"

	// maxErrorBody bounds how much of a non-2xx body is read into APIError.Body.
	maxErrorBody = 64 << 10
)

// get calls a GET endpoint. Parameters become path segments in the given order.
func (c *Client) get(ctx context.Context, endpoint string, params []string, result any) error {
	segments := make([]string, 0, len(params)+1)
	segments = append(segments, c.endpointURL(endpoint))
	for _, p := range params {
		segments = append(segments, url.PathEscape(p))
	}
	return c.do(ctx, http.MethodGet, endpoint, strings.Join(segments, "/"), nil, result)
}

// post calls a POST endpoint with payload encoded as the JSON body.
func (c *Client) post(ctx context.Context, endpoint string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", endpoint, err)
	}
	return c.do(ctx, http.MethodPost, endpoint, c.endpointURL(endpoint)+"/", body, result)
}

// postStatus calls a POST endpoint that answers with a status object and reports
// whether it signalled success.
func (c *Client) postStatus(ctx context.Context, endpoint string, payload any) (bool, error) {
	var status Status
	if err := c.post(ctx, endpoint, payload, &status); err != nil {
		return false, err
	}
	if status.Failed() {
		c.logger.Debug().
			Str("endpoint", endpoint).
			Str("response", status.Response).
			Str("message", status.Message).
			Msg("follw.it reported failure")
	}
	return status.Succeeded(), nil
}

func (c *Client) endpointURL(endpoint string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.apiKey), endpoint)
}

// redact masks the API key in a request URL before it is logged.
func (c *Client) redact(requestURL string) string {
	return strings.Replace(requestURL, "/"+url.PathEscape(c.apiKey)+"/", "/"+maskedKey+"/", 1)
}

func (c *Client) do(ctx context.Context, method, endpoint, requestURL string, body []byte, result any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestID := uuid.NewString()
	logURL := c.redact(requestURL)
	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("endpoint", endpoint).
		Str("url", logURL).
		Msg("Sending follw.it request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s: %s", ErrTransport, endpoint, redactError(err, c.apiKey))
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("url", logURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Received follw.it response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// only a prefix of an error page is kept
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    http.StatusText(resp.StatusCode),
			Body:       string(data),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: failed to read %s response: %v", ErrTransport, endpoint, err)
	}

	if err := decodeResponse(endpoint, data, result); err != nil {
		c.logger.Warn().
			Err(err).
			Str("request_id", requestID).
			Str("endpoint", endpoint).
			Int("body_bytes", len(data)).
			Msg("Unexpected follw.it response")
		return err
	}
	return nil
}

// decodeResponse unmarshals data into result; a *string result receives the raw body.
// When the body does not fit the expected shape but is a status object, the service's
// failure is returned as a ServiceError.
func decodeResponse(endpoint string, data []byte, result any) error {
	switch v := result.(type) {
	case nil:
		return nil
	case *string:
		*v = string(data)
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		var status Status
		if json.Unmarshal(data, &status) == nil && status.Response != "" {
			return &ServiceError{Endpoint: endpoint, Response: status.Response, Message: status.Message}
		}
		return &DecodeError{Endpoint: endpoint, Body: string(data), Err: err}
	}
	return nil
}

// redactError strips the API key from errors that embed the request URL.
func redactError(err error, apiKey string) string {
	return strings.ReplaceAll(err.Error(), apiKey, maskedKey)
}

// getObject fetches an object-shaped endpoint. A failure status inside the object is
// left for the caller to inspect through the embedded Status.
func getObject[T any](ctx context.Context, c *Client, endpoint string, params []string) (*T, error) {
	out := new(T)
	if err := c.get(ctx, endpoint, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

// postObject is the POST counterpart of getObject.
func postObject[T any](ctx context.Context, c *Client, endpoint string, payload any) (*T, error) {
	out := new(T)
	if err := c.post(ctx, endpoint, payload, out); err != nil {
		return nil, err
	}
	return out, nil
}

// getList fetches a list-shaped endpoint. A null body becomes an empty slice.
func getList[T any](ctx context.Context, c *Client, endpoint string, params []string) ([]T, error) {
	var out []T
	if err := c.get(ctx, endpoint, params, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// postList is the POST counterpart of getList.
func postList[T any](ctx context.Context, c *Client, endpoint string, payload any) ([]T, error) {
	var out []T
	if err := c.post(ctx, endpoint, payload, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
