// Package hibob talks to the HiBob people endpoint and decodes its answer.
package hibob

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"strings"

	"employee-list/internal/logger"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Client issues the single authenticated GET the application needs.
type Client struct {
	url        string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient returns a client for url. A nil httpClient means a plain
// http.Client without timeout; the caller's context is the only bound.
func NewClient(url string, httpClient *http.Client, log logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
		logger:     log,
	}
}

func (c *Client) URL() string {
	return c.url
}

// FetchEmployees requests the directory and returns the raw body.
// The token is sent verbatim in the Authorization header.
func (c *Client) FetchEmployees(ctx context.Context, token string) ([]byte, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	requestID := uuid.NewString()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &NetworkError{Method: http.MethodGet, URL: c.url, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br")

	c.logger.Debug("HiBobClient", "sending request", map[string]interface{}{
		"request_id": requestID,
		"url":        c.url,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: req.Method, URL: c.url, Err: errors.Wrap(err, "execute request")}
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, &NetworkError{Method: req.Method, URL: c.url, Err: errors.Wrap(err, "read response")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{
			Method:     req.Method,
			URL:        c.url,
			StatusCode: resp.StatusCode,
			Body:       body,
			Err:        errors.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	c.logger.Debug("HiBobClient", "response received", map[string]interface{}{
		"request_id": requestID,
		"status":     resp.StatusCode,
		"bytes":      len(body),
	})
	return body, nil
}

// readBody undoes the Content-Encoding we asked for. Setting Accept-Encoding
// ourselves turns off the transport's transparent gzip handling.
func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "", "identity":
	case "br":
		reader = brotli.NewReader(resp.Body)
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		defer gz.Close()
		reader = gz
	default:
		return nil, errors.Errorf("unsupported content encoding %q", resp.Header.Get("Content-Encoding"))
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
