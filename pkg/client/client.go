package client

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

	"github.com/sirupsen/logrus"
)

const (
	// DefaultAddress is where ColorNavigator serves its control API. The
	// port must match the API port configured in ColorNavigator preferences.
	DefaultAddress = "127.0.0.1:50005"

	requestTimeout = 10 * time.Second
)

// Client is a struct for communicating with the ColorNavigator API server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New builds a Client from a host:port value. An empty address selects
// DefaultAddress.
func New(address string) (*Client, error) {
	base, err := parseBaseURL(address)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			// The API server is always local. Never route requests
			// through an HTTP proxy.
			Transport: &http.Transport{Proxy: nil},
		},
	}, nil
}

// do is a method for sending one request to the ColorNavigator API server.
// body, when non-nil, is marshaled to JSON. dest, when non-nil, receives the
// decoded response body (skipped for 204 responses).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	rel := &url.URL{Path: path, RawQuery: query.Encode()}
	reqURL := c.baseURL.ResolveReference(rel)

	logrus.WithFields(logrus.Fields{
		"method": method,
		"url":    reqURL.String(),
	}).Debug("sending request")

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logrus.Errorf("failed to close response body: %v", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func parseBaseURL(address string) (*url.URL, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		trimmed = DefaultAddress
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse API server address %q: %w", address, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
