package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"imgupload/internal/config"
	"imgupload/internal/domain"
	"imgupload/internal/httpclient"
)

const maxErrorBodyLen = 512

// EndpointClient implements port.UploadEndpoint over HTTP.
type EndpointClient struct {
	url    string
	client *http.Client
}

// NewEndpointClient creates a client for the configured upload endpoint.
func NewEndpointClient(cfg *config.EndpointConfig) *EndpointClient {
	return NewEndpointClientWithHTTP(cfg.URL(), httpclient.New(httpclient.FromEndpoint(cfg)))
}

// NewEndpointClientWithHTTP creates a client posting to url with the given HTTP client.
func NewEndpointClientWithHTTP(url string, httpClient *http.Client) *EndpointClient {
	if httpClient == nil {
		httpClient = httpclient.New(httpclient.DefaultConfig())
	}
	return &EndpointClient{url: url, client: httpClient}
}

// URL returns the endpoint this client posts to.
func (c *EndpointClient) URL() string {
	return c.url
}

// Send POSTs the payload once. There is no retry.
func (c *EndpointClient) Send(ctx context.Context, payload domain.EncodedPayload) (domain.UploadResult, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Err: fmt.Errorf("calling upload endpoint: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       truncate(string(bytes.TrimSpace(respBody)), maxErrorBodyLen),
		}
	}

	trimmed := bytes.TrimSpace(respBody)
	if len(trimmed) == 0 || !gjson.ValidBytes(trimmed) {
		return nil, &domain.ParseError{Err: fmt.Errorf("response is not valid JSON (raw: %s)", truncate(string(trimmed), 100))}
	}

	return domain.UploadResult(trimmed), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
