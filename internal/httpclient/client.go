// Package httpclient builds the HTTP client used to reach the upload endpoint.
package httpclient

import (
	"net"
	"net/http"
	"time"

	"imgupload/internal/config"
)

// ClientConfig holds transport tuning for outbound requests.
type ClientConfig struct {
	// Timeout bounds the whole request, including reading the response body.
	Timeout time.Duration

	DialTimeout           time.Duration
	KeepAlive             time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	IdleConnTimeout       time.Duration
	MaxIdleConnsPerHost   int
}

// DefaultConfig returns transport settings suited to single large JSON uploads.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:               120 * time.Second,
		DialTimeout:           30 * time.Second,
		KeepAlive:             30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 120 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConnsPerHost:   8,
	}
}

// FromEndpoint derives a ClientConfig from the endpoint settings.
// A zero timeout keeps the default.
func FromEndpoint(cfg *config.EndpointConfig) ClientConfig {
	c := DefaultConfig()
	if cfg != nil && cfg.TimeoutSecs > 0 {
		c.Timeout = time.Duration(cfg.TimeoutSecs) * time.Second
		c.ResponseHeaderTimeout = c.Timeout
	}
	return c
}

// New creates an HTTP client with the provided configuration.
func New(c ClientConfig) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   c.DialTimeout,
			KeepAlive: c.KeepAlive,
		}).DialContext,
		MaxIdleConnsPerHost:   c.MaxIdleConnsPerHost,
		IdleConnTimeout:       c.IdleConnTimeout,
		TLSHandshakeTimeout:   c.TLSHandshakeTimeout,
		ResponseHeaderTimeout: c.ResponseHeaderTimeout,
		ForceAttemptHTTP2:     true,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   c.Timeout,
	}
}
