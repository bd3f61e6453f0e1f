package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imgupload/internal/config"
	"imgupload/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Endpoint.BaseURL)
	assert.Equal(t, "/api/upload", cfg.Endpoint.Path)
	assert.Equal(t, 120, cfg.Endpoint.TimeoutSecs)
	assert.Equal(t, 4, cfg.Upload.Concurrency)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, config.NotifyConsole, cfg.Notify.Provider)
	assert.False(t, cfg.Notify.WaitForAck)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IMGUPLOAD_ENDPOINT_BASE_URL", "https://api.example.com/")
	t.Setenv("IMGUPLOAD_ENDPOINT_TIMEOUT_SECS", "15")
	t.Setenv("IMGUPLOAD_UPLOAD_CONCURRENCY", "2")
	t.Setenv("IMGUPLOAD_S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("IMGUPLOAD_NOTIFY_PROVIDER", "NOOP")
	t.Setenv("IMGUPLOAD_NOTIFY_WAIT_FOR_ACK", "true")
	t.Setenv("IMGUPLOAD_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api/upload", cfg.Endpoint.URL())
	assert.Equal(t, 15, cfg.Endpoint.TimeoutSecs)
	assert.Equal(t, 2, cfg.Upload.Concurrency)
	assert.Equal(t, "http://localhost:9000", cfg.S3.Endpoint)
	assert.Equal(t, config.NotifyNoop, cfg.Notify.Provider)
	assert.True(t, cfg.Notify.WaitForAck)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_InvalidSettings(t *testing.T) {
	testCases := []struct {
		name  string
		env   map[string]string
		match string
	}{
		{
			name:  "base url without scheme",
			env:   map[string]string{"IMGUPLOAD_ENDPOINT_BASE_URL": "localhost:8080"},
			match: "endpoint.base_url",
		},
		{
			name:  "malformed base url",
			env:   map[string]string{"IMGUPLOAD_ENDPOINT_BASE_URL": "http://[::1"},
			match: "endpoint.base_url",
		},
		{
			name:  "path without leading slash",
			env:   map[string]string{"IMGUPLOAD_ENDPOINT_PATH": "api/upload"},
			match: "endpoint.path",
		},
		{
			name:  "zero concurrency",
			env:   map[string]string{"IMGUPLOAD_UPLOAD_CONCURRENCY": "0"},
			match: "upload.concurrency",
		},
		{
			name:  "unknown notifier",
			env:   map[string]string{"IMGUPLOAD_NOTIFY_PROVIDER": "pager"},
			match: "unknown notify.provider",
		},
		{
			name:  "ses without addresses",
			env:   map[string]string{"IMGUPLOAD_NOTIFY_PROVIDER": "ses"},
			match: "required for ses",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			cfg, err := config.Load()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.match)
		})
	}
}

func TestEndpointConfig_URL(t *testing.T) {
	cfg := config.EndpointConfig{BaseURL: "http://host:8080", Path: "/api/upload"}
	assert.Equal(t, "http://host:8080/api/upload", cfg.URL())
}
