package httpclient_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imgupload/internal/config"
	"imgupload/internal/httpclient"
)

func TestFromEndpoint_UsesConfiguredTimeout(t *testing.T) {
	c := httpclient.FromEndpoint(&config.EndpointConfig{TimeoutSecs: 7})

	assert.Equal(t, 7*time.Second, c.Timeout)
	assert.Equal(t, 7*time.Second, c.ResponseHeaderTimeout)
}

func TestFromEndpoint_ZeroKeepsDefault(t *testing.T) {
	c := httpclient.FromEndpoint(&config.EndpointConfig{})

	assert.Equal(t, httpclient.DefaultConfig().Timeout, c.Timeout)
}

func TestNew_AppliesTransportSettings(t *testing.T) {
	c := httpclient.DefaultConfig()
	client := httpclient.New(c)

	assert.Equal(t, c.Timeout, client.Timeout)
	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, c.TLSHandshakeTimeout, transport.TLSHandshakeTimeout)
	assert.Equal(t, c.MaxIdleConnsPerHost, transport.MaxIdleConnsPerHost)
}
