package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"imgupload/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Endpoint EndpointConfig
	Upload   UploadConfig
	S3       S3Config
	Notify   NotifyConfig
	Log      LogConfig
}

// EndpointConfig holds the upload endpoint location and request timeout.
type EndpointConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	Path        string `mapstructure:"path"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// URL returns the full upload URL.
func (e *EndpointConfig) URL() string {
	return strings.TrimRight(e.BaseURL, "/") + e.Path
}

// UploadConfig holds client-side upload settings.
type UploadConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// S3Config holds AWS S3 settings used to read s3:// inputs.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// NotifyConfig holds failure notification settings.
type NotifyConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	ToAddress   string `mapstructure:"to_address"`
	WaitForAck  bool   `mapstructure:"wait_for_ack"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

const (
	NotifyConsole = "console"
	NotifySES     = "ses"
	NotifyNoop    = "noop"
)

// Load reads configuration from environment variables with the IMGUPLOAD_ prefix.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith reads configuration through the given viper instance, so callers
// can layer flags or a config file on top of the environment.
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("IMGUPLOAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Endpoint defaults
	v.SetDefault("endpoint.base_url", "http://localhost:8080")
	v.SetDefault("endpoint.path", "/api/upload")
	v.SetDefault("endpoint.timeout_secs", 120)

	v.SetDefault("upload.concurrency", 4)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")

	// Notify defaults
	v.SetDefault("notify.provider", NotifyConsole)
	v.SetDefault("notify.region", "us-east-1")
	v.SetDefault("notify.from_address", "")
	v.SetDefault("notify.to_address", "")
	v.SetDefault("notify.wait_for_ack", false)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	envBindings := map[string]string{
		"endpoint.base_url":     "IMGUPLOAD_ENDPOINT_BASE_URL",
		"endpoint.path":         "IMGUPLOAD_ENDPOINT_PATH",
		"endpoint.timeout_secs": "IMGUPLOAD_ENDPOINT_TIMEOUT_SECS",
		"upload.concurrency":    "IMGUPLOAD_UPLOAD_CONCURRENCY",
		"s3.region":             "IMGUPLOAD_S3_REGION",
		"s3.endpoint":           "IMGUPLOAD_S3_ENDPOINT",
		"s3.access_key":         "IMGUPLOAD_S3_ACCESS_KEY",
		"s3.secret_key":         "IMGUPLOAD_S3_SECRET_KEY",
		"notify.provider":       "IMGUPLOAD_NOTIFY_PROVIDER",
		"notify.region":         "IMGUPLOAD_NOTIFY_REGION",
		"notify.from_address":   "IMGUPLOAD_NOTIFY_FROM_ADDRESS",
		"notify.to_address":     "IMGUPLOAD_NOTIFY_TO_ADDRESS",
		"notify.wait_for_ack":   "IMGUPLOAD_NOTIFY_WAIT_FOR_ACK",
		"log.level":             "IMGUPLOAD_LOG_LEVEL",
		"log.format":            "IMGUPLOAD_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.Endpoint = EndpointConfig{
		BaseURL:     v.GetString("endpoint.base_url"),
		Path:        v.GetString("endpoint.path"),
		TimeoutSecs: v.GetInt("endpoint.timeout_secs"),
	}
	cfg.Upload = UploadConfig{
		Concurrency: v.GetInt("upload.concurrency"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Notify = NotifyConfig{
		Provider:    strings.ToLower(strings.TrimSpace(v.GetString("notify.provider"))),
		Region:      v.GetString("notify.region"),
		FromAddress: v.GetString("notify.from_address"),
		ToAddress:   v.GetString("notify.to_address"),
		WaitForAck:  v.GetBool("notify.wait_for_ack"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail at upload time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint.BaseURL) == "" {
		return fmt.Errorf("%w: endpoint.base_url is required", domain.ErrInvalidConfig)
	}
	if u, err := url.Parse(c.Endpoint.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: endpoint.base_url %q must be an absolute URL with scheme and host", domain.ErrInvalidConfig, c.Endpoint.BaseURL)
	}
	if !strings.HasPrefix(c.Endpoint.Path, "/") {
		return fmt.Errorf("%w: endpoint.path must start with /", domain.ErrInvalidConfig)
	}
	if c.Endpoint.TimeoutSecs < 0 {
		return fmt.Errorf("%w: endpoint.timeout_secs must not be negative", domain.ErrInvalidConfig)
	}
	if c.Upload.Concurrency <= 0 {
		return fmt.Errorf("%w: upload.concurrency must be positive", domain.ErrInvalidConfig)
	}
	switch c.Notify.Provider {
	case NotifyConsole, NotifyNoop:
	case NotifySES:
		if c.Notify.FromAddress == "" || c.Notify.ToAddress == "" {
			return fmt.Errorf("%w: notify.from_address and notify.to_address are required for ses", domain.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown notify.provider %q", domain.ErrInvalidConfig, c.Notify.Provider)
	}
	return nil
}
