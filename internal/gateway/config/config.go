package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contains runtime configuration for the gateway.
type Config struct {
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Upstream UpstreamConfig `yaml:"upstream" mapstructure:"upstream"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig captures HTTP server settings.
type ServerConfig struct {
	Port                int `yaml:"port" mapstructure:"port"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`
	IdleTimeoutSeconds  int `yaml:"idle_timeout_seconds" mapstructure:"idle_timeout_seconds"`
}

// UpstreamConfig captures where forwarded calls go and how long to wait.
// BackendURL is the base used for every route without an explicit override
// in Routes. Routes maps a route identifier (the first target segment) to a
// base URL; identifiers absent from Routes are rejected.
type UpstreamConfig struct {
	BackendURL     string            `yaml:"backend_url" mapstructure:"backend_url"`
	TimeoutSeconds int               `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	Routes         map[string]string `yaml:"routes" mapstructure:"routes"`
}

// Timeout returns the upstream call timeout as a duration.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// LoggingConfig captures logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
}

// ReadTimeout returns the configured read timeout as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout as a duration.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// IdleTimeout returns the configured idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutSeconds) * time.Second
}

// Load reads configuration from the provided path and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 30)
	v.SetDefault("server.idle_timeout_seconds", 60)
	v.SetDefault("upstream.backend_url", "http://localhost:8000")
	v.SetDefault("upstream.timeout_seconds", 10)
	v.SetDefault("upstream.routes", map[string]string{
		"neural":    "",
		"affiliate": "",
	})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvPrefix("ARIEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("server.port", "PORT", "ARIEL_SERVER_PORT")
	_ = v.BindEnv("upstream.backend_url", "BACKEND_URL", "ARIEL_UPSTREAM_BACKEND_URL")
	_ = v.BindEnv("upstream.timeout_seconds", "ARIEL_UPSTREAM_TIMEOUT_SECONDS")
	_ = v.BindEnv("logging.level", "ARIEL_LOGGING_LEVEL")
	_ = v.BindEnv("logging.format", "ARIEL_LOGGING_FORMAT")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Upstream.BackendURL == "" {
		return nil, fmt.Errorf("upstream backend_url must not be empty")
	}

	return &cfg, nil
}
