package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contains runtime configuration for a bridge service.
type Config struct {
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Activity ActivityConfig `yaml:"activity" mapstructure:"activity"`
	NATS     NATSConfig     `yaml:"nats" mapstructure:"nats"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig captures HTTP server settings.
type ServerConfig struct {
	Port                int `yaml:"port" mapstructure:"port"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds" mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds" mapstructure:"write_timeout_seconds"`
	IdleTimeoutSeconds  int `yaml:"idle_timeout_seconds" mapstructure:"idle_timeout_seconds"`
}

// ActivityConfig bounds the in-memory activity log.
type ActivityConfig struct {
	Capacity int `yaml:"capacity" mapstructure:"capacity"`
}

// NATSConfig captures the optional activity broadcast settings.
// Bridges run fine without a broker.
type NATSConfig struct {
	Enabled       bool   `yaml:"enabled" mapstructure:"enabled"`
	URL           string `yaml:"url" mapstructure:"url"`
	MaxReconnects int    `yaml:"max_reconnects" mapstructure:"max_reconnects"`
	ReconnectWait int    `yaml:"reconnect_wait_seconds" mapstructure:"reconnect_wait_seconds"`
}

// ReconnectWaitDuration returns the reconnect wait as a time.Duration.
func (n NATSConfig) ReconnectWaitDuration() time.Duration {
	return time.Duration(n.ReconnectWait) * time.Second
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
// defaultPort is the domain default used when neither PORT nor a config file
// sets one.
func Load(configPath string, defaultPort int) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 15)
	v.SetDefault("server.idle_timeout_seconds", 60)
	v.SetDefault("activity.capacity", 20)
	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("nats.max_reconnects", -1)
	v.SetDefault("nats.reconnect_wait_seconds", 2)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetEnvPrefix("ARIEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The bare PORT variable wins over everything, matching the original
	// deployment contract.
	_ = v.BindEnv("server.port", "PORT", "ARIEL_SERVER_PORT")
	_ = v.BindEnv("nats.url", "NATS_URL", "ARIEL_NATS_URL")
	_ = v.BindEnv("nats.enabled", "ARIEL_NATS_ENABLED")
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

	return &cfg, nil
}
