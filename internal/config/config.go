package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lumenui/lumen/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "lumen.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultFrameInterval is the default frame interval in milliseconds.
	DefaultFrameInterval = 16

	// DefaultMaxSessions is the default session cache capacity.
	DefaultMaxSessions = 1024

	// DefaultHistoryCapacity is the default mutation log window.
	DefaultHistoryCapacity = 256
)

// Config represents the complete lumen.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// Server contains HTTP server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// Loop contains runtime loop configuration.
	Loop LoopConfig `json:"loop,omitempty"`

	// Session contains session cache configuration.
	Session SessionConfig `json:"session,omitempty"`

	// History contains mutation log configuration.
	History HistoryConfig `json:"history,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`
}

// LoopConfig contains runtime loop settings.
type LoopConfig struct {
	// FrameIntervalMS is the scheduler tick interval in milliseconds.
	FrameIntervalMS int `json:"frameIntervalMs,omitempty"`
}

// SessionConfig contains session cache settings.
type SessionConfig struct {
	// MaxSessions is the session cache capacity; the oldest session is
	// evicted when it overflows.
	MaxSessions int `json:"maxSessions,omitempty"`
}

// HistoryConfig contains mutation log settings.
type HistoryConfig struct {
	// Capacity is the mutation log window size. 0 disables recording.
	Capacity int `json:"capacity,omitempty"`

	// S3Bucket enables archiving to the named bucket when set.
	S3Bucket string `json:"s3Bucket,omitempty"`

	// S3Prefix is the key prefix for archived windows.
	S3Prefix string `json:"s3Prefix,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled controls whether /metrics is served.
	Enabled bool `json:"enabled,omitempty"`

	// Namespace is the metrics namespace (default: "lumen").
	Namespace string `json:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Version: "0.1.0",
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Loop: LoopConfig{
			FrameIntervalMS: DefaultFrameInterval,
		},
		Session: SessionConfig{
			MaxSessions: DefaultMaxSessions,
		},
		History: HistoryConfig{
			Capacity: DefaultHistoryCapacity,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "lumen",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for lumen.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. A missing file
// is not an error; defaults are returned.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E102").
			WithDetail("Failed to parse lumen.json: " + err.Error()).
			WithSuggestion("Check that lumen.json is valid JSON")
	}
	cfg.configPath = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E103").
			WithDetail("server.port must be between 0 and 65535").
			WithSuggestion("Pick an unprivileged port such as 3000")
	}
	if c.Loop.FrameIntervalMS < 0 {
		return errors.New("E103").
			WithDetail("loop.frameIntervalMs must not be negative")
	}
	if c.Session.MaxSessions < 0 {
		return errors.New("E103").
			WithDetail("session.maxSessions must not be negative")
	}
	if c.History.Capacity < 0 {
		return errors.New("E103").
			WithDetail("history.capacity must not be negative")
	}
	return nil
}

// Path returns where the config was loaded from, "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.FromError(err, "E102")
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
