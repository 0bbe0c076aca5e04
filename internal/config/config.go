// Package config loads the configuration of the format service.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/romshark/ntoa/logger"

	"github.com/goccy/go-json"
)

// Config is the format service configuration
type Config struct {
	HTTP HTTP `json:"http"`
	Log  Log  `json:"log"`
}

// HTTP configures the HTTP API
type HTTP struct {
	Host         string   `json:"host"`
	ReadTimeout  Duration `json:"read-timeout"`
	MaxBatchSize uint     `json:"max-batch-size"`
}

// Log configures the access log and operational logging
type Log struct {
	// Level is the access log threshold
	Level     string `json:"level"`
	Prefix    string `json:"prefix"`
	Timestamp bool   `json:"timestamp"`
	// Development enables human-readable operational logs
	Development bool `json:"development"`
}

// Default values
const (
	DefaultHTTPHost         = ":8080"
	DefaultHTTPReadTimeout  = 2 * time.Second
	DefaultHTTPMaxBatchSize = 1000
	DefaultLogLevel         = "info"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		HTTP: HTTP{
			Host:         DefaultHTTPHost,
			ReadTimeout:  Duration(DefaultHTTPReadTimeout),
			MaxBatchSize: DefaultHTTPMaxBatchSize,
		},
		Log: Log{
			Level:     DefaultLogLevel,
			Timestamp: true,
		},
	}
}

// Load reads the JSON configuration file at path.
// Fields missing in the file keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config file: %w", err)
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parsing config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate returns an error if c is invalid
func (c Config) Validate() error {
	if c.HTTP.Host == "" {
		return errors.New("missing HTTP host")
	}
	if c.HTTP.ReadTimeout < 0 {
		return errors.New("negative HTTP read timeout")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Duration is a time.Duration encoded as a string such as "2s"
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
