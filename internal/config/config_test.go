package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/romshark/ntoa/internal/config"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestLoad(t *testing.T) {
	p := writeFile(t, `{
		"http": {"host": "localhost:9090", "read-timeout": "5ms"},
		"log": {"level": "debug", "prefix": "ntoa "}
	}`)
	c, err := config.Load(p)
	require.NoError(t, err)

	expect := config.Default()
	expect.HTTP.Host = "localhost:9090"
	expect.HTTP.ReadTimeout = config.Duration(5 * time.Millisecond)
	expect.Log.Level = "debug"
	expect.Log.Prefix = "ntoa "
	require.Equal(t, expect, c)
}

func TestLoadErr(t *testing.T) {
	for _, tt := range []struct {
		name    string
		content string
	}{
		{"syntax", `{"http":`},
		{"duration type", `{"http": {"read-timeout": 5}}`},
		{"duration format", `{"http": {"read-timeout": "5 parsecs"}}`},
		{"empty host", `{"http": {"host": ""}}`},
		{"negative timeout", `{"http": {"read-timeout": "-1s"}}`},
		{"log level", `{"log": {"level": "loud"}}`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tt.content))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestDurationMarshal(t *testing.T) {
	b, err := json.Marshal(config.Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, `"1.5s"`, string(b))
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	require.Equal(t, config.DefaultHTTPHost, c.HTTP.Host)
	require.Equal(t, config.Duration(config.DefaultHTTPReadTimeout), c.HTTP.ReadTimeout)
	require.Equal(t, uint(config.DefaultHTTPMaxBatchSize), c.HTTP.MaxBatchSize)
	require.Equal(t, config.DefaultLogLevel, c.Log.Level)
	require.True(t, c.Log.Timestamp)
}
