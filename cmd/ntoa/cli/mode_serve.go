package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/romshark/ntoa/internal/config"
)

type ModeServe struct {
	Config config.Config
}

func parseModeServe(args []string) (m ModeServe, err error) {
	flags := newFlagSet()
	flagConfig := flags.String(ParamConfig, "", "JSON configuration file")
	flagHTTPHost := flags.String(
		ParamHTTPHost,
		config.DefaultHTTPHost,
		"TCP address to listen to",
	)
	flagHTTPReadTimeout := flags.Duration(
		ParamHTTPReadTimeout,
		config.DefaultHTTPReadTimeout,
		"read timeout of the HTTP API server",
	)
	flagHTTPMaxBatchSize := flags.Uint(
		ParamHTTPMaxBatchSize,
		config.DefaultHTTPMaxBatchSize,
		"batch size limit",
	)
	flagLogLevel := flags.String(
		ParamLogLevel,
		config.DefaultLogLevel,
		"access log level",
	)
	if err = flags.Parse(args); err != nil {
		err = fmt.Errorf("parsing flags: %w", err)
		return
	}

	m.Config = config.Default()
	if *flagConfig != "" {
		if m.Config, err = config.Load(*flagConfig); err != nil {
			return
		}
	}

	// Flags set explicitly override the configuration file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case ParamHTTPHost:
			m.Config.HTTP.Host = *flagHTTPHost
		case ParamHTTPReadTimeout:
			m.Config.HTTP.ReadTimeout = config.Duration(*flagHTTPReadTimeout)
		case ParamHTTPMaxBatchSize:
			m.Config.HTTP.MaxBatchSize = *flagHTTPMaxBatchSize
		case ParamLogLevel:
			m.Config.Log.Level = *flagLogLevel
		}
	})

	if err = m.Config.Validate(); err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
		return
	}
	return m, nil
}

// ReadTimeout returns the read timeout of the HTTP API server
func (m ModeServe) ReadTimeout() time.Duration {
	return time.Duration(m.Config.HTTP.ReadTimeout)
}
