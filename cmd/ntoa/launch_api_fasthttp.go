package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	apifasthttp "github.com/romshark/ntoa/api/fasthttp"
	"github.com/romshark/ntoa/cmd/ntoa/cli"
	"github.com/romshark/ntoa/internal/bitmask"
	"github.com/romshark/ntoa/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func launchAPIFastHTTP(
	logErr *zap.Logger,
	accessOut io.Writer,
	m cli.ModeServe,
) error {
	access, err := newAccessLogger(accessOut, m)
	if err != nil {
		return err
	}
	defer func() {
		if err := access.Flush(); err != nil {
			logErr.Error("flushing access log", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize the API server
	server := apifasthttp.New(
		logErr,
		access,
		apifasthttp.Ntoa{},
		reg,
		int(m.Config.HTTP.MaxBatchSize),
	)
	httpServer := &fasthttp.Server{
		Handler:     server.Serve,
		ReadTimeout: m.ReadTimeout(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Launch server
	g.Go(func() error {
		logErr.Info("listening", zap.String("host", m.Config.HTTP.Host))
		if err := httpServer.ListenAndServe(m.Config.HTTP.Host); err != nil {
			return fmt.Errorf("listening: %w", err)
		}
		return nil
	})

	// Await stop or listener error
	g.Go(func() error {
		<-ctx.Done()
		logErr.Info("shutting down")
		server.Close()
		if err := httpServer.Shutdown(); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logErr.Info("shutdown")
	return nil
}

func newAccessLogger(out io.Writer, m cli.ModeServe) (*logger.Logger, error) {
	threshold, err := logger.ParseLevel(m.Config.Log.Level)
	if err != nil {
		return nil, err
	}
	opts := logger.OptFlushEachLine
	if m.Config.Log.Timestamp {
		opts = bitmask.Set(opts, logger.OptTimestamp)
	}
	return logger.New(
		logger.NewStreamWriter(out),
		m.Config.Log.Prefix,
		threshold,
		opts,
	), nil
}
