package main

import (
	"fmt"
	"os"

	"github.com/romshark/ntoa/cmd/ntoa/cli"
	"github.com/romshark/ntoa/ntoa"

	"go.uber.org/zap"
)

func main() {
	mode, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cli.PrintHelp(os.Stdout, "")
		os.Exit(1)
	}

	development := false
	if m, ok := mode.(cli.ModeServe); ok {
		development = m.Config.Log.Development
	}
	logErr, err := newLogger(development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %s\n", err)
		os.Exit(1)
	}
	defer func() { _ = logErr.Sync() }()

	switch m := mode.(type) {
	case cli.ModeFormat:
		if err := handleFormat(os.Stdout, os.Stderr, m); err != nil {
			logErr.Fatal("formatting", zap.Error(err))
		}

	case cli.ModeMaxChars:
		n, err := ntoa.MaxChars(m.Radix)
		if err != nil {
			logErr.Fatal("computing max chars", zap.Error(err))
		}
		fmt.Fprintln(os.Stdout, n)

	case cli.ModeServe:
		if err := launchAPIFastHTTP(logErr, os.Stdout, m); err != nil {
			logErr.Fatal("serving", zap.Error(err))
		}

	case cli.ModeHelp:
		cli.PrintHelp(os.Stdout, m.Command)

	default:
		panic(fmt.Errorf("unknown mode: %T", mode))
	}
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
