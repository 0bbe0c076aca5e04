package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/romshark/ntoa/internal/numparse"
	"github.com/romshark/ntoa/ntoa"
)

// Commands
const (
	CmdFormat   = "format"
	CmdMaxChars = "maxchars"
	CmdServe    = "serve"
	CmdHelp     = "help"
)

// Parameters
const (
	ParamRadix            = "radix"
	ParamVerbose          = "verbose"
	ParamConfig           = "config"
	ParamHTTPHost         = "http-host"
	ParamHTTPReadTimeout  = "http-read-timeout"
	ParamHTTPMaxBatchSize = "http-max-batch-size"
	ParamLogLevel         = "log-level"
)

// Default values
const (
	DefaultRadix   = "dec"
	DefaultVerbose = false
)

// Parse parses CLI commands and arguments.
func Parse(args []string) (mode interface{}, err error) {
	if a := args; len(a) < 1 {
		return nil, fmt.Errorf("missing command")
	}

	switch a := args[0]; a {
	case CmdFormat:
		mode, err = parseModeFormat(args[1:])
	case CmdMaxChars:
		mode, err = parseModeMaxChars(args[1:])
	case CmdServe:
		mode, err = parseModeServe(args[1:])
	case CmdHelp:
		mode, err = parseModeHelp(args[1:])
	default:
		err = fmt.Errorf(
			"invalid command %q, use help to show all available commands",
			a,
		)
	}
	return
}

func newFlagSet() *flag.FlagSet {
	s := flag.NewFlagSet("", flag.ContinueOnError)
	s.SetOutput(io.Discard)
	return s
}

func radixArg(flags *flag.FlagSet) *string {
	return flags.String(
		ParamRadix,
		DefaultRadix,
		"radix of the output (bin, dec, hex)",
	)
}

func parseRadix(s string) (ntoa.Radix, error) {
	r, err := numparse.ParseRadix([]byte(s))
	if err != nil {
		return 0, fmt.Errorf("parsing radix %q: %w", s, err)
	}
	return r, nil
}
