package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/romshark/ntoa/cmd/ntoa/cli"
	"github.com/romshark/ntoa/logger"
	"github.com/romshark/ntoa/ntoa"
)

// handleFormat writes every value of m to out, one per line.
// Conversions are logged to verbose if m.Verbose is set.
func handleFormat(out, verbose io.Writer, m cli.ModeFormat) error {
	l := logger.NewNop()
	if m.Verbose {
		l = logger.New(logger.NewStreamWriter(verbose), "ntoa ", logger.Debug, 0)
		defer l.Flush()
	}

	w := bufio.NewWriter(out)
	for _, v := range m.Values {
		n, err := ntoa.WriteInt(w, v, m.Radix)
		if err != nil {
			return fmt.Errorf("writing %d: %w", v, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		l.Debug(
			"converted",
			logger.Int("value", v),
			logger.Str("radix", m.Radix.String()),
			logger.Int("chars", int64(n)),
		)
	}
	return w.Flush()
}
