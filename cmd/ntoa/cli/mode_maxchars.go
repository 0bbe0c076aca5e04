package cli

import (
	"fmt"

	"github.com/romshark/ntoa/ntoa"
)

type ModeMaxChars struct {
	Radix ntoa.Radix
}

func parseModeMaxChars(args []string) (m ModeMaxChars, err error) {
	flags := newFlagSet()
	radix := radixArg(flags)
	if err = flags.Parse(args); err != nil {
		err = fmt.Errorf("parsing flags: %w", err)
		return
	}
	if flags.NArg() > 0 {
		return m, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	m.Radix, err = parseRadix(*radix)
	return
}
