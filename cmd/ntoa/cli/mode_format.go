package cli

import (
	"errors"
	"fmt"

	"github.com/romshark/ntoa/internal/numparse"
	"github.com/romshark/ntoa/ntoa"
)

type ModeFormat struct {
	Values  []int64
	Radix   ntoa.Radix
	Verbose bool
}

func parseModeFormat(args []string) (m ModeFormat, err error) {
	// Leading values may be negative and are not flags
	i := 0
	for ; i < len(args) && !isFlag(args[i]); i++ {
	}

	flags := newFlagSet()
	radix := radixArg(flags)
	verbose := flags.Bool(ParamVerbose, DefaultVerbose, "Log conversions")
	if err = flags.Parse(args[i:]); err != nil {
		err = fmt.Errorf("parsing flags: %w", err)
		return
	}

	values := append(args[:i:i], flags.Args()...)
	if len(values) < 1 {
		return m, errors.New("missing value")
	}

	if m.Radix, err = parseRadix(*radix); err != nil {
		return
	}

	m.Values = make([]int64, len(values))
	for i, v := range values {
		if m.Values[i], _, err = numparse.ParseInt([]byte(v)); err != nil {
			err = fmt.Errorf("parsing value %q: %w", v, err)
			return
		}
	}
	m.Verbose = *verbose

	return m, nil
}

// isFlag returns true for flags and false for negative values
func isFlag(a string) bool {
	return len(a) > 1 && a[0] == '-' && (a[1] < '0' || a[1] > '9')
}
