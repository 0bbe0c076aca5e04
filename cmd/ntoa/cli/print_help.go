package cli

import (
	"fmt"
	"io"

	"github.com/romshark/ntoa/internal/config"
)

type section struct {
	Title   string
	Content interface{}
}

type list []interface{}

func print(
	w io.Writer,
	indentStr string,
	indent int,
	x interface{},
) {
	printIdent := func(l int) {
		for i := 0; i < l; i++ {
			fmt.Fprint(w, indentStr)
		}
	}

	switch x := x.(type) {
	case string:
		printIdent(indent)
		fmt.Fprintln(w, x)
	case list:
		for _, v := range x {
			print(w, indentStr, indent, v)
		}
	case section:
		printIdent(indent)
		fmt.Fprintln(w, x.Title)
		print(w, indentStr, indent+1, x.Content)
	default:
		panic(fmt.Errorf("unsupported print item type: %T", x))
	}
}

var helpOptRadix = section{
	Title: fmt.Sprintf("-%s <radix>", ParamRadix),
	Content: list{
		"Defines the output radix: " +
			"2 (bin), 10 (dec) or 16 (hex). " +
			"Hexadecimal output is prefixed with 0x.",
		fmt.Sprintf("Default: '%s'", DefaultRadix),
	},
}
var helpOptVerbose = section{
	Title: fmt.Sprintf("-%s", ParamVerbose),
	Content: list{
		"Logs every conversion to stderr.",
		fmt.Sprintf("Default: %t", DefaultVerbose),
	},
}
var helpOptConfig = section{
	Title: fmt.Sprintf("-%s <path>", ParamConfig),
	Content: "Loads the configuration from a JSON file. " +
		"Parameters set explicitly override the file.",
}
var helpOptHTTPHost = section{
	Title: fmt.Sprintf("-%s <host>[:port]", ParamHTTPHost),
	Content: list{
		"Defines the HTTP API host address.",
		fmt.Sprintf("Default: '%s'", config.DefaultHTTPHost),
	},
}
var helpOptHTTPMaxBatchSize = section{
	Title: fmt.Sprintf("-%s <uint>", ParamHTTPMaxBatchSize),
	Content: list{
		"Defines the HTTP API batch size limit, 0 disables the limit.",
		fmt.Sprintf("Default: '%d'", config.DefaultHTTPMaxBatchSize),
	},
}
var helpOptHTTPReadTimeout = section{
	Title: fmt.Sprintf("-%s <time>", ParamHTTPReadTimeout),
	Content: list{
		"Defines the read-timeout duration for the HTTP API.",
		fmt.Sprintf("Default: '%s'", config.DefaultHTTPReadTimeout),
	},
}
var helpOptLogLevel = section{
	Title: fmt.Sprintf("-%s <level>", ParamLogLevel),
	Content: list{
		"Defines the access log level: " +
			"debug, info, warning, error or severe.",
		fmt.Sprintf("Default: '%s'", config.DefaultLogLevel),
	},
}
var helpCmdFormat = list{
	fmt.Sprintf("usage: ntoa %s <value...> <parameters>", CmdFormat),
	"",
	"Prints every value in the given radix, one per line. " +
		"Values are decimal unless prefixed with 0x or 0b.",
	"",
	section{
		Title: "parameters:",
		Content: list{
			helpOptRadix,
			helpOptVerbose,
		},
	},
}
var helpCmdMaxChars = list{
	fmt.Sprintf("usage: ntoa %s <parameters>", CmdMaxChars),
	"",
	"Prints the maximum number of characters " +
		"a 64-bit integer occupies in the given radix.",
	"",
	section{"parameters:", list{
		helpOptRadix,
	}},
}
var helpCmdServe = list{
	fmt.Sprintf("usage: ntoa %s <parameters>", CmdServe),
	"",
	"Starts the format service listening on the HTTP API.",
	"",
	section{
		Title: "parameters:",
		Content: list{
			helpOptConfig,
			helpOptHTTPHost,
			helpOptHTTPReadTimeout,
			helpOptHTTPMaxBatchSize,
			helpOptLogLevel,
		},
	},
}
var helpDefaultHelp = list{
	"usage: ntoa <command> [<parameters>]",
	section{
		Title: "available commands:",
		Content: list{
			CmdFormat,
			CmdMaxChars,
			CmdServe,
			CmdHelp,
		},
	},
}

// PrintHelp prints the help text of command to w,
// the list of commands if command is unknown.
func PrintHelp(w io.Writer, command string) {
	print(w, "  ", 0, func() interface{} {
		switch command {
		case CmdFormat:
			return helpCmdFormat
		case CmdMaxChars:
			return helpCmdMaxChars
		case CmdServe:
			return helpCmdServe
		}
		return helpDefaultHelp
	}())
}
