package cli

type ModeHelp struct {
	Command string
}

func parseModeHelp(args []string) (m ModeHelp, err error) {
	if len(args) > 0 {
		m.Command = args[0]
	}
	return m, nil
}
