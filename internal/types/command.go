package types

import (
	"strconv"
	"strings"
)

// ExternalCommand is a fully synthesized invocation of an external tool.
// When ChangeDir is set the runner enters Dir for the duration of the call
// and restores the previous working directory afterwards.
type ExternalCommand struct {
	Step      string
	Args      []string
	Dir       string
	ChangeDir bool
}

func (c ExternalCommand) Program() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// String renders the command the way it would be typed in a shell.
func (c ExternalCommand) String() string {
	parts := make([]string, 0, len(c.Args))
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return `""`
	}
	if strings.ContainsAny(arg, " \t\"'$;&|<>()*?") {
		return strconv.Quote(arg)
	}
	return arg
}
