package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var warnPrefix = color.New(color.FgYellow, color.Bold).SprintFunc()

// Logf writes a debug line to stderr. Maps, slices and json numbers are
// rendered as indented json.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Warnf writes a warning line to stderr, prefixed with a yellow "warning:"
// when stderr is a terminal.
func Warnf(msg string, args ...any) {
	fmt.Fprintf(color.Error, "%s %s", warnPrefix("warning:"), fmt.Sprintf(msg, args...))
}
