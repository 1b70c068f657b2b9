// internal/cli/diag.go

package cli

import (
	"errors"
	"os"

	"github.com/fatih/color"
)

var debugColor = color.New(color.FgCyan)

// configureColor applies the --color mode. "auto" leaves detection to the
// color package (TTY and NO_COLOR) but additionally disables color in CI
// logs, which are rarely ANSI-aware.
func configureColor(mode string) error {
	switch mode {
	case "", "auto":
		if os.Getenv("CI") != "" {
			color.NoColor = true
		}
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return errors.New("invalid --color value (expected auto|always|never)")
	}
	return nil
}

// debugf prints a diagnostic line to stderr when --verbose is set.
func debugf(format string, a ...any) {
	if !flagVerbose {
		return
	}
	debugColor.Fprintf(color.Error, "vsenv: "+format+"\n", a...)
}
