// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"go.trai.ch/vlr/internal/core/domain"
	"golang.org/x/term"
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() domain.OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) domain.OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return domain.OutputLinear
	}
	return domain.OutputTUI
}

// ResolveMode applies the user's override to the auto-detected mode.
// userMode should be one of: "auto", "tui", "linear", "ci", or empty.
func ResolveMode(autoDetected, userMode domain.OutputMode) domain.OutputMode {
	switch userMode {
	case domain.OutputTUI:
		return domain.OutputTUI
	case domain.OutputLinear, "ci":
		return domain.OutputLinear
	default:
		return autoDetected
	}
}
