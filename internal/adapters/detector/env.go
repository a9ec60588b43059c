// Package detector chooses the log rendering mode from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogMode represents the rendering mode for log output.
type LogMode int

const (
	// ModeAuto selects the mode from the environment.
	ModeAuto LogMode = iota
	// ModePretty renders colored, human-readable lines.
	ModePretty
	// ModeJSON renders one JSON object per record.
	ModeJSON
)

// String returns the flag spelling of the mode.
func (m LogMode) String() string {
	switch m {
	case ModePretty:
		return "pretty"
	case ModeJSON:
		return "json"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended mode for the current process.
// Logs go to stderr, so that is the stream checked for a terminal.
func DetectEnvironment() LogMode {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) LogMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeJSON
	}
	return ModePretty
}

// ResolveMode applies the user's --log-format flag to the detected mode.
// Unknown values fall back to the detected mode.
func ResolveMode(autoDetected LogMode, userFlag string) LogMode {
	switch userFlag {
	case "pretty", "text":
		return ModePretty
	case "json":
		return ModeJSON
	default:
		return autoDetected
	}
}
