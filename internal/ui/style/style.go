// Package style provides the colors and icons shared by every piece of
// terminal output produced by docbuild.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Muted  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
