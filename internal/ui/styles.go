package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Outcome styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Blocked lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Path      lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconSuccess string
	IconWarning string
	IconError   string
	IconBlocked string
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // Yellow
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))    // Red
		s.Blocked = lipgloss.NewStyle().Foreground(lipgloss.Color("13")) // Magenta

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Path = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))               // Gray
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))              // Gray
		s.Value = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))             // Cyan
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray

		s.IconSuccess = "✓" // check mark
		s.IconWarning = "⚠" // warning sign
		s.IconError = "✗"   // ballot x
		s.IconBlocked = "⛔" // no entry
	} else {
		s.Success = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Error = lipgloss.NewStyle()
		s.Blocked = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Path = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Value = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconSuccess = "OK:"
		s.IconWarning = "WARN:"
		s.IconError = "ERROR:"
		s.IconBlocked = "BLOCKED:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
