package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for everything except the grid colours,
// which come from the game itself.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDLabel     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style

	// Timer bar
	TimeHigh  lipgloss.Style
	TimeMid   lipgloss.Style
	TimeLow   lipgloss.Style
	TimeEmpty lipgloss.Style

	// Pick feedback
	Hit  lipgloss.Style
	Miss lipgloss.Style

	// Grid markers, picked by cell lightness so they stay readable
	MarkOnDark  lipgloss.Style
	MarkOnLight lipgloss.Style

	// Overlay panels (title and end screens)
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style
	OverlayDim    lipgloss.Style

	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		TimeHigh:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		TimeMid:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		TimeLow:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		TimeEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		Hit:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Miss: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		MarkOnDark:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true),
		MarkOnLight: lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Bold(true),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		OverlayDim:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
