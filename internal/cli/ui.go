package cli

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleStatus       = lipgloss.NewStyle().Foreground(colorWhite)
	styleStatusAlert  = lipgloss.NewStyle().Foreground(colorYellow)
	stylePickCursor   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	stylePickItem     = lipgloss.NewStyle().Foreground(colorWhite)
	stylePickChrome   = lipgloss.NewStyle().Foreground(colorDim)
	styleCanvasBorder = lipgloss.NewStyle().Foreground(colorDim)
)
