package commands

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")  // headings
	colorGreen  = lipgloss.Color("35")  // success / enabled
	colorYellow = lipgloss.Color("220") // warnings / custom markers
	colorWhite  = lipgloss.Color("255") // values
	colorDim    = lipgloss.Color("240") // muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleEnabled = lipgloss.NewStyle().Foreground(colorGreen)
	styleCustom  = lipgloss.NewStyle().Foreground(colorYellow)
)
