package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorRed     = lipgloss.Color("#FF5F5F")
	ColorGreen   = lipgloss.Color("#00D787")
	ColorYellow  = lipgloss.Color("#FFD75F")
	ColorOrange  = lipgloss.Color("#FF8700")
	ColorCyan    = lipgloss.Color("#00D7FF")
	ColorBlue    = lipgloss.Color("#5F87FF")
	ColorGray    = lipgloss.Color("#808080")
	ColorDimGray = lipgloss.Color("#444444")
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorMagenta = lipgloss.Color("#D787FF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCyan)

	ActiveBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorGreen).
				Bold(true)

	WrapUpBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true)

	CustomerNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	TimestampStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	CustomerLabelStyle = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Bold(true)

	RepLabelStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true)

	UserLabelStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	AILabelStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	PanelTitleActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorCyan)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorCyan).
			Padding(0, 1)

	ButtonActiveStyle = lipgloss.NewStyle().
				Foreground(ColorDimGray).
				Background(ColorCyan).
				Bold(true).
				Padding(0, 1)

	WarningButtonStyle = lipgloss.NewStyle().
				Foreground(ColorOrange).
				Bold(true)

	DangerButtonStyle = lipgloss.NewStyle().
				Foreground(ColorRed).
				Bold(true)

	StatusResolvedStyle = lipgloss.NewStyle().
				Foreground(ColorGreen)

	StatusFollowUpStyle = lipgloss.NewStyle().
				Foreground(ColorYellow)

	StatusEscalatedStyle = lipgloss.NewStyle().
				Foreground(ColorRed)

	StarOnStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	StarOffStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCyan).
			Padding(1, 2)

	CodeRedDialogStyle = DialogStyle.
				BorderForeground(ColorOrange)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorWhite)

	ToastStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	LiveBadgeStyle = lipgloss.NewStyle().
			Foreground(ColorGreen).
			Bold(true)

	ScrollBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta)
)
