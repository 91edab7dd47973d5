package theme

import "github.com/charmbracelet/lipgloss"

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Splash styles
var (
	SplashStyle = lipgloss.NewStyle().
			Padding(1, 2)

	SplashTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				MarginBottom(1)

	SplashSubtitleStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				MarginBottom(1)
)

// Counter styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 4).
			MarginTop(1)

	DaysNumberStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDays)

	DaysUnitStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorNormal)

	DateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Footer styles
var (
	CommitsStyle = lipgloss.NewStyle().
			Foreground(ColorCommits)

	FooterStyle = lipgloss.NewStyle().
			MarginTop(1)

	TimerDotStyle = lipgloss.NewStyle().
			Foreground(ColorTimer)

	TimerStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)
)
