package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Counter colors
const (
	ColorDays    Color = "255" // White - day counter
	ColorTimer   Color = "2"   // Green - live timer dot
	ColorCommits Color = "214" // Orange - commit count
)

// UI semantic colors
const (
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Progress bar gradient
const (
	ColorProgressFrom = "#5A56E0"
	ColorProgressTo   = "#EE6FF8"
)
