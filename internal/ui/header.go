package ui

import (
	"fmt"

	"github.com/renato0307/lastcommit/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Productivity Log",
	Version:   "dev",
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, the repository and the tagline.
// In debug mode the build info is appended to the name line.
func renderHeader(debug bool, repository string) string {
	nameLine := theme.AppNameStyle.Render("lastcommit")
	if repository != "" {
		nameLine += " " + theme.SubtitleStyle.Render(repository)
	}
	if debug {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		nameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	return nameLine + "\n" + theme.TaglineStyle.Render(versionInfo.Tagline) + "\n"
}
