package timefmt

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/renato0307/lastcommit/internal/domain"
)

// FormatDuration converts a millisecond duration to "HH:MM:SS".
// Negative input is clamped to zero and sub-second remainders are dropped.
// Hours are not wrapped at 24, so 25 hours renders as "25:00:00".
func FormatDuration(totalMs int64) string {
	totalSeconds := max(0, totalMs/1000)

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// DaysElapsed returns the number of whole days in elapsedMs
func DaysElapsed(elapsedMs int64) int64 {
	if elapsedMs <= 0 {
		return 0
	}
	return elapsedMs / domain.MillisPerDay
}

// Sample computes the elapsed sample between an anchor and the current time.
// A clock behind the anchor yields a zero sample.
func Sample(anchorMs, nowMs int64) domain.ElapsedSample {
	elapsed := max(0, nowMs-anchorMs)
	return domain.ElapsedSample{
		Days:      DaysElapsed(elapsed),
		ElapsedMs: elapsed,
	}
}

// Date layouts by locale family
const (
	layoutDayFirst   = "2 Jan 2006"
	layoutISO        = "2006-01-02"
	layoutMonthFirst = "Jan 2, 2006"
)

// FormatCalendarDate renders an epoch in the local zone as a short date.
// Epochs at or before 1970 are valid dates. Returns empty string only when the
// year falls outside 1..9999 or rendering panics.
func FormatCalendarDate(epochMs int64) (formatted string) {
	defer func() {
		if r := recover(); r != nil {
			formatted = ""
		}
	}()

	t := time.UnixMilli(epochMs).In(time.Local)
	if t.Year() < 1 || t.Year() > 9999 {
		return ""
	}

	return t.Format(dateLayout(localeFromEnv()))
}

// localeFromEnv returns the locale used for LC_TIME, following POSIX precedence
func localeFromEnv() string {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// dateLayout picks a layout for a POSIX locale name such as "en_GB.UTF-8"
func dateLayout(locale string) string {
	// Strip encoding and modifier
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}

	switch {
	case locale == "" || locale == "C" || locale == "POSIX":
		return layoutMonthFirst
	case strings.HasPrefix(locale, "en_US"), strings.HasPrefix(locale, "en_PH"), strings.HasPrefix(locale, "en_CA"):
		return layoutMonthFirst
	case strings.HasPrefix(locale, "sv"), strings.HasPrefix(locale, "lt"),
		strings.HasPrefix(locale, "zh"), strings.HasPrefix(locale, "ja"), strings.HasPrefix(locale, "ko"):
		return layoutISO
	default:
		return layoutDayFirst
	}
}
