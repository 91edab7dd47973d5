package timefmt

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/lastcommit/internal/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		ms       int64
		expected string
	}{
		{"zero", 0, "00:00:00"},
		{"sub-second floors", 999, "00:00:00"},
		{"one hour one minute one second", 3661000, "01:01:01"},
		{"negative clamps", -5000, "00:00:00"},
		{"hours not wrapped at 24", 90000000, "25:00:00"},
		{"three digit hours", 360000000, "100:00:00"},
		{"59 seconds", 59999, "00:00:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.ms))
		})
	}
}

func TestFormatDuration_ShapeForNonNegative(t *testing.T) {
	shape := regexp.MustCompile(`^\d{2,}:\d{2}:\d{2}$`)
	for ms := int64(0); ms < 100*3600*1000; ms += 7919 * 1013 {
		assert.Regexp(t, shape, FormatDuration(ms), "ms=%d", ms)
	}

	twoDigit := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	assert.Regexp(t, twoDigit, FormatDuration(99*3600*1000+59*60*1000+59*1000))
}

func TestDaysElapsed(t *testing.T) {
	assert.Equal(t, int64(1), DaysElapsed(86400000))
	assert.Equal(t, int64(0), DaysElapsed(86399999))
	assert.Equal(t, int64(0), DaysElapsed(-1))
	assert.Equal(t, int64(2), DaysElapsed(2*86400000+1))
}

func TestDaysElapsed_Monotonic(t *testing.T) {
	prev := DaysElapsed(0)
	for ms := int64(0); ms < 10*domain.MillisPerDay; ms += 3_600_001 {
		cur := DaysElapsed(ms)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestSample(t *testing.T) {
	const anchor = int64(1762194514910)

	s := Sample(anchor, anchor+90000000)
	assert.Equal(t, domain.ElapsedSample{Days: 1, ElapsedMs: 90000000}, s)

	s = Sample(anchor, anchor-1000)
	assert.Equal(t, domain.ElapsedSample{}, s, "clock behind anchor clamps to zero")
}

func TestFormatCalendarDate(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	origLocal := time.Local
	time.Local = time.UTC
	t.Cleanup(func() { time.Local = origLocal })

	assert.Equal(t, "Jan 1, 2024", FormatCalendarDate(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC).UnixMilli()))
	assert.Equal(t, "Jan 1, 1970", FormatCalendarDate(0), "the epoch itself is a date")
	assert.Equal(t, "Dec 31, 1969", FormatCalendarDate(-1))
	assert.Equal(t, "", FormatCalendarDate(1<<62), "year beyond 9999")
	assert.Equal(t, "", FormatCalendarDate(-(1 << 62)), "year before 1")
}

func TestDateLayout(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{"", layoutMonthFirst},
		{"C", layoutMonthFirst},
		{"POSIX", layoutMonthFirst},
		{"en_US.UTF-8", layoutMonthFirst},
		{"en_GB.UTF-8", layoutDayFirst},
		{"de_DE@euro", layoutDayFirst},
		{"pt_PT", layoutDayFirst},
		{"sv_SE.UTF-8", layoutISO},
		{"ja_JP", layoutISO},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.expected, dateLayout(tt.locale))
		})
	}
}
