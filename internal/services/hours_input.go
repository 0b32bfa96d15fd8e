package services

import (
	"strconv"
	"strings"
)

// MaxDailyHours caps a single day's entry.
const MaxDailyHours = 24

// ParseHours accepts an integer in [0, MaxDailyHours] with optional
// surrounding spaces.
func ParseHours(raw string) (int, bool) {
	hours, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || hours < 0 || hours > MaxDailyHours {
		return 0, false
	}
	return hours, true
}

// IsBlankHours reports whether the hours field was left empty.
func IsBlankHours(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func HoursLabel(hours int, found bool) string {
	if !found || hours == 0 {
		return "-"
	}
	return strconv.Itoa(hours)
}
