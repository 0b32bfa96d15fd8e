package services

import "time"

const isoDateLayout = "2006-01-02"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// StorageDay is the canonical stored form of a calendar day: UTC midnight.
func StorageDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayRange returns [day, day+1) in storage form.
func DayRange(day time.Time) (time.Time, time.Time) {
	start := StorageDay(day.Year(), day.Month(), day.Day())
	return start, start.AddDate(0, 0, 1)
}

// CalendarDate validates a year/month/day triple without normalizing
// overflow (31 February is rejected, not rolled into March).
func CalendarDate(year int, month int, day int) (time.Time, bool) {
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	if day > DaysInMonth(year, time.Month(month)) {
		return time.Time{}, false
	}
	return StorageDay(year, time.Month(month), day), true
}

// ParseISODate parses YYYY-MM-DD into storage form.
func ParseISODate(raw string) (time.Time, bool) {
	parsed, err := time.Parse(isoDateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return StorageDay(parsed.Year(), parsed.Month(), parsed.Day()), true
}

func FormatISODate(day time.Time) string {
	return day.Format(isoDateLayout)
}

// DaysInMonth uses day 0 of the next month, i.e. the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
