package services

import (
	"strconv"
	"strings"
	"time"
)

type MonthRef struct {
	Year  int
	Month int
}

func (ref MonthRef) Start() time.Time {
	return StorageDay(ref.Year, time.Month(ref.Month), 1)
}

func (ref MonthRef) DaysInMonth() int {
	return DaysInMonth(ref.Year, time.Month(ref.Month))
}

// Previous is derived from day 0 of the month (last day of the previous one).
func (ref MonthRef) Previous() MonthRef {
	lastOfPrevious := time.Date(ref.Year, time.Month(ref.Month), 0, 0, 0, 0, 0, time.UTC)
	return MonthRef{Year: lastOfPrevious.Year(), Month: int(lastOfPrevious.Month())}
}

// Next is the first day plus the number of days in the month.
func (ref MonthRef) Next() MonthRef {
	firstOfNext := ref.Start().AddDate(0, 0, ref.DaysInMonth())
	return MonthRef{Year: firstOfNext.Year(), Month: int(firstOfNext.Month())}
}

func MonthOf(value time.Time) MonthRef {
	return MonthRef{Year: value.Year(), Month: int(value.Month())}
}

// ResolveMonth reads year and month inputs and falls back to the month of now
// when either is missing, non-numeric or out of range.
func ResolveMonth(yearRaw string, monthRaw string, now time.Time) MonthRef {
	fallback := MonthOf(now)

	year, err := strconv.Atoi(strings.TrimSpace(yearRaw))
	if err != nil || year < 1 || year > 9999 {
		return fallback
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthRaw))
	if err != nil || month < 1 || month > 12 {
		return fallback
	}
	return MonthRef{Year: year, Month: month}
}
