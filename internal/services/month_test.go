package services

import (
	"testing"
	"time"
)

func TestMonthRefNavigationCrossesYearBoundary(t *testing.T) {
	january := MonthRef{Year: 2025, Month: 1}

	if got := january.Previous(); got != (MonthRef{Year: 2024, Month: 12}) {
		t.Fatalf("expected previous month 2024-12, got %+v", got)
	}
	if got := january.Next(); got != (MonthRef{Year: 2025, Month: 2}) {
		t.Fatalf("expected next month 2025-02, got %+v", got)
	}

	december := MonthRef{Year: 2024, Month: 12}
	if got := december.Next(); got != january {
		t.Fatalf("expected next of 2024-12 to be 2025-01, got %+v", got)
	}
}

func TestMonthRefDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month MonthRef
		want  int
	}{
		{name: "january", month: MonthRef{Year: 2025, Month: 1}, want: 31},
		{name: "leap february", month: MonthRef{Year: 2024, Month: 2}, want: 29},
		{name: "common february", month: MonthRef{Year: 2025, Month: 2}, want: 28},
		{name: "april", month: MonthRef{Year: 2025, Month: 4}, want: 30},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.month.DaysInMonth(); got != testCase.want {
				t.Fatalf("DaysInMonth() = %d, want %d", got, testCase.want)
			}
		})
	}
}

func TestResolveMonth(t *testing.T) {
	now := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	current := MonthRef{Year: 2025, Month: 3}

	tests := []struct {
		name  string
		year  string
		month string
		want  MonthRef
	}{
		{name: "explicit values", year: "2024", month: "11", want: MonthRef{Year: 2024, Month: 11}},
		{name: "trims spaces", year: " 2024 ", month: " 2 ", want: MonthRef{Year: 2024, Month: 2}},
		{name: "missing year", year: "", month: "5", want: current},
		{name: "missing month", year: "2024", month: "", want: current},
		{name: "month out of range", year: "2024", month: "13", want: current},
		{name: "non numeric", year: "abc", month: "1", want: current},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := ResolveMonth(testCase.year, testCase.month, now); got != testCase.want {
				t.Fatalf("ResolveMonth(%q, %q) = %+v, want %+v", testCase.year, testCase.month, got, testCase.want)
			}
		})
	}
}

func TestCalendarDateRejectsOverflow(t *testing.T) {
	if _, ok := CalendarDate(2025, 2, 31); ok {
		t.Fatal("expected 2025-02-31 to be rejected")
	}
	if _, ok := CalendarDate(2025, 13, 1); ok {
		t.Fatal("expected month 13 to be rejected")
	}
	day, ok := CalendarDate(2024, 2, 29)
	if !ok {
		t.Fatal("expected 2024-02-29 to be accepted")
	}
	if day.Location() != time.UTC || day.Hour() != 0 {
		t.Fatalf("expected UTC midnight, got %s", day)
	}
}

func TestParseISODate(t *testing.T) {
	day, ok := ParseISODate("2025-01-07")
	if !ok {
		t.Fatal("expected valid ISO date")
	}
	if FormatISODate(day) != "2025-01-07" {
		t.Fatalf("expected round trip, got %s", FormatISODate(day))
	}
	for _, raw := range []string{"", "07.01.2025", "2025-02-30", "not-a-date"} {
		if _, ok := ParseISODate(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}
