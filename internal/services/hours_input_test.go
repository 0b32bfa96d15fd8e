package services

import "testing"

func TestParseHours(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{raw: "8", want: 8, wantOK: true},
		{raw: " 10 ", want: 10, wantOK: true},
		{raw: "0", want: 0, wantOK: true},
		{raw: "abc", wantOK: false},
		{raw: "7.5", wantOK: false},
		{raw: "-3", wantOK: false},
		{raw: "24", want: 24, wantOK: true},
		{raw: "25", wantOK: false},
		{raw: "999999999999", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, testCase := range tests {
		got, ok := ParseHours(testCase.raw)
		if ok != testCase.wantOK || got != testCase.want {
			t.Fatalf("ParseHours(%q) = (%d, %v), want (%d, %v)", testCase.raw, got, ok, testCase.want, testCase.wantOK)
		}
	}
}

func TestHoursLabel(t *testing.T) {
	if got := HoursLabel(0, false); got != "-" {
		t.Fatalf("expected dash for missing entry, got %q", got)
	}
	if got := HoursLabel(0, true); got != "-" {
		t.Fatalf("expected dash for zero hours, got %q", got)
	}
	if got := HoursLabel(8, true); got != "8" {
		t.Fatalf("expected 8, got %q", got)
	}
}

func TestIsBlankHours(t *testing.T) {
	if !IsBlankHours("   ") {
		t.Fatal("expected whitespace to count as blank")
	}
	if IsBlankHours("0") {
		t.Fatal("expected zero not to count as blank")
	}
}
