package render

import (
	"testing"
	"time"
)

func TestFormatTimestamp_Placeholder(t *testing.T) {
	inputs := []*string{
		nil,
		strPtr(""),
		strPtr("   "),
		strPtr("not a date"),
		strPtr("2025-13-45T99:99:99Z"),
		strPtr("null"),
		strPtr("2025/06/01"),
		strPtr("12:30"),
	}

	for _, input := range inputs {
		name := "<nil>"
		if input != nil {
			name = *input
		}
		t.Run(name, func(t *testing.T) {
			if got := FormatTimestamp(input); got != Placeholder {
				t.Errorf("FormatTimestamp(%q) = %q, want %q", name, got, Placeholder)
			}
		})
	}
}

func TestFormatTimestamp_Parses(t *testing.T) {
	utc := time.Date(2025, 6, 1, 8, 30, 15, 0, time.UTC)
	local := time.Date(2025, 6, 1, 8, 30, 15, 0, time.Local)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{name: "rfc3339", input: "2025-06-01T08:30:15Z", expected: utc},
		{name: "rfc3339 fractional", input: "2025-06-01T08:30:15.123456Z", expected: utc},
		{name: "rfc3339 offset", input: "2025-06-01T16:30:15+08:00", expected: utc},
		{name: "space separated with zone", input: "2025-06-01 08:30:15Z", expected: utc},
		{name: "zone-less", input: "2025-06-01T08:30:15", expected: local},
		{name: "zone-less space", input: "2025-06-01 08:30:15", expected: local},
		{name: "epoch seconds", input: "1748766615", expected: utc},
		{name: "epoch millis", input: "1748766615000", expected: utc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.expected.In(time.Local).Format("2006/1/2 15:04:05")
			if got := FormatTimestamp(strPtr(tt.input)); got != want {
				t.Errorf("FormatTimestamp(%q) = %q, want %q", tt.input, got, want)
			}
		})
	}
}

func TestParseTimestamp_DateOnly(t *testing.T) {
	got, ok := ParseTimestamp("2025-06-01")
	if !ok {
		t.Fatal("expected date-only value to parse")
	}
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseTimestamp() = %v, want %v", got, want)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.input); got != tt.expected {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
