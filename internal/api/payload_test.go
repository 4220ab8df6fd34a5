package api

import (
	"encoding/json"
	"testing"
)

func TestLenientInt(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name     string
		input    string
		expected *int
	}{
		{name: "number", input: `7`, expected: intPtr(7)},
		{name: "zero", input: `0`, expected: intPtr(0)},
		{name: "numeric string", input: `" 42 "`, expected: intPtr(42)},
		{name: "fraction truncated", input: `4.9`, expected: intPtr(4)},
		{name: "negative clamped", input: `-3`, expected: intPtr(0)},
		{name: "null", input: `null`, expected: nil},
		{name: "garbage string", input: `"lots"`, expected: nil},
		{name: "bool", input: `true`, expected: nil},
		{name: "object", input: `{"n": 1}`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n lenientInt
			if err := json.Unmarshal([]byte(tt.input), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			switch {
			case tt.expected == nil && n.value != nil:
				t.Errorf("expected absent, got %d", *n.value)
			case tt.expected != nil && n.value == nil:
				t.Errorf("expected %d, got absent", *tt.expected)
			case tt.expected != nil && *n.value != *tt.expected:
				t.Errorf("expected %d, got %d", *tt.expected, *n.value)
			}
		})
	}
}

func TestLenientString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		absent   bool
	}{
		{name: "string", input: `"2030-01-01T00:00:00Z"`, expected: "2030-01-01T00:00:00Z"},
		{name: "empty string", input: `""`, expected: ""},
		{name: "epoch number", input: `1700000000`, expected: "1700000000"},
		{name: "null", input: `null`, absent: true},
		{name: "array", input: `[1,2]`, absent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s lenientString
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.absent {
				if s.value != nil {
					t.Errorf("expected absent, got %q", *s.value)
				}
				return
			}
			if s.value == nil {
				t.Fatalf("expected %q, got absent", tt.expected)
			}
			if *s.value != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, *s.value)
			}
		})
	}
}
