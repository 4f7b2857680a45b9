package wealth

import (
	"slices"
	"testing"
	"time"
)

func TestRange_Contains(t *testing.T) {
	r := NewRange(NewDate(2026, time.March, 1), NewDate(2026, time.March, 31))

	if !r.Contains(NewDate(2026, time.March, 1)) || !r.Contains(NewDate(2026, time.March, 31)) {
		t.Error("boundaries should be included")
	}
	if r.Contains(NewDate(2026, time.February, 28)) || r.Contains(NewDate(2026, time.April, 1)) {
		t.Error("dates outside the range should not be included")
	}
}

func TestRange_Days(t *testing.T) {
	r := NewRange(NewDate(2026, time.March, 1), NewDate(2026, time.March, 31))
	if got := r.Days(); got != 31 {
		t.Errorf("Days() = %d, want 31", got)
	}
}

func TestRange_Dates(t *testing.T) {
	r := NewRange(NewDate(2026, time.March, 30), NewDate(2026, time.April, 2))
	got := slices.Collect(r.Dates())
	expected := []Date{
		NewDate(2026, time.March, 30),
		NewDate(2026, time.March, 31),
		NewDate(2026, time.April, 1),
		NewDate(2026, time.April, 2),
	}
	if !slices.Equal(got, expected) {
		t.Errorf("Dates() = %v, want %v", got, expected)
	}
}

func TestRange_Period(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		expected Period
		ok       bool
	}{
		{"single day", NewRange(NewDate(2026, 3, 11), NewDate(2026, 3, 11)), Daily, true},
		{"monday to sunday", NewRange(NewDate(2026, 3, 9), NewDate(2026, 3, 15)), Weekly, true},
		{"full month", NewRange(NewDate(2026, 3, 1), NewDate(2026, 3, 31)), Monthly, true},
		{"full quarter", NewRange(NewDate(2026, 1, 1), NewDate(2026, 3, 31)), Quarterly, true},
		{"full year", NewRange(NewDate(2026, 1, 1), NewDate(2026, 12, 31)), Yearly, true},
		{"arbitrary span", NewRange(NewDate(2026, 3, 5), NewDate(2026, 3, 20)), Daily, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tt.r.Period()
			if ok != tt.ok {
				t.Fatalf("Period() ok = %v, want %v", ok, tt.ok)
			}
			if ok && p != tt.expected {
				t.Errorf("Period() = %s, want %s", p, tt.expected)
			}
		})
	}
}

func TestRange_Previous(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		expected Range
	}{
		{
			// March has 31 days, February 28: the previous range is the
			// previous calendar month, not a 31 day slide.
			name:     "month over month",
			r:        NewRange(NewDate(2026, 3, 1), NewDate(2026, 3, 31)),
			expected: NewRange(NewDate(2026, 2, 1), NewDate(2026, 2, 28)),
		},
		{
			name:     "week over week",
			r:        NewRange(NewDate(2026, 3, 9), NewDate(2026, 3, 15)),
			expected: NewRange(NewDate(2026, 3, 2), NewDate(2026, 3, 8)),
		},
		{
			name:     "arbitrary span slides by its length",
			r:        NewRange(NewDate(2026, 3, 11), NewDate(2026, 3, 20)),
			expected: NewRange(NewDate(2026, 3, 1), NewDate(2026, 3, 10)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Previous(); got != tt.expected {
				t.Errorf("Previous() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	tests := []struct {
		r        Range
		expected string
	}{
		{NewRange(NewDate(2026, 3, 11), NewDate(2026, 3, 11)), "2026-03-11"},
		{NewRange(NewDate(2026, 3, 9), NewDate(2026, 3, 15)), "2026-W11"},
		{NewRange(NewDate(2026, 3, 1), NewDate(2026, 3, 31)), "2026-March"},
		{NewRange(NewDate(2026, 1, 1), NewDate(2026, 3, 31)), "2026-Q1"},
		{NewRange(NewDate(2026, 1, 1), NewDate(2026, 12, 31)), "2026"},
		{NewRange(NewDate(2026, 3, 5), NewDate(2026, 3, 20)), "2026-03-05_2026-03-20"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.r.Identifier(); got != tt.expected {
				t.Errorf("Identifier() = %q, want %q", got, tt.expected)
			}
		})
	}
}
