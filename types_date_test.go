package wealth

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2026, 7, 31)
	d2 := NewDate(2026, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// Standard ISO format
		{"2026-01-15", NewDate(2026, time.January, 15), false},
		{"2026-7-1", NewDate(2026, time.July, 1), false},
		{"invalid-date", Date{}, true},

		// Relative duration format
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"0d", today, false},
		{"1d", Date{}, true},
		{"-2w", today.Add(-14), false},
		{"+1m", today.AddMonth(1), false},
		{"-1y", today.AddYear(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDayIn(t *testing.T) {
	tests := []struct {
		name     string
		d        Date
		day      int
		expected Date
	}{
		{"plain day", NewDate(2026, time.March, 10), 25, NewDate(2026, time.March, 25)},
		{"clamped to february", NewDate(2026, time.February, 10), 31, NewDate(2026, time.February, 28)},
		{"leap february", NewDate(2028, time.February, 10), 30, NewDate(2028, time.February, 29)},
		{"clamped to thirty", NewDate(2026, time.April, 1), 31, NewDate(2026, time.April, 30)},
		{"below one", NewDate(2026, time.March, 10), 0, NewDate(2026, time.March, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.DayIn(tt.day); got != tt.expected {
				t.Errorf("DayIn(%d) = %v, want %v", tt.day, got, tt.expected)
			}
		})
	}
}

func TestStartEndOf(t *testing.T) {
	d := NewDate(2026, time.March, 11) // a Wednesday

	tests := []struct {
		p          Period
		start, end Date
	}{
		{Daily, d, d},
		{Weekly, NewDate(2026, time.March, 9), NewDate(2026, time.March, 15)},
		{Monthly, NewDate(2026, time.March, 1), NewDate(2026, time.March, 31)},
		{Quarterly, NewDate(2026, time.January, 1), NewDate(2026, time.March, 31)},
		{Yearly, NewDate(2026, time.January, 1), NewDate(2026, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			if got := d.StartOf(tt.p); got != tt.start {
				t.Errorf("StartOf(%s) = %v, want %v", tt.p, got, tt.start)
			}
			if got := d.EndOf(tt.p); got != tt.end {
				t.Errorf("EndOf(%s) = %v, want %v", tt.p, got, tt.end)
			}
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected Date
		wantErr  bool
	}{
		{
			name:     "Zero Date from empty string",
			json:     `""`,
			expected: Date{},
			wantErr:  false,
		},
		{
			name:     "Non-Zero Date",
			json:     `"2026-05-21"`,
			expected: NewDate(2026, 5, 21),
			wantErr:  false,
		},
		{
			name:    "Invalid Date",
			json:    `"not-a-date"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.json), &d)
			if (err != nil) != tt.wantErr {
				t.Errorf("json.Unmarshal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.expected {
				t.Errorf("json.Unmarshal() got = %v, want %v", d, tt.expected)
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected string
	}{
		{
			name:     "Zero Date",
			date:     Date{},
			expected: `""`,
		},
		{
			name:     "Non-Zero Date",
			date:     NewDate(2026, 5, 21),
			expected: `"2026-05-21"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.expected)
			}
		})
	}
}
