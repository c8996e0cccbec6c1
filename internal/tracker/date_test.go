//nolint:testpackage // Tests require internal access for thorough testing
package tracker

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year != 2024 || d.Month != time.March || d.Day != 9 {
		t.Errorf("ParseDate = %v, want 2024-03-09", d)
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("ParseDate should fail on garbage input")
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	if got := d.String(); got != "2024-01-05" {
		t.Errorf("String() = %q, want %q", got, "2024-01-05")
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		from Date
		to   Date
		want int
	}{
		{"same day", NewDate(2024, 1, 1), NewDate(2024, 1, 1), 0},
		{"next day", NewDate(2024, 1, 1), NewDate(2024, 1, 2), 1},
		{"across month", NewDate(2024, 1, 31), NewDate(2024, 2, 1), 1},
		{"leap day", NewDate(2024, 2, 28), NewDate(2024, 3, 1), 2},
		{"backwards", NewDate(2024, 1, 5), NewDate(2024, 1, 2), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.DaysUntil(tt.to); got != tt.want {
				t.Errorf("DaysUntil = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.July, 4)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2024-07-04"` {
		t.Errorf("Marshal = %s, want %q", data, `"2024-07-04"`)
	}

	var parsed Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("round-trip date = %v, want %v", parsed, d)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"03/09/2024"`), &d); err == nil {
		t.Error("Unmarshal should fail on non-ISO date")
	}
	if err := json.Unmarshal([]byte(`42`), &d); err == nil {
		t.Error("Unmarshal should fail on non-string input")
	}
}
