package utils_test

import (
	"testing"
	"time"

	"github.com/theoremus-urban-solutions/disruptions/utils"
)

func TestParseUTCDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantError bool
	}{
		{name: "plain date", input: "2019-10-31", wantYear: 2019, wantMonth: time.October, wantDay: 31},
		{name: "leap day", input: "2020-02-29", wantYear: 2020, wantMonth: time.February, wantDay: 29},
		{name: "first of year", input: "2021-01-01", wantYear: 2021, wantMonth: time.January, wantDay: 1},
		{name: "not a leap year", input: "2019-02-29", wantError: true},
		{name: "month out of range", input: "2019-13-01", wantError: true},
		{name: "datetime is not a date", input: "2019-10-31T00:00:00Z", wantError: true},
		{name: "empty", input: "", wantError: true},
		{name: "compact form", input: "20191031", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ParseUTCDate(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Location() != time.UTC {
				t.Errorf("expected UTC location, got %v", got.Location())
			}
			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth || got.Day() != tt.wantDay {
				t.Errorf("expected %d-%02d-%02d, got %v", tt.wantYear, tt.wantMonth, tt.wantDay, got)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("expected midnight, got %v", got)
			}
		})
	}
}

func TestISODateRoundTrip(t *testing.T) {
	for _, s := range []string{"2019-10-31", "2019-11-03", "2020-03-08", "2024-02-29", "1999-12-31"} {
		d, err := utils.ParseUTCDate(s)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", s, err)
		}
		if got := utils.FormatISODate(d); got != s {
			t.Errorf("expected %s, got %s", s, got)
		}
	}
}

func TestAddDaysAcrossDST(t *testing.T) {
	// 2019-11-03 is the US fall-back day; 2020-03-08 is spring-forward
	tests := []struct {
		start    string
		days     int
		expected string
	}{
		{"2019-11-02", 1, "2019-11-03"},
		{"2019-11-03", 1, "2019-11-04"},
		{"2020-03-07", 2, "2020-03-09"},
		{"2019-12-31", 1, "2020-01-01"},
		{"2020-03-01", -1, "2020-02-29"},
	}
	for _, tt := range tests {
		d, _ := utils.ParseUTCDate(tt.start)
		if got := utils.FormatISODate(utils.AddDays(d, tt.days)); got != tt.expected {
			t.Errorf("AddDays(%s, %d): expected %s, got %s", tt.start, tt.days, tt.expected, got)
		}
	}
}

func TestIsNextDay(t *testing.T) {
	a, _ := utils.ParseUTCDate("2019-11-02")
	b, _ := utils.ParseUTCDate("2019-11-03")
	c, _ := utils.ParseUTCDate("2019-11-04")
	if !utils.IsNextDay(a, b) {
		t.Error("2019-11-03 should follow 2019-11-02")
	}
	if utils.IsNextDay(a, c) {
		t.Error("2019-11-04 should not directly follow 2019-11-02")
	}
	if utils.IsNextDay(a, a) {
		t.Error("a date should not follow itself")
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "utc", input: "2020-01-01T12:00:00Z", expected: "2020-01-01T12:00:00Z"},
		{name: "fractional", input: "2020-01-01T12:00:00.123456Z", expected: "2020-01-01T12:00:00Z"},
		{name: "offset", input: "2020-01-01T07:00:00-05:00", expected: "2020-01-01T12:00:00Z"},
		{name: "naive", input: "2020-01-01T12:00:00", expected: "2020-01-01T12:00:00Z"},
		{name: "garbage", input: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.ParseDateTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s := utils.FormatDateTime(got); s != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, s)
			}
		})
	}
}

func TestIso8601FromUnixSeconds(t *testing.T) {
	if got := utils.Iso8601FromUnixSeconds(1696320000); got != "2023-10-03T08:00:00Z" {
		t.Errorf("expected 2023-10-03T08:00:00Z, got %s", got)
	}
}
