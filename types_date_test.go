package ledger

import "testing"

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-08-29", NewDate(2025, 8, 29), false},
		{"2025-1-2", NewDate(2025, 1, 2), false},
		{"0d", Today(), false},
		{"-1d", Today().Add(-1), false},
		{"not a date", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) succeeded with %s", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_StartEndOf(t *testing.T) {
	d := day("2025-08-29") // a friday

	testCases := []struct {
		period Period
		start  Date
		end    Date
	}{
		{Daily, day("2025-08-29"), day("2025-08-29")},
		{Monthly, day("2025-08-01"), day("2025-08-31")},
		{Quarterly, day("2025-07-01"), day("2025-09-30")},
		{Yearly, day("2025-01-01"), day("2025-12-31")},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := d.StartOf(tc.period); got != tc.start {
				t.Errorf("StartOf = %s, want %s", got, tc.start)
			}
			if got := d.EndOf(tc.period); got != tc.end {
				t.Errorf("EndOf = %s, want %s", got, tc.end)
			}
		})
	}
}

func TestPeriod_Key(t *testing.T) {
	d := day("2025-08-29")
	testCases := []struct {
		period Period
		want   string
	}{
		{Daily, "2025-08-29"},
		{Monthly, "2025-08"},
		{Quarterly, "2025-Q3"},
		{Yearly, "2025"},
	}
	for _, tc := range testCases {
		if got := tc.period.Key(d); got != tc.want {
			t.Errorf("%s.Key = %q, want %q", tc.period, got, tc.want)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(day("2025-01-01"), day("2025-01-31"))
	if !r.Contains(day("2025-01-15")) || !r.Contains(day("2025-01-01")) || !r.Contains(day("2025-01-31")) {
		t.Error("range excludes dates it should contain")
	}
	if r.Contains(day("2024-12-31")) || r.Contains(day("2025-02-01")) {
		t.Error("range contains dates outside its boundaries")
	}

	open := Range{}
	if !open.Contains(day("1999-01-01")) || !open.Contains(day("2099-01-01")) {
		t.Error("open range should contain everything")
	}

	since := Range{From: day("2025-01-01")}
	if since.Contains(day("2024-12-31")) || !since.Contains(day("2030-01-01")) {
		t.Error("half-open range misbehaves")
	}
}
