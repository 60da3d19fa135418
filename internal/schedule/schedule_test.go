package schedule

import (
	"testing"
	"time"
)

func TestResolveYesterdayDefault(t *testing.T) {
	now := time.Date(2012, time.March, 15, 9, 30, 0, 0, time.UTC)

	dates, err := resolveFrom(0, 0, now)
	if err != nil {
		t.Fatalf("resolveFrom failed: %v", err)
	}

	if len(dates) != 1 {
		t.Fatalf("expected 1 date, got %d", len(dates))
	}

	want := time.Date(2012, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !dates[0].Equal(want) {
		t.Errorf("expected %v, got %v", want, dates[0])
	}
}

func TestResolveYesterdayAcrossMonthBoundary(t *testing.T) {
	now := time.Date(2012, time.March, 1, 2, 0, 0, 0, time.UTC)

	dates, err := resolveFrom(0, 0, now)
	if err != nil {
		t.Fatalf("resolveFrom failed: %v", err)
	}

	// 2012 is a leap year
	want := time.Date(2012, time.February, 29, 0, 0, 0, 0, time.UTC)
	if !dates[0].Equal(want) {
		t.Errorf("expected %v, got %v", want, dates[0])
	}
}

func TestResolveMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		days  int
	}{
		{"january", 2011, 1, 31},
		{"february", 2011, 2, 28},
		{"leap february", 2012, 2, 29},
		{"april", 2011, 4, 30},
		{"december", 2011, 12, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := Resolve(tt.year, tt.month)
			if err != nil {
				t.Fatalf("Resolve(%d, %d) failed: %v", tt.year, tt.month, err)
			}

			if len(dates) != tt.days {
				t.Fatalf("expected %d dates, got %d", tt.days, len(dates))
			}

			first := dates[0]
			if first.Year() != tt.year || first.Month() != time.Month(tt.month) || first.Day() != 1 {
				t.Errorf("first date should be the 1st, got %v", first)
			}

			last := dates[len(dates)-1]
			if last.Day() != tt.days {
				t.Errorf("last date should be day %d, got %v", tt.days, last)
			}

			for i := 1; i < len(dates); i++ {
				if !dates[i].After(dates[i-1]) {
					t.Fatalf("dates not ascending at index %d", i)
				}
			}
		})
	}
}

func TestResolveFullYear(t *testing.T) {
	dates, err := Resolve(2011, 0)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(dates) != 365 {
		t.Errorf("expected 365 dates for 2011, got %d", len(dates))
	}

	leapDates, err := Resolve(2012, 0)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(leapDates) != 366 {
		t.Errorf("expected 366 dates for 2012, got %d", len(leapDates))
	}

	if dates[0].Month() != time.January || dates[0].Day() != 1 {
		t.Errorf("expected Jan 1 first, got %v", dates[0])
	}
	last := dates[len(dates)-1]
	if last.Month() != time.December || last.Day() != 31 {
		t.Errorf("expected Dec 31 last, got %v", last)
	}
}

func TestResolveInvalidValues(t *testing.T) {
	if _, err := Resolve(2011, 13); err == nil {
		t.Error("expected error for month 13")
	}
	if _, err := Resolve(2011, -1); err == nil {
		t.Error("expected error for negative month")
	}
	if _, err := Resolve(1800, 1); err == nil {
		t.Error("expected error for year before 1900")
	}
}

func TestResolveMonthWithoutYearIgnored(t *testing.T) {
	now := time.Date(2012, time.June, 10, 12, 0, 0, 0, time.UTC)

	dates, err := resolveFrom(0, 3, now)
	if err != nil {
		t.Fatalf("resolveFrom failed: %v", err)
	}

	if len(dates) != 1 {
		t.Fatalf("month without year should fall back to yesterday, got %d dates", len(dates))
	}
}
