// Package schedule turns the CLI's optional year/month selection into the
// concrete ordered list of dates the ingester will process.
package schedule

import (
	"fmt"
	"time"
)

// Resolve returns the dates to process for the given selection:
//   - year and month zero: yesterday only
//   - year only: every date of that year, ascending
//   - year and month: every date of that month, ascending
//
// A month without a year is ignored. Out-of-range values are
// configuration errors and should abort before the run starts.
func Resolve(year, month int) ([]time.Time, error) {
	return resolveFrom(year, month, time.Now())
}

func resolveFrom(year, month int, now time.Time) ([]time.Time, error) {
	if year == 0 {
		yesterday := now.AddDate(0, 0, -1)
		return []time.Time{midnight(yesterday.Year(), yesterday.Month(), yesterday.Day())}, nil
	}

	if year < 1900 {
		return nil, fmt.Errorf("invalid year %d", year)
	}
	if month < 0 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}

	firstMonth, lastMonth := time.January, time.December
	if month != 0 {
		firstMonth, lastMonth = time.Month(month), time.Month(month)
	}

	var dates []time.Time
	for m := firstMonth; m <= lastMonth; m++ {
		for day := 1; day <= daysIn(year, m); day++ {
			dates = append(dates, midnight(year, m, day))
		}
	}

	return dates, nil
}

// daysIn returns the number of days in a month. Day zero of the next
// month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func midnight(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
