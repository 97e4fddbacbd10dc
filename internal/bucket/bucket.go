// Package bucket implements the calendar-bucket assignment shared by the
// incremental publication pass and historical seeding. Recap content lands in
// the period it was created; preview content (events) lands one period
// earlier, so a bucket closing at the end of period P recaps P and previews
// P+1. A bucket is closed once its key sorts strictly below the current
// period's key.
package bucket

import (
	"fmt"
	"time"
)

// Frequency selects the bucket granularity.
type Frequency string

const (
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	return f == Weekly || f == Monthly
}

// Key returns the bucket key containing t: ISO year-week ("2025-24") for
// weekly, year-month ("2025-06") for monthly. Keys of the same frequency
// compare chronologically as strings.
func Key(t time.Time, f Frequency) string {
	if f == Monthly {
		return t.Format("2006-01")
	}
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-%02d", year, week)
}

// Assign returns the bucket key for an item. Preview items shift one period
// back from their start date; recap items use their own creation period.
func Assign(createdAt time.Time, preview bool, f Frequency) string {
	if preview {
		if f == Monthly {
			// Anchor on the first of the month before shifting; AddDate on a
			// day past the previous month's end would normalize forward and
			// leave the item in its own period.
			y, m, _ := createdAt.Date()
			createdAt = time.Date(y, m, 1, 0, 0, 0, 0, createdAt.Location()).AddDate(0, -1, 0)
		} else {
			createdAt = createdAt.AddDate(0, 0, -7)
		}
	}
	return Key(createdAt, f)
}

// IsClosed reports whether the bucket's period has fully elapsed at now.
// The current period is never closed, so a bucket is processed only after
// its period ends.
func IsClosed(key string, now time.Time, f Frequency) bool {
	return key < Key(now, f)
}

// PublishDate returns the bucket's representative end-of-period timestamp:
// the last second of the month, or the end of the ISO week's Sunday.
func PublishDate(key string, f Frequency) (time.Time, error) {
	if f == Monthly {
		start, err := time.Parse("2006-01", key)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse monthly key %q: %w", key, err)
		}
		return start.AddDate(0, 1, 0).Add(-time.Second), nil
	}
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-%d", &year, &week); err != nil {
		return time.Time{}, fmt.Errorf("parse weekly key %q: %w", key, err)
	}
	return isoWeekStart(year, week).AddDate(0, 0, 6).Add(24*time.Hour - time.Second), nil
}

// Label renders the human period label used in fallback titles:
// "June 2025" or "Week of June 16, 2025" (the week's Monday).
func Label(key string, f Frequency) (string, error) {
	if f == Monthly {
		start, err := time.Parse("2006-01", key)
		if err != nil {
			return "", fmt.Errorf("parse monthly key %q: %w", key, err)
		}
		return start.Format("January 2006"), nil
	}
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-%d", &year, &week); err != nil {
		return "", fmt.Errorf("parse weekly key %q: %w", key, err)
	}
	return "Week of " + isoWeekStart(year, week).Format("January 2, 2006"), nil
}

// isoWeekStart returns the Monday starting the given ISO week, at midnight
// UTC. January 4th is always inside ISO week 1.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-wd)
	return week1Monday.AddDate(0, 0, (week-1)*7)
}
