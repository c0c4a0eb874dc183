// Package calendar derives the pool of allocable working days from the
// work-schedule settings and the holiday list.
package calendar

import (
	"math"
	"time"

	"github.com/kilianp07/rplan/core/model"
)

// WorkDays returns the ordered working days from `from` through `to`
// inclusive, skipping weekdays outside the work week and holiday dates.
// The result is empty when `from` is after `to`.
func WorkDays(from, to time.Time, workWeekdays map[time.Weekday]bool, holidays map[time.Time]bool) []time.Time {
	var days []time.Time
	for d := model.Date(from); !d.After(model.Date(to)); d = d.AddDate(0, 0, 1) {
		if !workWeekdays[d.Weekday()] {
			continue
		}
		if holidays[d] {
			continue
		}
		days = append(days, d)
	}
	return days
}

// Window returns the subsequence of days falling inside [start, end].
// The input must be sorted ascending; the output preserves order.
func Window(days []time.Time, start, end time.Time) []time.Time {
	var out []time.Time
	for _, d := range days {
		if d.Before(start) {
			continue
		}
		if d.After(end) {
			break
		}
		out = append(out, d)
	}
	return out
}

// SpreadEvenly thins days down to want evenly spaced picks. When the input is
// no larger than want it is returned as is.
func SpreadEvenly(days []time.Time, want int) []time.Time {
	if want <= 0 || len(days) <= want {
		return days
	}
	interval := float64(len(days)) / float64(want)
	out := make([]time.Time, 0, want)
	for i := 0; i < want; i++ {
		idx := int(math.Round(float64(i) * interval))
		if idx >= len(days) {
			idx = len(days) - 1
		}
		out = append(out, days[idx])
	}
	return out
}
