package model

import (
	"fmt"
	"strings"
	"time"
)

// Policy selects how the allocator distributes working days across projects.
type Policy int

const (
	// PolicyMix allows interleaving days of different projects within the
	// scheduling horizon.
	PolicyMix Policy = iota
	// PolicyBlock exhausts one project's contiguous eligible days before
	// advancing to the next priority.
	PolicyBlock
)

// ParsePolicy converts a config string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "mix":
		return PolicyMix, nil
	case "block":
		return PolicyBlock, nil
	default:
		return PolicyMix, fmt.Errorf("unknown policy %q (expected mix or block)", s)
	}
}

func (p Policy) String() string {
	if p == PolicyBlock {
		return "block"
	}
	return "mix"
}

// Project is a prioritized demand for working days inside a date window.
// Start and End are inclusive, at UTC midnight. Lower Priority is more urgent.
type Project struct {
	Name         string
	Start        time.Time
	End          time.Time
	RequiredDays int
	Priority     int
}

// Settings holds the work-schedule parameters shared by all projects.
type Settings struct {
	// WorkWeekdays flags the weekdays on which work may be scheduled.
	WorkWeekdays map[time.Weekday]bool
	Policy       Policy
	// SpreadEvenly thins each project's eligible days to evenly spaced
	// picks before assignment.
	SpreadEvenly bool
}

// Plan is the validated, immutable input of one allocation run.
type Plan struct {
	Settings Settings
	Projects []Project
	// Holidays maps UTC-midnight dates excluded from every project.
	Holidays map[time.Time]bool
}

// MaxEnd returns the latest project end date, or the zero time when the plan
// has no projects.
func (p Plan) MaxEnd() time.Time {
	var latest time.Time
	for _, pr := range p.Projects {
		if pr.End.After(latest) {
			latest = pr.End
		}
	}
	return latest
}

// Date normalizes t to UTC midnight so dates compare with ==.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
