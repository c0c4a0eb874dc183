package model

import "time"

// Verdict classifies a project's feasibility after allocation.
type Verdict string

const (
	VerdictScheduled  Verdict = "fully scheduled"
	VerdictAtRisk     Verdict = "at risk"
	VerdictInfeasible Verdict = "infeasible"
)

// Assignment binds one working day to the project that claimed it.
type Assignment struct {
	Day     time.Time `json:"day"`
	Project string    `json:"project"`
}

// ProjectResult summarizes one project's share of the allocation.
type ProjectResult struct {
	Name         string    `json:"name"`
	Priority     int       `json:"priority"`
	RequiredDays int       `json:"required_days"`
	Allocated    int       `json:"allocated"`
	Deficit      int       `json:"deficit"`
	MetBy        time.Time `json:"met_by"`
	Verdict      Verdict   `json:"verdict"`
}

// Allocation is the outcome of one run: per-day assignments in chronological
// order and per-project results in priority order.
type Allocation struct {
	Assignments []Assignment    `json:"assignments"`
	Results     []ProjectResult `json:"results"`
}

// TotalDeficit sums the shortfall across all projects. It is the headline
// answer to whether the available days cover the stated demands.
func (a Allocation) TotalDeficit() int {
	total := 0
	for _, r := range a.Results {
		total += r.Deficit
	}
	return total
}
