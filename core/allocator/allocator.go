// Package allocator assigns a finite pool of working days to prioritized
// projects. Higher priority (lower number) claims days first; the mix policy
// takes the earliest free days in a project's window, the block policy keeps
// each project's days on consecutive working days to limit context switching.
package allocator

import (
	"sort"
	"time"

	"github.com/kilianp07/rplan/core/calendar"
	"github.com/kilianp07/rplan/core/model"
)

// Run computes the allocation for plan as of today. The computation is pure:
// the same plan and date always produce the same allocation. Deficits are
// part of the result, never an error.
func Run(plan model.Plan, today time.Time) model.Allocation {
	today = model.Date(today)
	days := calendar.WorkDays(today, plan.MaxEnd(), plan.Settings.WorkWeekdays, plan.Holidays)

	index := make(map[time.Time]int, len(days))
	for i, d := range days {
		index[d] = i
	}
	owner := make([]string, len(days))

	projects := make([]model.Project, len(plan.Projects))
	copy(projects, plan.Projects)
	// Stable keeps input order for equal priorities.
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Priority < projects[j].Priority
	})

	results := make([]model.ProjectResult, 0, len(projects))
	for _, p := range projects {
		eligible := calendar.Window(days, p.Start, p.End)
		if plan.Settings.SpreadEvenly {
			eligible = calendar.SpreadEvenly(eligible, p.RequiredDays)
		}

		var free []int
		for _, d := range eligible {
			if i := index[d]; owner[i] == "" {
				free = append(free, i)
			}
		}

		var picked []int
		switch plan.Settings.Policy {
		case model.PolicyBlock:
			picked = pickBlock(free, p.RequiredDays)
		default:
			picked = pickMix(free, p.RequiredDays)
		}

		for _, i := range picked {
			owner[i] = p.Name
		}

		allocated := len(picked)
		deficit := p.RequiredDays - allocated
		if deficit < 0 {
			deficit = 0
		}
		// met_by only exists once the full quota is covered; an unmet
		// project has no completion date.
		var metBy time.Time
		if deficit == 0 && allocated > 0 {
			metBy = days[picked[allocated-1]]
		}
		results = append(results, model.ProjectResult{
			Name:         p.Name,
			Priority:     p.Priority,
			RequiredDays: p.RequiredDays,
			Allocated:    allocated,
			Deficit:      deficit,
			MetBy:        metBy,
			Verdict:      verdict(p, deficit, today),
		})
	}

	var assignments []model.Assignment
	for i, name := range owner {
		if name != "" {
			assignments = append(assignments, model.Assignment{Day: days[i], Project: name})
		}
	}
	return model.Allocation{Assignments: assignments, Results: results}
}

// pickMix takes the earliest free days until the quota is met.
func pickMix(free []int, quota int) []int {
	if len(free) > quota {
		free = free[:quota]
	}
	return free
}

// pickBlock groups the free days into runs of consecutive working days and
// prefers the earliest run that covers the remaining quota. When no run is
// large enough it consumes the longest run whole and retries with the rest.
func pickBlock(free []int, quota int) []int {
	runs := splitRuns(free)
	var picked []int
	for quota > 0 && len(runs) > 0 {
		sel := -1
		for i, r := range runs {
			if len(r) >= quota {
				sel = i
				break
			}
		}
		if sel == -1 {
			for i, r := range runs {
				if sel == -1 || len(r) > len(runs[sel]) {
					sel = i
				}
			}
		}
		run := runs[sel]
		if len(run) > quota {
			run = run[:quota]
		}
		picked = append(picked, run...)
		quota -= len(run)
		runs = append(runs[:sel], runs[sel+1:]...)
	}
	sort.Ints(picked)
	return picked
}

// splitRuns partitions sorted day indexes into maximal consecutive runs.
func splitRuns(free []int) [][]int {
	var runs [][]int
	for i := 0; i < len(free); {
		j := i + 1
		for j < len(free) && free[j] == free[j-1]+1 {
			j++
		}
		runs = append(runs, free[i:j])
		i = j
	}
	return runs
}

func verdict(p model.Project, deficit int, today time.Time) model.Verdict {
	switch {
	case deficit == 0:
		return model.VerdictScheduled
	case p.End.Before(today):
		return model.VerdictInfeasible
	default:
		return model.VerdictAtRisk
	}
}
