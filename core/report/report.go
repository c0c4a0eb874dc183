// Package report renders an allocation as a human-readable text report or as
// a JSON document.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kilianp07/rplan/core/model"
)

const dateLayout = "2006-01-02"

// Report wraps one run's allocation with its identifying metadata.
type Report struct {
	RunID        string                `json:"run_id"`
	GeneratedAt  time.Time             `json:"generated_at"`
	Policy       string                `json:"policy"`
	Results      []model.ProjectResult `json:"results"`
	Assignments  []model.Assignment    `json:"assignments,omitempty"`
	TotalDeficit int                   `json:"total_deficit"`
}

// New builds a Report from an allocation.
func New(runID string, generatedAt time.Time, policy model.Policy, alloc model.Allocation, withAssignments bool) Report {
	r := Report{
		RunID:        runID,
		GeneratedAt:  generatedAt,
		Policy:       policy.String(),
		Results:      alloc.Results,
		TotalDeficit: alloc.TotalDeficit(),
	}
	if withAssignments {
		r.Assignments = alloc.Assignments
	}
	return r
}

// WriteText prints the per-project summary, the optional day-by-day
// assignments and the total-deficit headline.
func (r Report) WriteText(w io.Writer) error {
	if len(r.Results) == 0 {
		_, err := fmt.Fprintln(w, "no projects to schedule")
		return err
	}
	for _, res := range r.Results {
		metBy := "none"
		if !res.MetBy.IsZero() {
			metBy = res.MetBy.Format(dateLayout)
		}
		if _, err := fmt.Fprintf(w, "%-20s priority=%d required=%d allocated=%d deficit=%d met_by=%s verdict=%s\n",
			res.Name, res.Priority, res.RequiredDays, res.Allocated, res.Deficit, metBy, res.Verdict); err != nil {
			return err
		}
	}
	if r.Assignments != nil {
		if _, err := fmt.Fprintln(w, strings.Repeat("-", 40)); err != nil {
			return err
		}
		for _, a := range r.Assignments {
			if _, err := fmt.Fprintf(w, "%s: %s\n", a.Day.Format(dateLayout), a.Project); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 40)); err != nil {
		return err
	}
	if r.TotalDeficit == 0 {
		_, err := fmt.Fprintln(w, "total deficit: 0 (all projects fit)")
		return err
	}
	_, err := fmt.Fprintf(w, "total deficit: %d day(s) short\n", r.TotalDeficit)
	return err
}

// WriteJSON encodes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
