package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kilianp07/rplan/core/model"
)

// SettingsConfig defines the work-schedule section of the plan file. The work
// week is given either as a count of days or as an explicit weekday list; the
// list wins when both are present.
type SettingsConfig struct {
	// WorkingDaysPerWeek selects the first N weekdays starting Monday.
	WorkingDaysPerWeek int `json:"working_days_per_week"`
	// WorkDays names the working weekdays explicitly, e.g. [monday, wednesday].
	WorkDays []string `json:"work_days"`
	// Policy is "mix" or "block".
	Policy string `json:"policy"`
	// SpreadDaysEvenly spaces each project's days across its window instead
	// of packing them at the front.
	SpreadDaysEvenly bool `json:"spread_days_evenly"`
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// weekOrder lists weekdays starting Monday, the order working_days_per_week
// counts through.
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// SetDefaults applies sane defaults.
func (c *SettingsConfig) SetDefaults() {
	if c.WorkingDaysPerWeek == 0 && len(c.WorkDays) == 0 {
		c.WorkingDaysPerWeek = 5
	}
	if c.Policy == "" {
		c.Policy = "mix"
	}
}

// Validate checks mandatory fields.
func (c SettingsConfig) Validate() error {
	if len(c.WorkDays) == 0 {
		if c.WorkingDaysPerWeek < 1 || c.WorkingDaysPerWeek > 7 {
			return fmt.Errorf("working_days_per_week must be between 1 and 7, got %d", c.WorkingDaysPerWeek)
		}
	}
	for _, name := range c.WorkDays {
		if _, ok := weekdayNames[strings.ToLower(name)]; !ok {
			return fmt.Errorf("unknown weekday %q", name)
		}
	}
	if _, err := model.ParsePolicy(c.Policy); err != nil {
		return err
	}
	return nil
}

// Compile builds the core settings from the file schema.
func (c SettingsConfig) Compile() (model.Settings, error) {
	policy, err := model.ParsePolicy(c.Policy)
	if err != nil {
		return model.Settings{}, err
	}
	weekdays := make(map[time.Weekday]bool)
	if len(c.WorkDays) > 0 {
		for _, name := range c.WorkDays {
			wd, ok := weekdayNames[strings.ToLower(name)]
			if !ok {
				return model.Settings{}, fmt.Errorf("unknown weekday %q", name)
			}
			weekdays[wd] = true
		}
	} else {
		for _, wd := range weekOrder[:c.WorkingDaysPerWeek] {
			weekdays[wd] = true
		}
	}
	return model.Settings{
		WorkWeekdays: weekdays,
		Policy:       policy,
		SpreadEvenly: c.SpreadDaysEvenly,
	}, nil
}
