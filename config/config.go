// Package config loads and validates the plan file describing settings,
// projects and holidays.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/rplan/core/model"
)

// Config mirrors the plan file schema. Dates stay as strings until Compile
// parses them into the core model.
type Config struct {
	Settings SettingsConfig  `json:"settings"`
	Projects []ProjectConfig `json:"projects"`
	Holidays []string        `json:"holidays"`
}

// ProjectConfig is one project entry of the plan file.
type ProjectConfig struct {
	Name         string `json:"name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	RequiredDays int    `json:"required_days"`
	Priority     int    `json:"priority"`
}

// Load reads the plan file at path. YAML and JSON are supported, chosen by
// file extension. RPLAN_-prefixed environment variables override file values.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported plan format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("RPLAN_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "rplan_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode plan file: %w", err)
	}
	cfg.Settings.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the whole plan file.
func (c Config) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("project %d: %w", i+1, err)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate project name %q", p.Name)
		}
		seen[p.Name] = true
	}
	for _, h := range c.Holidays {
		if _, err := model.ParseDate(h); err != nil {
			return fmt.Errorf("holiday: %w", err)
		}
	}
	return nil
}

// Validate checks mandatory project fields.
func (p ProjectConfig) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	start, err := model.ParseDate(p.StartDate)
	if err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	end, err := model.ParseDate(p.EndDate)
	if err != nil {
		return fmt.Errorf("end_date: %w", err)
	}
	if start.After(end) {
		return fmt.Errorf("start_date %s is after end_date %s", p.StartDate, p.EndDate)
	}
	if p.RequiredDays < 1 {
		return fmt.Errorf("required_days must be positive, got %d", p.RequiredDays)
	}
	if p.Priority < 1 {
		return fmt.Errorf("priority must be positive, got %d", p.Priority)
	}
	return nil
}

// Compile converts the validated file schema into the core plan model.
func (c Config) Compile() (model.Plan, error) {
	settings, err := c.Settings.Compile()
	if err != nil {
		return model.Plan{}, err
	}
	plan := model.Plan{
		Settings: settings,
		Holidays: make(map[time.Time]bool, len(c.Holidays)),
	}
	for _, p := range c.Projects {
		start, err := model.ParseDate(p.StartDate)
		if err != nil {
			return model.Plan{}, err
		}
		end, err := model.ParseDate(p.EndDate)
		if err != nil {
			return model.Plan{}, err
		}
		plan.Projects = append(plan.Projects, model.Project{
			Name:         p.Name,
			Start:        start,
			End:          end,
			RequiredDays: p.RequiredDays,
			Priority:     p.Priority,
		})
	}
	for _, h := range c.Holidays {
		d, err := model.ParseDate(h)
		if err != nil {
			return model.Plan{}, err
		}
		plan.Holidays[d] = true
	}
	return plan, nil
}
