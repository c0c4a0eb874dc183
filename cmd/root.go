package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kilianp07/rplan/config"
	"github.com/kilianp07/rplan/core/allocator"
	"github.com/kilianp07/rplan/core/model"
	"github.com/kilianp07/rplan/core/report"
	"github.com/kilianp07/rplan/infra/logger"
)

var (
	planPath        string
	todayOverride   string
	outputFormat    string
	withAssignments bool
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "rplan",
	Short: "Check whether your working days cover your project deadlines",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&planPath, "file", "f", "", "path to the plan file (YAML or JSON)")
	_ = rootCmd.MarkPersistentFlagRequired("file")
	rootCmd.Flags().StringVar(&todayOverride, "today", "", "override today's date (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&outputFormat, "format", "text", "report format: text or json")
	rootCmd.Flags().BoolVar(&withAssignments, "assignments", false, "include the day-by-day assignment listing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(planPath)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	plan, err := cfg.Compile()
	if err != nil {
		return fmt.Errorf("compile plan: %w", err)
	}

	logg := logger.New("rplan", verbose)
	if len(plan.Projects) == 0 {
		logg.Warnf("plan %s lists no projects", planPath)
	}

	today := time.Now()
	if todayOverride != "" {
		if today, err = model.ParseDate(todayOverride); err != nil {
			return err
		}
	}

	runID := uuid.NewString()
	logg.Debugw("allocating", map[string]any{
		"run_id":   runID,
		"policy":   plan.Settings.Policy.String(),
		"projects": len(plan.Projects),
	})
	alloc := allocator.Run(plan, today)

	rep := report.New(runID, time.Now(), plan.Settings.Policy, alloc, withAssignments)
	switch outputFormat {
	case "text":
		return rep.WriteText(cmd.OutOrStdout())
	case "json":
		return rep.WriteJSON(cmd.OutOrStdout())
	default:
		return fmt.Errorf("unknown format %q (expected text or json)", outputFormat)
	}
}
