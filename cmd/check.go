package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/rplan/config"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a plan file without running the allocator",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(planPath)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	if _, err := cfg.Compile(); err != nil {
		return fmt.Errorf("compile plan: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "plan ok: %d project(s), %d holiday(s)\n", len(cfg.Projects), len(cfg.Holidays))
	return nil
}
