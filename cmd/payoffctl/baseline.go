package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-engine/internal/payoff"
)

func baselineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Project each debt paying only its minimum",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}
			return runBaseline(cmd, path)
		},
	}
}

func runBaseline(cmd *cobra.Command, planPath string) error {
	p, err := loadPlan(planPath)
	if err != nil {
		return err
	}

	t := newTable("debt", "outcome", "months", "interest", "paid", "remaining", "payoff date")
	for _, d := range p.Debts {
		scenario, err := payoff.Baseline(d, p.Options.Start)
		if err != nil {
			return fmt.Errorf("baseline %q: %w", d.Name, err)
		}
		t.Row(append([]string{d.Name}, scenarioCells(scenario)...)...)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
