package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/finance-engine/internal/logging"
	"github.com/carson-networks/finance-engine/internal/payoff"
)

// scheduleRow is one debt's line in one month of the exported schedule.
type scheduleRow struct {
	Strategy  string `csv:"strategy"`
	Month     int    `csv:"month"`
	Debt      string `csv:"debt"`
	Interest  string `csv:"interest"`
	Payment   string `csv:"payment"`
	Remaining string `csv:"remaining"`
}

func compareCmd() *cobra.Command {
	var schedulePath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare snowball and avalanche for the plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("file")
			if err != nil {
				return err
			}
			return runCompare(cmd, path, schedulePath)
		},
	}
	cmd.Flags().StringVar(&schedulePath, "schedule", "", "write the month by month schedule of both strategies to this CSV file")
	return cmd
}

func runCompare(cmd *cobra.Command, planPath, schedulePath string) error {
	p, err := loadPlan(planPath)
	if err != nil {
		return err
	}
	p.Options.RecordSchedule = schedulePath != ""

	comparison, err := payoff.Compare(p.Debts, p.Extra, p.Options)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		logging.FieldDebtCount: len(p.Debts),
		logging.FieldStrategy:  comparison.Recommended.String(),
	}).Debug("payoffctl.compare.computed")

	out := cmd.OutOrStdout()
	t := newTable("strategy", "outcome", "months", "interest", "paid", "remaining", "payoff date")
	t.Row(append([]string{payoff.StrategySnowball.String()}, scenarioCells(comparison.Snowball)...)...)
	t.Row(append([]string{payoff.StrategyAvalanche.String()}, scenarioCells(comparison.Avalanche)...)...)
	fmt.Fprintln(out, t.Render())

	summary := fmt.Sprintf("Recommended: %s, saving %s in interest", comparison.Recommended, comparison.Savings)
	if comparison.MonthsSaved > 0 {
		summary += fmt.Sprintf(" and %d months", comparison.MonthsSaved)
	}
	fmt.Fprintln(out, titleStyle.Render(summary))
	if !comparison.Snowball.PaidOff() || !comparison.Avalanche.PaidOff() {
		fmt.Fprintln(out, noteStyle.Render("At least one strategy does not pay off within the month cap."))
	}

	if schedulePath == "" {
		return nil
	}
	rows := scheduleRows(p.Debts, comparison)
	if err := writeSchedule(schedulePath, rows); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d schedule rows to %s\n", len(rows), schedulePath)
	return nil
}

func scheduleRows(debts []payoff.Debt, comparison payoff.StrategyComparison) []*scheduleRow {
	names := make(map[uuid.UUID]string, len(debts))
	for _, d := range debts {
		names[d.ID] = d.Name
	}

	var rows []*scheduleRow
	add := func(strategy payoff.Strategy, s payoff.PayoffScenario) {
		for _, entry := range s.Schedule {
			for _, p := range entry.Payments {
				rows = append(rows, &scheduleRow{
					Strategy:  strategy.String(),
					Month:     entry.Month,
					Debt:      names[p.DebtID],
					Interest:  p.Interest.String(),
					Payment:   p.Payment.String(),
					Remaining: p.RemainingBalance.String(),
				})
			}
		}
	}
	add(payoff.StrategySnowball, comparison.Snowball)
	add(payoff.StrategyAvalanche, comparison.Avalanche)
	return rows
}

func writeSchedule(path string, rows []*scheduleRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}
	return nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
