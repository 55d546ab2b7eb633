package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/carson-networks/finance-engine/internal/payoff"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// scenarioCells renders the columns shared by the compare and baseline
// tables.
func scenarioCells(s payoff.PayoffScenario) []string {
	payoffDate := "-"
	if s.PaidOff() {
		payoffDate = s.PayoffDate.Format("2006-01-02")
	}
	return []string{
		s.Outcome.String(),
		itoa(s.Months),
		s.TotalInterest.String(),
		s.TotalPayments.String(),
		s.RemainingBalance.String(),
		payoffDate,
	}
}
