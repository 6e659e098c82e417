package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/osaptools/osap/internal/domain"
)

var hundredDec = decimal.NewFromInt(100)

// View renders the explorer (required by tea.Model).
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("OSAP Payment Explorer"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	if m.cfg == nil {
		b.WriteString(LabelStyle.Render("Loading configuration..."))
		return b.String()
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top, m.loanCard(), m.parameterCard())
	b.WriteString(cards)
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(LabelStyle.Render("Simulating..."))
		b.WriteString("\n")
	case m.minimumRequired != "":
		b.WriteString(ErrorStyle.Render(
			fmt.Sprintf("Payment too low - balances would never shrink. Minimum required: %s", m.minimumRequired)))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString(m.resultCard())
		b.WriteString("\n")
		b.WriteString(m.scheduleTable())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) loanCard() string {
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render("Loan"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Total:"), ValueStyle.Render("$"+m.loan.TotalAmount.StringFixed(2)))
	fmt.Fprintf(&b, "%s %s @ %s%%\n", LabelStyle.Render("Federal:"),
		ValueStyle.Render("$"+m.loan.FederalAmount.StringFixed(2)),
		m.loan.FederalRate.Mul(hundredDec).StringFixed(2))
	fmt.Fprintf(&b, "%s %s @ %s%%\n", LabelStyle.Render("Provincial:"),
		ValueStyle.Render("$"+m.loan.ProvincialAmount.StringFixed(2)),
		m.loan.ProvincialRate.Mul(hundredDec).StringFixed(2))
	fmt.Fprintf(&b, "%s %s", LabelStyle.Render("Repayment from:"), ValueStyle.Render(m.loan.RepaymentStart.Format("January 2006")))
	return CardStyle.Render(b.String())
}

func (m Model) parameterCard() string {
	grace := "off"
	if m.includeGrace {
		grace = "on"
	}
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render("Parameters"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Monthly payment:"), ValueStyle.Render("$"+m.payment.StringFixed(2)))
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Annual extra:"), ValueStyle.Render("$"+m.extraAnnual.StringFixed(2)))
	fmt.Fprintf(&b, "%s %s", LabelStyle.Render("Grace accrual:"), ValueStyle.Render(grace))
	return CardStyle.Render(b.String())
}

func (m Model) resultCard() string {
	r := m.result
	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render("Result"))
	b.WriteString("\n")
	payoff := fmt.Sprintf("%d months (%s)", r.Months, r.PayoffDate.Format("January 2006"))
	if !r.Completed {
		payoff = fmt.Sprintf("not paid off within %d months", r.Months)
	}
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Payoff:"), PositiveStyle.Render(payoff))
	fmt.Fprintf(&b, "%s %s\n", LabelStyle.Render("Total interest:"), ValueStyle.Render("$"+r.TotalInterest.StringFixed(2)))
	fmt.Fprintf(&b, "%s %s", LabelStyle.Render("Total paid:"), ValueStyle.Render("$"+r.TotalPaid.StringFixed(2)))
	return CardStyle.Render(b.String())
}

// scheduleTable shows the first months and the final month of the schedule.
func (m Model) scheduleTable() string {
	rows := m.result.Schedule
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-6s %14s %14s %12s %12s", "Month", "Federal", "Provincial", "Interest", "Principal")))
	b.WriteString("\n")

	preview := rows
	truncated := false
	if len(rows) > 6 {
		preview = rows[:5]
		truncated = true
	}
	for _, row := range preview {
		b.WriteString(formatScheduleRow(row))
		b.WriteString("\n")
	}
	if truncated {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("  ... %d more months ...", len(rows)-6)))
		b.WriteString("\n")
		b.WriteString(formatScheduleRow(rows[len(rows)-1]))
		b.WriteString("\n")
	}
	return b.String()
}

func formatScheduleRow(row domain.ScheduleRow) string {
	return fmt.Sprintf("%-6d %14s %14s %12s %12s",
		row.Month,
		"$"+row.FederalBalance.StringFixed(2),
		"$"+row.ProvincialBalance.StringFixed(2),
		"$"+row.Interest.StringFixed(2),
		"$"+row.Principal.StringFixed(2))
}
