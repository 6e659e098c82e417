package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/osaptools/osap/internal/domain"
)

// ConsoleFormatter renders the full repayment analysis as a plain-text
// report. All currency is rounded to cents here, at the boundary.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintln(&buf, "OSAP REPAYMENT ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintln(&buf)

	writeLoanDetails(&buf, report)
	writeGracePeriod(&buf, report)
	writeRAPStatus(&buf, report.Scenarios.RAP)
	writeScenarios(&buf, report)
	writeSalaryProjection(&buf, report.Scenarios.Salary)

	if report.Scenarios.AdvisoryNote != "" {
		fmt.Fprintln(&buf, "ADVISORY")
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		fmt.Fprintf(&buf, "%s\n\n", report.Scenarios.AdvisoryNote)
	}

	return buf.Bytes(), nil
}

func writeLoanDetails(buf *bytes.Buffer, report *domain.AnalysisReport) {
	loan := report.Loan
	fmt.Fprintln(buf, "LOAN DETAILS")
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	fmt.Fprintf(buf, "Total Amount:       %s\n", FormatCurrency(round2(loan.TotalAmount)))
	fmt.Fprintf(buf, "Federal Portion:    %s at %s\n", FormatCurrency(round2(loan.FederalAmount)), FormatPercentage(loan.FederalRate))
	fmt.Fprintf(buf, "Provincial Portion: %s at %s\n", FormatCurrency(round2(loan.ProvincialAmount)), FormatPercentage(loan.ProvincialRate))
	fmt.Fprintf(buf, "Blended Rate:       %s\n", FormatPercentage(loan.BlendedRate))
	fmt.Fprintf(buf, "Graduation:         %s\n", FormatMonthYear(loan.GraduationDate))
	fmt.Fprintf(buf, "Repayment Starts:   %s\n", FormatMonthYear(loan.RepaymentStart))
	fmt.Fprintln(buf)
}

func writeGracePeriod(buf *bytes.Buffer, report *domain.AnalysisReport) {
	grace := report.Grace
	fmt.Fprintln(buf, "GRACE PERIOD")
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	fmt.Fprintf(buf, "During your %d-month grace period, %s in interest will accrue on your federal portion.\n",
		report.Rates.GracePeriodMonths, FormatCurrency(round2(grace.TotalInterest)))
	fmt.Fprintf(buf, "Balance After Grace: %s\n", FormatCurrency(round2(grace.TotalBalance)))
	fmt.Fprintln(buf)
}

func writeRAPStatus(buf *bytes.Buffer, rap domain.RAPStatus) {
	fmt.Fprintln(buf, "REPAYMENT ASSISTANCE PLAN")
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	fmt.Fprintf(buf, "Annual Income: %s  Family Size: %d\n", FormatCurrency(round2(rap.AnnualIncome)), rap.FamilySize)
	switch rap.Level {
	case domain.RAPFull:
		fmt.Fprintln(buf, "Status: FULL assistance - no required payment while enrolled.")
	case domain.RAPPartial:
		fmt.Fprintf(buf, "Status: PARTIAL assistance - required payment %s/month.\n", FormatCurrency(round2(rap.MonthlyPayment)))
	default:
		fmt.Fprintf(buf, "Status: not eligible (income above %s for this family size).\n", FormatCurrency(rap.Stage1Threshold))
	}
	fmt.Fprintln(buf)
}

func writeScenarios(buf *bytes.Buffer, report *domain.AnalysisReport) {
	fmt.Fprintln(buf, "PAYMENT SCENARIOS")
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	fmt.Fprintf(buf, "Disposable Income: %s/month\n\n", FormatCurrency(round2(report.Scenarios.DisposableIncome)))

	for _, outcome := range report.Scenarios.Outcomes {
		fmt.Fprintf(buf, "%-12s %s/month", strings.ToUpper(outcome.Tier), FormatCurrency(round2(outcome.Payment)))
		if outcome.Rejected() {
			if outcome.MinimumRequired != nil {
				fmt.Fprintf(buf, "  - payment too low, minimum required %s\n", FormatCurrency(round2(*outcome.MinimumRequired)))
			} else {
				fmt.Fprintln(buf, "  - payment too low")
			}
			continue
		}
		result := outcome.Result
		fmt.Fprintf(buf, "  paid off in %d months (%s), interest %s, total %s\n",
			result.Months, FormatMonthYear(result.PayoffDate),
			FormatCurrency(round2(result.TotalInterest)), FormatCurrency(round2(result.TotalPaid)))
		if !result.Completed {
			fmt.Fprintf(buf, "             balance remains after %d months at this payment\n", result.Months)
		}
		if exceedsForgivenessHorizon(report, result) {
			fmt.Fprintf(buf, "             note: payoff runs past the %d-year assistance horizon\n", report.Rates.ForgivenessYears)
		}
	}
	fmt.Fprintln(buf)

	if len(report.Scenarios.Savings) > 0 {
		fmt.Fprintln(buf, "SAVINGS VS MINIMUM")
		fmt.Fprintln(buf, strings.Repeat("-", 50))
		for _, tier := range []string{domain.TierRecommended, domain.TierAggressive} {
			if s, ok := report.Scenarios.Savings[tier]; ok {
				fmt.Fprintf(buf, "%-12s saves %s interest and %d months\n",
					strings.ToUpper(tier), FormatCurrency(round2(s.InterestSaved)), s.MonthsSaved)
			}
		}
		fmt.Fprintln(buf)
	}
}

func exceedsForgivenessHorizon(report *domain.AnalysisReport, result *domain.PayoffResult) bool {
	horizon := report.Rates.ForgivenessYears * 12
	return horizon > 0 && result.Months > horizon
}

func writeSalaryProjection(buf *bytes.Buffer, salary domain.SalaryProjection) {
	fmt.Fprintln(buf, "SALARY OUTLOOK")
	fmt.Fprintln(buf, strings.Repeat("-", 50))
	fmt.Fprintf(buf, "Field: %s (outlook: %s, 5-year growth %s)\n",
		salary.Field, salary.Outlook, FormatPercentage(salary.FiveYearGrowth))
	for _, p := range salary.Points {
		fmt.Fprintf(buf, "  %2d years: %s\n", p.Years, FormatCurrency(round2(p.Salary)))
	}
	fmt.Fprintln(buf)
}

// FormatDebtPlan renders a multi-debt avalanche plan for the console.
func FormatDebtPlan(plan *domain.DebtPlan) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DEBT PRIORITIZATION (AVALANCHE)")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	for i, d := range plan.Order {
		fmt.Fprintf(&buf, "%d. %-18s balance %s at %s, minimum %s/month\n",
			i+1, d.Name, FormatCurrency(round2(d.Balance)), FormatPercentage(d.Rate), FormatCurrency(round2(d.MinimumPayment)))
	}
	fmt.Fprintf(&buf, "\nBudget %s covers minimums of %s; surplus %s goes to %s.\n",
		FormatCurrency(round2(plan.Budget)), FormatCurrency(round2(plan.TotalMinimum)),
		FormatCurrency(round2(plan.Surplus)), plan.FocusDebt)
	return buf.String()
}

// FormatInvestComparison renders an invest-vs-payoff comparison for the
// console.
func FormatInvestComparison(cmp *domain.InvestComparison) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVEST VS PAYOFF")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintf(&buf, "Aggressive payment: %s/month, debt-free in %d months\n",
		FormatCurrency(round2(cmp.AggressivePayoff.MonthlyPayment)), cmp.AggressivePayoff.Months)
	fmt.Fprintf(&buf, "Minimum payment:    %s/month, debt-free in %d months\n",
		FormatCurrency(round2(cmp.MinimumPayoff.MonthlyPayment)), cmp.MinimumPayoff.Months)
	fmt.Fprintf(&buf, "Investing the %s difference over %d months grows to %s (contributions %s).\n",
		FormatCurrency(round2(cmp.MonthlyDifference)), cmp.HorizonMonths,
		FormatCurrency(round2(cmp.InvestmentBalance)), FormatCurrency(round2(cmp.TotalInvested)))
	fmt.Fprintf(&buf, "Aggressive payoff saves %s in interest.\n", FormatCurrency(round2(cmp.InterestSaved)))
	fmt.Fprintf(&buf, "Verdict: %s\n", verdictLine(cmp))
	return buf.String()
}

func verdictLine(cmp *domain.InvestComparison) string {
	if cmp.Winner == "invest" {
		return "investing the difference comes out ahead (simple comparison, not time-value adjusted)"
	}
	return "paying the loan down faster comes out ahead (simple comparison, not time-value adjusted)"
}

// FormatWhatIf renders a what-if comparison for the console.
func FormatWhatIf(w *domain.WhatIfResult) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WHAT-IF")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintf(&buf, "New payment %s/month pays off in %d months with %s interest.\n",
		FormatCurrency(round2(w.NewPayment)), w.Months, FormatCurrency(round2(w.TotalInterest)))
	fmt.Fprintf(&buf, "Versus the baseline you save %s and %d months.\n",
		FormatCurrency(round2(w.InterestSaved)), w.MonthsSaved)
	return buf.String()
}

// FormatRates renders the active rate table.
func FormatRates(rates domain.Rates) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CURRENT RATES")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintf(&buf, "Prime Rate:      %s\n", FormatPercentage(rates.PrimeRate))
	fmt.Fprintf(&buf, "Federal Rate:    %s\n", FormatPercentage(rates.FederalRate))
	fmt.Fprintf(&buf, "Provincial Rate: %s\n", FormatPercentage(rates.ProvincialRate))
	fmt.Fprintf(&buf, "Grace Period:    %d months\n", rates.GracePeriodMonths)
	return buf.String()
}
