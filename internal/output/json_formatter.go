package output

import (
	"encoding/json"

	"github.com/osaptools/osap/internal/domain"
)

// JSONFormatter emits the analysis report as indented JSON. Currency fields
// are rounded to cents first so downstream consumers see boundary-rounded
// values, never raw simulation precision.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	rounded := RoundReport(*report)
	return json.MarshalIndent(&rounded, "", "  ")
}

// RoundReport returns a copy of the report with every currency amount rounded
// to two decimal places. The engine keeps full precision internally to avoid
// compounding rounding error; this is the single place precision is dropped.
func RoundReport(report domain.AnalysisReport) domain.AnalysisReport {
	report.Loan = roundLoan(report.Loan)
	report.Grace = roundGrace(report.Grace)
	report.Scenarios = roundScenarios(report.Scenarios)
	return report
}

func roundLoan(loan domain.Loan) domain.Loan {
	loan.FederalAmount = round2(loan.FederalAmount)
	loan.ProvincialAmount = round2(loan.ProvincialAmount)
	loan.BlendedRate = loan.BlendedRate.Round(4)
	return loan
}

func roundGrace(grace domain.GraceResult) domain.GraceResult {
	grace.TotalInterest = round2(grace.TotalInterest)
	grace.FederalBalance = round2(grace.FederalBalance)
	grace.ProvincialBalance = round2(grace.ProvincialBalance)
	grace.TotalBalance = round2(grace.TotalBalance)
	for i := range grace.Months {
		grace.Months[i].InterestAccrued = round2(grace.Months[i].InterestAccrued)
		grace.Months[i].FederalBalance = round2(grace.Months[i].FederalBalance)
	}
	return grace
}

func roundScenarios(sa domain.ScenarioAnalysis) domain.ScenarioAnalysis {
	sa.DisposableIncome = round2(sa.DisposableIncome)
	outcomes := make([]domain.ScenarioOutcome, len(sa.Outcomes))
	for i, o := range sa.Outcomes {
		o.Payment = round2(o.Payment)
		if o.MinimumRequired != nil {
			required := round2(*o.MinimumRequired)
			o.MinimumRequired = &required
		}
		if o.Result != nil {
			result := RoundPayoff(*o.Result)
			o.Result = &result
		}
		outcomes[i] = o
	}
	sa.Outcomes = outcomes

	savings := make(map[string]domain.TierSavings, len(sa.Savings))
	for tier, s := range sa.Savings {
		s.InterestSaved = round2(s.InterestSaved)
		savings[tier] = s
	}
	sa.Savings = savings

	sa.RAP.MonthlyPayment = round2(sa.RAP.MonthlyPayment)
	sa.RAP.AnnualIncome = round2(sa.RAP.AnnualIncome)

	sa.Salary.EntrySalary = round2(sa.Salary.EntrySalary)
	points := make([]domain.SalaryPoint, len(sa.Salary.Points))
	for i, p := range sa.Salary.Points {
		p.Salary = round2(p.Salary)
		points[i] = p
	}
	sa.Salary.Points = points

	return sa
}

// RoundPayoff rounds a payoff result's currency fields, schedule included.
func RoundPayoff(result domain.PayoffResult) domain.PayoffResult {
	result.MonthlyPayment = round2(result.MonthlyPayment)
	result.ExtraAnnualPayment = round2(result.ExtraAnnualPayment)
	result.TotalInterest = round2(result.TotalInterest)
	result.FederalInterest = round2(result.FederalInterest)
	result.ProvincialInterest = round2(result.ProvincialInterest)
	result.GraceInterest = round2(result.GraceInterest)
	result.TotalPaid = round2(result.TotalPaid)

	schedule := make([]domain.ScheduleRow, len(result.Schedule))
	for i, row := range result.Schedule {
		row.FederalBalance = round2(row.FederalBalance)
		row.ProvincialBalance = round2(row.ProvincialBalance)
		row.TotalBalance = round2(row.TotalBalance)
		row.Interest = round2(row.Interest)
		row.Principal = round2(row.Principal)
		schedule[i] = row
	}
	result.Schedule = schedule
	return result
}
