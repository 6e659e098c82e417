package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scenario tier names, in payment order.
const (
	TierMinimum     = "minimum"
	TierRecommended = "recommended"
	TierAggressive  = "aggressive"
)

// GraceMonth is one month of grace-period accrual for display.
type GraceMonth struct {
	Month           int             `yaml:"month" json:"month"`
	InterestAccrued decimal.Decimal `yaml:"interest_accrued" json:"interest_accrued"`
	FederalBalance  decimal.Decimal `yaml:"federal_balance" json:"federal_balance"`
}

// GraceResult summarizes interest accrued on the federal portion during the
// post-graduation grace period. Values keep full precision; rounding happens
// at the output boundary.
type GraceResult struct {
	TotalInterest     decimal.Decimal `yaml:"total_interest" json:"total_interest"`
	FederalBalance    decimal.Decimal `yaml:"federal_balance" json:"federal_balance"`
	ProvincialBalance decimal.Decimal `yaml:"provincial_balance" json:"provincial_balance"`
	TotalBalance      decimal.Decimal `yaml:"total_balance" json:"total_balance"`
	Months            []GraceMonth    `yaml:"months" json:"months"`
}

// ScheduleRow is one month of an amortization schedule.
type ScheduleRow struct {
	Month             int             `yaml:"month" json:"month"`
	FederalBalance    decimal.Decimal `yaml:"federal_balance" json:"federal_balance"`
	ProvincialBalance decimal.Decimal `yaml:"provincial_balance" json:"provincial_balance"`
	TotalBalance      decimal.Decimal `yaml:"total_balance" json:"total_balance"`
	Interest          decimal.Decimal `yaml:"interest" json:"interest"`
	Principal         decimal.Decimal `yaml:"principal" json:"principal"`
}

// PayoffResult is the outcome of one amortization run.
type PayoffResult struct {
	MonthlyPayment     decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment"`
	ExtraAnnualPayment decimal.Decimal `yaml:"extra_annual_payment" json:"extra_annual_payment"`
	Months             int             `yaml:"months" json:"months"`
	Completed          bool            `yaml:"completed" json:"completed"` // false when the 600-month cap was hit
	TotalInterest      decimal.Decimal `yaml:"total_interest" json:"total_interest"`
	FederalInterest    decimal.Decimal `yaml:"federal_interest" json:"federal_interest"`
	ProvincialInterest decimal.Decimal `yaml:"provincial_interest" json:"provincial_interest"`
	GraceInterest      decimal.Decimal `yaml:"grace_interest" json:"grace_interest"`
	TotalPaid          decimal.Decimal `yaml:"total_paid" json:"total_paid"`
	PayoffDate         time.Time       `yaml:"payoff_date" json:"payoff_date"`
	Schedule           []ScheduleRow   `yaml:"schedule" json:"schedule"`
}

// RAPLevel tags an eligibility outcome.
type RAPLevel string

const (
	RAPFull       RAPLevel = "full"
	RAPPartial    RAPLevel = "partial"
	RAPIneligible RAPLevel = "ineligible"
)

// RAPStatus is the result of a Repayment Assistance Plan eligibility check.
type RAPStatus struct {
	Level           RAPLevel        `yaml:"level" json:"level"`
	AnnualIncome    decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	FamilySize      int             `yaml:"family_size" json:"family_size"`
	Stage1Threshold decimal.Decimal `yaml:"stage1_threshold" json:"stage1_threshold"`
	Stage2Threshold decimal.Decimal `yaml:"stage2_threshold" json:"stage2_threshold"`
	MonthlyPayment  decimal.Decimal `yaml:"monthly_payment" json:"monthly_payment"`
}

// ScenarioOutcome is one payment tier with either a payoff result or the
// structured rejection it produced.
type ScenarioOutcome struct {
	Tier            string          `yaml:"tier" json:"tier"`
	Payment         decimal.Decimal `yaml:"payment" json:"payment"`
	Result          *PayoffResult   `yaml:"result,omitempty" json:"result,omitempty"`
	MinimumRequired *decimal.Decimal `yaml:"minimum_required,omitempty" json:"minimum_required,omitempty"`
}

// Rejected reports whether this tier failed the break-even check.
func (o ScenarioOutcome) Rejected() bool { return o.Result == nil }

// TierSavings compares a higher tier against the minimum tier.
type TierSavings struct {
	InterestSaved decimal.Decimal `yaml:"interest_saved" json:"interest_saved"`
	MonthsSaved   int             `yaml:"months_saved" json:"months_saved"`
}

// SalaryPoint is a projected salary at a years-of-experience mark.
type SalaryPoint struct {
	Years  int             `yaml:"years" json:"years"`
	Salary decimal.Decimal `yaml:"salary" json:"salary"`
}

// SalaryProjection is the qualitative field-of-study outlook attached to a
// scenario analysis.
type SalaryProjection struct {
	Field          string          `yaml:"field" json:"field"`
	Outlook        string          `yaml:"outlook" json:"outlook"`
	EntrySalary    decimal.Decimal `yaml:"entry_salary" json:"entry_salary"`
	FiveYearGrowth decimal.Decimal `yaml:"five_year_growth" json:"five_year_growth"`
	Points         []SalaryPoint   `yaml:"points" json:"points"`
}

// ScenarioAnalysis is the full three-tier payment analysis for a borrower.
type ScenarioAnalysis struct {
	DisposableIncome decimal.Decimal            `yaml:"disposable_income" json:"disposable_income"`
	Outcomes         []ScenarioOutcome          `yaml:"outcomes" json:"outcomes"`
	Savings          map[string]TierSavings     `yaml:"savings" json:"savings"` // keyed by tier, vs minimum
	RAP              RAPStatus                  `yaml:"rap" json:"rap"`
	AdvisoryNote     string                     `yaml:"advisory_note" json:"advisory_note"`
	Salary           SalaryProjection           `yaml:"salary" json:"salary"`
}

// Outcome returns the outcome for a tier name, or nil.
func (sa *ScenarioAnalysis) Outcome(tier string) *ScenarioOutcome {
	for i := range sa.Outcomes {
		if sa.Outcomes[i].Tier == tier {
			return &sa.Outcomes[i]
		}
	}
	return nil
}

// DebtEntry is one debt in a multi-debt prioritization: the OSAP loan or one
// of the caller's other balances.
type DebtEntry struct {
	Name           string          `yaml:"name" json:"name"`
	Balance        decimal.Decimal `yaml:"balance" json:"balance"`
	Rate           decimal.Decimal `yaml:"rate" json:"rate"`
	MinimumPayment decimal.Decimal `yaml:"minimum_payment" json:"minimum_payment"`
}

// DebtPlan is an avalanche-ordered payoff plan.
type DebtPlan struct {
	Order        []DebtEntry     `yaml:"order" json:"order"` // descending by rate
	TotalMinimum decimal.Decimal `yaml:"total_minimum" json:"total_minimum"`
	Budget       decimal.Decimal `yaml:"budget" json:"budget"`
	Surplus      decimal.Decimal `yaml:"surplus" json:"surplus"`
	FocusDebt    string          `yaml:"focus_debt" json:"focus_debt"` // where the surplus goes
}

// InvestComparison is the side-by-side debt-vs-invest result. The winner rule
// compares the final investment balance against the interest-cost difference
// between the two payoff paths; it is a deliberate simplification, not a
// net-present-value comparison.
type InvestComparison struct {
	AggressivePayoff  *PayoffResult   `yaml:"aggressive_payoff" json:"aggressive_payoff"`
	MinimumPayoff     *PayoffResult   `yaml:"minimum_payoff" json:"minimum_payoff"`
	MonthlyDifference decimal.Decimal `yaml:"monthly_difference" json:"monthly_difference"`
	HorizonMonths     int             `yaml:"horizon_months" json:"horizon_months"`
	InvestmentBalance decimal.Decimal `yaml:"investment_balance" json:"investment_balance"`
	TotalInvested     decimal.Decimal `yaml:"total_invested" json:"total_invested"`
	InterestSaved     decimal.Decimal `yaml:"interest_saved" json:"interest_saved"`
	Winner            string          `yaml:"winner" json:"winner"` // "payoff" or "invest"
}

// WhatIfResult compares a baseline payment against baseline+extra.
type WhatIfResult struct {
	NewPayment    decimal.Decimal `yaml:"new_payment" json:"new_payment"`
	Months        int             `yaml:"months" json:"months"`
	TotalInterest decimal.Decimal `yaml:"total_interest" json:"total_interest"`
	InterestSaved decimal.Decimal `yaml:"interest_saved" json:"interest_saved"`
	MonthsSaved   int             `yaml:"months_saved" json:"months_saved"`
	Schedule      []ScheduleRow   `yaml:"schedule" json:"schedule"`
}

// AnalysisReport is the top-level result of a full `calculate` run, the unit
// the output formatters consume.
type AnalysisReport struct {
	GeneratedAt time.Time        `yaml:"generated_at" json:"generated_at"`
	Rates       Rates            `yaml:"rates" json:"rates"`
	Loan        Loan             `yaml:"loan" json:"loan"`
	Grace       GraceResult      `yaml:"grace" json:"grace"`
	Scenarios   ScenarioAnalysis `yaml:"scenarios" json:"scenarios"`
}
