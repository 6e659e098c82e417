package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanConfig is the caller-supplied description of the loan.
type LoanConfig struct {
	TotalAmount    decimal.Decimal  `yaml:"total_amount" json:"total_amount"`
	FederalPortion *decimal.Decimal `yaml:"federal_portion,omitempty" json:"federal_portion,omitempty"`
	GraduationDate time.Time        `yaml:"graduation_date,omitempty" json:"graduation_date,omitempty"`
	InSchool       bool             `yaml:"in_school,omitempty" json:"in_school,omitempty"`
}

// BorrowerConfig describes the borrower's finances for scenario generation.
type BorrowerConfig struct {
	MonthlyIncome    decimal.Decimal `yaml:"monthly_income" json:"monthly_income"`
	MonthlyExpenses  decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
	FieldOfStudy     string          `yaml:"field_of_study,omitempty" json:"field_of_study,omitempty"`
	HasEmergencyFund bool            `yaml:"has_emergency_fund,omitempty" json:"has_emergency_fund,omitempty"`
	FamilySize       int             `yaml:"family_size,omitempty" json:"family_size,omitempty"`
}

// OtherDebtsConfig lists the balances competing with the OSAP loan in a
// multi-debt prioritization.
type OtherDebtsConfig struct {
	CreditCardBalance   decimal.Decimal `yaml:"credit_card_balance,omitempty" json:"credit_card_balance,omitempty"`
	CreditCardRate      decimal.Decimal `yaml:"credit_card_rate,omitempty" json:"credit_card_rate,omitempty"`
	LineOfCreditBalance decimal.Decimal `yaml:"line_of_credit_balance,omitempty" json:"line_of_credit_balance,omitempty"`
	LineOfCreditRate    decimal.Decimal `yaml:"line_of_credit_rate,omitempty" json:"line_of_credit_rate,omitempty"`
	CarLoanBalance      decimal.Decimal `yaml:"car_loan_balance,omitempty" json:"car_loan_balance,omitempty"`
	CarLoanRate         decimal.Decimal `yaml:"car_loan_rate,omitempty" json:"car_loan_rate,omitempty"`
	MonthlyBudget       decimal.Decimal `yaml:"monthly_budget,omitempty" json:"monthly_budget,omitempty"`
}

// Any reports whether any other-debt balance is positive.
func (o *OtherDebtsConfig) Any() bool {
	if o == nil {
		return false
	}
	return o.CreditCardBalance.GreaterThan(decimal.Zero) ||
		o.LineOfCreditBalance.GreaterThan(decimal.Zero) ||
		o.CarLoanBalance.GreaterThan(decimal.Zero)
}

// ComparisonConfig configures an invest-vs-payoff comparison.
type ComparisonConfig struct {
	AggressivePayment decimal.Decimal `yaml:"aggressive_payment" json:"aggressive_payment"`
	MinimumPayment    decimal.Decimal `yaml:"minimum_payment" json:"minimum_payment"`
	AnnualReturnRate  decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	Years             int             `yaml:"years" json:"years"`
}

// Configuration is the complete parsed input file.
type Configuration struct {
	Loan       LoanConfig        `yaml:"loan" json:"loan"`
	Borrower   BorrowerConfig    `yaml:"borrower" json:"borrower"`
	OtherDebts *OtherDebtsConfig `yaml:"other_debts,omitempty" json:"other_debts,omitempty"`
	Comparison *ComparisonConfig `yaml:"comparison,omitempty" json:"comparison,omitempty"`
}
