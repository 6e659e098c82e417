package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan represents an OSAP loan split into a federal and a provincial portion
// that accrue interest independently. A Loan is immutable after construction;
// simulations copy its balances rather than mutate it.
type Loan struct {
	TotalAmount        decimal.Decimal `yaml:"total_amount" json:"total_amount"`
	FederalFraction    decimal.Decimal `yaml:"federal_fraction" json:"federal_fraction"`
	ProvincialFraction decimal.Decimal `yaml:"provincial_fraction" json:"provincial_fraction"`
	FederalAmount      decimal.Decimal `yaml:"federal_amount" json:"federal_amount"`
	ProvincialAmount   decimal.Decimal `yaml:"provincial_amount" json:"provincial_amount"`
	FederalRate        decimal.Decimal `yaml:"federal_rate" json:"federal_rate"`
	ProvincialRate     decimal.Decimal `yaml:"provincial_rate" json:"provincial_rate"`
	BlendedRate        decimal.Decimal `yaml:"blended_rate" json:"blended_rate"`
	GraduationDate     time.Time       `yaml:"graduation_date" json:"graduation_date"`
	GracePeriodEnd     time.Time       `yaml:"grace_period_end" json:"grace_period_end"`
	RepaymentStart     time.Time       `yaml:"repayment_start" json:"repayment_start"`

	// InSchool is carried for future in-study handling; amortization
	// ignores it.
	InSchool bool `yaml:"in_school" json:"in_school"`
}

// NewLoan builds a Loan from a total amount, federal fraction and graduation
// date under the supplied rate regime. Inputs are clamped rather than
// rejected: the fraction is forced into [0,1] and a zero total yields a
// degenerate loan with a zero blended rate.
func NewLoan(total, federalFraction decimal.Decimal, graduation time.Time, inSchool bool, rates Rates) Loan {
	one := decimal.NewFromInt(1)
	if federalFraction.LessThan(decimal.Zero) {
		federalFraction = decimal.Zero
	}
	if federalFraction.GreaterThan(one) {
		federalFraction = one
	}

	provincialFraction := one.Sub(federalFraction)
	federalAmount := total.Mul(federalFraction)
	provincialAmount := total.Mul(provincialFraction)

	blended := decimal.Zero
	if total.GreaterThan(decimal.Zero) {
		blended = federalAmount.Mul(rates.FederalRate).
			Add(provincialAmount.Mul(rates.ProvincialRate)).
			Div(total)
	}

	graceEnd := graduation.AddDate(0, rates.GracePeriodMonths, 0)

	return Loan{
		TotalAmount:        total,
		FederalFraction:    federalFraction,
		ProvincialFraction: provincialFraction,
		FederalAmount:      federalAmount,
		ProvincialAmount:   provincialAmount,
		FederalRate:        rates.FederalRate,
		ProvincialRate:     rates.ProvincialRate,
		BlendedRate:        blended,
		GraduationDate:     graduation,
		GracePeriodEnd:     graceEnd,
		RepaymentStart:     graceEnd,
		InSchool:           inSchool,
	}
}
