package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/osaptools/osap/internal/domain"
)

var rapRepaymentShare = decimal.NewFromFloat(0.20)

// CheckEligibility applies the Repayment Assistance Plan thresholds for a
// gross annual income and family size (clamped to the table's maximum of 5).
// Boundaries are inclusive: income exactly at a threshold qualifies for the
// more generous stage.
func (pe *ProjectionEngine) CheckEligibility(annualIncome decimal.Decimal, familySize int) domain.RAPStatus {
	if familySize < 1 {
		familySize = 1
	}
	if familySize > domain.MaxRAPFamilySize {
		familySize = domain.MaxRAPFamilySize
	}
	threshold := pe.Rates.Threshold(familySize)

	status := domain.RAPStatus{
		AnnualIncome:    annualIncome,
		FamilySize:      familySize,
		Stage1Threshold: threshold.Stage1,
		Stage2Threshold: threshold.Stage2,
		MonthlyPayment:  decimal.Zero,
	}

	switch {
	case annualIncome.LessThanOrEqual(threshold.Stage2):
		status.Level = domain.RAPFull
	case annualIncome.LessThanOrEqual(threshold.Stage1):
		status.Level = domain.RAPPartial
		// 20% of income above the stage-2 threshold, spread monthly.
		status.MonthlyPayment = annualIncome.Sub(threshold.Stage2).
			Mul(rapRepaymentShare).Div(twelve)
	default:
		status.Level = domain.RAPIneligible
	}

	return status
}
