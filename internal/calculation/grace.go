package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/osaptools/osap/internal/domain"
)

// GraceAccrual simulates interest-only accrual on the federal portion over
// the post-graduation grace period: simple monthly compounding, one step per
// month, no payments. The provincial portion is interest-free and passes
// through unchanged. A zero loan yields an all-zero result.
func (pe *ProjectionEngine) GraceAccrual(loan domain.Loan) domain.GraceResult {
	monthlyRate := loan.FederalRate.Div(twelve)
	balance := loan.FederalAmount
	accrued := decimal.Zero
	months := make([]domain.GraceMonth, 0, pe.Rates.GracePeriodMonths)

	for month := 1; month <= pe.Rates.GracePeriodMonths; month++ {
		interest := balance.Mul(monthlyRate)
		accrued = accrued.Add(interest)
		balance = balance.Add(interest)

		months = append(months, domain.GraceMonth{
			Month:           month,
			InterestAccrued: interest,
			FederalBalance:  balance,
		})
	}

	pe.Logger.Debugf("grace accrual: %s interest over %d months", accrued.StringFixed(2), pe.Rates.GracePeriodMonths)

	return domain.GraceResult{
		TotalInterest:     accrued,
		FederalBalance:    balance,
		ProvincialBalance: loan.ProvincialAmount,
		TotalBalance:      balance.Add(loan.ProvincialAmount),
		Months:            months,
	}
}
