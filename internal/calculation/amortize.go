package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/osaptools/osap/internal/domain"
)

// Amortize simulates month-by-month payoff of a loan under a flat monthly
// payment. includeGrace prepends the grace-period accrual so repayment starts
// from the post-grace balances; extraAnnual, when positive, is an additional
// lump sum applied on every 12th month.
//
// Payments below the break-even minimum (first month's interest on both
// portions plus one dollar) are rejected up front with a PaymentTooLowError;
// no simulation is run. Each month the payment is split across the two
// portions in proportion to their current balance share. When a lump sum
// pushes a portion past zero the excess is discarded rather than carried
// forward; callers relying on exact cash accounting should size extra
// payments to the remaining balance.
func (pe *ProjectionEngine) Amortize(loan domain.Loan, payment decimal.Decimal, includeGrace bool, extraAnnual decimal.Decimal) (*domain.PayoffResult, error) {
	fedBal := loan.FederalAmount
	provBal := loan.ProvincialAmount
	graceInterest := decimal.Zero

	if includeGrace {
		grace := pe.GraceAccrual(loan)
		fedBal = grace.FederalBalance
		provBal = grace.ProvincialBalance
		graceInterest = grace.TotalInterest
	}

	// Break-even floor: one dollar above the first month's combined interest.
	minimum := monthlyInterest(fedBal, loan.FederalRate).
		Add(monthlyInterest(provBal, loan.ProvincialRate)).
		Add(decimal.NewFromInt(1))
	if payment.LessThan(minimum) {
		pe.Logger.Debugf("payment %s below break-even %s", payment.StringFixed(2), minimum.StringFixed(2))
		return nil, &PaymentTooLowError{Payment: payment, MinimumRequired: minimum}
	}

	startingTotal := fedBal.Add(provBal)
	fedInterestTotal := graceInterest
	provInterestTotal := decimal.Zero
	loopInterest := decimal.Zero
	schedule := make([]domain.ScheduleRow, 0, 64)

	months := 0
	completed := false

	for month := 1; month <= MaxPayoffMonths; month++ {
		fedInterest := monthlyInterest(fedBal, loan.FederalRate)
		provInterest := monthlyInterest(provBal, loan.ProvincialRate)
		fedInterestTotal = fedInterestTotal.Add(fedInterest)
		provInterestTotal = provInterestTotal.Add(provInterest)
		loopInterest = loopInterest.Add(fedInterest).Add(provInterest)

		monthPayment := payment
		if extraAnnual.GreaterThan(decimal.Zero) && month%12 == 0 {
			monthPayment = monthPayment.Add(extraAnnual)
		}

		var fedPrincipal, provPrincipal decimal.Decimal
		totalBal := fedBal.Add(provBal)
		if totalBal.GreaterThan(decimal.Zero) {
			// Allocation is proportional to balance share, not to rate.
			fedAlloc := monthPayment.Mul(fedBal).Div(totalBal)
			provAlloc := monthPayment.Sub(fedAlloc)

			fedPrincipal = decimal.Max(decimal.Zero, fedAlloc.Sub(fedInterest))
			provPrincipal = decimal.Max(decimal.Zero, provAlloc.Sub(provInterest))

			fedBal = decimal.Max(decimal.Zero, fedBal.Sub(fedPrincipal))
			provBal = decimal.Max(decimal.Zero, provBal.Sub(provPrincipal))
		}

		schedule = append(schedule, domain.ScheduleRow{
			Month:             month,
			FederalBalance:    fedBal,
			ProvincialBalance: provBal,
			TotalBalance:      fedBal.Add(provBal),
			Interest:          fedInterest.Add(provInterest),
			Principal:         fedPrincipal.Add(provPrincipal),
		})

		if pe.Debug {
			pe.Logger.Debugf("month %d: balance %s, interest %s, principal %s",
				month, fedBal.Add(provBal).StringFixed(2),
				fedInterest.Add(provInterest).StringFixed(2),
				fedPrincipal.Add(provPrincipal).StringFixed(2))
		}

		months = month
		if fedBal.LessThanOrEqual(zeroTolerance) && provBal.LessThanOrEqual(zeroTolerance) {
			completed = true
			break
		}
	}

	if !completed {
		pe.Logger.Warnf("payoff did not converge within %d months at payment %s", MaxPayoffMonths, payment.StringFixed(2))
	}

	principalRepaid := startingTotal.Sub(fedBal).Sub(provBal)
	totalInterest := graceInterest.Add(loopInterest)

	return &domain.PayoffResult{
		MonthlyPayment:     payment,
		ExtraAnnualPayment: extraAnnual,
		Months:             months,
		Completed:          completed,
		TotalInterest:      totalInterest,
		FederalInterest:    fedInterestTotal,
		ProvincialInterest: provInterestTotal,
		GraceInterest:      graceInterest,
		TotalPaid:          principalRepaid.Add(loopInterest),
		PayoffDate:         loan.RepaymentStart.AddDate(0, months, 0),
		Schedule:           schedule,
	}, nil
}

// BreakEvenPayment returns the minimum acceptable payment for a loan without
// running a simulation, matching the floor Amortize enforces.
func (pe *ProjectionEngine) BreakEvenPayment(loan domain.Loan, includeGrace bool) decimal.Decimal {
	fedBal := loan.FederalAmount
	provBal := loan.ProvincialAmount
	if includeGrace {
		grace := pe.GraceAccrual(loan)
		fedBal = grace.FederalBalance
		provBal = grace.ProvincialBalance
	}
	return monthlyInterest(fedBal, loan.FederalRate).
		Add(monthlyInterest(provBal, loan.ProvincialRate)).
		Add(decimal.NewFromInt(1))
}
