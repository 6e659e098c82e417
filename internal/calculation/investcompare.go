package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/osaptools/osap/internal/domain"
)

// CompareInvestVsPayoff weighs paying the loan down aggressively against
// paying the minimum and investing the difference at a monthly-compounding
// return. If the aggressive plan finishes inside the horizon, the freed-up
// full payment is invested for the remaining months as a secondary stream.
//
// The winner is declared by comparing the final investment balance against
// the interest-cost difference between the two payoff paths. That is a
// deliberate simplification rather than a time-value-adjusted comparison.
func (pe *ProjectionEngine) CompareInvestVsPayoff(loan domain.Loan, aggressive, minimum, annualReturn decimal.Decimal, years int) (*domain.InvestComparison, error) {
	if aggressive.LessThanOrEqual(minimum) {
		return nil, &InvalidComparisonError{Aggressive: aggressive, Minimum: minimum}
	}

	aggressiveResult, err := pe.Amortize(loan, aggressive, false, decimal.Zero)
	if err != nil {
		return nil, err
	}
	minimumResult, err := pe.Amortize(loan, minimum, false, decimal.Zero)
	if err != nil {
		return nil, err
	}

	monthlyReturn := annualReturn.Div(twelve)
	difference := aggressive.Sub(minimum)
	horizonMonths := years * 12

	// While the minimum path is still paying, only the difference is free
	// to invest.
	investMonths := horizonMonths
	if minimumResult.Months < investMonths {
		investMonths = minimumResult.Months
	}

	balance := decimal.Zero
	for m := 0; m < investMonths; m++ {
		balance = balance.Mul(decimal.NewFromInt(1).Add(monthlyReturn)).Add(difference)
	}
	totalInvested := difference.Mul(decimal.NewFromInt(int64(investMonths)))

	// Once the aggressive path is debt-free, the whole payment can be
	// invested for the rest of the horizon.
	if aggressiveResult.Completed && aggressiveResult.Months < horizonMonths {
		remaining := horizonMonths - aggressiveResult.Months
		secondary := decimal.Zero
		for m := 0; m < remaining; m++ {
			secondary = secondary.Mul(decimal.NewFromInt(1).Add(monthlyReturn)).Add(aggressive)
		}
		balance = balance.Add(secondary)
		totalInvested = totalInvested.Add(aggressive.Mul(decimal.NewFromInt(int64(remaining))))
	}

	interestSaved := minimumResult.TotalInterest.Sub(aggressiveResult.TotalInterest)

	winner := "payoff"
	if balance.GreaterThan(interestSaved) {
		winner = "invest"
	}

	return &domain.InvestComparison{
		AggressivePayoff:  aggressiveResult,
		MinimumPayoff:     minimumResult,
		MonthlyDifference: difference,
		HorizonMonths:     horizonMonths,
		InvestmentBalance: balance,
		TotalInvested:     totalInvested,
		InterestSaved:     interestSaved,
		Winner:            winner,
	}, nil
}

// WhatIf compares a baseline payment against baseline+extra. Both legs must
// clear the break-even floor; a rejection on either side is returned as-is.
func (pe *ProjectionEngine) WhatIf(loan domain.Loan, basePayment, extraPayment decimal.Decimal) (*domain.WhatIfResult, error) {
	newPayment := basePayment.Add(extraPayment)

	result, err := pe.Amortize(loan, newPayment, false, decimal.Zero)
	if err != nil {
		return nil, err
	}
	baseline, err := pe.Amortize(loan, basePayment, false, decimal.Zero)
	if err != nil {
		return nil, err
	}

	return &domain.WhatIfResult{
		NewPayment:    newPayment,
		Months:        result.Months,
		TotalInterest: result.TotalInterest,
		InterestSaved: baseline.TotalInterest.Sub(result.TotalInterest),
		MonthsSaved:   baseline.Months - result.Months,
		Schedule:      result.Schedule,
	}, nil
}
