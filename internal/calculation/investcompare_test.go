package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareInvestVsPayoff_RequiresAggressiveAboveMinimum(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	_, err := engine.CompareInvestVsPayoff(loan, decimal.NewFromInt(300), decimal.NewFromInt(300),
		decimal.NewFromFloat(0.07), 10)
	require.Error(t, err)

	var invalid *InvalidComparisonError
	assert.True(t, errors.As(err, &invalid), "equal payments should be a structured rejection")

	_, err = engine.CompareInvestVsPayoff(loan, decimal.NewFromInt(200), decimal.NewFromInt(300),
		decimal.NewFromFloat(0.07), 10)
	assert.Error(t, err, "aggressive below minimum must be rejected")
}

func TestCompareInvestVsPayoff_RunsBothPayoffLegs(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	cmp, err := engine.CompareInvestVsPayoff(loan, decimal.NewFromInt(600), decimal.NewFromInt(300),
		decimal.NewFromFloat(0.07), 10)
	require.NoError(t, err)

	require.NotNil(t, cmp.AggressivePayoff)
	require.NotNil(t, cmp.MinimumPayoff)
	assert.Less(t, cmp.AggressivePayoff.Months, cmp.MinimumPayoff.Months)
	assert.True(t, cmp.MonthlyDifference.Equal(decimal.NewFromInt(300)))
	assert.True(t, cmp.InterestSaved.GreaterThan(decimal.Zero),
		"the aggressive path must save interest")
	assert.Contains(t, []string{"payoff", "invest"}, cmp.Winner)
}

func TestCompareInvestVsPayoff_InvestmentCompounds(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	cmp, err := engine.CompareInvestVsPayoff(loan, decimal.NewFromInt(600), decimal.NewFromInt(300),
		decimal.NewFromFloat(0.07), 10)
	require.NoError(t, err)

	assert.True(t, cmp.InvestmentBalance.GreaterThan(cmp.TotalInvested),
		"a positive return must grow the balance beyond the contributions")
}

func TestCompareInvestVsPayoff_SecondaryStreamAfterEarlyPayoff(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	// A very aggressive payment finishes well inside the horizon, freeing
	// the full payment for investment afterwards.
	short, err := engine.CompareInvestVsPayoff(loan, decimal.NewFromInt(2000), decimal.NewFromInt(300),
		decimal.NewFromFloat(0.07), 10)
	require.NoError(t, err)
	require.True(t, short.AggressivePayoff.Completed)
	require.Less(t, short.AggressivePayoff.Months, short.HorizonMonths)

	// Contributions should exceed difference*investMonths because the
	// freed-up payment stream joins after payoff.
	investMonths := short.HorizonMonths
	if short.MinimumPayoff.Months < investMonths {
		investMonths = short.MinimumPayoff.Months
	}
	differenceOnly := short.MonthlyDifference.Mul(decimal.NewFromInt(int64(investMonths)))
	assert.True(t, short.TotalInvested.GreaterThan(differenceOnly),
		"post-payoff months should add the full payment to contributions")
}

func TestCompareInvestVsPayoff_ZeroReturnKeepsContributionsFlat(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	cmp, err := engine.CompareInvestVsPayoff(loan, decimal.NewFromInt(600), decimal.NewFromInt(300),
		decimal.Zero, 5)
	require.NoError(t, err)
	assert.True(t, cmp.InvestmentBalance.Equal(cmp.TotalInvested),
		"with a zero return the balance is exactly the contributions")
}

func TestWhatIf_ComparesAgainstBaseline(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	result, err := engine.WhatIf(loan, decimal.NewFromInt(300), decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, result.NewPayment.Equal(decimal.NewFromInt(400)))
	assert.Greater(t, result.MonthsSaved, 0)
	assert.True(t, result.InterestSaved.GreaterThan(decimal.Zero))
}

func TestWhatIf_PropagatesPaymentTooLow(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	_, err := engine.WhatIf(loan, decimal.NewFromInt(50), decimal.NewFromInt(10))
	require.Error(t, err)

	var tooLow *PaymentTooLowError
	assert.True(t, errors.As(err, &tooLow))
}
