package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortize_RejectsPaymentBelowBreakEven(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	result, err := engine.Amortize(loan, decimal.NewFromInt(50), false, decimal.Zero)

	require.Error(t, err, "payment below first-month interest must be rejected")
	assert.Nil(t, result, "no simulation should run for a rejected payment")

	var tooLow *PaymentTooLowError
	require.True(t, errors.As(err, &tooLow), "error should carry the computed minimum")

	// First-month interest: 18000 * 0.0725/12 = 108.75, plus the $1 floor.
	assert.True(t, tooLow.MinimumRequired.Equal(decimal.NewFromFloat(109.75)),
		"minimum should be interest plus one dollar, got %s", tooLow.MinimumRequired)
}

func TestAmortize_BreakEvenBoundaryIsInclusive(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	_, err := engine.Amortize(loan, decimal.NewFromInt(50), false, decimal.Zero)
	var tooLow *PaymentTooLowError
	require.True(t, errors.As(err, &tooLow))

	// A cent below the carried minimum is rejected again.
	_, err = engine.Amortize(loan, tooLow.MinimumRequired.Sub(decimal.NewFromFloat(0.01)), false, decimal.Zero)
	assert.Error(t, err, "a cent below the minimum must still be rejected")

	// Exactly the minimum clears the floor.
	result, err := engine.Amortize(loan, tooLow.MinimumRequired, false, decimal.Zero)
	require.NoError(t, err, "exactly the minimum must be accepted")
	require.NotNil(t, result)
}

func TestAmortize_ThirtyThousandAtThreeHundred(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	result, err := engine.Amortize(loan, decimal.NewFromInt(300), false, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, result.Completed, "payoff should complete inside the cap")
	assert.Less(t, result.Months, MaxPayoffMonths)
	assert.Greater(t, result.Months, 0)
	assert.True(t, result.TotalInterest.GreaterThan(decimal.Zero), "interest must accrue")

	last := result.Schedule[len(result.Schedule)-1]
	assert.True(t, last.TotalBalance.LessThanOrEqual(decimal.NewFromFloat(0.02)),
		"final row should be paid down to the zero tolerance, got %s", last.TotalBalance)
	assert.Equal(t, result.Months, last.Month, "schedule should cover every simulated month")

	// Total paid = principal + total interest.
	assert.True(t, result.TotalPaid.Sub(loan.TotalAmount.Add(result.TotalInterest)).Abs().LessThan(decimal.NewFromFloat(0.02)),
		"total paid should equal principal plus interest")
}

func TestAmortize_HigherPaymentPaysOffSooner(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	slow, err := engine.Amortize(loan, decimal.NewFromInt(300), false, decimal.Zero)
	require.NoError(t, err)
	fast, err := engine.Amortize(loan, decimal.NewFromInt(450), false, decimal.Zero)
	require.NoError(t, err)

	assert.LessOrEqual(t, fast.Months, slow.Months, "months to payoff must not increase with payment")
	assert.True(t, fast.TotalInterest.LessThan(slow.TotalInterest), "higher payment must cost less interest")
}

func TestAmortize_BalancesMonotonicallyDecrease(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	result, err := engine.Amortize(loan, decimal.NewFromInt(400), false, decimal.Zero)
	require.NoError(t, err)

	previous := loan.TotalAmount
	for _, row := range result.Schedule {
		assert.True(t, row.TotalBalance.LessThanOrEqual(previous),
			"month %d balance should not grow once payment exceeds break-even", row.Month)
		previous = row.TotalBalance
	}
}

func TestAmortize_ExtraAnnualPaymentShortensPayoff(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	base, err := engine.Amortize(loan, decimal.NewFromInt(300), false, decimal.Zero)
	require.NoError(t, err)
	withExtra, err := engine.Amortize(loan, decimal.NewFromInt(300), false, decimal.NewFromInt(1000))
	require.NoError(t, err)

	assert.Less(t, withExtra.Months, base.Months, "annual lump sums should shorten the payoff")
	assert.True(t, withExtra.TotalInterest.LessThan(base.TotalInterest))
}

func TestAmortize_IncludeGraceFoldsGraceInterest(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	grace := engine.GraceAccrual(loan)
	withGrace, err := engine.Amortize(loan, decimal.NewFromInt(400), true, decimal.Zero)
	require.NoError(t, err)
	withoutGrace, err := engine.Amortize(loan, decimal.NewFromInt(400), false, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, withGrace.GraceInterest.Equal(grace.TotalInterest))
	assert.True(t, withGrace.TotalInterest.GreaterThan(withoutGrace.TotalInterest),
		"grace interest must be part of the total when grace is included")
	assert.GreaterOrEqual(t, withGrace.Months, withoutGrace.Months,
		"a larger post-grace balance cannot pay off faster")
}

func TestAmortize_TotalPaidIdentityWithGrace(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	result, err := engine.Amortize(loan, decimal.NewFromInt(400), true, decimal.Zero)
	require.NoError(t, err)

	require.True(t, result.GraceInterest.GreaterThan(decimal.Zero))

	// Grace interest is capitalized into the repaid principal, so it must
	// not be added to the cash total a second time: total paid is the
	// original principal plus all interest, within the zero tolerance.
	expected := loan.TotalAmount.Add(result.TotalInterest)
	assert.True(t, result.TotalPaid.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.02)),
		"total paid %s should equal principal plus total interest %s", result.TotalPaid, expected)
}

func TestAmortize_DebugGatesScheduleLogging(t *testing.T) {
	loan := testLoan(30000, 0.6)
	payment := decimal.NewFromInt(400)

	quiet := testEngine()
	quietLog := &recordingLogger{}
	quiet.SetLogger(quietLog)
	_, err := quiet.Amortize(loan, payment, false, decimal.Zero)
	require.NoError(t, err)

	verbose := testEngine()
	verboseLog := &recordingLogger{}
	verbose.SetLogger(verboseLog)
	verbose.Debug = true
	result, err := verbose.Amortize(loan, payment, false, decimal.Zero)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(verboseLog.lines), result.Months,
		"debug mode should log every simulated month")
	assert.Less(t, len(quietLog.lines), result.Months,
		"per-month diagnostics must stay gated behind Debug")
}

func TestAmortize_ProportionalAllocationFavorsLargerBalance(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	result, err := engine.Amortize(loan, decimal.NewFromInt(400), false, decimal.Zero)
	require.NoError(t, err)

	// The provincial portion is interest-free; under balance-share
	// allocation it still receives principal every month, so it shrinks
	// from the start rather than waiting for the federal side.
	first := result.Schedule[0]
	assert.True(t, first.ProvincialBalance.LessThan(loan.ProvincialAmount),
		"provincial balance should shrink in month one under proportional allocation")
}

func TestAmortize_NearBreakEvenHitsCap(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)

	minimum := engine.BreakEvenPayment(loan, false)
	result, err := engine.Amortize(loan, minimum, false, decimal.Zero)
	require.NoError(t, err)

	assert.False(t, result.Completed, "a barely-break-even payment should run into the cap")
	assert.Equal(t, MaxPayoffMonths, result.Months)
}

func TestAmortize_DoesNotMutateLoan(t *testing.T) {
	engine := testEngine()
	loan := testLoan(30000, 0.6)
	fedBefore := loan.FederalAmount
	provBefore := loan.ProvincialAmount

	_, err := engine.Amortize(loan, decimal.NewFromInt(300), true, decimal.NewFromInt(500))
	require.NoError(t, err)

	assert.True(t, loan.FederalAmount.Equal(fedBefore), "simulation must work on copies")
	assert.True(t, loan.ProvincialAmount.Equal(provBefore))
}
