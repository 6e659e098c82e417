package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testRates() Rates {
	return Rates{
		PrimeRate:         decimal.NewFromFloat(0.0725),
		FederalRate:       decimal.NewFromFloat(0.0725),
		ProvincialRate:    decimal.Zero,
		DefaultFederal:    decimal.NewFromFloat(0.6),
		GracePeriodMonths: 6,
		ForgivenessYears:  15,
		RAPThresholds: map[int]RAPThreshold{
			1: {Stage1: decimal.NewFromInt(40000), Stage2: decimal.NewFromInt(25000)},
			5: {Stage1: decimal.NewFromInt(80000), Stage2: decimal.NewFromInt(50000)},
		},
		Fields: map[string]FieldProfile{
			FieldOther: {
				EntrySalary:    decimal.NewFromInt(50000),
				Outlook:        "moderate",
				RecommendedPct: decimal.NewFromFloat(0.30),
				FiveYearGrowth: decimal.NewFromFloat(0.20),
			},
		},
		GrowthCurve: []ExperienceMultiplier{
			{Years: 0, Multiplier: decimal.NewFromFloat(1.00)},
			{Years: 1, Multiplier: decimal.NewFromFloat(1.08)},
			{Years: 5, Multiplier: decimal.NewFromFloat(1.40)},
			{Years: 10, Multiplier: decimal.NewFromFloat(1.75)},
		},
	}
}

func TestNewLoan_PortionsSumToTotal(t *testing.T) {
	grad := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	loan := NewLoan(decimal.NewFromInt(30000), decimal.NewFromFloat(0.6), grad, false, testRates())

	assert.True(t, loan.FederalAmount.Add(loan.ProvincialAmount).Equal(loan.TotalAmount),
		"portion amounts should sum to total exactly")
	assert.True(t, loan.FederalAmount.Equal(decimal.NewFromInt(18000)), "federal should be 60 percent of total")
	assert.True(t, loan.ProvincialAmount.Equal(decimal.NewFromInt(12000)), "provincial should be 40 percent of total")
}

func TestNewLoan_BlendedRateIsWeightedAverage(t *testing.T) {
	grad := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	loan := NewLoan(decimal.NewFromInt(30000), decimal.NewFromFloat(0.6), grad, false, testRates())

	// 60% at 7.25%, 40% at 0% -> 4.35%
	assert.True(t, loan.BlendedRate.Equal(decimal.NewFromFloat(0.0435)),
		"blended rate should be the balance-weighted average, got %s", loan.BlendedRate)
	assert.True(t, loan.BlendedRate.GreaterThanOrEqual(loan.ProvincialRate), "blended rate below min portion rate")
	assert.True(t, loan.BlendedRate.LessThanOrEqual(loan.FederalRate), "blended rate above max portion rate")
}

func TestNewLoan_ZeroTotalIsDegenerate(t *testing.T) {
	grad := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	loan := NewLoan(decimal.Zero, decimal.NewFromFloat(0.6), grad, false, testRates())

	assert.True(t, loan.BlendedRate.IsZero(), "zero total should yield zero blended rate")
	assert.True(t, loan.FederalAmount.IsZero())
	assert.True(t, loan.ProvincialAmount.IsZero())
}

func TestNewLoan_FractionClamped(t *testing.T) {
	grad := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)

	over := NewLoan(decimal.NewFromInt(1000), decimal.NewFromFloat(1.5), grad, false, testRates())
	assert.True(t, over.FederalFraction.Equal(decimal.NewFromInt(1)), "fraction above 1 should clamp to 1")
	assert.True(t, over.ProvincialAmount.IsZero())

	under := NewLoan(decimal.NewFromInt(1000), decimal.NewFromFloat(-0.2), grad, false, testRates())
	assert.True(t, under.FederalFraction.IsZero(), "negative fraction should clamp to 0")
	assert.True(t, under.FederalAmount.IsZero())
}

func TestNewLoan_RepaymentStartsAfterGrace(t *testing.T) {
	grad := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	loan := NewLoan(decimal.NewFromInt(30000), decimal.NewFromFloat(0.6), grad, false, testRates())

	assert.Equal(t, time.Date(2026, 10, 30, 0, 0, 0, 0, time.UTC), loan.RepaymentStart,
		"repayment should start 6 months after graduation")
	assert.Equal(t, loan.GracePeriodEnd, loan.RepaymentStart)
}

func TestRates_ThresholdClampsFamilySize(t *testing.T) {
	rates := testRates()

	assert.True(t, rates.Threshold(0).Stage1.Equal(decimal.NewFromInt(40000)), "family size below 1 should clamp to 1")
	assert.True(t, rates.Threshold(9).Stage1.Equal(decimal.NewFromInt(80000)), "family size above 5 should clamp to 5")
}

func TestRates_FieldFallsBackToOther(t *testing.T) {
	rates := testRates()

	field := rates.Field("underwater_basket_weaving")
	assert.True(t, field.EntrySalary.Equal(decimal.NewFromInt(50000)), "unknown field should use the generic profile")
}

func TestRates_MultiplierNearestLookup(t *testing.T) {
	rates := testRates()

	assert.True(t, rates.MultiplierAt(0).Equal(decimal.NewFromFloat(1.00)))
	assert.True(t, rates.MultiplierAt(1).Equal(decimal.NewFromFloat(1.08)), "exact key should win")
	assert.True(t, rates.MultiplierAt(4).Equal(decimal.NewFromFloat(1.40)), "4 years is nearest to the 5-year key")
	assert.True(t, rates.MultiplierAt(30).Equal(decimal.NewFromFloat(1.75)), "beyond the curve uses the last key")
}
