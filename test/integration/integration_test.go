package integration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osaptools/osap/internal/calculation"
	"github.com/osaptools/osap/internal/config"
	"github.com/osaptools/osap/internal/domain"
	"github.com/osaptools/osap/internal/output"
)

const testConfigPath = "../testdata/generic_loan.yaml"

// TestBasicIntegration exercises the full pipeline: parse the input file,
// build the loan, run the analysis and format it.
func TestBasicIntegration(t *testing.T) {
	t.Run("configuration_loading", func(t *testing.T) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(testConfigPath)
		require.NoError(t, err, "Should load configuration successfully")
		require.NotNil(t, cfg, "Configuration should not be nil")

		assert.True(t, cfg.Loan.TotalAmount.Equal(decimal.NewFromInt(30000)), "Should have loan amount")
		assert.NotNil(t, cfg.OtherDebts, "Should have other debts")
		assert.NotNil(t, cfg.Comparison, "Should have comparison block")
	})

	t.Run("analysis_pipeline", func(t *testing.T) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(testConfigPath)
		require.NoError(t, err)

		rates := config.DefaultRates()
		loan := config.BuildLoan(cfg, rates)
		engine := calculation.NewProjectionEngine(rates)

		report := engine.RunAnalysis(loan, cfg, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC))
		require.NotNil(t, report, "Report should not be nil")

		assert.True(t, report.Grace.TotalInterest.GreaterThan(decimal.Zero),
			"Grace period should accrue federal interest")
		assert.True(t, report.Grace.ProvincialBalance.Equal(loan.ProvincialAmount),
			"Provincial balance should pass through grace untouched")

		require.Len(t, report.Scenarios.Outcomes, 3, "Should produce all three tiers")
		for _, tier := range []string{domain.TierMinimum, domain.TierRecommended, domain.TierAggressive} {
			outcome := report.Scenarios.Outcome(tier)
			require.NotNil(t, outcome, "Should carry the %s tier", tier)
			require.NotNil(t, outcome.Result, "The %s tier should simulate cleanly for this borrower", tier)
			assert.True(t, outcome.Result.Completed, "The %s tier should pay off before the cap", tier)
		}

		minimum := report.Scenarios.Outcome(domain.TierMinimum).Result
		aggressive := report.Scenarios.Outcome(domain.TierAggressive).Result
		assert.Less(t, aggressive.Months, minimum.Months, "Paying more should finish sooner")
		assert.True(t, aggressive.TotalInterest.LessThan(minimum.TotalInterest),
			"Paying more should cost less interest")

		savings, ok := report.Scenarios.Savings[domain.TierAggressive]
		require.True(t, ok, "Aggressive tier should report savings versus minimum")
		assert.True(t, savings.InterestSaved.GreaterThan(decimal.Zero))
		assert.Greater(t, savings.MonthsSaved, 0)

		assert.Equal(t, domain.RAPIneligible, report.Scenarios.RAP.Level,
			"An income of $50,400/year is above the single-person partial ceiling")
	})

	t.Run("output_generation", func(t *testing.T) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(testConfigPath)
		require.NoError(t, err)

		rates := config.DefaultRates()
		loan := config.BuildLoan(cfg, rates)
		engine := calculation.NewProjectionEngine(rates)
		report := engine.RunAnalysis(loan, cfg, time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC))

		for _, name := range []string{"console", "json", "csv"} {
			formatter := output.GetFormatterByName(name)
			require.NotNil(t, formatter, "Formatter %s should be registered", name)

			out, err := formatter.Format(report)
			require.NoError(t, err, "Formatter %s should succeed", name)
			assert.NotEmpty(t, out, "Formatter %s should produce output", name)
		}

		jsonOut, err := output.GetFormatterByName("json").Format(report)
		require.NoError(t, err)
		var decoded domain.AnalysisReport
		require.NoError(t, json.Unmarshal(jsonOut, &decoded), "JSON output should round-trip")
		assert.Equal(t, report.Scenarios.RAP.Level, decoded.Scenarios.RAP.Level)
	})
}

// TestMultiDebtIntegration runs the avalanche prioritizer off the same input
// file the CLI consumes.
func TestMultiDebtIntegration(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(testConfigPath)
	require.NoError(t, err)

	rates := config.DefaultRates()
	loan := config.BuildLoan(cfg, rates)
	engine := calculation.NewProjectionEngine(rates)

	plan, err := engine.PrioritizeDebts(loan, cfg.OtherDebts, cfg.OtherDebts.MonthlyBudget)
	require.NoError(t, err, "The $900 budget covers all minimums")

	require.Len(t, plan.Order, 3, "OSAP loan plus two other debts")
	assert.Equal(t, "Credit Card", plan.FocusDebt, "Highest rate gets the surplus")
	for i := 1; i < len(plan.Order); i++ {
		assert.True(t, plan.Order[i].Rate.LessThanOrEqual(plan.Order[i-1].Rate),
			"Plan should stay sorted by descending rate")
	}
	assert.True(t, plan.Surplus.Equal(plan.Budget.Sub(plan.TotalMinimum)))
}

// TestInvestCompareIntegration runs the invest-vs-payoff comparison off the
// comparison block of the input file.
func TestInvestCompareIntegration(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(testConfigPath)
	require.NoError(t, err)

	rates := config.DefaultRates()
	loan := config.BuildLoan(cfg, rates)
	engine := calculation.NewProjectionEngine(rates)

	cmp, err := engine.CompareInvestVsPayoff(loan,
		cfg.Comparison.AggressivePayment, cfg.Comparison.MinimumPayment,
		cfg.Comparison.AnnualReturnRate, cfg.Comparison.Years)
	require.NoError(t, err)

	assert.True(t, cmp.MonthlyDifference.Equal(decimal.NewFromInt(300)))
	assert.Less(t, cmp.AggressivePayoff.Months, cmp.MinimumPayoff.Months)
	assert.True(t, cmp.InvestmentBalance.GreaterThan(cmp.TotalInvested),
		"A 7 percent return should grow past contributions")
	assert.Contains(t, []string{"invest", "payoff"}, cmp.Winner)
}

// TestWhatIfIntegration checks that an extra payment shortens the payoff.
func TestWhatIfIntegration(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(testConfigPath)
	require.NoError(t, err)

	rates := config.DefaultRates()
	loan := config.BuildLoan(cfg, rates)
	engine := calculation.NewProjectionEngine(rates)

	result, err := engine.WhatIf(loan, decimal.NewFromInt(300), decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, result.NewPayment.Equal(decimal.NewFromInt(400)))
	assert.Greater(t, result.MonthsSaved, 0, "Extra $100/month should finish sooner")
	assert.True(t, result.InterestSaved.GreaterThan(decimal.Zero))
}

// TestRatesOverrideIntegration runs the pipeline under an overridden rate
// regime and checks the grace accrual responds.
func TestRatesOverrideIntegration(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(testConfigPath)
	require.NoError(t, err)

	defaults := config.DefaultRates()
	higher := defaults
	higher.FederalRate = decimal.NewFromFloat(0.0950)

	baseGrace := calculation.NewProjectionEngine(defaults).GraceAccrual(config.BuildLoan(cfg, defaults))
	highGrace := calculation.NewProjectionEngine(higher).GraceAccrual(config.BuildLoan(cfg, higher))

	assert.True(t, highGrace.TotalInterest.GreaterThan(baseGrace.TotalInterest),
		"A higher federal rate should accrue more grace interest")
}
