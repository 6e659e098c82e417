package calculation

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/osaptools/osap/internal/domain"
)

var (
	minimumFloor      = decimal.NewFromInt(100)
	minimumTermMonths = decimal.NewFromInt(120) // 10-year standard term
	oneAndHalf        = decimal.NewFromFloat(1.5)
	half              = decimal.NewFromFloat(0.5)
	fifty             = decimal.NewFromInt(50)
	hundred           = decimal.NewFromInt(100)
)

// Advisory notes attached to a scenario analysis. The emergency-fund
// suggestion takes precedence: extra debt payments without a cash buffer tend
// to end up back on a credit card.
const (
	adviceEmergencyFund = "Before committing to aggressive payments, set aside an emergency fund covering about three months of expenses."
	adviceCreditCard    = "Your other debts likely carry higher rates than OSAP; direct extra money at them first (see the multi-debt plan)."
	adviceOnTrack       = "No competing debts reported; the aggressive tier is the fastest route out of interest."
)

// TierPayments derives the three payment tiers from a loan and disposable
// income. Each tier is floored against the one below it, so the strict
// ordering minimum < recommended < aggressive holds for any income and
// expense combination, including negative disposable income.
func (pe *ProjectionEngine) TierPayments(loan domain.Loan, disposable decimal.Decimal, field domain.FieldProfile) (minimum, recommended, aggressive decimal.Decimal) {
	if disposable.LessThan(decimal.Zero) {
		disposable = decimal.Zero
	}

	minimum = decimal.Max(loan.TotalAmount.Div(minimumTermMonths), minimumFloor)
	recommended = decimal.Max(
		field.RecommendedPct.Mul(disposable),
		minimum.Mul(oneAndHalf),
		minimum.Add(fifty),
	)
	aggressive = decimal.Max(
		disposable.Mul(half),
		recommended.Mul(oneAndHalf),
		recommended.Add(hundred),
	)
	return minimum, recommended, aggressive
}

// BuildScenarios runs the three payment tiers through the amortization
// simulator and attaches RAP eligibility, an advisory note and the
// field-of-study salary projection. Tier rejections are carried inside the
// outcomes; savings versus the minimum tier are computed only when both legs
// simulated cleanly.
func (pe *ProjectionEngine) BuildScenarios(loan domain.Loan, borrower domain.BorrowerConfig, otherDebts *domain.OtherDebtsConfig) *domain.ScenarioAnalysis {
	disposable := borrower.MonthlyIncome.Sub(borrower.MonthlyExpenses)
	field := pe.Rates.Field(borrower.FieldOfStudy)

	minimum, recommended, aggressive := pe.TierPayments(loan, disposable, field)
	tiers := []struct {
		name    string
		payment decimal.Decimal
	}{
		{domain.TierMinimum, minimum},
		{domain.TierRecommended, recommended},
		{domain.TierAggressive, aggressive},
	}

	analysis := &domain.ScenarioAnalysis{
		DisposableIncome: disposable,
		Outcomes:         make([]domain.ScenarioOutcome, 0, len(tiers)),
		Savings:          make(map[string]domain.TierSavings),
	}

	for _, tier := range tiers {
		outcome := domain.ScenarioOutcome{Tier: tier.name, Payment: tier.payment}
		result, err := pe.Amortize(loan, tier.payment, false, decimal.Zero)
		if err != nil {
			var tooLow *PaymentTooLowError
			if errors.As(err, &tooLow) {
				required := tooLow.MinimumRequired
				outcome.MinimumRequired = &required
			}
			pe.Logger.Debugf("tier %s rejected at payment %s", tier.name, tier.payment.StringFixed(2))
		} else {
			outcome.Result = result
		}
		analysis.Outcomes = append(analysis.Outcomes, outcome)
	}

	base := analysis.Outcome(domain.TierMinimum)
	for _, tier := range []string{domain.TierRecommended, domain.TierAggressive} {
		outcome := analysis.Outcome(tier)
		if base == nil || base.Rejected() || outcome == nil || outcome.Rejected() {
			continue
		}
		analysis.Savings[tier] = domain.TierSavings{
			InterestSaved: base.Result.TotalInterest.Sub(outcome.Result.TotalInterest),
			MonthsSaved:   base.Result.Months - outcome.Result.Months,
		}
	}

	analysis.RAP = pe.CheckEligibility(borrower.MonthlyIncome.Mul(twelve), borrower.FamilySize)
	analysis.AdvisoryNote = advisoryNote(borrower.HasEmergencyFund, otherDebts.Any())
	analysis.Salary = pe.SalaryProjection(borrower.FieldOfStudy)

	return analysis
}

func advisoryNote(hasEmergencyFund, hasOtherDebts bool) string {
	switch {
	case !hasEmergencyFund:
		return adviceEmergencyFund
	case hasOtherDebts:
		return adviceCreditCard
	default:
		return adviceOnTrack
	}
}

// SalaryProjection projects field-of-study salaries along the experience
// growth curve. Unknown fields use the generic profile.
func (pe *ProjectionEngine) SalaryProjection(fieldTag string) domain.SalaryProjection {
	if fieldTag == "" {
		fieldTag = domain.FieldOther
	}
	if _, ok := pe.Rates.Fields[fieldTag]; !ok {
		fieldTag = domain.FieldOther
	}
	field := pe.Rates.Field(fieldTag)

	points := make([]domain.SalaryPoint, 0, len(pe.Rates.GrowthCurve))
	for _, em := range pe.Rates.GrowthCurve {
		points = append(points, domain.SalaryPoint{
			Years:  em.Years,
			Salary: field.EntrySalary.Mul(pe.Rates.MultiplierAt(em.Years)),
		})
	}

	return domain.SalaryProjection{
		Field:          fieldTag,
		Outlook:        field.Outlook,
		EntrySalary:    field.EntrySalary,
		FiveYearGrowth: field.FiveYearGrowth,
		Points:         points,
	}
}
