package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/osaptools/osap/internal/domain"
)

var (
	creditCardMinPct   = decimal.NewFromFloat(0.03)
	creditCardMinFloor = decimal.NewFromInt(25)
	lineOfCreditBuffer = decimal.NewFromInt(50)
	carLoanTermMonths  = decimal.NewFromInt(60)
)

// PrioritizeDebts builds an avalanche plan across the OSAP loan and up to
// three other debts. Minimum payments follow each debt kind's convention:
// credit cards pay max(3% of balance, $25), lines of credit pay a month's
// interest plus $50, car loans amortize over 60 months, and the OSAP loan
// uses the same 10-year floor as the scenario tiers. Zero-balance debts are
// dropped; the remainder sort by rate descending (stable, so ties keep their
// encounter order) and the entire budget surplus goes to the highest-rate
// debt. A budget below the summed minimums is a BudgetTooLowError; no partial
// allocation is attempted.
func (pe *ProjectionEngine) PrioritizeDebts(loan domain.Loan, other *domain.OtherDebtsConfig, budget decimal.Decimal) (*domain.DebtPlan, error) {
	var debts []domain.DebtEntry

	if loan.TotalAmount.GreaterThan(decimal.Zero) {
		debts = append(debts, domain.DebtEntry{
			Name:           "OSAP Student Loan",
			Balance:        loan.TotalAmount,
			Rate:           loan.BlendedRate,
			MinimumPayment: decimal.Max(loan.TotalAmount.Div(minimumTermMonths), minimumFloor),
		})
	}

	if other != nil {
		if other.CreditCardBalance.GreaterThan(decimal.Zero) {
			debts = append(debts, domain.DebtEntry{
				Name:           "Credit Card",
				Balance:        other.CreditCardBalance,
				Rate:           other.CreditCardRate,
				MinimumPayment: decimal.Max(other.CreditCardBalance.Mul(creditCardMinPct), creditCardMinFloor),
			})
		}
		if other.LineOfCreditBalance.GreaterThan(decimal.Zero) {
			debts = append(debts, domain.DebtEntry{
				Name:           "Line of Credit",
				Balance:        other.LineOfCreditBalance,
				Rate:           other.LineOfCreditRate,
				MinimumPayment: other.LineOfCreditBalance.Mul(other.LineOfCreditRate).Div(twelve).Add(lineOfCreditBuffer),
			})
		}
		if other.CarLoanBalance.GreaterThan(decimal.Zero) {
			debts = append(debts, domain.DebtEntry{
				Name:           "Car Loan",
				Balance:        other.CarLoanBalance,
				Rate:           other.CarLoanRate,
				MinimumPayment: other.CarLoanBalance.Div(carLoanTermMonths),
			})
		}
	}

	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].Rate.GreaterThan(debts[j].Rate)
	})

	totalMinimum := decimal.Zero
	for _, d := range debts {
		totalMinimum = totalMinimum.Add(d.MinimumPayment)
	}

	if budget.LessThan(totalMinimum) {
		return nil, &BudgetTooLowError{Budget: budget, RequiredMinimum: totalMinimum}
	}

	plan := &domain.DebtPlan{
		Order:        debts,
		TotalMinimum: totalMinimum,
		Budget:       budget,
		Surplus:      budget.Sub(totalMinimum),
	}
	if len(debts) > 0 {
		plan.FocusDebt = debts[0].Name
	}

	pe.Logger.Debugf("avalanche plan: %d debts, surplus %s to %s", len(debts), plan.Surplus.StringFixed(2), plan.FocusDebt)
	return plan, nil
}
