package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentTooLowError reports a payment below the break-even minimum: the
// point at which a payment stops covering the first month's interest and the
// balance can never shrink. It is a business-rule rejection of valid input,
// so it carries the computed minimum for the caller to surface.
type PaymentTooLowError struct {
	Payment         decimal.Decimal
	MinimumRequired decimal.Decimal
}

func (e *PaymentTooLowError) Error() string {
	return fmt.Sprintf("payment %s is too low; minimum required is %s",
		e.Payment.StringFixed(2), e.MinimumRequired.StringFixed(2))
}

// BudgetTooLowError reports a multi-debt budget below the sum of the
// per-debt minimum payments.
type BudgetTooLowError struct {
	Budget          decimal.Decimal
	RequiredMinimum decimal.Decimal
}

func (e *BudgetTooLowError) Error() string {
	return fmt.Sprintf("monthly budget %s does not cover minimum payments of %s (short %s)",
		e.Budget.StringFixed(2), e.RequiredMinimum.StringFixed(2), e.Shortfall().StringFixed(2))
}

// Shortfall returns how much the budget is short.
func (e *BudgetTooLowError) Shortfall() decimal.Decimal {
	return e.RequiredMinimum.Sub(e.Budget)
}

// InvalidComparisonError reports an invest-vs-payoff request whose aggressive
// payment does not exceed the minimum payment.
type InvalidComparisonError struct {
	Aggressive decimal.Decimal
	Minimum    decimal.Decimal
}

func (e *InvalidComparisonError) Error() string {
	return fmt.Sprintf("aggressive payment %s must exceed minimum payment %s",
		e.Aggressive.StringFixed(2), e.Minimum.StringFixed(2))
}
