package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/osaptools/osap/internal/domain"
)

// MaxPayoffMonths caps the amortization loop. Payments that pass the
// break-even check but only barely can still take longer than this to
// converge; the cap keeps such runs bounded.
const MaxPayoffMonths = 600

// zeroTolerance is the balance below which a portion counts as paid off.
var zeroTolerance = decimal.NewFromFloat(0.01)

var twelve = decimal.NewFromInt(12)

// ProjectionEngine runs loan repayment projections under an injected rate
// regime. All methods are pure with respect to their inputs: loans are read,
// never mutated, and the engine holds no per-call state, so a single engine
// is safe for concurrent use.
type ProjectionEngine struct {
	Rates  domain.Rates
	Logger Logger
	Debug  bool
}

// NewProjectionEngine creates an engine over a rate regime.
func NewProjectionEngine(rates domain.Rates) *ProjectionEngine {
	return &ProjectionEngine{
		Rates:  rates,
		Logger: NopLogger{},
	}
}

// SetLogger installs a logger; nil restores the no-op default.
func (pe *ProjectionEngine) SetLogger(logger Logger) {
	if logger == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = logger
}

// monthlyInterest returns one month of simple interest on a balance, zero for
// non-positive balances.
func monthlyInterest(balance, annualRate decimal.Decimal) decimal.Decimal {
	if balance.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return balance.Mul(annualRate).Div(twelve)
}
