package tui

import (
	"github.com/osaptools/osap/internal/domain"
)

// Message types for the Bubble Tea update cycle

// ConfigLoadedMsg signals the input file has been parsed and the loan built.
type ConfigLoadedMsg struct {
	Config *domain.Configuration
	Loan   domain.Loan
}

// SimulatedMsg carries a finished amortization run (or its rejection).
type SimulatedMsg struct {
	Result          *domain.PayoffResult
	MinimumRequired *string // rendered minimum when the payment was too low
}

// ErrorMsg displays an error to the user.
type ErrorMsg struct {
	Err error
}
