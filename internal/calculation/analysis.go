package calculation

import (
	"time"

	"github.com/osaptools/osap/internal/domain"
)

// RunAnalysis assembles the full repayment analysis for a borrower: grace
// accrual, the three payment scenarios and their attachments. generatedAt is
// supplied by the caller so the engine never reads the wall clock.
func (pe *ProjectionEngine) RunAnalysis(loan domain.Loan, cfg *domain.Configuration, generatedAt time.Time) *domain.AnalysisReport {
	grace := pe.GraceAccrual(loan)
	scenarios := pe.BuildScenarios(loan, cfg.Borrower, cfg.OtherDebts)

	return &domain.AnalysisReport{
		GeneratedAt: generatedAt,
		Rates:       pe.Rates,
		Loan:        loan,
		Grace:       grace,
		Scenarios:   *scenarios,
	}
}
