package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/osaptools/osap/internal/calculation"
	"github.com/osaptools/osap/internal/config"
	"github.com/osaptools/osap/internal/domain"
)

// Model is the payment-explorer application state: one loan, one adjustable
// payment, the latest simulation of it.
type Model struct {
	configPath string
	cfg        *domain.Configuration
	loan       domain.Loan
	engine     *calculation.ProjectionEngine

	payment      decimal.Decimal
	extraAnnual  decimal.Decimal
	includeGrace bool

	result          *domain.PayoffResult
	minimumRequired string // set when the current payment is below break-even

	keys   KeyMap
	help   help.Model
	width  int
	height int

	loading bool
	err     error
}

// NewModel creates the explorer model for an input file.
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		engine:     calculation.NewProjectionEngine(config.DefaultRates()),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		width:      80,
		height:     24,
		loading:    true,
	}
}

// Init loads the configuration (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath, m.engine)
}

func loadConfigCmd(path string, engine *calculation.ProjectionEngine) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{
			Config: cfg,
			Loan:   config.BuildLoan(cfg, engine.Rates),
		}
	}
}

func simulateCmd(engine *calculation.ProjectionEngine, loan domain.Loan, payment, extra decimal.Decimal, includeGrace bool) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.Amortize(loan, payment, includeGrace, extra)
		if err != nil {
			var tooLow *calculation.PaymentTooLowError
			if errors.As(err, &tooLow) {
				minimum := "$" + tooLow.MinimumRequired.StringFixed(2)
				return SimulatedMsg{MinimumRequired: &minimum}
			}
			return ErrorMsg{Err: err}
		}
		return SimulatedMsg{Result: result}
	}
}

// startingPayment picks the recommended tier as the initial payment so the
// explorer opens on a sensible simulation.
func startingPayment(engine *calculation.ProjectionEngine, loan domain.Loan, cfg *domain.Configuration) decimal.Decimal {
	disposable := cfg.Borrower.MonthlyIncome.Sub(cfg.Borrower.MonthlyExpenses)
	field := engine.Rates.Field(cfg.Borrower.FieldOfStudy)
	_, recommended, _ := engine.TierPayments(loan, disposable, field)
	return recommended.Round(2)
}
