package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

var (
	paymentStep = decimal.NewFromInt(25)
	extraStep   = decimal.NewFromInt(100)
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ConfigLoadedMsg:
		m.cfg = msg.Config
		m.loan = msg.Loan
		m.payment = startingPayment(m.engine, m.loan, m.cfg)
		m.loading = true
		return m, m.simulate()

	case SimulatedMsg:
		m.loading = false
		m.result = msg.Result
		m.minimumRequired = ""
		if msg.MinimumRequired != nil {
			m.minimumRequired = *msg.MinimumRequired
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Parameter adjustments re-simulate; ignore them until the config loads.
	if m.cfg == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PaymentUp):
		m.payment = m.payment.Add(paymentStep)
	case key.Matches(msg, m.keys.PaymentDown):
		m.payment = decimal.Max(decimal.Zero, m.payment.Sub(paymentStep))
	case key.Matches(msg, m.keys.ExtraUp):
		m.extraAnnual = m.extraAnnual.Add(extraStep)
	case key.Matches(msg, m.keys.ExtraDown):
		m.extraAnnual = decimal.Max(decimal.Zero, m.extraAnnual.Sub(extraStep))
	case key.Matches(msg, m.keys.ToggleGrace):
		m.includeGrace = !m.includeGrace
	default:
		return m, nil
	}

	m.loading = true
	return m, m.simulate()
}

func (m Model) simulate() tea.Cmd {
	return simulateCmd(m.engine, m.loan, m.payment, m.extraAnnual, m.includeGrace)
}
