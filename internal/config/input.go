package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/osaptools/osap/internal/domain"
)

// InputParser handles parsing of input configuration files.
//
// Now supplies the current date when the input omits a graduation date; it
// defaults to time.Now and is injectable so parsing stays deterministic in
// tests. Nothing downstream of the parser reads the wall clock.
type InputParser struct {
	Now func() time.Time
}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

// LoadFromFile loads and validates a borrower configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals, defaults and validates a configuration document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&cfg)

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// applyDefaults coerces missing fields the way the engine expects: absent
// numbers stay zero, an absent graduation date becomes "now", an unknown
// field of study falls back to the generic category at lookup time.
func (ip *InputParser) applyDefaults(cfg *domain.Configuration) {
	if cfg.Loan.GraduationDate.IsZero() {
		now := ip.Now
		if now == nil {
			now = time.Now
		}
		cfg.Loan.GraduationDate = now().Truncate(24 * time.Hour)
	}
	if cfg.Borrower.FamilySize < 1 {
		cfg.Borrower.FamilySize = 1
	}
	if cfg.Borrower.FieldOfStudy == "" {
		cfg.Borrower.FieldOfStudy = domain.FieldOther
	}
}

// ValidateConfiguration rejects configurations the engine cannot make sense
// of. Business-rule failures (payment too low, budget too low) are not
// checked here; they come back from the engine as structured errors.
func (ip *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if cfg.Loan.FederalPortion != nil {
		fp := *cfg.Loan.FederalPortion
		if fp.LessThan(decimal.Zero) || fp.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("federal_portion must be between 0 and 1, got %s", fp)
		}
	}
	if cfg.Comparison != nil {
		if cfg.Comparison.Years <= 0 {
			return fmt.Errorf("comparison years must be positive, got %d", cfg.Comparison.Years)
		}
		if cfg.Comparison.AnnualReturnRate.LessThan(decimal.Zero) {
			return fmt.Errorf("comparison annual_return_rate cannot be negative, got %s", cfg.Comparison.AnnualReturnRate)
		}
	}
	if cfg.OtherDebts != nil && cfg.OtherDebts.MonthlyBudget.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly_budget cannot be negative, got %s", cfg.OtherDebts.MonthlyBudget)
	}
	return nil
}

// BuildLoan constructs the domain Loan from the parsed configuration under a
// rate regime, applying the default federal portion when the input omits it.
func BuildLoan(cfg *domain.Configuration, rates domain.Rates) domain.Loan {
	federal := rates.DefaultFederal
	if cfg.Loan.FederalPortion != nil {
		federal = *cfg.Loan.FederalPortion
	}
	return domain.NewLoan(cfg.Loan.TotalAmount, federal, cfg.Loan.GraduationDate, cfg.Loan.InSchool, rates)
}
