package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/osaptools/osap/internal/domain"
)

// DefaultRates returns the built-in Ontario 2024-2025 rate regime: prime at
// 7.25% on the federal portion, an interest-free provincial portion, a
// 6-month grace period and the RAP thresholds by family size.
func DefaultRates() domain.Rates {
	return domain.Rates{
		PrimeRate:         decimal.NewFromFloat(0.0725),
		FederalRate:       decimal.NewFromFloat(0.0725),
		ProvincialRate:    decimal.Zero,
		DefaultFederal:    decimal.NewFromFloat(0.6),
		GracePeriodMonths: 6,
		ForgivenessYears:  15,
		RAPThresholds: map[int]domain.RAPThreshold{
			1: {Stage1: decimal.NewFromInt(40000), Stage2: decimal.NewFromInt(25000)},
			2: {Stage1: decimal.NewFromInt(50000), Stage2: decimal.NewFromInt(31250)},
			3: {Stage1: decimal.NewFromInt(60000), Stage2: decimal.NewFromInt(37500)},
			4: {Stage1: decimal.NewFromInt(70000), Stage2: decimal.NewFromInt(43750)},
			5: {Stage1: decimal.NewFromInt(80000), Stage2: decimal.NewFromInt(50000)},
		},
		Fields: map[string]domain.FieldProfile{
			"computer_science": fieldProfile(72000, "high", 0.40, 0.35),
			"engineering":      fieldProfile(70000, "high", 0.40, 0.32),
			"health":           fieldProfile(65000, "high", 0.35, 0.28),
			"trades":           fieldProfile(56000, "high", 0.35, 0.20),
			"business":         fieldProfile(58000, "moderate", 0.35, 0.25),
			"science":          fieldProfile(55000, "moderate", 0.30, 0.22),
			"education":        fieldProfile(52000, "moderate", 0.30, 0.18),
			"social_science":   fieldProfile(48000, "low", 0.25, 0.15),
			"arts":             fieldProfile(42000, "low", 0.25, 0.12),
			domain.FieldOther:  fieldProfile(50000, "moderate", 0.30, 0.20),
		},
		GrowthCurve: []domain.ExperienceMultiplier{
			{Years: 0, Multiplier: decimal.NewFromFloat(1.00)},
			{Years: 1, Multiplier: decimal.NewFromFloat(1.08)},
			{Years: 2, Multiplier: decimal.NewFromFloat(1.15)},
			{Years: 3, Multiplier: decimal.NewFromFloat(1.22)},
			{Years: 5, Multiplier: decimal.NewFromFloat(1.40)},
			{Years: 10, Multiplier: decimal.NewFromFloat(1.75)},
		},
	}
}

func fieldProfile(entry int64, outlook string, pct, growth float64) domain.FieldProfile {
	return domain.FieldProfile{
		EntrySalary:    decimal.NewFromInt(entry),
		Outlook:        outlook,
		RecommendedPct: decimal.NewFromFloat(pct),
		FiveYearGrowth: decimal.NewFromFloat(growth),
	}
}

// LoadRatesFile reads a yaml rates file and merges it over the defaults, so a
// partial file overriding only the prime rate still carries the full tables.
func LoadRatesFile(filename string) (domain.Rates, error) {
	rates := DefaultRates()

	data, err := os.ReadFile(filename)
	if err != nil {
		return rates, fmt.Errorf("failed to read rates file %s: %w", filename, err)
	}

	var override ratesOverride
	if err := yaml.Unmarshal(data, &override); err != nil {
		return rates, fmt.Errorf("failed to parse rates file %s: %w", filename, err)
	}

	override.apply(&rates)
	return rates, nil
}

// ratesOverride mirrors domain.Rates with optional fields for the merge.
type ratesOverride struct {
	PrimeRate         *decimal.Decimal                `yaml:"prime_rate"`
	FederalRate       *decimal.Decimal                `yaml:"federal_rate"`
	ProvincialRate    *decimal.Decimal                `yaml:"provincial_rate"`
	DefaultFederal    *decimal.Decimal                `yaml:"default_federal_portion"`
	GracePeriodMonths *int                            `yaml:"grace_period_months"`
	ForgivenessYears  *int                            `yaml:"forgiveness_years"`
	RAPThresholds     map[int]domain.RAPThreshold     `yaml:"rap_thresholds"`
	Fields            map[string]domain.FieldProfile  `yaml:"fields"`
	GrowthCurve       []domain.ExperienceMultiplier   `yaml:"growth_curve"`
}

func (o *ratesOverride) apply(rates *domain.Rates) {
	if o.PrimeRate != nil {
		rates.PrimeRate = *o.PrimeRate
	}
	if o.FederalRate != nil {
		rates.FederalRate = *o.FederalRate
	}
	if o.ProvincialRate != nil {
		rates.ProvincialRate = *o.ProvincialRate
	}
	if o.DefaultFederal != nil {
		rates.DefaultFederal = *o.DefaultFederal
	}
	if o.GracePeriodMonths != nil {
		rates.GracePeriodMonths = *o.GracePeriodMonths
	}
	if o.ForgivenessYears != nil {
		rates.ForgivenessYears = *o.ForgivenessYears
	}
	for size, th := range o.RAPThresholds {
		rates.RAPThresholds[size] = th
	}
	for tag, fp := range o.Fields {
		rates.Fields[tag] = fp
	}
	if len(o.GrowthCurve) > 0 {
		rates.GrowthCurve = o.GrowthCurve
	}
}
