package domain

import (
	"github.com/shopspring/decimal"
)

// RAPThreshold holds the Repayment Assistance Plan income thresholds for one
// family size. Stage 2 is the full-assistance ceiling, stage 1 the
// partial-assistance ceiling.
type RAPThreshold struct {
	Stage1 decimal.Decimal `yaml:"stage1" json:"stage1"`
	Stage2 decimal.Decimal `yaml:"stage2" json:"stage2"`
}

// FieldProfile carries salary and outlook benchmarks for a field of study.
type FieldProfile struct {
	EntrySalary    decimal.Decimal `yaml:"entry_salary" json:"entry_salary"`
	Outlook        string          `yaml:"outlook" json:"outlook"` // high, moderate, low
	RecommendedPct decimal.Decimal `yaml:"recommended_pct" json:"recommended_pct"`
	FiveYearGrowth decimal.Decimal `yaml:"five_year_growth" json:"five_year_growth"`
}

// ExperienceMultiplier maps years of experience to a salary multiplier.
// Lookups use the nearest key, so the slice must stay sorted by Years.
type ExperienceMultiplier struct {
	Years      int             `yaml:"years" json:"years"`
	Multiplier decimal.Decimal `yaml:"multiplier" json:"multiplier"`
}

// Rates is the full rate-and-threshold regime the engine calculates under.
// It is injected at construction time so alternate regimes (tests, future
// rate years) substitute cleanly; nothing reads package-level mutable state.
type Rates struct {
	PrimeRate         decimal.Decimal        `yaml:"prime_rate" json:"prime_rate"`
	FederalRate       decimal.Decimal        `yaml:"federal_rate" json:"federal_rate"`
	ProvincialRate    decimal.Decimal        `yaml:"provincial_rate" json:"provincial_rate"`
	DefaultFederal    decimal.Decimal        `yaml:"default_federal_portion" json:"default_federal_portion"`
	GracePeriodMonths int                    `yaml:"grace_period_months" json:"grace_period_months"`
	ForgivenessYears  int                    `yaml:"forgiveness_years" json:"forgiveness_years"`
	RAPThresholds     map[int]RAPThreshold   `yaml:"rap_thresholds" json:"rap_thresholds"`
	Fields            map[string]FieldProfile `yaml:"fields" json:"fields"`
	GrowthCurve       []ExperienceMultiplier `yaml:"growth_curve" json:"growth_curve"`
}

// MaxRAPFamilySize is the largest family size the threshold table carries;
// larger households use this row.
const MaxRAPFamilySize = 5

// FieldOther is the fallback field-of-study tag for unknown fields.
const FieldOther = "other"

// Field returns the profile for a field-of-study tag, falling back to the
// generic "other" profile when the tag is unknown or empty.
func (r Rates) Field(tag string) FieldProfile {
	if p, ok := r.Fields[tag]; ok {
		return p
	}
	return r.Fields[FieldOther]
}

// Threshold returns the RAP thresholds for a family size, clamping to the
// table bounds.
func (r Rates) Threshold(familySize int) RAPThreshold {
	if familySize < 1 {
		familySize = 1
	}
	if familySize > MaxRAPFamilySize {
		familySize = MaxRAPFamilySize
	}
	return r.RAPThresholds[familySize]
}

// MultiplierAt returns the growth-curve multiplier for a number of years of
// experience using nearest-key lookup (exact keys win, ties round down).
func (r Rates) MultiplierAt(years int) decimal.Decimal {
	if len(r.GrowthCurve) == 0 {
		return decimal.NewFromInt(1)
	}
	best := r.GrowthCurve[0]
	bestDist := years - best.Years
	if bestDist < 0 {
		bestDist = -bestDist
	}
	for _, em := range r.GrowthCurve[1:] {
		dist := years - em.Years
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best = em
			bestDist = dist
		}
	}
	return best.Multiplier
}
