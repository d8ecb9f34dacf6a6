// Package refdata holds the static reference tables the engine reads at
// startup: per-county property-tax millage rates and per-region rental
// market rates. Tables are loaded once and never mutated afterwards, so a
// single Store is safe to share across concurrent calculations.
package refdata

import (
	"fmt"
	"os"

	"rent_dscr/pkg/core/utils"
)

// CountyTaxRecord is one row of the millage table.
type CountyTaxRecord struct {
	Name            string  `json:"name"`
	MillageRate     float64 `json:"millage_rate"`
	AssessmentRatio float64 `json:"assessment_ratio"`
}

// DefaultAssessmentRatio is the SC rental-property assessment ratio (6%).
// Used when a county row does not carry its own ratio.
const DefaultAssessmentRatio = 0.06

// MarketRateRecord is one row of the rental market-rate table.
// BaselineRent is the monthly rent for a property at the reference size;
// TierMultipliers scale the derived $/sqft rate by size tier.
type MarketRateRecord struct {
	Region          string             `json:"region"`
	BaselineRent    float64            `json:"baseline_1800_sqft"`
	TierMultipliers map[string]float64 `json:"tier_multipliers"`
}

// ReferenceSqft is the calibration size for BaselineRent.
const ReferenceSqft = 1800.0

// Size tiers, fixed breakpoints on square footage.
const (
	TierSmall     = "small"      // < 1000 sqft
	TierMedium    = "medium"     // 1000-1500
	TierStandard  = "standard"   // 1500-2000 (reference size sits here)
	TierLarge     = "large"      // 2000-2500
	TierVeryLarge = "very_large" // >= 2500
)

// SizeTier buckets a square footage into its rate tier.
func SizeTier(sqft int) string {
	switch {
	case sqft < 1000:
		return TierSmall
	case sqft < 1500:
		return TierMedium
	case sqft < 2000:
		return TierStandard
	case sqft < 2500:
		return TierLarge
	default:
		return TierVeryLarge
	}
}

// Store is the read-only reference-data handle passed into calculations.
type Store struct {
	counties map[string]CountyTaxRecord
	regions  map[string]MarketRateRecord
}

// NewStore returns an empty store. Every lookup resolves to "not found"
// until tables are loaded.
func NewStore() *Store {
	return &Store{
		counties: make(map[string]CountyTaxRecord),
		regions:  make(map[string]MarketRateRecord),
	}
}

// County looks up the tax record for a county by exact name.
func (s *Store) County(name string) (CountyTaxRecord, bool) {
	rec, ok := s.counties[name]
	return rec, ok
}

// Region looks up the market-rate record for a region by exact name.
func (s *Store) Region(name string) (MarketRateRecord, bool) {
	rec, ok := s.regions[name]
	return rec, ok
}

// CountyNames returns the set of counties with a loaded millage rate.
func (s *Store) CountyNames() []string {
	names := make([]string, 0, len(s.counties))
	for name := range s.counties {
		names = append(names, name)
	}
	return names
}

// RegionNames returns the set of regions with a loaded market rate.
func (s *Store) RegionNames() []string {
	names := make([]string, 0, len(s.regions))
	for name := range s.regions {
		names = append(names, name)
	}
	return names
}

// CountyCount reports the number of loaded millage rows.
func (s *Store) CountyCount() int { return len(s.counties) }

// RegionCount reports the number of loaded market-rate rows.
func (s *Store) RegionCount() int { return len(s.regions) }

// millageFile mirrors the on-disk layout of millage.json.
type millageFile struct {
	Counties map[string]struct {
		MillageRate     float64 `json:"millage_rate"`
		AssessmentRatio float64 `json:"assessment_ratio"`
	} `json:"counties"`
}

// marketRateFile mirrors the on-disk layout of market_rates.hjson.
type marketRateFile struct {
	Regions map[string]struct {
		BaselineRent    float64            `json:"baseline_1800_sqft"`
		TierMultipliers map[string]float64 `json:"tier_multipliers"`
	} `json:"regions"`
}

// LoadMillageFile replaces the county table with the contents of a JSON
// millage file. A malformed file gets one automatic repair pass; a file
// that is missing or unusable leaves the table empty and returns an error
// for the caller to log. Lookups against an empty table resolve to
// "not found" rather than crashing a calculation.
func (s *Store) LoadMillageFile(path string) error {
	s.counties = make(map[string]CountyTaxRecord)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("millage file unreadable: %w", err)
	}

	var file millageFile
	if err := utils.DecodeJSONLenient(data, &file); err != nil {
		return fmt.Errorf("millage file %s: %w", path, err)
	}

	for name, row := range file.Counties {
		if row.MillageRate <= 0 {
			continue // a row without a usable rate is as good as absent
		}
		ratio := row.AssessmentRatio
		if ratio <= 0 {
			ratio = DefaultAssessmentRatio
		}
		s.counties[name] = CountyTaxRecord{
			Name:            name,
			MillageRate:     row.MillageRate,
			AssessmentRatio: ratio,
		}
	}
	return nil
}

// LoadMarketRatesFile replaces the region table with the contents of an
// Hjson market-rate file. Same degrade-to-empty contract as LoadMillageFile.
func (s *Store) LoadMarketRatesFile(path string) error {
	s.regions = make(map[string]MarketRateRecord)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("market-rate file unreadable: %w", err)
	}

	var file marketRateFile
	if err := utils.DecodeHJSON(data, &file); err != nil {
		return fmt.Errorf("market-rate file %s: %w", path, err)
	}

	for name, row := range file.Regions {
		if row.BaselineRent <= 0 {
			continue
		}
		s.regions[name] = MarketRateRecord{
			Region:          name,
			BaselineRent:    row.BaselineRent,
			TierMultipliers: row.TierMultipliers,
		}
	}
	return nil
}

// TierMultiplier returns the rate multiplier for a size tier, defaulting to
// the standard tier (1.0) when the region row does not list the tier.
func (r MarketRateRecord) TierMultiplier(tier string) float64 {
	if m, ok := r.TierMultipliers[tier]; ok && m > 0 {
		return m
	}
	return 1.0
}

// RatePerSqft derives the $/sqft rate for a size tier from the region's
// baseline rent at the reference size.
func (r MarketRateRecord) RatePerSqft(tier string) float64 {
	return r.BaselineRent / ReferenceSqft * r.TierMultiplier(tier)
}
