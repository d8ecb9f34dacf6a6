// Package tax computes jurisdiction-specific property taxes for rental
// properties. The resolver only ever applies a millage rate that exists in
// the reference table; an unknown county surfaces as an explicit status,
// never as an invented rate. Whether that status blocks the calculation or
// triggers a flat fallback is a caller policy decision (config), not this
// package's.
package tax

import "rent_dscr/pkg/core/refdata"

// Accuracy states for a tax resolution.
const (
	AccuracyOK              = "ok"
	AccuracyCountyNotFound  = "county_not_found"
	AccuracyMissingValue    = "missing_value"
	AccuracyGenericFallback = "generic_fallback" // applied by the caller under fallback policy
	AccuracyManual          = "manual"           // applied by the caller when taxes are supplied
)

// Resolution is the outcome of one tax lookup. Numeric fields are nil
// unless Accuracy is "ok" (or the caller has overridden them under a
// fallback/manual policy).
type Resolution struct {
	County          *string  `json:"county_name"`
	MillageRate     *float64 `json:"millage_rate"`
	AssessmentRatio *float64 `json:"assessment_ratio"`
	TaxableValue    *float64 `json:"taxable_value"`
	AnnualTax       *float64 `json:"annual_taxes"`
	MonthlyTax      *float64 `json:"monthly_taxes"`
	Accuracy        string   `json:"tax_accuracy"`
}

// Resolve computes the property tax for a price in a detected county.
//
// FORMULAS (SC rental property):
//
//	TAXABLE_VALUE = PRICE x ASSESSMENT_RATIO
//	ANNUAL_TAX    = TAXABLE_VALUE x MILLAGE_RATE
//	MONTHLY_TAX   = ANNUAL_TAX / 12
//
// Rule order: missing/non-positive price wins over an unknown county; both
// produce all-nil numeric fields with the matching accuracy status.
func Resolve(store *refdata.Store, county string, price float64) Resolution {
	if price <= 0 {
		return Resolution{Accuracy: AccuracyMissingValue}
	}

	if county == "" {
		return Resolution{Accuracy: AccuracyCountyNotFound}
	}

	rec, ok := store.County(county)
	if !ok {
		// Detected a county name but the rate table has no row for it.
		// Still "not found": we do not estimate rates.
		name := county
		return Resolution{County: &name, Accuracy: AccuracyCountyNotFound}
	}

	taxable := price * rec.AssessmentRatio
	annual := taxable * rec.MillageRate
	monthly := annual / 12

	name := rec.Name
	millage := rec.MillageRate
	ratio := rec.AssessmentRatio
	return Resolution{
		County:          &name,
		MillageRate:     &millage,
		AssessmentRatio: &ratio,
		TaxableValue:    &taxable,
		AnnualTax:       &annual,
		MonthlyTax:      &monthly,
		Accuracy:        AccuracyOK,
	}
}

// FlatFallback builds a resolution from a flat annual rate on price
// (e.g. 0.012 for 1.2%). Used by callers operating under fallback policy;
// tagged generic_fallback so consumers can see no county rate was applied.
func FlatFallback(price, annualRate float64) Resolution {
	if price <= 0 {
		return Resolution{Accuracy: AccuracyMissingValue}
	}
	annual := price * annualRate
	monthly := annual / 12
	return Resolution{
		AnnualTax:  &annual,
		MonthlyTax: &monthly,
		Accuracy:   AccuracyGenericFallback,
	}
}

// Manual builds a resolution from caller-supplied annual taxes.
func Manual(annualTaxes float64) Resolution {
	monthly := annualTaxes / 12
	return Resolution{
		AnnualTax:  &annualTaxes,
		MonthlyTax: &monthly,
		Accuracy:   AccuracyManual,
	}
}
