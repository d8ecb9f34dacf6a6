// Package rent estimates monthly market rent from purchase price, market
// region, and property attributes. The estimator layers capped percentage
// adjustments over two independent base estimates and reports a confidence
// score that is hard-capped: a heuristic estimate never claims high
// certainty.
package rent

import (
	"fmt"
	"math"
	"strings"

	"rent_dscr/pkg/core/refdata"
)

// Attributes are the optional property details. Zero values mean "not
// provided"; missing signals cost confidence, never raise errors.
type Attributes struct {
	PropertyType string  `json:"property_type"`
	Beds         int     `json:"beds"`
	Baths        float64 `json:"baths"`
	Sqft         int     `json:"sqft"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description"`
}

// Estimate is the rent estimator output.
// Invariants: Low <= Estimated <= High, 0 <= Confidence <= ConfidenceCap.
type Estimate struct {
	Estimated   float64  `json:"estimated_monthly_rent"`
	Low         float64  `json:"low_estimate_rent"`
	High        float64  `json:"high_estimate_rent"`
	Confidence  float64  `json:"confidence_score"`
	Assumptions []string `json:"assumptions"`
}

// Estimator constants. One canonical formula: tiered yield base averaged
// with the region/sqft base, additive deltas clamped, fixed range.
const (
	ConfidenceBaseline = 0.60
	ConfidenceCap      = 0.75

	PersonalizationCap  = 0.25 // total additive adjustment, symmetric
	MarketCorrectionCap = 0.15 // regional correction layered on top

	RangeLowMultiplier  = 0.90
	RangeHighMultiplier = 1.10
)

// yieldTier maps a price band to a monthly yield and a confidence penalty
// for the bands where the yield heuristic is least reliable.
type yieldTier struct {
	maxPrice          float64
	monthlyYield      float64
	confidencePenalty float64 // multiplicative; 1.0 = no penalty
	note              string
}

var yieldTiers = []yieldTier{
	{100000, 0.0120, 0.85, "Low purchase price - using higher rent multiplier"},
	{250000, 0.0100, 1.00, ""},
	{500000, 0.0085, 1.00, ""},
	{1000000, 0.0070, 0.95, ""},
	{0, 0.0060, 0.85, "High purchase price - using lower rent multiplier"}, // catch-all
}

// Condition adjustments, additive percentages.
var conditionDeltas = map[string]float64{
	ConditionRenovated:    +0.10,
	ConditionAboveAverage: +0.05,
	ConditionAverage:      0,
	ConditionBelowAverage: -0.10,
	ConditionNeedsWork:    -0.15,
}

// EstimateRent produces the point estimate, range, confidence, and the
// ordered assumption trail. Every adjustment applied appends a note; the
// trail is part of the contract, not logging.
func EstimateRent(store *refdata.Store, address string, price float64, region string, attrs Attributes) Estimate {
	var assumptions []string
	confidence := ConfidenceBaseline

	// ---- Base 1: price-derived yield estimate ----
	tier := yieldTiers[len(yieldTiers)-1]
	for _, t := range yieldTiers[:len(yieldTiers)-1] {
		if price < t.maxPrice {
			tier = t
			break
		}
	}
	yieldBase := price * tier.monthlyYield
	confidence *= tier.confidencePenalty
	if tier.note != "" {
		assumptions = append(assumptions, tier.note)
	}

	// ---- Base 2: area-derived estimate (needs sqft and a region row) ----
	base := yieldBase
	areaBaseUsed := false
	if attrs.Sqft > 0 {
		if rec, ok := store.Region(region); ok {
			sizeTier := refdata.SizeTier(attrs.Sqft)
			areaBase := float64(attrs.Sqft) * rec.RatePerSqft(sizeTier)
			base = (yieldBase + areaBase) / 2
			areaBaseUsed = true
			assumptions = append(assumptions, fmt.Sprintf(
				"Blended price-yield estimate with %s market rate ($%.2f/sqft, %s tier)",
				rec.Region, rec.RatePerSqft(sizeTier), sizeTier))
		}
	}
	if !areaBaseUsed {
		confidence *= 0.90
		if attrs.Sqft > 0 {
			assumptions = append(assumptions, "No market rate for region - price-yield estimate only")
		} else {
			assumptions = append(assumptions, "Square footage not specified - price-yield estimate only")
		}
	}

	features := DetectFeatures(address, attrs.Description, attrs.Condition)

	// ---- Adjustment layer: additive personalization deltas ----
	var personalization float64
	addDelta := func(delta float64, note string) {
		personalization += delta
		assumptions = append(assumptions, note)
	}

	switch features.Condition {
	case ConditionUnknown:
		confidence *= 0.95
		assumptions = append(assumptions, "Property condition not specified - assuming average condition")
	case ConditionAverage:
		assumptions = append(assumptions, "Average condition - no adjustment")
	default:
		delta := conditionDeltas[features.Condition]
		addDelta(delta, fmt.Sprintf("Condition %q - adjusted rent by %+.0f%%", features.Condition, delta*100))
		if features.Condition == ConditionNeedsWork {
			confidence *= 0.80
		}
	}

	if features.Pool {
		addDelta(+0.03, "Pool detected (+3%)")
	}
	if features.Gym {
		addDelta(+0.02, "Gym/fitness amenity detected (+2%)")
	}
	if features.Gated {
		addDelta(+0.02, "Gated community detected (+2%)")
	}
	if features.Garage {
		addDelta(+0.02, "Garage/covered parking detected (+2%)")
	}
	if features.Yard {
		addDelta(+0.02, "Yard feature detected (+2%)")
	}
	if features.GoodSchools {
		addDelta(+0.04, "Strong school signals detected (+4%)")
	}
	if features.Coastal {
		addDelta(+0.06, "Coastal proximity detected (+6%)")
	}
	if features.NearEmployer {
		addDelta(+0.03, "Major employer proximity detected (+3%)")
	}
	if features.Rural {
		addDelta(-0.08, "Rural/low-demand signals detected (-8%)")
		confidence *= 0.90
	}

	// Bed/bath counts adjust only outside the typical band.
	switch {
	case attrs.Beds == 0:
		confidence *= 0.90
		assumptions = append(assumptions, "Number of bedrooms not specified - assuming 3 bedrooms")
	case attrs.Beds == 1:
		addDelta(-0.06, "1 bedroom property (-6%)")
		confidence *= 0.90
	case attrs.Beds >= 5:
		addDelta(+0.04, fmt.Sprintf("%d bedrooms - larger property (+4%%)", attrs.Beds))
		confidence *= 0.85
	}

	switch {
	case attrs.Baths == 0:
		confidence *= 0.90
		assumptions = append(assumptions, "Number of bathrooms not specified - assuming 2 bathrooms")
	case attrs.Baths <= 1:
		addDelta(-0.04, "Single bathroom (-4%)")
	case attrs.Baths >= 3.5:
		addDelta(+0.03, fmt.Sprintf("%.1f bathrooms (+3%%)", attrs.Baths))
	}

	// Price-per-sqft sanity notes (confidence only, no rent delta).
	if attrs.Sqft > 0 {
		perSqft := price / float64(attrs.Sqft)
		if perSqft < 50 {
			confidence *= 0.80
			assumptions = append(assumptions, "Low price per sqft - may be in low-cost area or needs work")
		} else if perSqft > 500 {
			confidence *= 0.85
			assumptions = append(assumptions, "High price per sqft - may be in premium area")
		}
	}

	// ---- Property type multiplier ----
	typeMultiplier := 1.0
	switch normalizeType(attrs.PropertyType) {
	case "":
		confidence *= 0.95
		assumptions = append(assumptions, "Property type not specified - assuming single-family residence")
	case "CONDO", "TOWNHOUSE":
		typeMultiplier = 0.95
		assumptions = append(assumptions, fmt.Sprintf("Adjusted for %s (typically -5%%)", attrs.PropertyType))
	case "MULTI-FAMILY":
		confidence *= 0.90
		assumptions = append(assumptions, "Multi-family property - estimate is per unit average")
	}

	// ---- Market correction: regional baseline vs the default baseline ----
	// Only layered on the price-only path; the blended base already carries
	// the regional signal.
	var correction float64
	if !areaBaseUsed {
		if rec, ok := store.Region(region); ok {
			if def, okDef := store.Region(refdata.DefaultRegion); okDef && def.BaselineRent > 0 {
				correction = rec.BaselineRent/def.BaselineRent - 1
				correction = clamp(correction, MarketCorrectionCap)
				if correction != 0 {
					assumptions = append(assumptions, fmt.Sprintf(
						"Market correction for %s (%+.0f%%)", rec.Region, correction*100))
				}
			}
		}
	}

	// ---- Combine under caps ----
	personalization = clamp(personalization, PersonalizationCap)
	combined := clamp(personalization+correction, PersonalizationCap)

	estimated := base * typeMultiplier * (1 + combined)

	if confidence > ConfidenceCap {
		confidence = ConfidenceCap
	}
	if confidence < 0 {
		confidence = 0
	}
	if len(assumptions) == 0 {
		assumptions = append(assumptions, "Using general market patterns only")
	}

	return Estimate{
		Estimated:   round2(estimated),
		Low:         round2(estimated * RangeLowMultiplier),
		High:        round2(estimated * RangeHighMultiplier),
		Confidence:  round2(confidence),
		Assumptions: assumptions,
	}
}

// Manual wraps a caller-supplied rent in the Estimate contract. The range
// collapses to the supplied figure and confidence is reported at the cap:
// the caller asserted the number, the estimator did not infer it.
func Manual(rentMonthly float64) Estimate {
	return Estimate{
		Estimated:   rentMonthly,
		Low:         rentMonthly,
		High:        rentMonthly,
		Confidence:  ConfidenceCap,
		Assumptions: []string{"Manual rent override supplied - automatic estimation skipped"},
	}
}

func normalizeType(propertyType string) string {
	switch upper := strings.ToUpper(strings.TrimSpace(propertyType)); upper {
	case "CONDO", "CONDOMINIUM":
		return "CONDO"
	case "TOWNHOUSE", "TOWNHOME":
		return "TOWNHOUSE"
	case "MULTI-FAMILY", "MULTIFAMILY", "MULTI FAMILY", "DUPLEX", "TRIPLEX", "QUADPLEX":
		return "MULTI-FAMILY"
	default:
		return upper
	}
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
