package rent

import (
	"math"
	"testing"

	"rent_dscr/pkg/core/refdata"
)

func TestEstimateRentPriceOnly(t *testing.T) {
	// No attributes at all: pure yield base, every missing signal dents
	// confidence, rent itself stays at the tier yield.
	store := refdata.Defaults()
	est := EstimateRent(store, "123 Main St, Smalltown, SC", 400000, refdata.DefaultRegion, Attributes{})

	// 400000 sits in the <500000 tier: 0.0085 monthly yield = 3400.
	if math.Abs(est.Estimated-3400) > 0.001 {
		t.Errorf("Expected 3400, got %f", est.Estimated)
	}

	// 0.60 x 0.90 (no sqft) x 0.95 (no condition) x 0.90 (no beds)
	//      x 0.90 (no baths) x 0.95 (no type) = 0.3948 -> 0.39
	if math.Abs(est.Confidence-0.39) > 0.001 {
		t.Errorf("Expected confidence 0.39, got %f", est.Confidence)
	}
	if len(est.Assumptions) == 0 {
		t.Error("Expected assumption trail for missing attributes")
	}
}

func TestEstimateRentBlended(t *testing.T) {
	// Full attributes in a known region: yield base 3400 blends with the
	// area base 1800 x (2200/1800) = 2200 -> 2800; Ocean Blvd adds +6%.
	store := refdata.Defaults()
	attrs := Attributes{
		PropertyType: "Single Family",
		Beds:         3,
		Baths:        2,
		Sqft:         1800,
		Condition:    "average",
	}
	est := EstimateRent(store, "123 Ocean Blvd, Myrtle Beach, SC 29577", 400000, "Myrtle Beach", attrs)

	if math.Abs(est.Estimated-2968) > 0.001 {
		t.Errorf("Expected 2968, got %f", est.Estimated)
	}
	// Nothing missing, nothing risky: confidence stays at the baseline.
	if math.Abs(est.Confidence-0.60) > 0.001 {
		t.Errorf("Expected confidence 0.60, got %f", est.Confidence)
	}
	if math.Abs(est.Low-est.Estimated*RangeLowMultiplier) > 0.01 {
		t.Errorf("Expected low = estimated x 0.90, got %f", est.Low)
	}
	if math.Abs(est.High-est.Estimated*RangeHighMultiplier) > 0.01 {
		t.Errorf("Expected high = estimated x 1.10, got %f", est.High)
	}
}

func TestEstimateRentPersonalizationCap(t *testing.T) {
	// Stacked positive signals exceed +25% raw; the cap holds at +25%.
	store := refdata.Defaults()
	attrs := Attributes{
		PropertyType: "House",
		Beds:         3,
		Baths:        2,
		Condition:    "renovated",
		Description:  "pool, gym, gated, garage, backyard, great school, oceanfront, near hospital",
	}
	est := EstimateRent(store, "1 Main St, SC", 200000, refdata.DefaultRegion, attrs)

	// Yield base 200000 x 0.0100 = 2000; capped adjustment: 2000 x 1.25.
	if math.Abs(est.Estimated-2500) > 0.001 {
		t.Errorf("Expected 2500 (capped +25%%), got %f", est.Estimated)
	}
}

func TestEstimateRentMarketCorrection(t *testing.T) {
	// Price-only path in a premium region: the regional correction applies
	// but clamps at +15%.
	store := refdata.Defaults()
	est := EstimateRent(store, "1 Sea Pines Dr, Hilton Head, SC", 400000, "Hilton Head", Attributes{})

	// 3400 x (1 + 0.15) = 3910; raw baseline ratio 3600/2000 would be +80%.
	if math.Abs(est.Estimated-3910) > 0.001 {
		t.Errorf("Expected 3910 (correction clamped), got %f", est.Estimated)
	}
}

func TestEstimateRentNegativeAdjustments(t *testing.T) {
	store := refdata.Defaults()
	attrs := Attributes{
		Beds:        1,
		Baths:       1,
		Condition:   "needs work",
		Description: "rural property on unpaved road",
	}
	est := EstimateRent(store, "99 Backwoods Ln, SC", 200000, refdata.DefaultRegion, attrs)

	// -15% condition, -8% rural, -6% one bed, -4% one bath = -33% raw,
	// clamped at -25%: 2000 x 0.75 = 1500.
	if math.Abs(est.Estimated-1500) > 0.001 {
		t.Errorf("Expected 1500 (capped -25%%), got %f", est.Estimated)
	}
}

func TestEstimateRentCondoMultiplier(t *testing.T) {
	store := refdata.Defaults()
	attrs := Attributes{PropertyType: "Condo", Beds: 2, Baths: 2, Condition: "average"}
	est := EstimateRent(store, "1 Main St, SC", 200000, refdata.DefaultRegion, attrs)

	// 2000 x 0.95 type multiplier, no other deltas.
	if math.Abs(est.Estimated-1900) > 0.001 {
		t.Errorf("Expected 1900, got %f", est.Estimated)
	}
}

func TestEstimateRentYieldTiers(t *testing.T) {
	store := refdata.Defaults()
	cases := []struct {
		price    float64
		expected float64
	}{
		{50000, 600},     // 0.0120 tier
		{200000, 2000},   // 0.0100 tier
		{400000, 3400},   // 0.0085 tier
		{800000, 5600},   // 0.0070 tier
		{2000000, 12000}, // 0.0060 catch-all
	}
	for _, c := range cases {
		est := EstimateRent(store, "1 Main St, SC", c.price, refdata.DefaultRegion, Attributes{})
		if math.Abs(est.Estimated-c.expected) > 0.001 {
			t.Errorf("Price %.0f: expected %f, got %f", c.price, c.expected, est.Estimated)
		}
	}
}

func TestEstimateRentInvariants(t *testing.T) {
	// Range ordering and the confidence cap must hold at every price point.
	store := refdata.Defaults()
	attrs := Attributes{
		PropertyType: "Single Family",
		Beds:         4,
		Baths:        3.5,
		Sqft:         2200,
		Condition:    "renovated",
		Description:  "pool, gated, oceanfront, top school district",
	}
	for price := 50000.0; price <= 2000000; price += 150000 {
		est := EstimateRent(store, "1 Ocean Blvd, Myrtle Beach, SC", price, "Myrtle Beach", attrs)

		if !(est.Low <= est.Estimated && est.Estimated <= est.High) {
			t.Errorf("Price %.0f: range out of order: %f / %f / %f", price, est.Low, est.Estimated, est.High)
		}
		if est.Confidence < 0 || est.Confidence > ConfidenceCap {
			t.Errorf("Price %.0f: confidence %f outside [0, %f]", price, est.Confidence, ConfidenceCap)
		}
	}
}

func TestEstimateRentDeterministic(t *testing.T) {
	store := refdata.Defaults()
	attrs := Attributes{Beds: 3, Baths: 2, Sqft: 1600, Condition: "good", Description: "backyard, garage"}

	first := EstimateRent(store, "10 Oak St, Greenville, SC", 350000, "Greenville", attrs)
	for i := 0; i < 5; i++ {
		again := EstimateRent(store, "10 Oak St, Greenville, SC", 350000, "Greenville", attrs)
		if again.Estimated != first.Estimated || again.Confidence != first.Confidence {
			t.Fatalf("Estimate not deterministic: %+v vs %+v", first, again)
		}
		if len(again.Assumptions) != len(first.Assumptions) {
			t.Fatalf("Assumption trail not deterministic")
		}
	}
}

func TestManualRent(t *testing.T) {
	est := Manual(2400)
	if est.Estimated != 2400 || est.Low != 2400 || est.High != 2400 {
		t.Errorf("Expected collapsed range at 2400, got %+v", est)
	}
	if est.Confidence != ConfidenceCap {
		t.Errorf("Expected confidence at cap, got %f", est.Confidence)
	}
}
