package rent

import "testing"

func TestDetectFeaturesAmenities(t *testing.T) {
	f := DetectFeatures(
		"123 Ocean Blvd, Myrtle Beach, SC",
		"Gated community with pool, two-car garage, fenced yard, near hospital",
		"")

	if !f.Coastal {
		t.Error("Expected coastal from Ocean Blvd in address")
	}
	if !f.Gated || !f.Pool || !f.Garage || !f.Yard || !f.NearEmployer {
		t.Errorf("Expected gated/pool/garage/yard/employer flags, got %+v", f)
	}
	if f.Gym || f.Rural || f.GoodSchools {
		t.Errorf("Unexpected flags set: %+v", f)
	}
}

func TestDetectFeaturesRural(t *testing.T) {
	f := DetectFeatures("10 County Rd", "5 acreage lot on unpaved road", "")
	if !f.Rural {
		t.Error("Expected rural flag")
	}
}

func TestDetectConditionFromDescription(t *testing.T) {
	cases := []struct {
		description string
		category    string
	}{
		{"Beautifully renovated kitchen", ConditionRenovated},
		{"New construction, never occupied", ConditionRenovated},
		{"Well maintained and move-in ready", ConditionAboveAverage},
		{"Needs work, sold as-is", ConditionNeedsWork},
		{"Dated finishes throughout", ConditionBelowAverage},
		{"Average starter home", ConditionAverage},
		{"Three bedrooms on a quiet street", ConditionUnknown},
	}
	for _, c := range cases {
		f := DetectFeatures("", c.description, "")
		if f.Condition != c.category {
			t.Errorf("%q: expected %q, got %q", c.description, c.category, f.Condition)
		}
	}
}

func TestDetectConditionExplicitWins(t *testing.T) {
	// The condition field overrides whatever the listing text says.
	f := DetectFeatures("", "Beautifully renovated", "needs work")
	if f.Condition != ConditionNeedsWork {
		t.Errorf("Expected needs_work from explicit field, got %q", f.Condition)
	}
}

func TestDetectConditionFirstMatchWins(t *testing.T) {
	// Positive categories are listed first: a mixed listing reads positive.
	f := DetectFeatures("", "Renovated, was a fixer before", "")
	if f.Condition != ConditionRenovated {
		t.Errorf("Expected renovated, got %q", f.Condition)
	}
}
