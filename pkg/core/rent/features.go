package rent

import "strings"

// Condition categories, each tied to a fixed rent adjustment.
const (
	ConditionRenovated    = "renovated"
	ConditionAboveAverage = "above_average"
	ConditionAverage      = "average"
	ConditionBelowAverage = "below_average"
	ConditionNeedsWork    = "needs_work"
	ConditionUnknown      = ""
)

// Features are the boolean amenity/location signals detected from the
// address and listing text. Pure keyword containment, no NLP.
type Features struct {
	Pool         bool
	Gym          bool
	Gated        bool
	Garage       bool
	Yard         bool
	GoodSchools  bool
	Coastal      bool
	NearEmployer bool
	Rural        bool
	Condition    string
}

// keywordSet flags a feature when any of its keywords appears in the
// normalized text. Tables are data so individual rules stay testable.
type keywordSet struct {
	keywords []string
	apply    func(*Features)
}

var featureRules = []keywordSet{
	{[]string{"POOL"}, func(f *Features) { f.Pool = true }},
	{[]string{"GYM", "FITNESS CENTER"}, func(f *Features) { f.Gym = true }},
	{[]string{"GATED"}, func(f *Features) { f.Gated = true }},
	{[]string{"GARAGE", "COVERED PARKING"}, func(f *Features) { f.Garage = true }},
	{[]string{"FENCED YARD", "LARGE YARD", "BIG YARD", "BACKYARD"}, func(f *Features) { f.Yard = true }},
	{[]string{"TOP SCHOOL", "GREAT SCHOOL", "EXCELLENT SCHOOL", "SCHOOL DISTRICT"}, func(f *Features) { f.GoodSchools = true }},
	{[]string{"OCEANFRONT", "OCEAN VIEW", "BEACHFRONT", "WATERFRONT", "OCEAN BLVD", "BEACH"}, func(f *Features) { f.Coastal = true }},
	{[]string{"NEAR HOSPITAL", "NEAR BASE", "NEAR UNIVERSITY", "NEAR DOWNTOWN", "BMW PLANT", "BOEING"}, func(f *Features) { f.NearEmployer = true }},
	{[]string{"RURAL", "UNPAVED", "ACREAGE", "REMOTE"}, func(f *Features) { f.Rural = true }},
}

// conditionRules map condition/listing text onto a category, most positive
// first. First match wins so "beautifully renovated, was a fixer" reads as
// renovated.
var conditionRules = []struct {
	keywords []string
	category string
}{
	{[]string{"RENOVATED", "REMODELED", "UPDATED", "EXCELLENT", "LUXURY", "PREMIUM", "LIKE NEW", "NEW CONSTRUCTION"}, ConditionRenovated},
	{[]string{"ABOVE AVERAGE", "WELL MAINTAINED", "MOVE-IN READY", "MOVE IN READY", "GOOD CONDITION", "GOOD"}, ConditionAboveAverage},
	{[]string{"NEEDS WORK", "FIXER", "HANDYMAN", "TLC", "AS-IS", "AS IS", "POOR"}, ConditionNeedsWork},
	{[]string{"BELOW AVERAGE", "DATED", "WORN", "ORIGINAL CONDITION"}, ConditionBelowAverage},
	{[]string{"AVERAGE", "FAIR"}, ConditionAverage},
}

// DetectFeatures scans the concatenated address, listing description, and
// condition text for amenity/location signals and a condition category.
func DetectFeatures(address, description, condition string) Features {
	text := strings.ToUpper(address + " " + description)

	var f Features
	for _, rule := range featureRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				rule.apply(&f)
				break
			}
		}
	}

	// Condition: the explicit field takes precedence over listing text.
	f.Condition = detectCondition(strings.ToUpper(condition))
	if f.Condition == ConditionUnknown {
		f.Condition = detectCondition(strings.ToUpper(description))
	}
	return f
}

func detectCondition(textUpper string) string {
	if textUpper == "" {
		return ConditionUnknown
	}
	for _, rule := range conditionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(textUpper, kw) {
				return rule.category
			}
		}
	}
	return ConditionUnknown
}
