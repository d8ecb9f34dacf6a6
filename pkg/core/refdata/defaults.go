package refdata

// Built-in South Carolina tables. These mirror resources/millage.json and
// resources/market_rates.hjson and keep the engine usable when the files
// are absent (tests, embedded deployments). File loads replace them.

// DefaultRegion is the catch-all market row applied to addresses recognized
// as in-state but matching no listed region. It is reported by name, never
// silently disguised as a specific-region match.
const DefaultRegion = "Default SC"

var defaultTierMultipliers = map[string]float64{
	TierSmall:     1.19,
	TierMedium:    1.09,
	TierStandard:  1.00,
	TierLarge:     0.89,
	TierVeryLarge: 0.78,
}

var defaultMillage = map[string]float64{
	"Horry County":       0.2415,
	"Charleston County":  0.2070,
	"Berkeley County":    0.2610,
	"Dorchester County":  0.2780,
	"Georgetown County":  0.2190,
	"Beaufort County":    0.1910,
	"Richland County":    0.3410,
	"Lexington County":   0.3080,
	"Greenville County":  0.2720,
	"Spartanburg County": 0.3090,
	"Anderson County":    0.2930,
	"Pickens County":     0.2350,
	"York County":        0.2840,
	"Florence County":    0.2980,
	"Aiken County":       0.2660,
	"Sumter County":      0.3250,
}

// Baseline monthly rent for an 1800 sqft property, by market region.
// Coastal tier-1 islands at the top, upstate metros at the bottom.
var defaultBaselineRents = map[string]float64{
	"Hilton Head":         3600,
	"Kiawah":              3600,
	"Isle of Palms":       3600,
	"Seabrook":            3600,
	"Sullivans Island":    3500,
	"Fripp Island":        3200,
	"Daniel Island":       3400,
	"Charleston Downtown": 3400,
	"Charleston":          2800,
	"Folly Beach":         2800,
	"Mount Pleasant":      2700,
	"James Island":        2500,
	"West Ashley":         2300,
	"Summerville":         2200,
	"North Charleston":    2000,
	"Myrtle Beach":        2200,
	"North Myrtle Beach":  2250,
	"Little River":        2100,
	"Surfside Beach":      2100,
	"Murrells Inlet":      2150,
	"Pawleys Island":      2400,
	"Garden City":         2000,
	"Beaufort":            2300,
	"Edisto":              2200,
	"Georgetown":          2000,
	"Columbia":            1950,
	"Forest Acres":        2000,
	"Lexington":           1900,
	"Irmo":                1850,
	"Greenville":          1900,
	"Simpsonville":        1850,
	"Greer":               1800,
	"Clemson":             1950,
	"Spartanburg":         1750,
	"Anderson":            1700,
	DefaultRegion:         2000,
}

// Defaults returns a store populated with the built-in SC tables.
func Defaults() *Store {
	s := NewStore()
	for name, rate := range defaultMillage {
		s.counties[name] = CountyTaxRecord{
			Name:            name,
			MillageRate:     rate,
			AssessmentRatio: DefaultAssessmentRatio,
		}
	}
	for name, baseline := range defaultBaselineRents {
		s.regions[name] = MarketRateRecord{
			Region:          name,
			BaselineRent:    baseline,
			TierMultipliers: defaultTierMultipliers,
		}
	}
	return s
}
