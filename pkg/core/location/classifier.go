// Package location maps a free-text address to a tax jurisdiction (county)
// and a rental market region. Matching is ordered substring containment over
// static rule tables, most specific rule first, first match wins. Unmatched
// addresses resolve to "not found" - the classifier never guesses.
package location

import (
	"regexp"
	"strconv"
	"strings"

	"rent_dscr/pkg/core/refdata"
)

// Classification is the outcome of classifying one address. Empty strings
// mean "not found". County and Region come from two independent rule
// tables: an address can resolve one, both, or neither.
type Classification struct {
	County string `json:"county"`
	Region string `json:"region"`
}

// rule maps any-of a keyword set to a result name. Tables are evaluated
// top to bottom; order encodes specificity (North Charleston must be
// tested before Charleston).
type rule struct {
	keywords []string
	name     string
}

// countyRules resolve the tax jurisdiction from city/area names.
var countyRules = []rule{
	{[]string{"NORTH MYRTLE BEACH"}, "Horry County"},
	{[]string{"MYRTLE BEACH"}, "Horry County"},
	{[]string{"LITTLE RIVER"}, "Horry County"},
	{[]string{"SURFSIDE"}, "Horry County"},
	{[]string{"GARDEN CITY"}, "Horry County"},
	{[]string{"CONWAY"}, "Horry County"},
	{[]string{"MURRELLS INLET"}, "Georgetown County"},
	{[]string{"PAWLEYS ISLAND"}, "Georgetown County"},
	{[]string{"NORTH CHARLESTON"}, "Charleston County"},
	{[]string{"MOUNT PLEASANT"}, "Charleston County"},
	{[]string{"FOLLY BEACH"}, "Charleston County"},
	{[]string{"ISLE OF PALMS"}, "Charleston County"},
	{[]string{"SULLIVANS ISLAND", "SULLIVAN'S ISLAND"}, "Charleston County"},
	{[]string{"JOHNS ISLAND"}, "Charleston County"},
	{[]string{"JAMES ISLAND"}, "Charleston County"},
	{[]string{"DANIEL ISLAND"}, "Charleston County"},
	{[]string{"KIAWAH"}, "Charleston County"},
	{[]string{"SEABROOK"}, "Charleston County"},
	{[]string{"CHARLESTON"}, "Charleston County"},
	{[]string{"GOOSE CREEK"}, "Berkeley County"},
	{[]string{"HANAHAN"}, "Berkeley County"},
	{[]string{"SUMMERVILLE"}, "Dorchester County"},
	{[]string{"HILTON HEAD"}, "Beaufort County"},
	{[]string{"BLUFFTON"}, "Beaufort County"},
	{[]string{"FRIPP ISLAND"}, "Beaufort County"},
	{[]string{"BEAUFORT"}, "Beaufort County"},
	{[]string{"WEST COLUMBIA"}, "Lexington County"},
	{[]string{"FOREST ACRES"}, "Richland County"},
	{[]string{"COLUMBIA"}, "Richland County"},
	{[]string{"LEXINGTON"}, "Lexington County"},
	{[]string{"CAYCE"}, "Lexington County"},
	{[]string{"IRMO"}, "Lexington County"},
	{[]string{"SIMPSONVILLE"}, "Greenville County"},
	{[]string{"MAULDIN"}, "Greenville County"},
	{[]string{"GREER"}, "Greenville County"},
	{[]string{"GREENVILLE"}, "Greenville County"},
	{[]string{"SPARTANBURG"}, "Spartanburg County"},
	{[]string{"CLEMSON"}, "Pickens County"},
	{[]string{"EASLEY"}, "Pickens County"},
	{[]string{"ANDERSON"}, "Anderson County"},
	{[]string{"ROCK HILL"}, "York County"},
	{[]string{"FLORENCE"}, "Florence County"},
	{[]string{"AIKEN"}, "Aiken County"},
	{[]string{"SUMTER"}, "Sumter County"},
	{[]string{"GEORGETOWN"}, "Georgetown County"},
	// County named outright in the address.
	{[]string{"HORRY"}, "Horry County"},
	{[]string{"BERKELEY"}, "Berkeley County"},
	{[]string{"DORCHESTER"}, "Dorchester County"},
	{[]string{"RICHLAND"}, "Richland County"},
	{[]string{"PICKENS"}, "Pickens County"},
	{[]string{"YORK COUNTY"}, "York County"},
}

// regionRules resolve the rental market region. More granular than the
// county table: Charleston splits into neighborhoods with distinct rents.
var regionRules = []rule{
	{[]string{"HILTON HEAD"}, "Hilton Head"},
	{[]string{"KIAWAH"}, "Kiawah"},
	{[]string{"ISLE OF PALMS"}, "Isle of Palms"},
	{[]string{"SEABROOK"}, "Seabrook"},
	{[]string{"SULLIVANS ISLAND", "SULLIVAN'S ISLAND"}, "Sullivans Island"},
	{[]string{"FRIPP ISLAND"}, "Fripp Island"},
	{[]string{"DANIEL ISLAND"}, "Daniel Island"},
	{[]string{"FOLLY BEACH"}, "Folly Beach"},
	{[]string{"JAMES ISLAND"}, "James Island"},
	{[]string{"WEST ASHLEY"}, "West Ashley"},
	{[]string{"MOUNT PLEASANT"}, "Mount Pleasant"},
	{[]string{"SUMMERVILLE"}, "Summerville"},
	{[]string{"NORTH CHARLESTON"}, "North Charleston"},
	{[]string{"DOWNTOWN", "PENINSULA", "BATTERY", "WATERFRONT"}, "Charleston Downtown"},
	{[]string{"CHARLESTON"}, "Charleston"},
	{[]string{"NORTH MYRTLE"}, "North Myrtle Beach"},
	{[]string{"LITTLE RIVER"}, "Little River"},
	{[]string{"SURFSIDE"}, "Surfside Beach"},
	{[]string{"MURRELLS INLET"}, "Murrells Inlet"},
	{[]string{"PAWLEYS ISLAND"}, "Pawleys Island"},
	{[]string{"GARDEN CITY"}, "Garden City"},
	{[]string{"MYRTLE BEACH"}, "Myrtle Beach"},
	{[]string{"BLUFFTON"}, "Beaufort"},
	{[]string{"BEAUFORT"}, "Beaufort"},
	{[]string{"EDISTO"}, "Edisto"},
	{[]string{"GEORGETOWN"}, "Georgetown"},
	{[]string{"FOREST ACRES"}, "Forest Acres"},
	{[]string{"LEXINGTON"}, "Lexington"},
	{[]string{"IRMO"}, "Irmo"},
	{[]string{"COLUMBIA"}, "Columbia"},
	{[]string{"SIMPSONVILLE"}, "Simpsonville"},
	{[]string{"GREER"}, "Greer"},
	{[]string{"CLEMSON"}, "Clemson"},
	{[]string{"SPARTANBURG"}, "Spartanburg"},
	{[]string{"ANDERSON"}, "Anderson"},
	{[]string{"GREENVILLE"}, "Greenville"},
}

// zipRange is the secondary fallback when no keyword matched but the
// address carries a ZIP in a known county's range.
type zipRange struct {
	low, high int
	county    string
	region    string
}

var zipRanges = []zipRange{
	{29564, 29599, "Horry County", "Myrtle Beach"},
	{29401, 29424, "Charleston County", "Charleston"},
	{29425, 29466, "Charleston County", "Mount Pleasant"},
	{29201, 29229, "Richland County", "Columbia"},
	{29601, 29617, "Greenville County", "Greenville"},
	{29901, 29940, "Beaufort County", "Beaufort"},
}

var zipPattern = regexp.MustCompile(`\b(29\d{3})\b`)

// statePattern requires a boundary on both sides of "SC" so that
// "SCOTTSDALE" does not count as in-state.
var statePattern = regexp.MustCompile(`(?:^|[\s,])SC(?:[\s,.]|$)`)

// inState reports whether the address carries a recognizable South Carolina
// marker: the state abbreviation, the state name, or an in-state ZIP.
func inState(addressUpper string) bool {
	if strings.Contains(addressUpper, "SOUTH CAROLINA") {
		return true
	}
	if statePattern.MatchString(addressUpper) {
		return true
	}
	return zipPattern.MatchString(addressUpper)
}

// Classify resolves an address to a county and a market region.
//
// Precedence per table: keyword rules top to bottom, then the ZIP-range
// fallback. The region additionally falls back to the named default region
// when the address is recognizably in-state; the county never falls back -
// an unresolved jurisdiction surfaces as "not found" so the tax resolver
// can report it instead of inventing a rate.
func Classify(address string) Classification {
	addr := strings.ToUpper(address)
	var out Classification

	if !inState(addr) {
		return out
	}

	for _, r := range countyRules {
		if matchAny(addr, r.keywords) {
			out.County = r.name
			break
		}
	}
	for _, r := range regionRules {
		if matchAny(addr, r.keywords) {
			out.Region = r.name
			break
		}
	}

	if out.County == "" || out.Region == "" {
		if zr, ok := matchZip(addr); ok {
			if out.County == "" {
				out.County = zr.county
			}
			if out.Region == "" {
				out.Region = zr.region
			}
		}
	}

	if out.Region == "" {
		out.Region = refdata.DefaultRegion
	}
	return out
}

func matchAny(addr string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(addr, kw) {
			return true
		}
	}
	return false
}

func matchZip(addr string) (zipRange, bool) {
	m := zipPattern.FindString(addr)
	if m == "" {
		return zipRange{}, false
	}
	z, err := strconv.Atoi(m)
	if err != nil {
		return zipRange{}, false
	}
	for _, zr := range zipRanges {
		if z >= zr.low && z <= zr.high {
			return zr, true
		}
	}
	return zipRange{}, false
}
