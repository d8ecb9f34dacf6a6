package refdata

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestSizeTier(t *testing.T) {
	cases := []struct {
		sqft int
		tier string
	}{
		{500, TierSmall},
		{999, TierSmall},
		{1000, TierMedium},
		{1499, TierMedium},
		{1500, TierStandard},
		{1800, TierStandard},
		{1999, TierStandard},
		{2000, TierLarge},
		{2499, TierLarge},
		{2500, TierVeryLarge},
		{5000, TierVeryLarge},
	}
	for _, c := range cases {
		if got := SizeTier(c.sqft); got != c.tier {
			t.Errorf("%d sqft: expected %s, got %s", c.sqft, c.tier, got)
		}
	}
}

func TestRatePerSqft(t *testing.T) {
	rec := MarketRateRecord{
		Region:          "Myrtle Beach",
		BaselineRent:    2200,
		TierMultipliers: map[string]float64{TierSmall: 1.19, TierStandard: 1.0},
	}

	// Standard tier: 2200 / 1800 = 1.2222.
	if got := rec.RatePerSqft(TierStandard); math.Abs(got-2200.0/1800.0) > 1e-9 {
		t.Errorf("Expected %f, got %f", 2200.0/1800.0, got)
	}
	// Small tier applies its multiplier.
	if got := rec.RatePerSqft(TierSmall); math.Abs(got-2200.0/1800.0*1.19) > 1e-9 {
		t.Errorf("Expected %f, got %f", 2200.0/1800.0*1.19, got)
	}
	// Unlisted tier defaults to 1.0, not zero.
	if got := rec.RatePerSqft(TierVeryLarge); math.Abs(got-2200.0/1800.0) > 1e-9 {
		t.Errorf("Expected default multiplier 1.0, got rate %f", got)
	}
}

func TestLoadMillageFile(t *testing.T) {
	path := writeTemp(t, "millage.json", `{
		"counties": {
			"Horry County": {"millage_rate": 0.2415},
			"Test County": {"millage_rate": 0.2000, "assessment_ratio": 0.04}
		}
	}`)

	store := NewStore()
	if err := store.LoadMillageFile(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.CountyCount() != 2 {
		t.Fatalf("Expected 2 counties, got %d", store.CountyCount())
	}

	rec, ok := store.County("Horry County")
	if !ok || rec.MillageRate != 0.2415 {
		t.Errorf("Expected Horry at 0.2415, got %+v", rec)
	}
	// Missing ratio falls back to the SC default.
	if rec.AssessmentRatio != DefaultAssessmentRatio {
		t.Errorf("Expected default ratio, got %f", rec.AssessmentRatio)
	}
	// Explicit ratio is honored.
	rec, _ = store.County("Test County")
	if rec.AssessmentRatio != 0.04 {
		t.Errorf("Expected 0.04 ratio, got %f", rec.AssessmentRatio)
	}
}

func TestLoadMillageFileRepairsTrailingComma(t *testing.T) {
	// Hand-edited files drift; a trailing comma gets one repair pass.
	path := writeTemp(t, "millage.json", `{
		"counties": {
			"Horry County": {"millage_rate": 0.2415},
		}
	}`)

	store := NewStore()
	if err := store.LoadMillageFile(path); err != nil {
		t.Fatalf("Expected repair to salvage the file, got: %v", err)
	}
	if _, ok := store.County("Horry County"); !ok {
		t.Error("Expected Horry County after repair")
	}
}

func TestLoadMillageFileSkipsBadRows(t *testing.T) {
	path := writeTemp(t, "millage.json", `{
		"counties": {
			"Good County": {"millage_rate": 0.25},
			"Zero County": {"millage_rate": 0},
			"Negative County": {"millage_rate": -0.1}
		}
	}`)

	store := NewStore()
	if err := store.LoadMillageFile(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.CountyCount() != 1 {
		t.Errorf("Expected only the good row, got %d", store.CountyCount())
	}
}

func TestLoadMillageFileDegradesToEmpty(t *testing.T) {
	// Missing file: error, empty table.
	store := Defaults()
	if err := store.LoadMillageFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file")
	}
	if store.CountyCount() != 0 {
		t.Errorf("Expected empty table after failed load, got %d rows", store.CountyCount())
	}

	// Unsalvageable garbage: error, empty table.
	path := writeTemp(t, "millage.json", "not json at all \x00\x01")
	store = Defaults()
	if err := store.LoadMillageFile(path); err == nil {
		t.Error("Expected error for garbage file")
	}
	if store.CountyCount() != 0 {
		t.Errorf("Expected empty table after garbage load, got %d rows", store.CountyCount())
	}
}

func TestLoadMarketRatesFile(t *testing.T) {
	// Hjson: comments and unquoted keys are part of the format.
	path := writeTemp(t, "market_rates.hjson", `{
		# test fixture
		regions: {
			"Myrtle Beach": {baseline_1800_sqft: 2200, tier_multipliers: {small: 1.19, standard: 1.0}}
			"Empty Region": {baseline_1800_sqft: 0}
		}
	}`)

	store := NewStore()
	if err := store.LoadMarketRatesFile(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.RegionCount() != 1 {
		t.Fatalf("Expected 1 region (zero-baseline row skipped), got %d", store.RegionCount())
	}

	rec, ok := store.Region("Myrtle Beach")
	if !ok || rec.BaselineRent != 2200 {
		t.Errorf("Expected Myrtle Beach at 2200, got %+v", rec)
	}
	if rec.TierMultiplier(TierSmall) != 1.19 {
		t.Errorf("Expected small multiplier 1.19, got %f", rec.TierMultiplier(TierSmall))
	}
}

func TestLoadMarketRatesFileDegradesToEmpty(t *testing.T) {
	store := Defaults()
	if err := store.LoadMarketRatesFile(filepath.Join(t.TempDir(), "nope.hjson")); err == nil {
		t.Error("Expected error for missing file")
	}
	if store.RegionCount() != 0 {
		t.Errorf("Expected empty table after failed load, got %d rows", store.RegionCount())
	}
}

func TestDefaults(t *testing.T) {
	store := Defaults()

	if store.CountyCount() == 0 || store.RegionCount() == 0 {
		t.Fatal("Expected populated default tables")
	}
	if _, ok := store.County("Horry County"); !ok {
		t.Error("Expected Horry County in defaults")
	}
	if _, ok := store.Region(DefaultRegion); !ok {
		t.Errorf("Expected %q row in defaults", DefaultRegion)
	}

	// Every default region carries a positive baseline.
	for _, name := range store.RegionNames() {
		rec, _ := store.Region(name)
		if rec.BaselineRent <= 0 {
			t.Errorf("Region %s has non-positive baseline %f", name, rec.BaselineRent)
		}
	}
}
