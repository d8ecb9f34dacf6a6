package utils

import "testing"

type decodeFixture struct {
	Counties map[string]struct {
		MillageRate float64 `json:"millage_rate"`
	} `json:"counties"`
}

func TestDecodeJSONLenientValid(t *testing.T) {
	var out decodeFixture
	err := DecodeJSONLenient([]byte(`{"counties": {"Horry County": {"millage_rate": 0.2415}}}`), &out)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.Counties["Horry County"].MillageRate != 0.2415 {
		t.Errorf("Expected 0.2415, got %+v", out)
	}
}

func TestDecodeJSONLenientRepairs(t *testing.T) {
	// Trailing comma and single quotes: typical hand-edit damage.
	var out decodeFixture
	err := DecodeJSONLenient([]byte(`{'counties': {'Horry County': {'millage_rate': 0.2415},}}`), &out)
	if err != nil {
		t.Fatalf("Expected repair to succeed, got %v", err)
	}
	if out.Counties["Horry County"].MillageRate != 0.2415 {
		t.Errorf("Expected 0.2415 after repair, got %+v", out)
	}
}

func TestDecodeHJSON(t *testing.T) {
	doc := `{
		# comment line
		counties: {
			"Horry County": {millage_rate: 0.2415}
		}
	}`
	var out decodeFixture
	if err := DecodeHJSON([]byte(doc), &out); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.Counties["Horry County"].MillageRate != 0.2415 {
		t.Errorf("Expected 0.2415, got %+v", out)
	}
}

func TestValidateMarkdown(t *testing.T) {
	if !ValidateMarkdown("# Title\n\n- item\n") {
		t.Error("Expected valid markdown to pass")
	}
	if !ValidateMarkdown("") {
		t.Error("Empty document still parses")
	}
}
