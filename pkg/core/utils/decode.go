package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// DecodeJSONLenient unmarshals reference-data JSON into schema, attempting an
// automatic repair pass when the file is malformed (trailing commas, comments,
// single quotes, unclosed objects). Hand-maintained rate files accumulate
// exactly these defects.
//
// Returns an error only when the data is unusable even after repair.
func DecodeJSONLenient(data []byte, schema interface{}) error {
	if err := json.Unmarshal(data, schema); err == nil {
		return nil
	}

	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil {
		return fmt.Errorf("json repair failed: %v", err)
	}
	if err := json.Unmarshal([]byte(repaired), schema); err != nil {
		return fmt.Errorf("invalid json after repair: %v", err)
	}
	return nil
}

// DecodeHJSON unmarshals an Hjson document into schema.
// Hjson allows comments, unquoted keys, and optional commas, which keeps the
// market-rate table readable next to its calibration notes.
//
// hjson-go unmarshals into generic maps, so we round-trip through standard
// JSON to land on the typed schema.
func DecodeHJSON(data []byte, schema interface{}) error {
	var generic interface{}
	if err := hjson.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("hjson parse error: %v", err)
	}

	jsonBytes, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("hjson conversion error: %v", err)
	}
	if err := json.Unmarshal(jsonBytes, schema); err != nil {
		return fmt.Errorf("hjson schema error: %v", err)
	}
	return nil
}
