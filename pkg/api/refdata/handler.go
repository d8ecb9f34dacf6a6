// Package refdata exposes read-only views of the loaded reference tables.
package refdata

import (
	"encoding/json"
	"net/http"
	"sort"

	corerefdata "rent_dscr/pkg/core/refdata"
)

// Handler holds the injected store.
type Handler struct {
	Store *corerefdata.Store
}

// NewHandler creates a reference-data handler around a store.
func NewHandler(store *corerefdata.Store) *Handler {
	return &Handler{Store: store}
}

// HandleCounties serves GET /api/refdata/counties: the county names with a
// loaded millage rate.
func (h *Handler) HandleCounties(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	names := h.Store.CountyNames()
	sort.Strings(names)
	writeJSON(w, map[string]interface{}{
		"count":    len(names),
		"counties": names,
	})
}

// HandleRegions serves GET /api/refdata/regions: the market regions with a
// loaded rental rate.
func (h *Handler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	names := h.Store.RegionNames()
	sort.Strings(names)
	writeJSON(w, map[string]interface{}{
		"count":   len(names),
		"regions": names,
	})
}

// HandleHealth serves GET /api/health. Empty tables are not an error - the
// engine degrades to "not found" lookups - but they are worth surfacing.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	writeJSON(w, map[string]interface{}{
		"status":   "ok",
		"counties": h.Store.CountyCount(),
		"regions":  h.Store.RegionCount(),
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
