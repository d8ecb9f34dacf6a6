// Package calculator exposes the DSCR calculation over HTTP. Thin wrapper:
// decode the request, call the engine, encode the result.
package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"rent_dscr/pkg/core/report"
)

// Handler holds the injected engine.
type Handler struct {
	Engine *report.Engine
}

// NewHandler creates a calculator handler around an engine.
func NewHandler(engine *report.Engine) *Handler {
	return &Handler{Engine: engine}
}

// Response is the API envelope. RequestID is generated per request for log
// correlation; the result itself is deterministic.
type Response struct {
	RequestID string         `json:"request_id"`
	Result    *report.Result `json:"result,omitempty"`
	Markdown  string         `json:"markdown,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// HandleCalculate serves POST /api/calculate.
// Add ?format=markdown to include the rendered investor report.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.New().String()

	var in report.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{RequestID: requestID, Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := h.Engine.Calculate(in)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, report.ErrInvalidInput) || errors.Is(err, report.ErrJurisdictionNotFound) {
			status = http.StatusBadRequest
		}
		fmt.Printf("[api] %s calculate failed: %v\n", requestID, err)
		writeJSON(w, status, Response{RequestID: requestID, Error: err.Error()})
		return
	}

	resp := Response{RequestID: requestID, Result: result}
	if r.URL.Query().Get("format") == "markdown" {
		md, mdErr := report.MarkdownReport(result)
		if mdErr != nil {
			fmt.Printf("[api] %s markdown render failed: %v\n", requestID, mdErr)
		} else {
			resp.Markdown = md
		}
	}

	fmt.Printf("[api] %s %s DSCR=%.2f label=%s\n", requestID, in.Address, result.DSCR, result.RiskLabel)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
