package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quibble-ai/callcost/pkg/models"
)

type modelsResponse struct {
	Models   []models.ModelRate   `json:"models"`
	Usage    models.UsageRates    `json:"usage"`
	Limits   models.Limits        `json:"limits"`
	Defaults models.EstimateInput `json:"defaults"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	fmt.Fprintf(w, `{"error":{"message":%q,"type":"callcost_error","code":%d}}`, message, code)
}
