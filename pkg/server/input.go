package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quibble-ai/callcost/pkg/models"
)

// Query parameter names shared by every endpoint.
const (
	paramDuration = "duration"
	paramCalls    = "calls"
	paramTokens   = "tokens"
	paramModel    = "model"
	paramPlatform = "platform_cost"
)

// inputFromQuery overlays query parameters on defaults.
func inputFromQuery(q url.Values, defaults models.EstimateInput) (models.EstimateInput, error) {
	in := defaults

	if v := q.Get(paramDuration); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, fmt.Errorf("invalid %s: %q", paramDuration, v)
		}
		in.CallDurationMinutes = f
	}
	if v := q.Get(paramCalls); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return in, fmt.Errorf("invalid %s: %q", paramCalls, v)
		}
		in.CallsPerMonth = n
	}
	if v := q.Get(paramTokens); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, fmt.Errorf("invalid %s: %q", paramTokens, v)
		}
		in.TokensPerCall = f
	}
	if v := q.Get(paramModel); v != "" {
		in.Model = v
	}
	if v := q.Get(paramPlatform); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, fmt.Errorf("invalid %s: %q", paramPlatform, v)
		}
		in.PlatformCost = f
	}
	return in, nil
}

// inputFromRequest reads a JSON body on POST and query parameters otherwise.
func inputFromRequest(r *http.Request, defaults models.EstimateInput) (models.EstimateInput, error) {
	if r.Method != http.MethodPost {
		return inputFromQuery(r.URL.Query(), defaults)
	}
	in := defaults
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, fmt.Errorf("invalid JSON body: %w", err)
	}
	return in, nil
}

// encodeQuery is the inverse of inputFromQuery.
func encodeQuery(in models.EstimateInput) string {
	q := url.Values{}
	q.Set(paramDuration, strconv.FormatFloat(in.CallDurationMinutes, 'f', -1, 64))
	q.Set(paramCalls, strconv.FormatInt(in.CallsPerMonth, 10))
	q.Set(paramTokens, strconv.FormatFloat(in.TokensPerCall, 'f', -1, 64))
	q.Set(paramModel, in.Model)
	q.Set(paramPlatform, strconv.FormatFloat(in.PlatformCost, 'f', -1, 64))
	return q.Encode()
}
