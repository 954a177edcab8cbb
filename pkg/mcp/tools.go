package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/quibble-ai/callcost/pkg/metrics"
	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/report"
)

// estimateArgs are the arguments of callcost_estimate and callcost_report.
type estimateArgs struct {
	CallDurationMinutes *float64 `json:"call_duration_minutes,omitempty" jsonschema:"description=Call length in minutes"`
	CallsPerMonth       *int64   `json:"calls_per_month,omitempty" jsonschema:"description=Number of calls per month"`
	TokensPerCall       *float64 `json:"tokens_per_call,omitempty" jsonschema:"description=LLM tokens consumed per call"`
	Model               string   `json:"model,omitempty" jsonschema:"description=Language model name from callcost_models"`
	PlatformCost        *float64 `json:"platform_cost,omitempty" jsonschema:"description=Flat monthly platform/infra charge in USD"`
}

// apply overlays the supplied arguments on defaults.
func (a estimateArgs) apply(defaults models.EstimateInput) models.EstimateInput {
	in := defaults
	if a.CallDurationMinutes != nil {
		in.CallDurationMinutes = *a.CallDurationMinutes
	}
	if a.CallsPerMonth != nil {
		in.CallsPerMonth = *a.CallsPerMonth
	}
	if a.TokensPerCall != nil {
		in.TokensPerCall = *a.TokensPerCall
	}
	if a.Model != "" {
		in.Model = a.Model
	}
	if a.PlatformCost != nil {
		in.PlatformCost = *a.PlatformCost
	}
	return in
}

type noArgs struct{}

var schemaReflector = jsonschema.Reflector{
	DoNotReference:            true,
	AllowAdditionalProperties: false,
}

// toolHandler is a function that handles a tool call.
type toolHandler func(s *Server, args json.RawMessage) ToolCallResult

// toolHandlers maps tool names to their handlers.
var toolHandlers = map[string]toolHandler{
	"callcost_estimate": handleEstimate,
	"callcost_report":   handleReport,
	"callcost_models":   handleModels,
}

// allTools is the list of tool definitions exposed via tools/list.
var allTools = []ToolDefinition{
	{
		Name:        "callcost_estimate",
		Description: "Estimate the monthly cost breakdown (telephony, STT, TTS, LLM, platform) for an AI voice-call workload.",
		InputSchema: schemaReflector.Reflect(&estimateArgs{}),
	},
	{
		Name:        "callcost_report",
		Description: "Generate the plain-text AI Call Cost Estimator Report for an AI voice-call workload.",
		InputSchema: schemaReflector.Reflect(&estimateArgs{}),
	},
	{
		Name:        "callcost_models",
		Description: "List the supported language models and the per-minute usage rates.",
		InputSchema: schemaReflector.Reflect(&noArgs{}),
	},
}

func textResult(text string) ToolCallResult {
	return ToolCallResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

func errorResult(text string) ToolCallResult {
	return ToolCallResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}

func (s *Server) estimate(rawArgs json.RawMessage) (models.EstimateInput, models.EstimateResult, error) {
	var args estimateArgs
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return models.EstimateInput{}, models.EstimateResult{}, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	in := args.apply(s.defaults)
	res, err := s.estimator.Estimate(in)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(surface).Inc()
		return in, res, err
	}
	metrics.ObserveEstimate(surface, res)
	return in, res, nil
}

func handleEstimate(s *Server, rawArgs json.RawMessage) ToolCallResult {
	in, res, err := s.estimate(rawArgs)
	if err != nil {
		return errorResult("Invalid estimate input: " + err.Error())
	}
	return textResult(report.Breakdown(in, res))
}

func handleReport(s *Server, rawArgs json.RawMessage) ToolCallResult {
	in, res, err := s.estimate(rawArgs)
	if err != nil {
		return errorResult("Invalid estimate input: " + err.Error())
	}
	metrics.ReportsTotal.WithLabelValues(surface).Inc()
	return textResult(report.Report(in, res))
}

func handleModels(s *Server, _ json.RawMessage) ToolCallResult {
	return textResult(report.ModelTable(s.estimator.Table().Entries(), s.usage))
}
