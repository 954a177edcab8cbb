package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/quibble-ai/callcost/pkg/estimator"
	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/pricing"
	"go.uber.org/zap"
)

var testDefaults = models.EstimateInput{
	CallDurationMinutes: 3,
	CallsPerMonth:       3000,
	TokensPerCall:       700,
	Model:               "GPT-4.1",
	PlatformCost:        20,
}

func newTestServer() *Server {
	est := estimator.New(pricing.Default(), estimator.DefaultLimits)
	return New(est, testDefaults, pricing.DefaultUsage, "test", zap.NewNop())
}

func sendAndReceive(t *testing.T, srv *Server, req Request) Response {
	t.Helper()
	line, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	line = append(line, '\n')

	var out bytes.Buffer
	if err := srv.Run(context.Background(), bytes.NewReader(line), &out); err != nil {
		t.Fatal(err)
	}

	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v\nraw: %s", err, out.String())
	}
	return resp
}

// callTool issues tools/call and decodes the result.
func callTool(t *testing.T, srv *Server, name, args string) ToolCallResult {
	t.Helper()
	params := ToolCallParams{Name: name}
	if args != "" {
		params.Arguments = json.RawMessage(args)
	}
	raw, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}
	resp := sendAndReceive(t, srv, Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`7`),
		Method:  "tools/call",
		Params:  raw,
	})
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	data, _ := json.Marshal(resp.Result)
	var result ToolCallResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(result.Content))
	}
	return result
}

func TestInitialize(t *testing.T) {
	resp := sendAndReceive(t, newTestServer(), Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`1`),
		Method:  "initialize",
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	data, _ := json.Marshal(resp.Result)
	var result InitializeResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatal(err)
	}
	if result.ServerInfo.Name != "callcost" {
		t.Errorf("expected server name callcost, got %s", result.ServerInfo.Name)
	}
	if result.ServerInfo.Version != "test" {
		t.Errorf("expected version test, got %s", result.ServerInfo.Version)
	}
	if result.ProtocolVersion != protocolVersion {
		t.Errorf("expected protocol %s, got %s", protocolVersion, result.ProtocolVersion)
	}
}

func TestToolsList(t *testing.T) {
	resp := sendAndReceive(t, newTestServer(), Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`2`),
		Method:  "tools/list",
	})

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}

	data, _ := json.Marshal(resp.Result)
	var result struct {
		Tools []struct {
			Name        string         `json:"name"`
			InputSchema map[string]any `json:"inputSchema"`
		} `json:"tools"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Tools) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(result.Tools))
	}

	names := map[string]map[string]any{}
	for _, tool := range result.Tools {
		names[tool.Name] = tool.InputSchema
	}
	for _, expected := range []string{"callcost_estimate", "callcost_report", "callcost_models"} {
		if _, ok := names[expected]; !ok {
			t.Errorf("missing tool %s", expected)
		}
	}

	schema := names["callcost_estimate"]
	if schema["type"] != "object" {
		t.Errorf("expected object schema, got %v", schema["type"])
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("expected properties in schema, got %v", schema)
	}
	for _, field := range []string{"call_duration_minutes", "calls_per_month", "tokens_per_call", "model", "platform_cost"} {
		if _, ok := props[field]; !ok {
			t.Errorf("schema missing property %s", field)
		}
	}
	if _, ok := schema["required"]; ok {
		t.Errorf("expected all estimate arguments to be optional, got required %v", schema["required"])
	}
}

func TestToolCallEstimateDefaults(t *testing.T) {
	result := callTool(t, newTestServer(), "callcost_estimate", "")
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", result.Content[0].Text)
	}
	text := result.Content[0].Text
	for _, want := range []string{
		"Total Call Minutes: 9000 mins",
		"LLM Cost (GPT-4.1): $0.13",
		"Estimated Monthly Cost: $279.33",
		"Cost per Call: $0.09",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}
}

func TestToolCallEstimateOverrides(t *testing.T) {
	result := callTool(t, newTestServer(), "callcost_estimate",
		`{"calls_per_month":1000,"call_duration_minutes":5,"tokens_per_call":1000,"model":"GPT-4o (latest)","platform_cost":0}`)
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", result.Content[0].Text)
	}
	text := result.Content[0].Text
	if !strings.Contains(text, "LLM Cost (GPT-4o (latest)): $0.14") {
		t.Errorf("expected overridden model in:\n%s", text)
	}
	if !strings.Contains(text, "Estimated Monthly Cost: $144.14") {
		t.Errorf("expected total 144.14 in:\n%s", text)
	}
}

func TestToolCallEstimateInvalid(t *testing.T) {
	srv := newTestServer()
	for name, args := range map[string]string{
		"unknown model":  `{"model":"nope"}`,
		"too many calls": `{"calls_per_month":50000}`,
		"bad json":       `{"calls_per_month":"lots"}`,
	} {
		t.Run(name, func(t *testing.T) {
			result := callTool(t, srv, "callcost_estimate", args)
			if !result.IsError {
				t.Errorf("expected tool error, got %s", result.Content[0].Text)
			}
		})
	}
}

func TestToolCallReport(t *testing.T) {
	result := callTool(t, newTestServer(), "callcost_report", `{"calls_per_month":0}`)
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", result.Content[0].Text)
	}
	text := result.Content[0].Text
	if !strings.HasPrefix(text, "AI Call Cost Estimator Report\n") {
		t.Errorf("expected report header, got:\n%s", text)
	}
	for _, want := range []string{
		"Total Calls: 0",
		"Total Estimated Monthly Cost: $20.00",
		"Cost per Call: $0.00",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}
}

func TestToolCallModels(t *testing.T) {
	result := callTool(t, newTestServer(), "callcost_models", "")
	text := result.Content[0].Text
	for _, want := range []string{"GPT-4.1", "GPT-4o (latest)", "0.14", "0.0108"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in:\n%s", want, text)
		}
	}
}

func TestToolCallUnknownTool(t *testing.T) {
	result := callTool(t, newTestServer(), "callcost_nope", "")
	if !result.IsError {
		t.Error("expected unknown tool to be an error result")
	}
}

func TestNotificationNoResponse(t *testing.T) {
	line, _ := json.Marshal(Request{JSONRPC: "2.0", Method: "notifications/initialized"})
	line = append(line, '\n')

	var out bytes.Buffer
	if err := newTestServer().Run(context.Background(), bytes.NewReader(line), &out); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no response for notification, got %s", out.String())
	}
}

func TestUnknownMethod(t *testing.T) {
	resp := sendAndReceive(t, newTestServer(), Request{
		JSONRPC: "2.0",
		ID:      json.RawMessage(`3`),
		Method:  "resources/list",
	})
	if resp.Error == nil || resp.Error.Code != CodeMethodNotFound {
		t.Errorf("expected method not found, got %+v", resp.Error)
	}
}

func TestParseError(t *testing.T) {
	var out bytes.Buffer
	if err := newTestServer().Run(context.Background(), strings.NewReader("{not json\n"), &out); err != nil {
		t.Fatal(err)
	}
	var resp Response
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error == nil || resp.Error.Code != CodeParseError {
		t.Errorf("expected parse error, got %+v", resp.Error)
	}
}
