// Package report renders an estimate as the text breakdown, the downloadable
// plain-text report and the cost distribution chart.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/shopspring/decimal"
)

// ReportFilename is the suggested name of the downloadable report.
const ReportFilename = "ai_cost_estimate.txt"

// ReportHeader is the first line of every report.
const ReportHeader = "AI Call Cost Estimator Report"

// Money formats an amount with exactly two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Number formats a non-monetary quantity without trailing zeros.
func Number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Breakdown renders the cost breakdown shown next to the inputs.
func Breakdown(in models.EstimateInput, res models.EstimateResult) string {
	var b strings.Builder
	b.WriteString("Cost Breakdown\n")
	b.WriteString(strings.Repeat("-", 14) + "\n")
	fmt.Fprintf(&b, "Total Call Minutes: %s mins\n", res.TotalMinutes.String())
	fmt.Fprintf(&b, "Inbound Telephony Cost: $%s\n", Money(res.InboundTelephonyCost))
	fmt.Fprintf(&b, "LLM Cost (%s): $%s\n", in.Model, Money(res.LLMCost))
	fmt.Fprintf(&b, "Speech-to-Text (STT) Cost: $%s\n", Money(res.SpeechToTextCost))
	fmt.Fprintf(&b, "Text-to-Speech (TTS) Cost: $%s\n", Money(res.TextToSpeechCost))
	fmt.Fprintf(&b, "Platform/Infra Cost: $%s\n", Money(res.InfraCost))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Estimated Monthly Cost: $%s\n", Money(res.TotalCost))
	fmt.Fprintf(&b, "Cost per Call: $%s\n", Money(res.CostPerCall))
	return b.String()
}

// Report renders the downloadable plain-text report.
func Report(in models.EstimateInput, res models.EstimateResult) string {
	var b strings.Builder
	b.WriteString(ReportHeader + "\n")
	b.WriteString(strings.Repeat("-", len(ReportHeader)) + "\n")
	fmt.Fprintf(&b, "Total Calls: %d\n", in.CallsPerMonth)
	fmt.Fprintf(&b, "Minutes per Call: %s\n", Number(in.CallDurationMinutes))
	fmt.Fprintf(&b, "Total Minutes: %s\n", res.TotalMinutes.String())
	fmt.Fprintf(&b, "LLM Model: %s\n", in.Model)
	fmt.Fprintf(&b, "LLM Cost: $%s\n", Money(res.LLMCost))
	fmt.Fprintf(&b, "Inbound Call Cost: $%s\n", Money(res.InboundTelephonyCost))
	fmt.Fprintf(&b, "STT Cost: $%s\n", Money(res.SpeechToTextCost))
	fmt.Fprintf(&b, "TTS Cost: $%s\n", Money(res.TextToSpeechCost))
	fmt.Fprintf(&b, "Infrastructure Cost: $%s\n", Money(res.InfraCost))
	fmt.Fprintf(&b, "Total Estimated Monthly Cost: $%s\n", Money(res.TotalCost))
	fmt.Fprintf(&b, "Cost per Call: $%s\n", Money(res.CostPerCall))
	return b.String()
}

// ModelTable renders the price table as a text table.
func ModelTable(rates []models.ModelRate, usage models.UsageRates) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-25s %14s\n", "MODEL", "$ / 1M TOKENS")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, r := range rates {
		fmt.Fprintf(&b, "%-25s %14s\n", r.Model, Number(r.PerMillionTokens))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-25s %14s\n", "USAGE", "$ / MINUTE")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "%-25s %14s\n", "Inbound telephony", Number(usage.TelephonyPerMinute))
	fmt.Fprintf(&b, "%-25s %14s\n", "Speech-to-text", Number(usage.SpeechToTextPerMinute))
	fmt.Fprintf(&b, "%-25s %14s\n", "Text-to-speech", Number(usage.TextToSpeechPerMinute))
	return b.String()
}
