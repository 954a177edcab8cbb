package report

import (
	"math"
	"strings"
	"testing"

	"github.com/quibble-ai/callcost/pkg/estimator"
	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/pricing"
)

func TestSlicesShares(t *testing.T) {
	_, res := sample()
	slices := Slices(res)
	if len(slices) != 5 {
		t.Fatalf("expected 5 slices, got %d", len(slices))
	}

	var sum float64
	for _, s := range slices {
		sum += s.Percent
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("shares sum to %v, want 100", sum)
	}
	if slices[0].Start != 90 {
		t.Errorf("first slice starts at %v, want 90", slices[0].Start)
	}
	if math.Abs(slices[4].End-450) > 1e-6 {
		t.Errorf("last slice ends at %v, want 450", slices[4].End)
	}
	// 97.20 / 279.33
	if got := slices[3].PercentLabel(); got != "34.8%" {
		t.Errorf("TTS share = %s, want 34.8%%", got)
	}
}

func TestSlicesSkipZeroComponents(t *testing.T) {
	tbl := pricing.Default()

	res := estimator.Compute(tbl, models.EstimateInput{CallDurationMinutes: 3, Model: "GPT-4.1", PlatformCost: 20})
	slices := Slices(res)
	if len(slices) != 1 {
		t.Fatalf("expected 1 slice, got %d", len(slices))
	}
	if slices[0].Key != models.ComponentInfra || slices[0].Percent != 100 {
		t.Errorf("unexpected slice: %+v", slices[0])
	}

	res = estimator.Compute(tbl, models.EstimateInput{CallDurationMinutes: 3, Model: "GPT-4.1"})
	if got := Slices(res); got != nil {
		t.Errorf("expected no slices, got %v", got)
	}
}

func TestPieSVG(t *testing.T) {
	_, res := sample()
	svg := PieSVG(res)
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("not an svg document: %.40s", svg)
	}
	if n := strings.Count(svg, "<path"); n != 5 {
		t.Errorf("expected 5 wedges, got %d", n)
	}
	for _, label := range []string{"LLM", "Telephony (Inbound)", "STT", "TTS", "Infra"} {
		if !strings.Contains(svg, label) {
			t.Errorf("legend missing %s", label)
		}
	}

	empty := estimator.Compute(pricing.Default(), models.EstimateInput{CallDurationMinutes: 1, Model: "GPT-4o"})
	if !strings.Contains(PieSVG(empty), "No costs") {
		t.Error("expected placeholder for empty chart")
	}
}
