package report

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/shopspring/decimal"
)

// startAngle is where the first slice begins, in degrees counter-clockwise
// from three o'clock.
const startAngle = 90.0

// Palette assigns each component a fixed colour.
var Palette = map[models.ComponentKey]string{
	models.ComponentLLM:       "#1f77b4",
	models.ComponentTelephony: "#ff7f0e",
	models.ComponentSTT:       "#2ca02c",
	models.ComponentTTS:       "#d62728",
	models.ComponentInfra:     "#9467bd",
}

// Slice is one wedge of the cost distribution chart.
type Slice struct {
	Key     models.ComponentKey
	Label   string
	Amount  decimal.Decimal
	Percent float64
	Start   float64
	End     float64
}

// PercentLabel formats the slice share the way the chart labels it.
func (s Slice) PercentLabel() string {
	return fmt.Sprintf("%.1f%%", s.Percent)
}

// Slices splits the five cost components into chart wedges by magnitude.
// Zero components are omitted; an all-zero estimate has no slices.
func Slices(res models.EstimateResult) []Slice {
	components := res.Components()
	total := decimal.Zero
	for _, c := range components {
		if c.Amount.IsPositive() {
			total = total.Add(c.Amount)
		}
	}
	if !total.IsPositive() {
		return nil
	}

	hundred := decimal.NewFromInt(100)
	angle := startAngle
	var out []Slice
	for _, c := range components {
		if !c.Amount.IsPositive() {
			continue
		}
		pct := c.Amount.Div(total).Mul(hundred).InexactFloat64()
		s := Slice{
			Key:     c.Key,
			Label:   c.Label,
			Amount:  c.Amount,
			Percent: pct,
			Start:   angle,
			End:     angle + pct*3.6,
		}
		angle = s.End
		out = append(out, s)
	}
	return out
}

// PieSVG renders the cost distribution as a standalone SVG document.
func PieSVG(res models.EstimateResult) string {
	const (
		width  = 420
		height = 300
		cx     = 150.0
		cy     = 150.0
		r      = 120.0
	)

	slices := Slices(res)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)

	if len(slices) == 0 {
		fmt.Fprintf(&b, `<circle cx="%.0f" cy="%.0f" r="%.0f" fill="#eeeeee"/>`+"\n", cx, cy, r)
		fmt.Fprintf(&b, `<text x="%.0f" y="%.0f" text-anchor="middle" font-size="14">No costs</text>`+"\n", cx, cy)
		b.WriteString("</svg>\n")
		return b.String()
	}

	for _, s := range slices {
		color := Palette[s.Key]
		if len(slices) == 1 {
			fmt.Fprintf(&b, `<circle cx="%.0f" cy="%.0f" r="%.0f" fill="%s"/>`+"\n", cx, cy, r, color)
			continue
		}
		x1, y1 := polar(cx, cy, r, s.Start)
		x2, y2 := polar(cx, cy, r, s.End)
		large := 0
		if s.End-s.Start > 180 {
			large = 1
		}
		fmt.Fprintf(&b, `<path d="M%.2f,%.2f L%.2f,%.2f A%.0f,%.0f 0 %d 0 %.2f,%.2f Z" fill="%s" stroke="#ffffff"/>`+"\n",
			cx, cy, x1, y1, r, r, large, x2, y2, color)
	}

	for i, s := range slices {
		y := 40 + i*24
		fmt.Fprintf(&b, `<rect x="300" y="%d" width="14" height="14" fill="%s"/>`+"\n", y, Palette[s.Key])
		fmt.Fprintf(&b, `<text x="320" y="%d" font-size="12">%s %s</text>`+"\n",
			y+12, html.EscapeString(s.Label), s.PercentLabel())
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// polar converts an angle in degrees (counter-clockwise, y up) to SVG
// coordinates (y down).
func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Cos(rad), cy - r*math.Sin(rad)
}
