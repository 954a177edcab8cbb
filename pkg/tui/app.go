// Package tui is the interactive single-screen estimator. Every key press
// recomputes the breakdown from the current inputs.
package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/quibble-ai/callcost/pkg/estimator"
	"github.com/quibble-ai/callcost/pkg/metrics"
	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/report"
	"go.uber.org/zap"
)

const (
	defaultAppWidth = 80
	barWidth        = 30
	surface         = "tui"
)

// AppConfig configures the root BubbleTea model.
type AppConfig struct {
	Version    string
	ThemeName  string
	Estimator  *estimator.Estimator
	Defaults   models.EstimateInput
	ReportPath string
	Logger     *zap.Logger
}

// App is the root TUI model.
type App struct {
	theme      Theme
	version    string
	estimator  *estimator.Estimator
	reportPath string
	logger     *zap.Logger

	width  int
	cursor field

	input  models.EstimateInput
	result models.EstimateResult
	err    error
	notice string
}

// NewApp constructs the root TUI model and computes the initial estimate.
func NewApp(cfg AppConfig) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	path := strings.TrimSpace(cfg.ReportPath)
	if path == "" {
		path = report.ReportFilename
	}
	m := &App{
		theme:      ResolveTheme(cfg.ThemeName),
		version:    cfg.Version,
		estimator:  cfg.Estimator,
		reportPath: path,
		logger:     logger,
		input:      cfg.Defaults,
	}
	m.recompute()
	return m
}

// Init starts background commands if needed.
func (m *App) Init() tea.Cmd {
	return nil
}

// Input returns the current estimate inputs.
func (m *App) Input() models.EstimateInput { return m.input }

// Result returns the estimate for the current inputs.
func (m *App) Result() models.EstimateResult { return m.result }

// Err returns the validation error for the current inputs, if any.
func (m *App) Err() error { return m.err }

// Update applies state changes from user input.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.cursor = (m.cursor + fieldCount - 1) % fieldCount
		case "down", "j", "tab":
			m.cursor = (m.cursor + 1) % fieldCount
		case "left", "h", "-":
			m.change(-1)
		case "right", "l", "+":
			m.change(1)
		case "d":
			m.writeReport()
		}
		return m, nil
	}
	return m, nil
}

func (m *App) change(dir int) {
	limits := m.estimator.Limits()
	names := m.estimator.Table().Models()
	m.input = adjust(m.input, m.cursor, dir, limits, names)
	m.notice = ""
	m.recompute()
}

func (m *App) recompute() {
	res, err := m.estimator.Estimate(m.input)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(surface).Inc()
		m.result = models.EstimateResult{}
		m.err = err
		return
	}
	metrics.ObserveEstimate(surface, res)
	m.result = res
	m.err = nil
}

func (m *App) writeReport() {
	if m.err != nil {
		m.notice = "cannot write report: " + m.err.Error()
		return
	}
	if err := os.WriteFile(m.reportPath, []byte(report.Report(m.input, m.result)), 0o644); err != nil {
		m.logger.Error("write report", zap.String("path", m.reportPath), zap.Error(err))
		m.notice = "write report: " + err.Error()
		return
	}
	metrics.ReportsTotal.WithLabelValues(surface).Inc()
	m.logger.Info("report written", zap.String("path", m.reportPath))
	m.notice = "report saved to " + m.reportPath
}

// View renders the screen.
func (m *App) View() string {
	width := m.width
	if width <= 0 {
		width = defaultAppWidth
	}

	status := m.theme.StatusBarStyle.Width(width).Render(
		fmt.Sprintf("callcost %s | AI Call Cost Estimator", fallbackText(m.version, "dev")))

	inputs := m.theme.PanelStyle.Render(m.renderInputs())
	outputs := m.theme.PanelStyle.Render(m.renderResult())

	help := m.theme.MutedStyle.Render("up/down select  left/right adjust  d download report  q quit")
	lines := []string{status, inputs, outputs}
	if m.notice != "" {
		lines = append(lines, m.theme.LabelStyle.Render(m.notice))
	}
	lines = append(lines, help)
	return strings.Join(lines, "\n")
}

func (m *App) renderInputs() string {
	var b strings.Builder
	for f := field(0); f < fieldCount; f++ {
		label := fmt.Sprintf("  %-28s", f.label())
		style := m.theme.LabelStyle
		if f == m.cursor {
			label = fmt.Sprintf("> %-28s", f.label())
			style = m.theme.SelectedStyle
		}
		b.WriteString(style.Render(label))
		b.WriteString(m.theme.ValueStyle.Render("< " + f.value(m.input) + " >"))
		if f < fieldCount-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *App) renderResult() string {
	if m.err != nil {
		return m.theme.ErrorStyle.Render("Invalid input: " + m.err.Error())
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(report.Breakdown(m.input, m.result), "\n"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.TotalStyle.Render("Cost Distribution"))
	slices := report.Slices(m.result)
	if len(slices) == 0 {
		b.WriteString("\n" + m.theme.MutedStyle.Render("No costs"))
		return b.String()
	}
	for _, s := range slices {
		b.WriteString("\n")
		b.WriteString(shareBar(s))
	}
	return b.String()
}

// shareBar draws one component's share of the total as a horizontal bar.
func shareBar(s report.Slice) string {
	filled := int(s.Percent/100*barWidth + 0.5)
	if filled < 1 {
		filled = 1
	}
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(report.Palette[s.Key])).
		Render(strings.Repeat("█", filled))
	pad := strings.Repeat(" ", barWidth-filled)
	return fmt.Sprintf("%-20s %s%s %6s", s.Label, bar, pad, s.PercentLabel())
}

func fallbackText(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
