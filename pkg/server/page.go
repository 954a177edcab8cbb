package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/report"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templates embed.FS

func parsePage() (*template.Template, error) {
	t, err := template.New("index.html").Funcs(template.FuncMap{
		"num": report.Number,
	}).ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return t, nil
}

type pageLine struct {
	Label string
	Value string
}

type pageData struct {
	Input     models.EstimateInput
	Models    []string
	Limits    models.Limits
	Error     string
	Lines     []pageLine
	Total     string
	PerCall   string
	Chart     template.HTML
	ReportURL string
	Filename  string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Models:   s.estimator.Table().Models(),
		Limits:   s.estimator.Limits(),
		Filename: s.cfg.Report.Filename,
	}

	status := http.StatusOK
	in, res, err := s.estimate(r)
	data.Input = in
	if err != nil {
		status = http.StatusBadRequest
		data.Error = err.Error()
	} else {
		data.Lines = []pageLine{
			{"Total Call Minutes", res.TotalMinutes.String() + " mins"},
			{"Inbound Telephony Cost", "$" + report.Money(res.InboundTelephonyCost)},
			{"LLM Cost (" + in.Model + ")", "$" + report.Money(res.LLMCost)},
			{"Speech-to-Text (STT) Cost", "$" + report.Money(res.SpeechToTextCost)},
			{"Text-to-Speech (TTS) Cost", "$" + report.Money(res.TextToSpeechCost)},
			{"Platform/Infra Cost", "$" + report.Money(res.InfraCost)},
		}
		data.Total = report.Money(res.TotalCost)
		data.PerCall = report.Money(res.CostPerCall)
		// PieSVG output is generated locally from numeric data and fixed labels.
		data.Chart = template.HTML(report.PieSVG(res))
		data.ReportURL = "/report?" + encodeQuery(in)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}
