package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quibble-ai/callcost/pkg/metrics"
	"github.com/quibble-ai/callcost/pkg/models"
	"github.com/quibble-ai/callcost/pkg/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const cliSurface = "cli"

// inputFlags are the estimate inputs accepted on the command line. Flags
// left unset fall back to the configured defaults.
type inputFlags struct {
	duration float64
	calls    int64
	tokens   float64
	model    string
	platform float64
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.duration, "duration", "d", 0, "average call duration in minutes")
	cmd.Flags().Int64VarP(&f.calls, "calls", "n", 0, "number of calls per month")
	cmd.Flags().Float64VarP(&f.tokens, "tokens", "t", 0, "LLM tokens per call")
	cmd.Flags().StringVarP(&f.model, "model", "m", "", "LLM model (see callcost models)")
	cmd.Flags().Float64VarP(&f.platform, "platform-cost", "p", 0, "flat monthly platform/infra cost in USD")
}

func (f *inputFlags) apply(cmd *cobra.Command, defaults models.EstimateInput) models.EstimateInput {
	in := defaults
	if cmd.Flags().Changed("duration") {
		in.CallDurationMinutes = f.duration
	}
	if cmd.Flags().Changed("calls") {
		in.CallsPerMonth = f.calls
	}
	if cmd.Flags().Changed("tokens") {
		in.TokensPerCall = f.tokens
	}
	if cmd.Flags().Changed("model") {
		in.Model = f.model
	}
	if cmd.Flags().Changed("platform-cost") {
		in.PlatformCost = f.platform
	}
	return in
}

// compute validates and prices the flags against rt's estimator.
func (f *inputFlags) compute(cmd *cobra.Command, rt *deps) (models.EstimateInput, models.EstimateResult, error) {
	in := f.apply(cmd, rt.cfg.Defaults)
	res, err := rt.est.Estimate(in)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues(cliSurface).Inc()
		return in, res, fmt.Errorf("invalid input: %w", err)
	}
	metrics.ObserveEstimate(cliSurface, res)
	rt.logger.Debug("estimate computed",
		zap.String("model", res.Model),
		zap.String("total_cost", report.Money(res.TotalCost)))
	return in, res, nil
}

func writeReport(path string, in models.EstimateInput, res models.EstimateResult) error {
	if err := os.WriteFile(path, []byte(report.Report(in, res)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	metrics.ReportsTotal.WithLabelValues(cliSurface).Inc()
	return nil
}

func newEstimateCmd() *cobra.Command {
	var (
		configPath string
		flags      inputFlags
		asJSON     bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print the monthly cost breakdown for a call workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(configPath, nil)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			in, res, err := flags.compute(cmd, rt)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report.NewSummary(in, res)); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, report.Breakdown(in, res))
			}

			if reportPath != "" {
				if err := writeReport(reportPath, in, res); err != nil {
					return err
				}
				rt.logger.Info("report written", zap.String("path", reportPath))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the estimate as JSON")
	cmd.Flags().StringVar(&reportPath, "report", "", "also write the text report to this file")
	return cmd
}

func newReportCmd() *cobra.Command {
	var (
		configPath string
		flags      inputFlags
		output     string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the downloadable cost report",
		Long:  "Generate the plain-text cost report. Use --output - to print it instead of writing a file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(configPath, nil)
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			in, res, err := flags.compute(cmd, rt)
			if err != nil {
				return err
			}

			if output == "-" {
				metrics.ReportsTotal.WithLabelValues(cliSurface).Inc()
				fmt.Fprint(cmd.OutOrStdout(), report.Report(in, res))
				return nil
			}

			path := output
			if path == "" {
				path = rt.cfg.Report.Filename
			}
			if err := writeReport(path, in, res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "report file path, or - for stdout (default from config)")
	return cmd
}

func newModelsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List supported LLM models and usage rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(configPath, nil)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.ModelTable(rt.est.Table().Entries(), rt.cfg.Pricing.Usage))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	return cmd
}
