package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/quibble-ai/callcost/pkg/config"
	"github.com/quibble-ai/callcost/pkg/tui"
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	var (
		configPath string
		theme      string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive single-screen estimator",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The terminal belongs to the UI; only file logging survives.
			rt, err := setup(configPath, func(l *config.LogConfig) {
				if l.Output == "" || l.Output == "stderr" || l.Output == "stdout" {
					l.Output = "discard"
				}
			})
			if err != nil {
				return err
			}
			defer func() { _ = rt.logger.Sync() }()

			app := tui.NewApp(tui.AppConfig{
				Version:    version,
				ThemeName:  theme,
				Estimator:  rt.est,
				Defaults:   rt.cfg.Defaults,
				ReportPath: rt.cfg.Report.Filename,
				Logger:     rt.logger,
			})
			program := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&theme, "theme", "dark", "color theme: dark or light")
	return cmd
}
