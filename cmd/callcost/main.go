package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "callcost",
		Short:         "callcost - monthly cost estimator for AI voice calls",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEstimateCmd(),
		newReportCmd(),
		newModelsCmd(),
		newServeCmd(),
		newMCPCmd(),
		newTUICmd(),
	)
	return root
}
