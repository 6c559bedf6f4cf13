// Package main provides the probe CLI.
package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/probe/hostinfo"
)

const version = "v0.1.0-dev"

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "probe",
	Short: "Inspection utilities for tensor workflows",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("probe %s\n", version)
	},
}

var hostinfoCmd = &cobra.Command{
	Use:   "hostinfo",
	Short: "Show host metadata used in benchmark reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := hostinfo.Collect()
		if err != nil {
			// Partial info is still worth printing.
			logger.Warn("host info collection incomplete", zap.Error(err))
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"FIELD", "VALUE"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetNoWhiteSpace(true)
		table.SetTablePadding("    ")
		table.AppendBulk([][]string{
			{"hostname", info.Hostname},
			{"os", info.OS},
			{"arch", info.Arch},
			{"cpus", fmt.Sprintf("%d", info.NumCPU)},
			{"go", info.GoVersion},
			{"ram", info.TotalRAMHuman},
		})
		table.Render()
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd, hostinfoCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
