// Package batch handles batch conversion of a directory of messages
package batch

import (
	"context"
	"fmt"

	"fjacquet/swift-mx/cmd/root"
	"fjacquet/swift-mx/internal/batch"
	"fjacquet/swift-mx/internal/config"
	"fjacquet/swift-mx/internal/fileutils"
	"fjacquet/swift-mx/internal/logging"

	"github.com/spf13/cobra"
)

var (
	workers    int
	reportFile string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every message in a directory",
	Long: `Convert every message in an input directory into an output directory.

Files ending in .fin, .mt or .txt are converted to MX; files ending in .xml
are converted to MT. Each file is converted independently by a pool of
workers, and a failed file never stops the others. A CSV report lists one row
per file in input order.

Example:
  swift-mx batch -i inbox/ -o outbox/ --workers 8 --report report.csv`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel workers (default from batch.workers)")
	Cmd.Flags().StringVar(&reportFile, "report", "", "Write a CSV report to this file (default from batch.report_file)")

	// Override the usage text for the input/output flags in batch context
	Cmd.SetUsageTemplate(`Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags (for batch, -i/-o refer to directories):
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`)
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.RequireContainer()
	if err != nil {
		return err
	}
	logger := c.GetLogger()

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		return fmt.Errorf("input and output directories must be specified")
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return err
	}

	if workers != 0 && (workers < config.MinWorkers || workers > config.MaxWorkers) {
		return fmt.Errorf("--workers must be between %d and %d, got: %d", config.MinWorkers, config.MaxWorkers, workers)
	}
	processor := c.NewBatchProcessor(workers, root.SharedFlags.Type)
	jobs, err := processor.PlanJobs(inputDir, outputDir)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		logger.Warn("No supported files found in input directory",
			logging.Field{Key: logging.FieldInputFile, Value: inputDir})
		return nil
	}

	logger.Info("Found files for processing",
		logging.Field{Key: logging.FieldCount, Value: len(jobs)},
		logging.Field{Key: logging.FieldWorkers, Value: processor.Workers()})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rows, runErr := processor.Run(ctx, jobs)

	report := reportFile
	if report == "" {
		report = c.GetConfig().Batch.ReportFile
	}
	if report != "" {
		if err := batch.WriteReport(rows, report, logger); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	summary := batch.Summarize(rows)
	fmt.Fprintln(cmd.OutOrStdout(), summary.String())
	if runErr != nil {
		return fmt.Errorf("batch interrupted: %w", runErr)
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, summary.Total)
	}
	return nil
}
