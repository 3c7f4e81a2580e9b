package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"access-stats/internal/aggregators"
	"access-stats/internal/reports"
	"access-stats/internal/shared/filestorages"
	"access-stats/internal/shared/loggers"
	"access-stats/internal/sources"
)

var (
	flagCutoff   string
	flagExclude  string
	flagOut      string
	flagStoreDir string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a one-shot report over the configured log source",
	RunE:  runReport,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&flagCutoff, "cutoff", "", "Only count bandwidth, request time and dates on or after this day (2006-01-02)")
	f.StringVar(&flagExclude, "exclude", "", "Skip log lines containing this substring")
	f.StringVar(&flagOut, "out", "", "Write the report JSON to this file instead of stdout")
	f.StringVar(&flagStoreDir, "store-dir", "", "Directory for the stored report artifact (default: a temp directory)")
	rootCmd.AddCommand(runCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	logger, err := loggers.New(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	ctx := logger.WithContext(context.Background())

	source, err := newSource(ctx)
	if err != nil {
		return err
	}

	storeDir := flagStoreDir
	if storeDir == "" {
		storeDir, err = os.MkdirTemp("", "access-stats-*")
		if err != nil {
			return fmt.Errorf("failed to create report store directory: %w", err)
		}
	}
	fileStorage, err := filestorages.NewFileStorage(storeDir)
	if err != nil {
		return fmt.Errorf("failed to initialize report storage: %w", err)
	}

	reportService := reports.NewReportService(
		source,
		reports.NewReportStore(fileStorage),
		aggregators.NewTableRolluper(),
		reports.BuildOptions{},
	)

	report, err := reportService.BuildReport(ctx, reports.BuildOptions{
		DateCutoff:           flagCutoff,
		ExcludeLinesMatching: flagExclude,
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	out = append(out, '\n')

	if flagOut != "" {
		if err := os.WriteFile(flagOut, out, 0o644); err != nil {
			return fmt.Errorf("failed to write report file: %w", err)
		}
		fmt.Printf("Report %s written to %s (%d resources)\n", report.ReportID, flagOut, len(report.Stats))
		return nil
	}

	_, err = os.Stdout.Write(out)
	return err
}

func newSource(ctx context.Context) (sources.Source, error) {
	switch {
	case flagDir != "":
		return sources.NewLocalSource(flagDir)
	case flagBucket != "":
		return sources.NewS3Source(ctx, flagBucket, flagPrefix, flagRegion)
	default:
		return nil, fmt.Errorf("either --dir or --bucket is required")
	}
}
