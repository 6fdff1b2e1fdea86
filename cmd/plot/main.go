package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tracker/internal/chart"
	"tracker/internal/cli"
	"tracker/internal/core"
	applog "tracker/internal/log"
	"tracker/internal/services"
	"tracker/internal/storage"
)

const usage = `plot - read tracker.csv and save a spending chart as a PNG.

Usage:
  plot daily        # sums by date -> spending_by_date.png
  plot category     # sums by category -> spending_by_category.png
`

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Argument checks come first: a usage error touches no file.
	if len(args) != 1 {
		fmt.Fprint(stdout, usage)
		return 1
	}
	mode, err := core.ParseMode(args[0])
	if err != nil {
		fmt.Fprint(stdout, usage)
		return 1
	}

	cfg, logger, err := cli.Bootstrap(stderr)
	if err != nil {
		return 1
	}

	svc := services.NewReportService(
		storage.NewCSVFile(cfg.CSVFile, logger),
		chart.NewRenderer(cfg.OutputDir, cfg.DPI, logger),
		logger,
	)

	report, err := svc.Run(ctx, mode)
	if errors.Is(err, core.ErrNoData) {
		fmt.Fprintln(stdout, "No data to plot.")
		return 0
	}
	if err != nil {
		logger.ErrorContext(ctx, "Chart generation failed", applog.FieldMode, mode.String(), applog.FieldError, err)
		return 1
	}

	fmt.Fprintf(stdout, "Saved %s\n", report.Path)
	return 0
}
