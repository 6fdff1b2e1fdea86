package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"tracker/internal/cli"
	"tracker/internal/core"
	applog "tracker/internal/log"
	"tracker/internal/services"
	"tracker/internal/storage"
)

const (
	usage    = "Usage: tracker add <amount> <category> <description> | list\n"
	addUsage = "Usage: tracker add <amount> <category> <description>\n"

	tableRule = "------------+-----------------+---------+-------------------------"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app bundles what every subcommand needs.
type app struct {
	entries *services.EntryService
	store   *storage.CSVFile
	logger  *applog.Logger
	out     io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, logger, err := cli.Bootstrap(stderr)
	if err != nil {
		return 1
	}
	store := storage.NewCSVFile(cfg.CSVFile, logger).WithHeaderlessRows()
	a := &app{
		entries: services.NewEntryService(store, logger),
		store:   store,
		logger:  logger,
		out:     stdout,
	}

	if len(args) == 0 {
		return a.shell(ctx, stdin)
	}

	switch args[0] {
	case "add":
		if len(args) < 4 {
			fmt.Fprint(stdout, addUsage)
			return 1
		}
		amount, err := core.ParseEntryAmount(args[1])
		if err != nil {
			fmt.Fprintf(stdout, "Invalid amount: %s\n", args[1])
			return 1
		}
		return a.add(ctx, amount, args[2], strings.Join(args[3:], " "))
	case "list":
		return a.list(ctx)
	default:
		fmt.Fprintf(stdout, "Unknown command: %s\n", args[0])
		fmt.Fprint(stdout, usage)
		return 1
	}
}

func (a *app) add(ctx context.Context, amount decimal.Decimal, category, description string) int {
	r, err := a.entries.Add(ctx, amount, category, description)
	if err != nil {
		a.logger.ErrorContext(ctx, "Failed to add entry", applog.FieldError, err)
		return 1
	}
	fmt.Fprintf(a.out, "Entry added ✅  (%s | %s | %s | %s)\n",
		r.Date, r.Category, r.Description, core.FormatAmount(r.RecordAmount()))
	return 0
}

func (a *app) list(ctx context.Context) int {
	listing, err := a.entries.List(ctx)
	if errors.Is(err, services.ErrNoEntries) {
		fmt.Fprintln(a.out, "No entries yet.")
		return 0
	}
	if err != nil {
		a.logger.ErrorContext(ctx, "Failed to list entries", applog.FieldError, err)
		return 1
	}

	fmt.Fprintln(a.out, "📒 Entries")
	fmt.Fprintln(a.out, "date        | category        | amount  | description")
	fmt.Fprintln(a.out, tableRule)
	for _, r := range listing.Records {
		fmt.Fprintf(a.out, "%-12s %-17s %7s  %s\n", r.Date, r.Category, core.FormatAmount(r.RecordAmount()), r.Description)
	}
	fmt.Fprintln(a.out, tableRule)
	fmt.Fprintf(a.out, "Total: %s\n", core.FormatAmount(listing.Total))
	return 0
}
