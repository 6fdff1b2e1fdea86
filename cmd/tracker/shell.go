package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"tracker/internal/core"
	applog "tracker/internal/log"
)

const shellHelp = `Tracker interactive mode. Commands:
  add <amount> <category> <description>
  list
  quit
`

// shell reads commands from in until quit, exit or EOF.
func (a *app) shell(ctx context.Context, in io.Reader) int {
	fmt.Fprint(a.out, shellHelp)
	if err := a.store.EnsureHeader(); err != nil {
		a.logger.WithComponent(applog.ComponentShell).Error("Failed to prepare expense log", applog.FieldError, err)
		return 1
	}

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		switch cmd {
		case "quit", "exit":
			return 0
		case "list":
			a.list(ctx)
		case "add":
			a.shellAdd(ctx, rest)
		default:
			fmt.Fprintln(a.out, "Unknown command. Try: add | list | quit")
		}
	}
	if err := sc.Err(); err != nil {
		a.logger.WithComponent(applog.ComponentShell).Error("Failed to read command", applog.FieldError, err)
		return 1
	}
	return 0
}

// shellAdd handles "add <amount> <category> <description...>". The
// description is the rest of the line as typed.
func (a *app) shellAdd(ctx context.Context, args string) {
	rawAmount, rest, _ := strings.Cut(strings.TrimSpace(args), " ")
	category, description, _ := strings.Cut(strings.TrimSpace(rest), " ")
	description = strings.TrimSpace(description)
	if rawAmount == "" || category == "" || description == "" {
		fmt.Fprintln(a.out, "Usage: add <amount> <category> <description>")
		return
	}
	amount, err := core.ParseEntryAmount(rawAmount)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid amount.")
		return
	}
	a.add(ctx, amount, category, description)
}
