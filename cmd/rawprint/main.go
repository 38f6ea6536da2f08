// SPDX-License-Identifier: GPL-3.0-or-later

// Command rawprint prints text on, or queries the status of, a printer
// reachable through its raw TCP port.
//
// Usage:
//
//	rawprint --host 192.168.1.103 [flags] print <text>...
//	rawprint --host 192.168.1.103 [flags] status
//
// Every flag can also be set through a RAWPRINT_ environment variable
// (e.g., RAWPRINT_HOST, RAWPRINT_FONT_SIZE).
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/bassosimone/rawprint"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	s, err := loadSettings(args)
	if err != nil {
		fmt.Fprintf(stderr, "rawprint: %s\n", err.Error())
		return 2
	}

	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: s.LogLevel}))

	cfg := rawprint.NewConfig()
	cfg.Encoding = s.Encoding
	cfg.JobName = s.JobName
	printer := rawprint.NewPrinter(cfg, s.Host, s.Port, logger)

	if err := execute(ctx, printer, s, stdout); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitCode(err)
	}
	return 0
}

// execute connects, runs the requested command, and always closes.
func execute(ctx context.Context, printer *rawprint.Printer, s *settings, stdout io.Writer) error {
	if len(s.Args) < 1 {
		return errUsage
	}
	command, rest := s.Args[0], s.Args[1:]

	switch command {
	case "print":
		text := strings.TrimSpace(strings.Join(rest, " "))
		if text == "" {
			return errNothingToPrint
		}
		if err := printer.Connect(ctx); err != nil {
			return err
		}
		defer printer.Close()
		if err := printer.PrintJob(ctx, text, s.FontSize, s.Bold); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "print job sent")
		return nil

	case "status":
		if err := printer.Connect(ctx); err != nil {
			return err
		}
		defer printer.Close()
		status, err := printer.QueryStatus(ctx)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, status)
		return nil

	default:
		return errUsage
	}
}

var (
	errUsage = errors.New("usage: rawprint [flags] print <text>... | status")

	errNothingToPrint = errors.New("rawprint: nothing to print")
)

// exitCode maps caller mistakes to 2 and environment failures to 1.
func exitCode(err error) int {
	var fontErr *rawprint.FontRangeError
	if errors.Is(err, errUsage) || errors.Is(err, errNothingToPrint) || errors.As(err, &fontErr) {
		return 2
	}
	return 1
}
