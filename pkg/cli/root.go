/*
Copyright © 2025 The semv authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semv/pkg/logging"
	"github.com/mchmarny/semv/pkg/serializer"
)

const name = "semv"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags reused across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   "Output format: " + strings.Join(serializer.SupportedFormats(), ", "),
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Value:   "info",
		Sources: cli.EnvVars("LOG_LEVEL"),
	}
)

// New assembles the root command with all subcommands attached.
func New() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Semantic version parsing, comparison, and sorting",
		Version: version,
		Description: fmt.Sprintf(`semv - semantic version tooling

Version: %s
Commit:  %s
Built:   %s

Parses version strings per Semantic Versioning 2.0.0 with one relaxation
(the dash before the pre-release block is optional) and orders them by the
full SemVer precedence rules, including pre-release identifier tie-breaks.`,
			version, commit, date),
		Flags: []cli.Flag{logLevelFlag},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			compareCmd(),
			sortCmd(),
			checkCmd(),
		},
	}
}

// Execute runs the root command with a signal-aware context.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseOutputFormat validates the --format flag value.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// writeResult serializes data to the destination selected by the shared
// --output and --format flags.
func writeResult(ctx context.Context, cmd *cli.Command, data any) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, data); err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	return nil
}
