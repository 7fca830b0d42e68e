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

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semv/pkg/semver"
	"github.com/mchmarny/semv/pkg/serializer"
)

// SortResult holds versions ordered by precedence.
type SortResult struct {
	Count    int      `json:"count" yaml:"count"`
	Versions []string `json:"versions" yaml:"versions"`
}

// LatestResult holds only the highest-precedence version.
type LatestResult struct {
	Latest string `json:"latest" yaml:"latest"`
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Order versions by SemVer precedence",
		ArgsUsage:             "[VERSION...]",
		Description: `Sort version strings ascending by Semantic Versioning precedence.

Versions come from the arguments, from a JSON/YAML file holding a list of
strings (--input versions.yaml), or from stdin as JSON (--input -).
A single malformed version fails the whole command; no best-effort
ordering is ever produced.

# Examples

Sort arguments:
  semv sort 1.0.0 1.0.0-alpha 1.0.0-rc.1

Sort a file of versions, newest first:
  semv sort --input versions.yaml --reverse

Pick the newest of a set (e.g. from git tags):
  semv sort --latest --format table 1.0.0 2.0.0-beta 1.9.9`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to a JSON/YAML file holding a list of version strings, or - for stdin (JSON)",
			},
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Sort descending (newest first)",
			},
			&cli.BoolFlag{
				Name:    "latest",
				Aliases: []string{"l"},
				Usage:   "Output only the highest-precedence version",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raws, err := versionInputs(cmd)
			if err != nil {
				return err
			}

			versions, err := semver.ParseAll(raws)
			if err != nil {
				return err
			}

			if cmd.Bool("latest") {
				latest, ok := semver.Latest(versions)
				if !ok {
					return fmt.Errorf("no versions provided")
				}
				slog.Info("selected latest version", "count", len(versions), "latest", latest.String())
				return writeResult(ctx, cmd, LatestResult{Latest: latest.String()})
			}

			semver.Sort(versions)
			if cmd.Bool("reverse") {
				for i, j := 0, len(versions)-1; i < j; i, j = i+1, j-1 {
					versions[i], versions[j] = versions[j], versions[i]
				}
			}

			result := SortResult{
				Count:    len(versions),
				Versions: make([]string, len(versions)),
			}
			for i, v := range versions {
				result.Versions[i] = v.String()
			}

			slog.Info("sorted versions", "count", result.Count, "reverse", cmd.Bool("reverse"))

			return writeResult(ctx, cmd, result)
		},
	}
}

// versionInputs resolves the version strings for sort and check commands from
// the positional arguments or the --input source. Exactly one source must be
// used.
func versionInputs(cmd *cli.Command) ([]string, error) {
	input := cmd.String("input")
	args := cmd.Args().Slice()

	switch {
	case input != "" && len(args) > 0:
		return nil, fmt.Errorf("pass versions either as arguments or via --input, not both")
	case input == "" && len(args) == 0:
		return nil, fmt.Errorf("no versions provided")
	case input == "":
		return args, nil
	case input == "-":
		raws, err := serializer.FromReader[[]string](serializer.FormatJSON, os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read versions from stdin: %w", err)
		}
		return *raws, nil
	default:
		raws, err := serializer.FromFile[[]string](input)
		if err != nil {
			return nil, fmt.Errorf("failed to read versions from %q: %w", input, err)
		}
		return *raws, nil
	}
}
