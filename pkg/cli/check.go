/*
Copyright © 2025 The semv authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/semv/pkg/semver"
)

// CheckEntry reports the validation outcome for one input string.
type CheckEntry struct {
	Input   string         `json:"input" yaml:"input"`
	Valid   bool           `json:"valid" yaml:"valid"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty"`
	Version *ParsedVersion `json:"version,omitempty" yaml:"version,omitempty"`
}

// CheckSummary aggregates validation outcomes.
type CheckSummary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// CheckResult is the full validation report.
type CheckResult struct {
	Summary CheckSummary `json:"summary" yaml:"summary"`
	Results []CheckEntry `json:"results" yaml:"results"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate version strings against the grammar",
		ArgsUsage:             "[VERSION...]",
		Description: `Validate version strings against the accepted grammar.

Each input is reported individually with its decomposed fields when valid,
or the parse error when not. Inputs come from the arguments or from a
JSON/YAML file (--input), like sort.

# Examples

Check a few candidates:
  semv check 1.0.0 1.0 01.2.3

Gate a CI pipeline on tag validity:
  semv check --fail-on-error $(git tag)`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Path to a JSON/YAML file holding a list of version strings, or - for stdin (JSON)",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if any input is malformed",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raws, err := versionInputs(cmd)
			if err != nil {
				return err
			}

			result := CheckResult{
				Summary: CheckSummary{Total: len(raws)},
				Results: make([]CheckEntry, 0, len(raws)),
			}

			for _, raw := range raws {
				entry := CheckEntry{Input: raw}
				v, err := semver.Parse(raw)
				if err != nil {
					entry.Error = err.Error()
					result.Summary.Invalid++
				} else {
					parsed := toParsedVersion(v)
					entry.Valid = true
					entry.Version = &parsed
					result.Summary.Valid++
				}
				result.Results = append(result.Results, entry)
			}

			slog.Info("checked versions",
				"total", result.Summary.Total,
				"valid", result.Summary.Valid,
				"invalid", result.Summary.Invalid)

			if err := writeResult(ctx, cmd, result); err != nil {
				return err
			}

			if cmd.Bool("fail-on-error") && result.Summary.Invalid > 0 {
				return fmt.Errorf("validation failed: %d version(s) malformed", result.Summary.Invalid)
			}
			return nil
		},
	}
}
