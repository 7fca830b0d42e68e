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

// CompareResult describes the precedence relation between two versions.
type CompareResult struct {
	Left     ParsedVersion `json:"left" yaml:"left"`
	Right    ParsedVersion `json:"right" yaml:"right"`
	Result   int           `json:"result" yaml:"result"`
	Relation string        `json:"relation" yaml:"relation"`
}

// ParsedVersion is the serializable view of a parsed version.
type ParsedVersion struct {
	Input      string `json:"input" yaml:"input"`
	Major      int    `json:"major" yaml:"major"`
	Minor      int    `json:"minor" yaml:"minor"`
	Patch      int    `json:"patch" yaml:"patch"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build      string `json:"build,omitempty" yaml:"build,omitempty"`
}

func toParsedVersion(v semver.Version) ParsedVersion {
	return ParsedVersion{
		Input:      v.String(),
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      v.Patch,
		Prerelease: v.Prerelease,
		Build:      v.Build,
	}
}

func relationString(c int) string {
	switch {
	case c < 0:
		return "older"
	case c > 0:
		return "newer"
	default:
		return "equal"
	}
}

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions by SemVer precedence",
		ArgsUsage:             "LEFT RIGHT",
		Description: `Compare two version strings by Semantic Versioning precedence.

The relation reports how LEFT ranks against RIGHT: "older", "equal", or
"newer". Build metadata never affects the result, so versions differing
only in their "+..." suffix compare as equal.

# Examples

Compare a release candidate against the release:
  semv compare 1.0.0-rc.1 1.0.0

Machine-readable result for scripting:
  semv compare --format json 1.2.3 1.2.4

The numeric result follows the usual three-way convention:
  -1  LEFT precedes RIGHT
   0  LEFT and RIGHT rank equally
   1  RIGHT precedes LEFT`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() != 2 {
				return fmt.Errorf("compare requires exactly two version arguments, got %d", args.Len())
			}

			left, err := semver.Parse(args.Get(0))
			if err != nil {
				return fmt.Errorf("invalid left version: %w", err)
			}
			right, err := semver.Parse(args.Get(1))
			if err != nil {
				return fmt.Errorf("invalid right version: %w", err)
			}

			c := left.Compare(right)
			result := CompareResult{
				Left:     toParsedVersion(left),
				Right:    toParsedVersion(right),
				Result:   c,
				Relation: relationString(c),
			}

			slog.Info("compared versions",
				"left", left.String(),
				"right", right.String(),
				"relation", result.Relation)

			return writeResult(ctx, cmd, result)
		},
	}
}
