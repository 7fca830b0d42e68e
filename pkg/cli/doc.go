// Package cli implements the command-line interface for the semv tool.
//
// # Overview
//
// The semv CLI exposes semantic version parsing, comparison, and sorting for
// scripts and CI pipelines. All commands share the same output pipeline and
// can emit JSON, YAML, or a text table, to stdout or to a file.
//
// # Commands
//
// compare - Compare two versions by SemVer precedence:
//
//	semv compare 1.0.0-rc.1 1.0.0
//
// Reports whether the first version is older than, equal to, or newer than
// the second, along with the decomposed fields of both.
//
// sort - Order versions by precedence:
//
//	semv sort 1.0.0 1.0.0-alpha 1.0.0-rc.1
//	semv sort --input versions.yaml --reverse
//	semv sort --latest 1.0.0 2.0.0-beta
//
// Accepts versions as arguments, from a JSON/YAML file, or from stdin
// (--input -). With --latest only the highest-precedence version is printed.
//
// check - Validate version strings:
//
//	semv check 1.0.0 1.0 01.2.3
//	semv check --fail-on-error $(git tag)
//
// Reports per-input validity; with --fail-on-error the command exits non-zero
// when any input is malformed, for CI gating.
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: yaml, json, table (default: yaml)
//	--log-level      Logging verbosity (debug, info, warn, error)
//	--help, -h       Show command help
//	--version, -v    Show version information
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, malformed versions, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/semver - Version parsing and precedence comparison
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/semv/pkg/cli.version=1.0.0'"
package cli
