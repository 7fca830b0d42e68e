// Copyright (c) 2025 The semv authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package semver provides semantic version parsing and precedence-based comparison.
//
// # Overview
//
// This package implements Semantic Versioning 2.0.0 (semver.org) parsing and the
// full precedence rules, including pre-release identifier comparison and build
// metadata handling, with one deliberate grammar relaxation: the dash separating
// the version core from the pre-release block is optional. "1.0.1b" therefore
// parses successfully with pre-release "b" rather than being rejected.
//
// # Usage
//
// Parse a version string:
//
//	v, err := semver.Parse("1.2.3-rc.1+build.7")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.Major, v.Minor, v.Patch) // Output: 1 2 3
//
// Compare versions:
//
//	a := semver.MustParse("1.0.0-alpha.1")
//	b := semver.MustParse("1.0.0-alpha.beta")
//	if a.IsOlder(b) {
//	    fmt.Println("alpha.1 precedes alpha.beta")
//	}
//
// Sort a collection:
//
//	sorted, err := semver.SortStrings([]string{"1.0.0", "1.0.0-alpha", "1.0.0-rc.1"})
//	// sorted: ["1.0.0-alpha", "1.0.0-rc.1", "1.0.0"]
//
// # Precedence Semantics
//
// Versions are ordered by major, minor, and patch as integers. When the core
// triplets are equal, a version with a pre-release precedes the release version,
// and two pre-releases are compared identifier by identifier:
//
//   - Numeric identifiers compare as integers ("2" < "11").
//   - A numeric identifier always precedes an alphanumeric one.
//   - Alphanumeric identifiers compare as plain ASCII strings.
//   - If one identifier list is a prefix of the other, the shorter list precedes.
//
// Build metadata ("+..." suffix) never participates in ordering or equality:
// "1.0.0+build.1" and "1.0.0+build.2" are equal.
//
// # Grammar
//
// The accepted grammar is anchored (the whole input must match):
//
//	version     := core ( "-" pre_release | bare_release )? ( "+" build )?
//	core        := numeric "." numeric "." numeric
//	pre_release := pre_id ("." pre_id)*
//	bare_release := [A-Za-z][0-9A-Za-z-]* ("." pre_id)*
//	build       := build_id ("." build_id)*
//	numeric     := "0" | [1-9][0-9]*
//	pre_id      := numeric | [0-9A-Za-z-]*[A-Za-z-][0-9A-Za-z-]*
//	build_id    := [0-9A-Za-z-]+
//
// The bare_release branch, a prerelease without the introducing dash, is the
// only deviation from strict SemVer 2.0.0. Its first identifier must start
// with a letter, so "1.0.0-" and "1.0.01" remain malformed. Everything else
// is enforced exactly, including the rejection of leading zeros in numeric
// identifiers and of empty segments.
//
// # Error Handling
//
// Parse returns specific errors for different failure modes:
//
//   - ErrMalformedVersion: input does not match the grammar; the returned
//     *MalformedVersionError carries the offending input
//   - ErrInvalidNumericField: a matched core field could not be converted
//     to an integer (defensive; unreachable for grammar-valid input)
//   - ErrNegativeComponent: programmatic construction with a negative value
//
// For constant initialization, use MustParse which panics on error:
//
//	var MinVersion = semver.MustParse("1.0.0")
//
// # Concurrency
//
// Version values are immutable and all operations are pure. Versions may be
// parsed and compared concurrently from multiple goroutines without
// coordination.
package semver
