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

package semver

import (
	"fmt"
	"regexp"
	"strconv"
)

// Version represents a parsed semantic version. Major, Minor, and Patch are
// always present. Prerelease and Build hold the raw dot-separated identifier
// text following the core triplet; an empty string means the segment is absent
// (the grammar rejects empty segments, so "" is unambiguous).
//
// Build metadata is carried for completeness only and never participates in
// ordering or equality. Version values are immutable once constructed.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// Prerelease is the raw pre-release text without its introducing
	// separator, e.g. "alpha.1" for "1.0.0-alpha.1". Identifier splitting
	// happens lazily at comparison time.
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`

	// Build is the raw build metadata text without the leading "+".
	Build string `json:"build,omitempty" yaml:"build,omitempty"`

	// raw is the exact input that produced this Version, kept for display.
	raw string
}

// preIdentifier matches one dot-separated pre-release identifier: a numeric
// identifier without leading zeros, or an alphanumeric identifier.
const preIdentifier = `0|[1-9]\d*|\d*[A-Za-z-][0-9A-Za-z-]*`

// versionPattern is the authoritative grammar, anchored so the whole input
// must match. The prerelease block has two branches. The dashed branch is
// strict SemVer 2.0.0. The bare branch is the one deliberate relaxation: the
// separator dash may be omitted, so "1.0.1b" parses with prerelease "b". Its
// first identifier must start with a letter; without that constraint a lone
// "-" or a leading-zero numeric would sneak in as a prerelease ("1.0.0-" and
// "1.0.01" must stay malformed).
var versionPattern = regexp.MustCompile(`^(?P<major>0|[1-9]\d*)` +
	`\.(?P<minor>0|[1-9]\d*)` +
	`\.(?P<patch>0|[1-9]\d*)` +
	`(?:-(?P<prerelease>(?:` + preIdentifier + `)(?:\.(?:` + preIdentifier + `))*)` +
	`|(?P<bare>[A-Za-z][0-9A-Za-z-]*(?:\.(?:` + preIdentifier + `))*))?` +
	`(?:\+(?P<build>[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

var (
	idxMajor      = versionPattern.SubexpIndex("major")
	idxMinor      = versionPattern.SubexpIndex("minor")
	idxPatch      = versionPattern.SubexpIndex("patch")
	idxPrerelease = versionPattern.SubexpIndex("prerelease")
	idxBare       = versionPattern.SubexpIndex("bare")
	idxBuild      = versionPattern.SubexpIndex("build")
)

// Parse parses a version string into a Version.
// The entire input must match the grammar; trailing characters, empty
// segments, and leading zeros in numeric identifiers are all rejected with
// a *MalformedVersionError carrying the input. No partial Version is ever
// returned on failure.
func Parse(raw string) (Version, error) {
	m := versionPattern.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, &MalformedVersionError{Input: raw}
	}

	major, err := parseCoreField(m[idxMajor])
	if err != nil {
		return Version{}, err
	}
	minor, err := parseCoreField(m[idxMinor])
	if err != nil {
		return Version{}, err
	}
	patch, err := parseCoreField(m[idxPatch])
	if err != nil {
		return Version{}, err
	}

	// only one of the two prerelease branches can have matched
	prerelease := m[idxPrerelease]
	if prerelease == "" {
		prerelease = m[idxBare]
	}

	return Version{
		Major:      major,
		Minor:      minor,
		Patch:      patch,
		Prerelease: prerelease,
		Build:      m[idxBuild],
		raw:        raw,
	}, nil
}

// parseCoreField converts a matched core capture to an integer. The grammar
// guarantees the capture is a valid non-negative decimal, so a conversion
// failure is unreachable in practice but still surfaced rather than swallowed.
func parseCoreField(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidNumericField, s, err)
	}
	return n, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use Parse and handle errors explicitly.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// New creates a Version from numeric components without pre-release or build
// metadata. It returns ErrNegativeComponent if any component is negative.
func New(major, minor, patch int) (Version, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return Version{}, fmt.Errorf("%w: %d.%d.%d", ErrNegativeComponent, major, minor, patch)
	}
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
		raw:   fmt.Sprintf("%d.%d.%d", major, minor, patch),
	}, nil
}

// String returns the exact input string the Version was parsed from.
// Nothing is reconstructed from the decomposed fields.
func (v Version) String() string {
	return v.raw
}

// IsPrerelease reports whether the version carries a pre-release segment.
func (v Version) IsPrerelease() bool {
	return v.Prerelease != ""
}

var (
	prereleasePattern = regexp.MustCompile(`^(?:` + preIdentifier + `)(?:\.(?:` + preIdentifier + `))*$`)
	buildPattern      = regexp.MustCompile(`^[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*$`)
)

// IsValid reports whether the version holds values a successful Parse or New
// could have produced: all core components non-negative, and any prerelease
// or build text well-formed under the grammar. This matters for hand-built
// Version literals; parsed versions are always valid.
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return false
	}
	if v.Prerelease != "" && !prereleasePattern.MatchString(v.Prerelease) {
		return false
	}
	if v.Build != "" && !buildPattern.MatchString(v.Build) {
		return false
	}
	return true
}
