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

import "strings"

// Compare returns an integer comparing two versions by SemVer precedence:
// -1 if v precedes other, 0 if they rank equally, 1 if other precedes v.
//
// Major, minor, and patch are compared as integers; the first difference
// decides. With equal cores, a version carrying a pre-release precedes the
// release version, and two pre-releases are compared identifier by identifier
// (see comparePrerelease). Build metadata is ignored entirely.
//
// Compare is the single ordering primitive; every other relation on Version
// is derived from it. Useful for sorting.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	return comparePrerelease(v.Prerelease, other.Prerelease)
}

// Equals reports whether v and other rank equally: same core triplet and the
// same raw pre-release text. Build metadata is excluded, so versions differing
// only in build metadata are equal. For grammar-valid versions this coincides
// with Compare returning 0.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major &&
		v.Minor == other.Minor &&
		v.Patch == other.Patch &&
		v.Prerelease == other.Prerelease
}

// IsOlder reports whether v strictly precedes other.
func (v Version) IsOlder(other Version) bool {
	return v.Compare(other) < 0
}

// IsNewer reports whether other strictly precedes v.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// EqualsOrOlder reports whether v precedes or ranks equally with other.
func (v Version) EqualsOrOlder(other Version) bool {
	return v.Compare(other) <= 0
}

// EqualsOrNewer reports whether other precedes or ranks equally with v.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// comparePrerelease orders two raw pre-release strings. An absent pre-release
// ("") ranks above any present one: a pre-release precedes its release.
// Identifier splitting happens here, lazily, so plain construction never
// allocates the identifier slices.
func comparePrerelease(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}
	// One list is a strict prefix of the other; the shorter list precedes.
	return compareInt(len(as), len(bs))
}

// compareIdentifier orders two pre-release identifiers. Numeric identifiers
// compare as integers and always precede alphanumeric ones; alphanumeric
// identifiers compare as plain ASCII strings, not locale-aware.
func compareIdentifier(a, b string) int {
	aNum, bNum := isNumeric(a), isNumeric(b)
	switch {
	case aNum && bNum:
		return compareNumeric(a, b)
	case aNum:
		return -1
	case bNum:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// compareNumeric orders two all-digit identifiers by integer value without
// converting: the grammar forbids leading zeros, so more digits means a
// larger value, and equal digit counts reduce to a byte-wise comparison.
// This stays exact for values past the int range.
func compareNumeric(a, b string) int {
	if c := compareInt(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// isNumeric reports whether s consists solely of ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
