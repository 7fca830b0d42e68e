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
	"sort"
)

// Sort orders versions in place, ascending by precedence. The sort is stable,
// so versions that rank equally (e.g. differing only in build metadata) keep
// their relative order.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) < 0
	})
}

// ParseAll parses every string in raws. It fails on the first malformed input
// and never returns a partial result.
func ParseAll(raws []string) ([]Version, error) {
	versions := make([]Version, 0, len(raws))
	for _, raw := range raws {
		v, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// SortStrings parses every input string and returns them ordered ascending by
// precedence. The returned strings are the original inputs, not canonical
// renderings. It fails on the first malformed input.
func SortStrings(raws []string) ([]string, error) {
	versions, err := ParseAll(raws)
	if err != nil {
		return nil, err
	}
	Sort(versions)

	sorted := make([]string, len(versions))
	for i, v := range versions {
		sorted[i] = v.String()
	}
	return sorted, nil
}

// Latest returns the highest-precedence version in versions.
// The second return value is false when versions is empty.
func Latest(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}
	latest := versions[0]
	for _, v := range versions[1:] {
		if v.IsNewer(latest) {
			latest = v
		}
	}
	return latest, true
}
