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
	"errors"
	"fmt"
)

// Error types for version parsing and construction failures
var (
	ErrMalformedVersion    = errors.New("malformed version string")
	ErrInvalidNumericField = errors.New("invalid numeric version field")
	ErrNegativeComponent   = errors.New("version component cannot be negative")
)

// MalformedVersionError reports an input that does not match the version
// grammar. The offending input is retained for diagnostics.
// It matches ErrMalformedVersion under errors.Is.
type MalformedVersionError struct {
	Input string
}

// Error implements the error interface.
func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("malformed version string: %q", e.Input)
}

// Unwrap returns ErrMalformedVersion for errors.Is support.
func (e *MalformedVersionError) Unwrap() error {
	return ErrMalformedVersion
}
