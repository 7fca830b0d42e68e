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

// Package serializer provides utilities for reading and writing structured
// data in various formats.
//
// The package supports three output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, report); err != nil {
//	    log.Fatal(err)
//	}
//
// Reading is supported for JSON and YAML (table format is write-only):
//
//	versions, err := serializer.FromFile[[]string]("versions.yaml")
//
// The package automatically handles:
//   - Format detection from file extensions
//   - Flattening nested structures for table format
//   - Resource cleanup via Close() method
package serializer

import "context"

// Serializer is an interface for writing structured data.
// Implementations serialize to formats such as JSON, YAML, or a text table.
//
// The context parameter is used for cancellation and timeouts, for
// implementations whose writes may block.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
