// Copyright 2025 go-highway Authors
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

package launch

import (
	"errors"
	"fmt"
)

// Sentinel errors for rejected launches. A rejected launch runs no unit and
// writes nothing. Match them with errors.Is.
var (
	ErrInvalidBlockWidth = errors.New("invalid block width")
	ErrInvalidLength     = errors.New("invalid element count")
	ErrLengthMismatch    = errors.New("input and output lengths differ")
	ErrInvalidAxisLength = errors.New("invalid axis length")
	ErrUnknownKind       = errors.New("unknown activation kind")
)

// ConfigError describes a caller contract violation found before launch.
type ConfigError struct {
	Op    string // kernel or entry point that rejected the call
	Field string // offending parameter
	Value any    // offending value
	Err   error  // one of the sentinel errors
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v: %s=%v", e.Op, e.Err, e.Field, e.Value)
}

// Unwrap returns the sentinel error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError.
func NewConfigError(op, field string, value any, err error) error {
	return &ConfigError{Op: op, Field: field, Value: value, Err: err}
}

// reason returns a short label for err, used as a metric label.
func reason(err error) string {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Field
	}
	return "other"
}
