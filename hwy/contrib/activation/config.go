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

package activation

import "github.com/ajroetker/go-highway-act/hwy/contrib/launch"

// Config parameterizes one Evaluate call.
type Config struct {
	// BlockWidth is the number of elements each unit owns. It must be a
	// positive power of two.
	BlockWidth int

	Kind Kind

	// Approximate selects the tanh form of GELU. Ignored by other kinds.
	Approximate bool

	// AxisLength is the softmax axis length. Zero means a single axis
	// spanning the whole input. Ignored by other kinds.
	AxisLength int

	// LegacySoftmax selects the historical per-lane softmax formula, which
	// uses AxisLength as a scalar and does not normalize.
	LegacySoftmax bool
}

// DefaultConfig returns a Config for kind with the block width taken from
// launch.DefaultBlockWidth.
func DefaultConfig(kind Kind) Config {
	return Config{
		BlockWidth: launch.DefaultBlockWidth(),
		Kind:       kind,
	}
}

// kernelName labels launches, metrics and errors. Invalid kinds share the
// "unknown" label so metric cardinality stays bounded.
func (c Config) kernelName() string {
	switch {
	case !c.Kind.Valid():
		return "unknown"
	case c.Kind == KindGELU && c.Approximate:
		return "gelu_approx"
	case c.Kind == KindSoftmax && c.LegacySoftmax:
		return "softmax_legacy"
	default:
		return c.Kind.String()
	}
}

// axisLength resolves the zero default against n.
func (c Config) axisLength(n int) int {
	if c.AxisLength == 0 {
		return n
	}
	return c.AxisLength
}

// validate checks the caller contract for n input and m output elements.
func (c Config) validate(n, m int) error {
	op := c.kernelName()
	if !c.Kind.Valid() {
		return launch.NewConfigError(op, "kind", int(c.Kind), launch.ErrUnknownKind)
	}
	if !launch.IsPowerOfTwo(c.BlockWidth) {
		return launch.NewConfigError(op, "block_width", c.BlockWidth, launch.ErrInvalidBlockWidth)
	}
	if n != m {
		return launch.NewConfigError(op, "length", [2]int{n, m}, launch.ErrLengthMismatch)
	}
	if c.Kind == KindSoftmax {
		if c.AxisLength < 0 {
			return launch.NewConfigError(op, "axis_length", c.AxisLength, launch.ErrInvalidAxisLength)
		}
		if !c.LegacySoftmax && c.AxisLength > 0 && n%c.AxisLength != 0 {
			return launch.NewConfigError(op, "axis_length", c.AxisLength, launch.ErrInvalidAxisLength)
		}
	}
	return nil
}
