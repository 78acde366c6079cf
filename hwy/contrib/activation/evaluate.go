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

import (
	"github.com/ajroetker/go-highway-act/hwy"
	"github.com/ajroetker/go-highway-act/hwy/contrib/launch"
	"github.com/ajroetker/go-highway-act/hwy/contrib/nn"
)

// Evaluate writes the activation selected by cfg of every input element to
// the matching output element.
//
// The input is split into ceil(N/cfg.BlockWidth) units that l runs serially
// or on its worker pool. A nil l runs serially. Invalid configurations are
// rejected before any output element is written.
//
// Softmax without LegacySoftmax normalizes each axis of cfg.AxisLength
// elements, see nn.SoftmaxAxis.
func Evaluate[T hwy.Floats](l *launch.Launcher, cfg Config, input, output []T) error {
	if err := cfg.validate(len(input), len(output)); err != nil {
		return l.Reject(cfg.kernelName(), err)
	}
	n := len(input)
	if cfg.Kind == KindSoftmax && !cfg.LegacySoftmax {
		return nn.SoftmaxAxis(l, input, output, cfg.axisLength(n))
	}

	fn := VecFunc[T](cfg.Kind, cfg.Approximate, cfg.axisLength(n))
	return l.Launch(cfg.kernelName(), n, cfg.BlockWidth, func(b launch.Block) {
		launch.Apply(b, input, output, fn)
	})
}

// apply runs fn over min(len(input), len(output)) elements as one block.
func apply[T hwy.Floats](input, output []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	n := min(len(input), len(output))
	if n == 0 {
		return
	}
	launch.Apply(launch.Partition(0, n, n), input, output, fn)
}

// Tanh computes tanh(x) for each element.
func Tanh[T hwy.Floats](input, output []T) {
	apply(input, output, TanhVec[T])
}

// ReLU computes max(0, x) for each element.
func ReLU[T hwy.Floats](input, output []T) {
	apply(input, output, ReLUVec[T])
}

// Softplus computes log(1 + e^x) for each element.
func Softplus[T hwy.Floats](input, output []T) {
	apply(input, output, SoftplusVec[T])
}

// Softsign computes x / (|x| + 1) for each element.
func Softsign[T hwy.Floats](input, output []T) {
	apply(input, output, SoftsignVec[T])
}

// Sigmoid computes 1 / (1 + e^-x) for each element.
func Sigmoid[T hwy.Floats](input, output []T) {
	apply(input, output, SigmoidVec[T])
}

// SiLU computes x * sigmoid(x) for each element.
func SiLU[T hwy.Floats](input, output []T) {
	apply(input, output, SiLUVec[T])
}

// GELU computes the exact GELU for each element.
func GELU[T hwy.Floats](input, output []T) {
	apply(input, output, GELUVec[T])
}

// GELUApprox computes the tanh approximation of GELU for each element.
func GELUApprox[T hwy.Floats](input, output []T) {
	apply(input, output, GELUApproxVec[T])
}

// SoftmaxLegacy applies SoftmaxLegacyVec with the given axis length to each
// element.
func SoftmaxLegacy[T hwy.Floats](input, output []T, axisLength int) {
	axis := T(axisLength)
	apply(input, output, func(x hwy.Vec[T]) hwy.Vec[T] {
		return SoftmaxLegacyVec(x, axis)
	})
}
