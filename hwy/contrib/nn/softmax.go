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

package nn

import (
	stdmath "math"

	"github.com/ajroetker/go-highway-act/hwy"
	"github.com/ajroetker/go-highway-act/hwy/contrib/launch"
	"github.com/ajroetker/go-highway-act/hwy/contrib/math"
)

// Softmax computes exp(x - max) / sum(exp(x - max)) over
// min(len(input), len(output)) elements.
//
// input and output may alias.
func Softmax[T hwy.Floats](input, output []T) {
	n := min(len(input), len(output))
	if n == 0 {
		return
	}
	softmaxBlock(launch.Partition(0, n, n), input, output)
}

// SoftmaxInPlace applies Softmax to data, overwriting it.
func SoftmaxInPlace[T hwy.Floats](data []T) {
	Softmax(data, data)
}

// softmaxBlock normalizes the valid lanes of b in three masked passes.
func softmaxBlock[T hwy.Floats](b launch.Block, input, output []T) {
	lanes := hwy.MaxLanes[T]()
	valid := b.ValidLanes()
	if valid == 0 {
		return
	}
	negInf := hwy.Set(T(stdmath.Inf(-1)))

	// Masked lanes read as -Inf so they never win the max.
	vMax := negInf
	for off := 0; off < valid; off += lanes {
		x, mask := launch.LoadVec(input, b, off)
		vMax = hwy.Max(vMax, hwy.IfThenElse(mask, x, negInf))
	}
	vm := hwy.Set(hwy.ReduceMax(vMax))

	// Masked lanes contribute zero to the sum.
	vSum := hwy.Zero[T]()
	for off := 0; off < valid; off += lanes {
		x, mask := launch.LoadVec(input, b, off)
		e := hwy.IfThenElseZero(mask, math.BaseExpVec(hwy.Sub(x, vm)))
		launch.StoreVec(output, b, off, e, mask)
		vSum = hwy.Add(vSum, e)
	}
	vInv := hwy.Div(hwy.Const[T](1.0), hwy.Set(hwy.ReduceSum(vSum)))

	for off := 0; off < valid; off += lanes {
		e, mask := launch.LoadVec(output, b, off)
		launch.StoreVec(output, b, off, hwy.Mul(e, vInv), mask)
	}
}

// SoftmaxScalar is the float64 reference for Softmax.
func SoftmaxScalar[T hwy.Floats](input, output []T) {
	n := min(len(input), len(output))
	if n == 0 {
		return
	}
	m := stdmath.Inf(-1)
	for _, x := range input[:n] {
		m = max(m, float64(x))
	}
	var sum float64
	exps := make([]float64, n)
	for i, x := range input[:n] {
		exps[i] = stdmath.Exp(float64(x) - m)
		sum += exps[i]
	}
	for i, e := range exps {
		output[i] = T(e / sum)
	}
}

// SoftmaxAxis normalizes every consecutive axis of axisLength elements
// independently. Each axis is one launch unit, so axes run in parallel when
// l has a pool. len(input) must equal len(output) and be a multiple of
// axisLength.
func SoftmaxAxis[T hwy.Floats](l *launch.Launcher, input, output []T, axisLength int) error {
	const kernel = "softmax"
	n := len(input)
	if n != len(output) {
		return l.Reject(kernel, launch.NewConfigError(kernel, "length", [2]int{n, len(output)}, launch.ErrLengthMismatch))
	}
	if n == 0 && axisLength == 0 {
		axisLength = 1
	}
	if axisLength <= 0 || n%axisLength != 0 {
		return l.Reject(kernel, launch.NewConfigError(kernel, "axis_length", axisLength, launch.ErrInvalidAxisLength))
	}
	return l.Launch(kernel, n, axisLength, func(b launch.Block) {
		softmaxBlock(b, input, output)
	})
}
