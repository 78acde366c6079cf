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

package hwy

import "math"

// This file provides the pure Go (lane-by-lane) implementations of the
// vector operations. Binary operations produce as many lanes as the shorter
// operand. Floating-point NaN inputs propagate through Max and Min.

// Load creates a vector by loading up to MaxLanes elements from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Const creates a vector with all lanes set to the given float64 constant.
// This allows writing generic code without T(constant) conversions.
// Usage: hwy.Const[T](1.0) creates a Vec[T] with all lanes set to 1.0
func Const[T Lanes](val float64) Vec[T] {
	return Set(T(val))
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] / b.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates each lane.
func Neg[T Floats | SignedInts](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = -x
	}
	return Vec[T]{data: result}
}

// Abs computes the absolute value of each lane. Negative zero maps to
// positive zero and NaN stays NaN.
func Abs[T Floats | SignedInts](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		if x < 0 {
			result[i] = -x
		} else if x == 0 {
			result[i] = 0
		} else {
			result[i] = x
		}
	}
	return Vec[T]{data: result}
}

// Max returns the lane-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = max(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Min returns the lane-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = min(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// MulAdd computes a*b + c lane-wise.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), min(len(b.data), len(c.data)))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i]*b.data[i] + c.data[i]
	}
	return Vec[T]{data: result}
}

// RoundToEven rounds each lane to the nearest integer, ties to even.
func RoundToEven[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(math.RoundToEven(float64(x)))
	}
	return Vec[T]{data: result}
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	if len(v.data) == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for _, x := range v.data[1:] {
		m = max(m, x)
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Greater performs element-wise a > b. Lanes holding NaN compare false.
func Greater[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// Less performs element-wise a < b. Lanes holding NaN compare false.
func Less[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IsNaN returns a mask of the lanes that hold NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = math.IsNaN(float64(x))
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a where mask is true, b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// Merge selects elements from a where mask is true, from b otherwise.
// This is equivalent to IfThenElse(mask, a, b).
func Merge[T Lanes](a, b Vec[T], mask Mask[T]) Vec[T] {
	return IfThenElse(mask, a, b)
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	n := min(len(a.data), len(mask.bits))
	result := make([]T, len(mask.bits))
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskLoad loads data from a slice only for lanes where the mask is true.
// Inactive lanes, and active lanes past the end of src, read as zero; no
// element of src outside the active lanes is touched.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	n := min(len(src), len(mask.bits))
	result := make([]T, len(mask.bits))
	for i := range n {
		if mask.bits[i] {
			result[i] = src[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskStore stores vector data to a slice only for lanes where the mask is
// true. Elements of dst under inactive lanes keep their previous value.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	n := min(len(dst), min(len(v.data), len(mask.bits)))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
	}
}
