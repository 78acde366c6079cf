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

// Package hwy provides portable lane vectors and lane masks.
//
// A Vec holds MaxLanes[T]() elements, the number of T that fit in one
// register of the detected CPU (see CurrentWidth). Operations are written
// lane by lane in pure Go so that every kernel built on top of them has a
// single, well defined reference behavior on every platform.
//
// Masks are the safety mechanism for partial vectors: MaskLoad never reads a
// lane whose mask bit is false and MaskStore never writes one.
//
//	mask := hwy.TailMask[float32](remaining)
//	v := hwy.MaskLoad(mask, input[off:])
//	hwy.MaskStore(mask, hwy.Mul(v, v), output[off:])
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle.
//
// Vec instances should not be created directly; use Load, MaskLoad, Set or
// Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and lane-wise fallbacks.
func (v Vec[T]) Data() []T {
	return v.data
}

// Mask represents one boolean per lane.
// It is produced by comparisons and by TailMask / FirstN, and consumed by
// IfThenElse, MaskLoad and MaskStore.
type Mask[T Lanes] struct {
	bits []bool
}

// MaskFromBits builds a mask from explicit lane bits. Bits beyond
// MaxLanes[T]() are ignored; missing bits are false.
func MaskFromBits[T Lanes](bits []bool) Mask[T] {
	n := MaxLanes[T]()
	out := make([]bool, n)
	copy(out, bits)
	return Mask[T]{bits: out}
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
