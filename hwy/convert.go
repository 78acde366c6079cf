package hwy

import (
	"math"
	"unsafe"
)

// This file provides the conversions and IEEE 754 bit manipulation that the
// polynomial kernels in contrib/math use for range reduction. Lanes are
// handled in float64, which represents every float32 value exactly.

// ConvertToInt32 converts float lanes to int32, truncating toward zero.
// For values outside the int32 range, and for NaN, the result is undefined.
func ConvertToInt32[T Floats](v Vec[T]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, x := range v.data {
		result[i] = int32(x)
	}
	return Vec[int32]{data: result}
}

// ConvertToFloat converts int32 lanes to the float lane type T.
func ConvertToFloat[T Floats](v Vec[int32]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = T(x)
	}
	return Vec[T]{data: result}
}

// exponentRange returns the smallest and largest unbiased exponent of a
// normal T.
func exponentRange[T Floats]() (lo, hi int32) {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return -126, 127
	}
	return -1022, 1023
}

// Pow2 computes 2^k for each lane by building the exponent bits directly.
// Exponents above the range of T give +Inf and exponents below it give 0.
func Pow2[T Floats](k Vec[int32]) Vec[T] {
	lo, hi := exponentRange[T]()
	result := make([]T, len(k.data))
	for i, e := range k.data {
		switch {
		case e > hi:
			result[i] = T(math.Inf(1))
		case e < lo:
			result[i] = 0
		default:
			result[i] = T(math.Float64frombits(uint64(int64(e)+1023) << 52))
		}
	}
	return Vec[T]{data: result}
}

// GetExponent extracts the unbiased exponent of each lane, so that
// x = m * 2^e with |m| in [1, 2). Zero, Inf and NaN lanes give 0.
func GetExponent[T Floats](v Vec[T]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, x := range v.data {
		bits := math.Float64bits(float64(x))
		exp := int32((bits >> 52) & 0x7FF)
		if exp == 0 || exp == 0x7FF {
			continue
		}
		result[i] = exp - 1023
	}
	return Vec[int32]{data: result}
}

// GetMantissa returns each lane with its exponent replaced by zero, a value
// in [1, 2) carrying the sign of x.
func GetMantissa[T Floats](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		bits := math.Float64bits(float64(x))
		bits = (bits &^ (0x7FF << 52)) | (1023 << 52)
		result[i] = T(math.Float64frombits(bits))
	}
	return Vec[T]{data: result}
}
