package math

import (
	stdmath "math"
	"unsafe"

	"github.com/ajroetker/go-highway-act/hwy"
)

// =============================================================================
// Vec-to-Vec Mathematical Functions
// =============================================================================
//
// These functions work on one vector at a time so they compose directly:
// BaseTanhVec calls BaseSigmoidVec calls BaseExpVec. Callers handle the
// slice to vector conversion (see launch.Apply).

// isFloat32 reports whether T is a 32-bit float.
func isFloat32[T hwy.Floats]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

// horner evaluates coeffs (highest degree first) at r.
func horner[T hwy.Floats](r hwy.Vec[T], coeffs []float64) hwy.Vec[T] {
	p := hwy.Const[T](coeffs[0])
	for _, c := range coeffs[1:] {
		p = hwy.MulAdd(p, r, hwy.Const[T](c))
	}
	return p
}

// BaseExpVec computes e^x for a single vector.
//
// Algorithm:
//  1. Range reduction: x = k*ln(2) + r, where |r| <= ln(2)/2
//  2. Polynomial approximation: e^r ≈ 1 + r + r²/2! + r³/3! + ...
//  3. Reconstruction: e^x = 2^k * e^r using IEEE 754 bit manipulation
//
// Lanes above the overflow threshold give +Inf, lanes below the underflow
// threshold give 0 and NaN lanes stay NaN.
func BaseExpVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	c := exp_f64
	if isFloat32[T]() {
		c = exp_f32
	}

	overflowMask := hwy.Greater(x, hwy.Const[T](c.overflow))
	underflowMask := hwy.Less(x, hwy.Const[T](c.underflow))

	// k = round(x / ln(2)), r = x - k*ln(2) using a high/low split of ln(2)
	kFloat := hwy.RoundToEven(hwy.Mul(x, hwy.Const[T](invLn2)))
	r := hwy.Sub(x, hwy.Mul(kFloat, hwy.Const[T](c.ln2Hi)))
	r = hwy.Sub(r, hwy.Mul(kFloat, hwy.Const[T](c.ln2Lo)))

	p := horner(r, c.poly)

	// 2^k is applied in two halves: just below the overflow threshold k is
	// one past the largest exponent of T while the product is still finite.
	kHalf := hwy.RoundToEven(hwy.Mul(kFloat, hwy.Const[T](0.5)))
	kRest := hwy.Sub(kFloat, kHalf)
	result := hwy.Mul(p, hwy.Pow2[T](hwy.ConvertToInt32(kHalf)))
	result = hwy.Mul(result, hwy.Pow2[T](hwy.ConvertToInt32(kRest)))

	result = hwy.Merge(hwy.Const[T](stdmath.Inf(1)), result, overflowMask)
	result = hwy.Merge(hwy.Zero[T](), result, underflowMask)
	return result
}

// BaseSigmoidVec computes sigmoid(x) = 1 / (1 + e^(-x)) using BaseExpVec.
//
// The input is not clamped: e^(-x) overflows to +Inf for very negative x,
// which gives exactly 0, and underflows to 0 for large x, which gives 1.
func BaseSigmoidVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Const[T](1.0)
	expNegX := BaseExpVec(hwy.Neg(x))
	return hwy.Div(one, hwy.Add(one, expNegX))
}

// BaseTanhVec computes tanh(x) = 2*sigmoid(2x) - 1 using BaseSigmoidVec.
// Past ±9 (float32) or ±19 (float64) the result is exactly ±1.
func BaseTanhVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	two := hwy.Const[T](2.0)
	one := hwy.Const[T](1.0)
	clamp := tanhClamp_f64
	if isFloat32[T]() {
		clamp = tanhClamp_f32
	}

	result := hwy.Sub(hwy.Mul(two, BaseSigmoidVec(hwy.Mul(two, x))), one)

	result = hwy.Merge(one, result, hwy.Greater(x, hwy.Const[T](clamp)))
	result = hwy.Merge(hwy.Neg(one), result, hwy.Less(x, hwy.Const[T](-clamp)))
	return result
}

// BaseLogVec computes ln(x) for a single vector.
//
// x is split into 2^e * m, m is moved into [sqrt(2)/2, sqrt(2)] and
// ln(m) = 2y(1 + y²/3 + y⁴/5 + ...) with y = (m-1)/(m+1).
// Log(0) is -Inf, Log(+Inf) is +Inf, negative and NaN lanes give NaN.
// Subnormal float64 lanes are not range reduced and lose accuracy.
func BaseLogVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	c := log_f64
	if isFloat32[T]() {
		c = log_f32
	}
	one := hwy.Const[T](1.0)
	zero := hwy.Zero[T]()
	inf := hwy.Const[T](stdmath.Inf(1))

	e := hwy.ConvertToFloat[T](hwy.GetExponent(x))
	m := hwy.GetMantissa(x)

	mLarge := hwy.Greater(m, hwy.Const[T](sqrt2))
	m = hwy.Merge(hwy.Mul(m, hwy.Const[T](0.5)), m, mLarge)
	e = hwy.Merge(hwy.Add(e, one), e, mLarge)

	y := hwy.Div(hwy.Sub(m, one), hwy.Add(m, one))
	poly := horner(hwy.Mul(y, y), c.poly)
	logM := hwy.Mul(hwy.Add(y, y), poly)

	// ln(x) = e*ln(2) + ln(m)
	result := hwy.Add(hwy.MulAdd(e, hwy.Const[T](c.ln2Hi), logM), hwy.Mul(e, hwy.Const[T](c.ln2Lo)))

	result = hwy.Merge(zero, result, hwy.Equal(x, one))
	result = hwy.Merge(hwy.Neg(inf), result, hwy.Equal(x, zero))
	result = hwy.Merge(inf, result, hwy.Equal(x, inf))
	result = hwy.Merge(hwy.Const[T](stdmath.NaN()), result, hwy.Less(x, zero))
	result = hwy.Merge(x, result, hwy.IsNaN(x))
	return result
}

// BaseErfVec computes erf(x) for a single vector with the Abramowitz and
// Stegun rational approximation, accurate to about 1.5e-7 for every lane
// type. erf(±Inf) is ±1 and NaN lanes stay NaN.
func BaseErfVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	one := hwy.Const[T](1.0)
	zero := hwy.Zero[T]()

	// erf(-x) = -erf(x)
	absX := hwy.Abs(x)
	signMask := hwy.Less(x, zero)

	// t = 1 / (1 + p * |x|)
	t := hwy.Div(one, hwy.MulAdd(hwy.Const[T](erfP), absX, one))

	poly := horner(t, []float64{erfA5, erfA4, erfA3, erfA2, erfA1})
	poly = hwy.Mul(poly, t)

	// erf(|x|) = 1 - poly * exp(-x²)
	expNegX2 := BaseExpVec(hwy.Neg(hwy.Mul(absX, absX)))
	erfAbs := hwy.Sub(one, hwy.Mul(poly, expNegX2))
	erfAbs = hwy.Max(hwy.Min(erfAbs, one), zero)

	return hwy.Merge(hwy.Neg(erfAbs), erfAbs, signMask)
}
