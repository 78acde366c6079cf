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
	stdmath "math"

	"github.com/ajroetker/go-highway-act/hwy"
	"github.com/ajroetker/go-highway-act/hwy/contrib/math"
)

// The vector forms below evaluate one activation lane-wise. They are pure:
// the result depends only on x, so lanes loaded as zero under a mask are
// harmless and simply never stored.

// TanhVec computes tanh(x).
func TanhVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return math.BaseTanhVec(x)
}

// ReLUVec computes max(0, x). NaN lanes stay NaN.
func ReLUVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Max(x, hwy.Zero[T]())
}

// SoftplusVec computes log(1 + e^x).
//
// The formula is evaluated literally, so e^x overflows to +Inf (and the
// result with it) once x exceeds the exponent range of T, about 88.7 for
// float32.
func SoftplusVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	vOne := hwy.Const[T](1.0)
	return math.BaseLogVec(hwy.Add(vOne, math.BaseExpVec(x)))
}

// SoftsignVec computes x / (|x| + 1).
func SoftsignVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	vOne := hwy.Const[T](1.0)
	return hwy.Div(x, hwy.Add(hwy.Abs(x), vOne))
}

// SigmoidVec computes 1 / (1 + e^-x).
//
// No range guard: e^-x overflows to +Inf for very negative x, giving an
// exact 0, and saturates to 1 for large x.
func SigmoidVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return math.BaseSigmoidVec(x)
}

// SiLUVec computes x * sigmoid(x), also known as Swish.
func SiLUVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Mul(x, SigmoidVec(x))
}

// GELUVec computes the exact Gaussian Error Linear Unit,
// 0.5 * x * (1 + erf(x / sqrt(2))).
func GELUVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	vHalf := hwy.Const[T](0.5)
	vOne := hwy.Const[T](1.0)
	vInvSqrt2 := hwy.Const[T](1 / stdmath.Sqrt2)

	erfX := math.BaseErfVec(hwy.Mul(x, vInvSqrt2))
	return hwy.Mul(hwy.Mul(vHalf, x), hwy.Add(vOne, erfX))
}

// GELUApproxVec computes the tanh approximation of GELU,
// 0.5 * x * (1 + tanh(sqrt(2/pi) * (x + 0.044715 * x^3))).
func GELUApproxVec[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	vHalf := hwy.Const[T](0.5)
	vOne := hwy.Const[T](1.0)
	vCoeff := hwy.Const[T](0.044715)
	vSqrt2OverPi := hwy.Const[T](stdmath.Sqrt(2 / stdmath.Pi))

	x3 := hwy.Mul(hwy.Mul(x, x), x)
	inner := hwy.Mul(vSqrt2OverPi, hwy.MulAdd(vCoeff, x3, x))
	return hwy.Mul(hwy.Mul(vHalf, x), hwy.Add(vOne, math.BaseTanhVec(inner)))
}

// SoftmaxLegacyVec reproduces the historical per-lane "softmax":
//
//	m = max(x, axisLength)
//	e = exp(x - m)
//	y = e / (e + axisLength)
//
// axisLength is a scalar, not a reduction over an axis, so the outputs do
// not form a probability distribution. Use nn.Softmax for a normalized
// softmax.
func SoftmaxLegacyVec[T hwy.Floats](x hwy.Vec[T], axisLength T) hwy.Vec[T] {
	vAxis := hwy.Set(axisLength)
	e := math.BaseExpVec(hwy.Sub(x, hwy.Max(x, vAxis)))
	return hwy.Div(e, hwy.Add(e, vAxis))
}

// VecFunc returns the lane-wise function for an elementwise kind. The GELU
// variant is picked here, once, from approximate. For KindSoftmax it returns
// the legacy per-lane formula bound to axisLength. It returns nil for an
// invalid kind.
func VecFunc[T hwy.Floats](kind Kind, approximate bool, axisLength int) func(hwy.Vec[T]) hwy.Vec[T] {
	switch kind {
	case KindTanh:
		return TanhVec[T]
	case KindReLU:
		return ReLUVec[T]
	case KindSoftplus:
		return SoftplusVec[T]
	case KindSoftsign:
		return SoftsignVec[T]
	case KindSigmoid:
		return SigmoidVec[T]
	case KindSiLU:
		return SiLUVec[T]
	case KindGELU:
		if approximate {
			return GELUApproxVec[T]
		}
		return GELUVec[T]
	case KindSoftmax:
		axis := T(axisLength)
		return func(x hwy.Vec[T]) hwy.Vec[T] {
			return SoftmaxLegacyVec(x, axis)
		}
	default:
		return nil
	}
}
