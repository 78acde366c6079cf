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

package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-highway-act/hwy"
)

// relErr returns |got-want| relative to |want|, or the absolute error when
// |want| < 1.
func relErr(got, want float64) float64 {
	return stdmath.Abs(got-want) / max(stdmath.Abs(want), 1)
}

func sweep(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return xs
}

// logSweep returns n values spaced evenly in ln(x) over [e^lo, e^hi].
func logSweep(lo, hi float64, n int) []float64 {
	xs := sweep(lo, hi, n)
	for i, u := range xs {
		xs[i] = stdmath.Exp(u)
	}
	return xs
}

func TestBaseVecFloat32(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(hwy.Vec[float32]) hwy.Vec[float32]
		ref    func(float64) float64
		inputs []float64
		tol    float64
	}{
		{"Exp", BaseExpVec[float32], stdmath.Exp, sweep(-80, 80, 1001), 1e-6},
		{"Log", BaseLogVec[float32], stdmath.Log, logSweep(-69, 69, 1001), 1e-6},
		{"Sigmoid", BaseSigmoidVec[float32], func(x float64) float64 { return 1 / (1 + stdmath.Exp(-x)) }, sweep(-30, 30, 1001), 1e-6},
		{"Tanh", BaseTanhVec[float32], stdmath.Tanh, sweep(-12, 12, 1001), 1e-6},
		{"Erf", BaseErfVec[float32], stdmath.Erf, sweep(-5, 5, 1001), 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.inputs {
				x32 := float32(x)
				got := tt.fn(hwy.Set(x32)).Data()
				want := tt.ref(float64(x32))
				for i, g := range got {
					if e := relErr(float64(g), want); e > tt.tol {
						t.Errorf("%s(%v) lane %d = %v, want %v (error %g)", tt.name, x32, i, g, want, e)
					}
				}
			}
		})
	}
}

func TestBaseVecFloat64(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(hwy.Vec[float64]) hwy.Vec[float64]
		ref    func(float64) float64
		inputs []float64
		tol    float64
	}{
		{"Exp", BaseExpVec[float64], stdmath.Exp, sweep(-700, 700, 1001), 1e-12},
		{"Log", BaseLogVec[float64], stdmath.Log, logSweep(-690, 690, 1001), 1e-12},
		{"Tanh", BaseTanhVec[float64], stdmath.Tanh, sweep(-25, 25, 1001), 1e-12},
		{"Erf", BaseErfVec[float64], stdmath.Erf, sweep(-6, 6, 1001), 2e-7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.inputs {
				got := tt.fn(hwy.Set(x)).Data()[0]
				want := tt.ref(x)
				if e := relErr(got, want); e > tt.tol {
					t.Errorf("%s(%v) = %v, want %v (error %g)", tt.name, x, got, want, e)
				}
			}
		})
	}
}

func TestBaseExpVecNearOverflow(t *testing.T) {
	// Just below ln(MaxFloat32) the reduction picks k = 128, one past the
	// largest float32 exponent.
	x := float32(88.5)
	got := BaseExpVec(hwy.Set(x)).Data()[0]
	want := stdmath.Exp(float64(x))
	if stdmath.IsInf(float64(got), 0) || relErr(float64(got), want) > 1e-6 {
		t.Errorf("Exp(%v) = %v, want %v", x, got, want)
	}

	one := BaseExpVec(hwy.Zero[float32]()).Data()[0]
	if one != 1 {
		t.Errorf("Exp(0) = %v, want exactly 1", one)
	}
}

func TestSpecialValuesPropagate(t *testing.T) {
	nan := float32(stdmath.NaN())
	inf := float32(stdmath.Inf(1))

	tests := []struct {
		name string
		got  float32
		ok   func(float64) bool
	}{
		{"Exp overflow", BaseExpVec(hwy.Set[float32](100)).Data()[0], func(v float64) bool { return stdmath.IsInf(v, 1) }},
		{"Exp(+Inf)", BaseExpVec(hwy.Set(inf)).Data()[0], func(v float64) bool { return stdmath.IsInf(v, 1) }},
		{"Exp underflow", BaseExpVec(hwy.Set[float32](-200)).Data()[0], func(v float64) bool { return v == 0 }},
		{"Exp(-Inf)", BaseExpVec(hwy.Set(-inf)).Data()[0], func(v float64) bool { return v == 0 }},
		{"Exp(NaN)", BaseExpVec(hwy.Set(nan)).Data()[0], stdmath.IsNaN},
		{"Log(0)", BaseLogVec(hwy.Set[float32](0)).Data()[0], func(v float64) bool { return stdmath.IsInf(v, -1) }},
		{"Log(1)", BaseLogVec(hwy.Set[float32](1)).Data()[0], func(v float64) bool { return v == 0 }},
		{"Log(+Inf)", BaseLogVec(hwy.Set(inf)).Data()[0], func(v float64) bool { return stdmath.IsInf(v, 1) }},
		{"Log(-1)", BaseLogVec(hwy.Set[float32](-1)).Data()[0], stdmath.IsNaN},
		{"Log(NaN)", BaseLogVec(hwy.Set(nan)).Data()[0], stdmath.IsNaN},
		{"Sigmoid(-100)", BaseSigmoidVec(hwy.Set[float32](-100)).Data()[0], func(v float64) bool { return v == 0 }},
		{"Sigmoid(100)", BaseSigmoidVec(hwy.Set[float32](100)).Data()[0], func(v float64) bool { return v == 1 }},
		{"Sigmoid(0)", BaseSigmoidVec(hwy.Set[float32](0)).Data()[0], func(v float64) bool { return v == 0.5 }},
		{"Tanh(+Inf)", BaseTanhVec(hwy.Set(inf)).Data()[0], func(v float64) bool { return v == 1 }},
		{"Tanh(-Inf)", BaseTanhVec(hwy.Set(-inf)).Data()[0], func(v float64) bool { return v == -1 }},
		{"Tanh(NaN)", BaseTanhVec(hwy.Set(nan)).Data()[0], stdmath.IsNaN},
		{"Erf(+Inf)", BaseErfVec(hwy.Set(inf)).Data()[0], func(v float64) bool { return v == 1 }},
		{"Erf(-Inf)", BaseErfVec(hwy.Set(-inf)).Data()[0], func(v float64) bool { return v == -1 }},
		{"Erf(NaN)", BaseErfVec(hwy.Set(nan)).Data()[0], stdmath.IsNaN},
	}

	for _, tt := range tests {
		if !tt.ok(float64(tt.got)) {
			t.Errorf("%s = %v", tt.name, tt.got)
		}
	}
}

func BenchmarkBaseExpVec(b *testing.B) {
	x := hwy.Set[float32](1.5)
	for i := 0; i < b.N; i++ {
		_ = BaseExpVec(x)
	}
}
