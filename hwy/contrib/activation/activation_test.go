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
	"fmt"
	stdmath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// rampData returns n values evenly spaced over [lo, hi].
func rampData[T float32 | float64](n int, lo, hi float64) []T {
	data := make([]T, n)
	for i := range data {
		data[i] = T(lo + (hi-lo)*float64(i)/float64(max(n-1, 1)))
	}
	return data
}

// scalarRef applies the float64 reference of cfg to every element.
func scalarRef[T float32 | float64](cfg Config, input []T) []T {
	fn := Scalar(cfg)
	out := make([]T, len(input))
	for i, x := range input {
		out[i] = T(fn(float64(x)))
	}
	return out
}

func TestSliceHelpersMatchScalar(t *testing.T) {
	input := rampData[float32](37, -8, 8)

	tests := []struct {
		name string
		fn   func(in, out []float32)
		cfg  Config
	}{
		{"Tanh", Tanh[float32], Config{Kind: KindTanh}},
		{"ReLU", ReLU[float32], Config{Kind: KindReLU}},
		{"Softplus", Softplus[float32], Config{Kind: KindSoftplus}},
		{"Softsign", Softsign[float32], Config{Kind: KindSoftsign}},
		{"Sigmoid", Sigmoid[float32], Config{Kind: KindSigmoid}},
		{"SiLU", SiLU[float32], Config{Kind: KindSiLU}},
		{"GELU", GELU[float32], Config{Kind: KindGELU}},
		{"GELUApprox", GELUApprox[float32], Config{Kind: KindGELU, Approximate: true}},
		{"SoftmaxLegacy", func(in, out []float32) { SoftmaxLegacy(in, out, 37) },
			Config{Kind: KindSoftmax, LegacySoftmax: true, AxisLength: 37}},
	}

	opt := cmpopts.EquateApprox(1e-5, 2e-6)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]float32, len(input))
			tt.fn(input, got)
			want := scalarRef(tt.cfg, input)
			if diff := cmp.Diff(want, got, opt); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestSliceHelpersFloat64(t *testing.T) {
	input := rampData[float64](21, -5, 5)
	got := make([]float64, len(input))

	// erf is a rational approximation good to about 1.5e-7 in any precision.
	GELU(input, got)
	want := scalarRef(Config{Kind: KindGELU}, input)
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("GELU float64 mismatch (-want +got):\n%s", diff)
	}
}

func TestReLUNonNegative(t *testing.T) {
	input := rampData[float32](101, -50, 50)
	output := make([]float32, len(input))
	ReLU(input, output)
	for i, v := range output {
		if v < 0 {
			t.Errorf("ReLU(%v) = %v, want >= 0", input[i], v)
		}
		if want := max(input[i], 0); v != want {
			t.Errorf("ReLU(%v) = %v, want %v", input[i], v, want)
		}
	}
}

func TestSigmoidRange(t *testing.T) {
	input := rampData[float32](81, -10, 10)
	output := make([]float32, len(input))
	Sigmoid(input, output)
	for i, v := range output {
		if v <= 0 || v >= 1 {
			t.Errorf("Sigmoid(%v) = %v, want value in (0, 1)", input[i], v)
		}
	}

	zero := []float32{0}
	Sigmoid(zero, zero)
	if zero[0] != 0.5 {
		t.Errorf("Sigmoid(0) = %v, want 0.5", zero[0])
	}
}

func TestSiLUIsXTimesSigmoid(t *testing.T) {
	input := rampData[float32](33, -6, 6)
	silu := make([]float32, len(input))
	sig := make([]float32, len(input))
	SiLU(input, silu)
	Sigmoid(input, sig)
	for i := range input {
		if want := input[i] * sig[i]; silu[i] != want {
			t.Errorf("SiLU(%v) = %v, want %v", input[i], silu[i], want)
		}
	}
}

func TestSoftsignRange(t *testing.T) {
	input := rampData[float32](41, -1000, 1000)
	output := make([]float32, len(input))
	Softsign(input, output)
	for i, v := range output {
		if v <= -1 || v >= 1 {
			t.Errorf("Softsign(%v) = %v, want value in (-1, 1)", input[i], v)
		}
		if want := input[i] / (float32(stdmath.Abs(float64(input[i]))) + 1); v != want {
			t.Errorf("Softsign(%v) = %v, want %v", input[i], v, want)
		}
	}
}

func TestGELUApproxCloseToExact(t *testing.T) {
	input := rampData[float32](161, -4, 4)
	exact := make([]float32, len(input))
	approx := make([]float32, len(input))
	GELU(input, exact)
	GELUApprox(input, approx)
	for i := range input {
		if d := stdmath.Abs(float64(exact[i] - approx[i])); d >= 1e-2 {
			t.Errorf("x=%v: |GELU - GELUApprox| = %v, want < 1e-2", input[i], d)
		}
	}
}

func TestSpecialValues(t *testing.T) {
	nan := float32(stdmath.NaN())
	inf := float32(stdmath.Inf(1))

	for _, kind := range Kinds() {
		if kind == KindSoftmax {
			continue
		}
		t.Run(kind.String(), func(t *testing.T) {
			fn := VecFunc[float32](kind, false, 0)
			in := []float32{nan}
			out := make([]float32, 1)
			apply(in, out, fn)
			if !stdmath.IsNaN(float64(out[0])) {
				t.Errorf("%s(NaN) = %v, want NaN", kind, out[0])
			}
		})
	}

	tests := []struct {
		name string
		fn   func(in, out []float32)
		in   float32
		want float32
	}{
		{"Softplus overflows", Softplus[float32], 100, inf},
		{"Sigmoid saturates low", Sigmoid[float32], -100, 0},
		{"Sigmoid saturates high", Sigmoid[float32], 100, 1},
		{"Tanh +Inf", Tanh[float32], inf, 1},
		{"Tanh -Inf", Tanh[float32], -inf, -1},
		{"ReLU +Inf", ReLU[float32], inf, inf},
		{"ReLU -Inf", ReLU[float32], -inf, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float32, 1)
			tt.fn([]float32{tt.in}, out)
			if out[0] != tt.want {
				t.Errorf("got %v, want %v", out[0], tt.want)
			}
		})
	}
}

func TestSoftmaxLegacyDoesNotNormalize(t *testing.T) {
	input := []float32{1, 2, 3}
	output := make([]float32, len(input))
	SoftmaxLegacy(input, output, len(input))

	var sum float64
	for _, v := range output {
		sum += float64(v)
	}
	if stdmath.Abs(sum-1) < 0.1 {
		t.Errorf("legacy softmax sums to %v, expected it not to be normalized", sum)
	}

	want := scalarRef(Config{Kind: KindSoftmax, LegacySoftmax: true, AxisLength: 3}, input)
	if diff := cmp.Diff(want, output, cmpopts.EquateApprox(1e-5, 1e-7)); diff != "" {
		t.Errorf("legacy softmax mismatch (-want +got):\n%s", diff)
	}
}

func TestVecFuncInvalidKind(t *testing.T) {
	if fn := VecFunc[float32](numKinds, false, 0); fn != nil {
		t.Error("VecFunc returned a function for an invalid kind")
	}
	if fn := Scalar(Config{Kind: -1}); fn != nil {
		t.Error("Scalar returned a function for an invalid kind")
	}
	if fn := Scalar(Config{Kind: KindSoftmax}); fn != nil {
		t.Error("Scalar returned a function for the normalizing softmax")
	}
}

func TestSliceHelpersShortOutput(t *testing.T) {
	input := []float32{-1, 2, -3, 4}
	output := []float32{9, 9}
	ReLU(input, output)
	if output[0] != 0 || output[1] != 2 {
		t.Errorf("ReLU = %v, want [0 2]", output)
	}
	ReLU[float32](nil, nil)
}

func BenchmarkSliceHelpers(b *testing.B) {
	for _, size := range []int{64, 1024, 16384} {
		input := rampData[float32](size, -4, 4)
		output := make([]float32, size)
		for _, bm := range []struct {
			name string
			fn   func(in, out []float32)
		}{
			{"GELU", GELU[float32]},
			{"GELUApprox", GELUApprox[float32]},
			{"SiLU", SiLU[float32]},
			{"ReLU", ReLU[float32]},
		} {
			b.Run(fmt.Sprintf("%s/%d", bm.name, size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					bm.fn(input, output)
				}
			})
		}
	}
}
