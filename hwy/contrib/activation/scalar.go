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

import "math"

// Scalar returns the float64 reference of the elementwise activation
// selected by cfg. AxisLength must already be resolved for the legacy
// softmax. It returns nil for the normalizing softmax, which is not
// elementwise, and for invalid kinds.
func Scalar(cfg Config) func(float64) float64 {
	switch cfg.Kind {
	case KindTanh:
		return math.Tanh
	case KindReLU:
		return func(x float64) float64 { return math.Max(x, 0) }
	case KindSoftplus:
		return func(x float64) float64 { return math.Log(1 + math.Exp(x)) }
	case KindSoftsign:
		return func(x float64) float64 { return x / (math.Abs(x) + 1) }
	case KindSigmoid:
		return sigmoid
	case KindSiLU:
		return func(x float64) float64 { return x * sigmoid(x) }
	case KindGELU:
		if cfg.Approximate {
			return func(x float64) float64 {
				inner := math.Sqrt(2/math.Pi) * (x + 0.044715*x*x*x)
				return 0.5 * x * (1 + math.Tanh(inner))
			}
		}
		return func(x float64) float64 {
			return 0.5 * x * (1 + math.Erf(x/math.Sqrt2))
		}
	case KindSoftmax:
		if !cfg.LegacySoftmax {
			return nil
		}
		axis := float64(cfg.AxisLength)
		return func(x float64) float64 {
			e := math.Exp(x - math.Max(x, axis))
			return e / (e + axis)
		}
	default:
		return nil
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
