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

// Package math provides transcendental functions over hwy vectors.
// This package corresponds to Google Highway's hwy/contrib/math directory.
//
// The functions are register-level building blocks built from hwy
// operations: range reduction followed by a polynomial, with float64 lanes
// using longer polynomials than float32 lanes.
//
//   - BaseExpVec(x Vec[T]) Vec[T] - e^x
//   - BaseLogVec(x Vec[T]) Vec[T] - ln(x)
//   - BaseSigmoidVec(x Vec[T]) Vec[T] - 1 / (1 + e^-x)
//   - BaseTanhVec(x Vec[T]) Vec[T] - hyperbolic tangent
//   - BaseErfVec(x Vec[T]) Vec[T] - error function
//
// Overflow produces +Inf and NaN inputs produce NaN. Sigmoid is not
// clamped, so it reaches exactly 0 and 1 only where e^-x overflows or
// underflows.
package math
