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

// Package nn provides normalizing operations that reduce over an axis and
// therefore cannot be expressed lane by lane.
//
// # Supported Operations
//
//   - Softmax - Softmax normalization over a slice
//   - SoftmaxInPlace - Softmax overwriting its input
//   - SoftmaxAxis - Softmax over every axis of a flat buffer, one launch unit per axis
//   - ParallelSoftmax - Row-parallel Softmax over a [rows, cols] matrix
//   - SoftmaxScalar - float64 reference implementation
//
// Each pass works on masked vectors: lanes outside the axis read as -Inf
// for the max reduction and as zero for the sum, so an axis that is not a
// multiple of the vector width needs no scalar tail.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-highway-act/hwy/contrib/nn"
//
//	func ComputeSoftmax(logits []float32) []float32 {
//	    probs := make([]float32, len(logits))
//	    nn.Softmax(logits, probs)
//	    return probs
//	}
package nn
