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

package nn

import (
	"github.com/ajroetker/go-highway-act/hwy"
	"github.com/ajroetker/go-highway-act/hwy/contrib/launch"
	"github.com/ajroetker/go-highway-act/hwy/contrib/workerpool"
)

// ParallelSoftmax applies Softmax independently to each row of a [rows, cols]
// matrix in parallel.
//
// Falls back to sequential execution when pool is nil or the total element
// count is below launch.MinParallelElements. Does nothing if either buffer
// is shorter than rows*cols.
func ParallelSoftmax[T hwy.Floats](pool *workerpool.Pool, input, output []T, rows, cols int) {
	if rows <= 0 || cols <= 0 || rows > len(input)/cols || rows > len(output)/cols {
		return
	}
	size := rows * cols
	l := launch.New(launch.WithPool(pool))
	// SoftmaxAxis only fails on mismatched lengths or a length that is not a
	// multiple of cols; both slices below are exactly rows*cols long.
	_ = SoftmaxAxis(l, input[:size], output[:size], cols)
}
