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

package launch

import (
	"os"
	"strconv"
)

// Launch tuning parameters.
const (
	// FallbackBlockWidth is the block width used when HWY_BLOCK_WIDTH is
	// unset or invalid.
	FallbackBlockWidth = 1024

	// MinParallelElements is the element count below which a launch runs
	// its units serially even when a pool is configured. Same threshold as
	// the row-parallel activations: parallel overhead is a few µs, which
	// pays off above ~10K elements.
	MinParallelElements = 16384

	// UnitBatch is the number of units a worker grabs per atomic operation.
	UnitBatch = 4
)

// DefaultBlockWidth returns the block width configured by the
// HWY_BLOCK_WIDTH environment variable, or FallbackBlockWidth when the
// variable is unset or not a positive power of two.
func DefaultBlockWidth() int {
	val := os.Getenv("HWY_BLOCK_WIDTH")
	if val == "" {
		return FallbackBlockWidth
	}
	w, err := strconv.Atoi(val)
	if err != nil || !IsPowerOfTwo(w) {
		return FallbackBlockWidth
	}
	return w
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
