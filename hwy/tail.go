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

package hwy

// TailMask creates a mask with the first count lanes active, clamped to
// [0, MaxLanes]. A block whose valid range ends inside a vector uses it to
// mask off the lanes past the end.
func TailMask[T Lanes](count int) Mask[T] {
	maxLanes := MaxLanes[T]()
	count = min(max(count, 0), maxLanes)

	bits := make([]bool, maxLanes)
	for i := range count {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}
