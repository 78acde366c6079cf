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

import "math"

// Block is the index range owned by one unit of work: lanes [0, Width) map
// to global indices [Start, Start+Width), and lane i is valid iff
// Start+i < N.
type Block struct {
	Unit  int // unit-of-work id
	Start int // global index of lane 0
	Width int // lanes in the block
	N     int // total element count of the launch
}

// NumUnits returns ceil(n/width), the number of units needed to cover n
// elements. It is 0 when n or width is not positive.
func NumUnits(n, width int) int {
	if n <= 0 || width <= 0 {
		return 0
	}
	return (n-1)/width + 1
}

// Partition returns the block owned by unit. Start is unit*width.
//
// A unit outside [0, NumUnits(n, width)) still gets a well formed block in
// which no lane is valid. When unit*width is not representable (negative
// unit or int overflow) Start is set to n.
func Partition(unit, width, n int) Block {
	width = max(width, 0)
	n = max(n, 0)
	b := Block{Unit: unit, Width: width, N: n, Start: n}
	if unit >= 0 && (width == 0 || unit <= math.MaxInt/width) {
		b.Start = unit * width
	}
	return b
}

// Index returns the global index of lane i.
func (b Block) Index(i int) int {
	return b.Start + i
}

// End returns the exclusive end of the block's range, ignoring N.
func (b Block) End() int {
	return b.Start + b.Width
}

// ValidLanes returns the number of valid lanes. Valid lanes always form a
// prefix of the block.
func (b Block) ValidLanes() int {
	if b.Start < 0 || b.Start >= b.N {
		return 0
	}
	return min(b.Width, b.N-b.Start)
}

// Valid reports whether lane i is inside the block and its global index is
// below N.
func (b Block) Valid(i int) bool {
	return i >= 0 && i < b.ValidLanes()
}

// Mask returns the lane mask of the block, one entry per lane.
func (b Block) Mask() []bool {
	mask := make([]bool, b.Width)
	for i := range b.ValidLanes() {
		mask[i] = true
	}
	return mask
}

// Span returns how many of the lanes [off, off+lanes) are valid.
func (b Block) Span(off, lanes int) int {
	if off < 0 || lanes <= 0 {
		return 0
	}
	valid := b.ValidLanes()
	if off >= valid {
		return 0
	}
	return min(lanes, valid-off)
}
