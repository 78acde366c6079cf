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

import "github.com/ajroetker/go-highway-act/hwy"

// LoadLane returns buf[idx] when valid, otherwise the zero value.
// An invalid lane never touches buf.
func LoadLane[T hwy.Lanes](buf []T, idx int, valid bool) T {
	if !valid || idx < 0 || idx >= len(buf) {
		var zero T
		return zero
	}
	return buf[idx]
}

// StoreLane writes v to buf[idx] when valid. An invalid store is a no-op.
func StoreLane[T hwy.Lanes](buf []T, idx int, v T, valid bool) {
	if !valid || idx < 0 || idx >= len(buf) {
		return
	}
	buf[idx] = v
}

// LoadVec loads the vector that starts at lane off of block b. Lanes that
// are invalid in b, that fall past the block's own width, or that fall past
// the end of buf read as zero. The returned mask marks the loaded lanes and
// is meant to be passed back to StoreVec.
func LoadVec[T hwy.Lanes](buf []T, b Block, off int) (hwy.Vec[T], hwy.Mask[T]) {
	start := b.Index(off)
	count := b.Span(off, hwy.MaxLanes[T]())
	if count > 0 {
		count = min(count, len(buf)-start)
	}
	mask := hwy.TailMask[T](count)
	if count <= 0 {
		return hwy.Zero[T](), mask
	}
	return hwy.MaskLoad(mask, buf[start:]), mask
}

// StoreVec writes the lanes of v selected by mask to buf, starting at lane
// off of block b.
func StoreVec[T hwy.Lanes](buf []T, b Block, off int, v hwy.Vec[T], mask hwy.Mask[T]) {
	start := b.Index(off)
	if !mask.AnyTrue() || start < 0 || start >= len(buf) {
		return
	}
	hwy.MaskStore(mask, v, buf[start:])
}

// Apply is the elementwise block kernel: for each vector of block b it
// loads input under the lane mask, evaluates fn, and stores the result to
// output under the same mask. Every valid lane of b is written exactly once
// and nothing else is written.
func Apply[T hwy.Lanes](b Block, input, output []T, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	lanes := hwy.MaxLanes[T]()
	valid := b.ValidLanes()
	for off := 0; off < valid; off += lanes {
		x, mask := LoadVec(input, b, off)
		StoreVec(output, b, off, fn(x), mask)
	}
}
