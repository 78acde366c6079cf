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

// Package launch runs block kernels over flat buffers.
//
// A launch over N elements with block width W creates ceil(N/W) units of
// work. Unit u owns the half-open range [u*W, u*W+W) and a lane mask that is
// true exactly for the lanes whose global index is below N. Units are
// independent: they share no state and write disjoint ranges, so they may
// run in any order and in parallel without synchronization.
//
// The three pieces are:
//
//   - Partition / Block: the range and lane mask owned by one unit.
//   - LoadLane, StoreLane, LoadVec, StoreVec: masked I/O that never touches
//     an index outside [0, N) or outside the unit's own range.
//   - Launcher.Launch: the dispatch loop that invokes a kernel once per unit,
//     serially or on a workerpool.Pool.
//
// Example:
//
//	l := launch.New(launch.WithPool(pool))
//	err := l.Launch("square", len(in), 1024, func(b launch.Block) {
//	    launch.Apply(b, in, out, func(x hwy.Vec[float32]) hwy.Vec[float32] {
//	        return hwy.Mul(x, x)
//	    })
//	})
package launch
