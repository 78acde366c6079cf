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

package launch_test

import (
	"fmt"

	"github.com/ajroetker/go-highway-act/hwy"
	"github.com/ajroetker/go-highway-act/hwy/contrib/launch"
)

func ExamplePartition() {
	for unit := range launch.NumUnits(5, 4) {
		b := launch.Partition(unit, 4, 5)
		fmt.Println(b.Start, b.Mask())
	}
	// Output:
	// 0 [true true true true]
	// 4 [true false false false]
}

func ExampleLauncher_Launch() {
	in := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	out := make([]float32, len(in))

	err := launch.New().Launch("square", len(in), 8, func(b launch.Block) {
		launch.Apply(b, in, out, func(x hwy.Vec[float32]) hwy.Vec[float32] {
			return hwy.Mul(x, x)
		})
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output: [1 4 9 16 25 36 49 64 81 100]
}

func ExampleLauncher_Launch_invalidWidth() {
	err := launch.New().Launch("square", 10, 0, func(launch.Block) {})
	fmt.Println(err)
	// Output: square: invalid block width: block_width=0
}
