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

import (
	"github.com/x448/float16"

	"github.com/ajroetker/go-highway-act/hwy/contrib/launch"
	"github.com/ajroetker/go-highway-act/hwy/contrib/nn"
)

// EvaluateFloat16 is Evaluate for IEEE 754 half-precision buffers.
//
// Each unit widens its valid range to float32, evaluates it with the
// float32 vector functions and rounds the results back to half precision.
// The normalizing softmax widens the whole input, since an axis may span
// several blocks.
func EvaluateFloat16(l *launch.Launcher, cfg Config, input, output []float16.Float16) error {
	name := cfg.kernelName() + "_f16"
	if err := cfg.validate(len(input), len(output)); err != nil {
		return l.Reject(name, err)
	}
	n := len(input)

	if cfg.Kind == KindSoftmax && !cfg.LegacySoftmax {
		buf := make([]float32, n)
		widen(buf, input)
		if err := nn.SoftmaxAxis(l, buf, buf, cfg.axisLength(n)); err != nil {
			return err
		}
		narrow(output, buf)
		return nil
	}

	fn := VecFunc[float32](cfg.Kind, cfg.Approximate, cfg.axisLength(n))
	return l.Launch(name, n, cfg.BlockWidth, func(b launch.Block) {
		valid := b.ValidLanes()
		if valid == 0 {
			return
		}
		buf := make([]float32, valid)
		widen(buf, input[b.Start:b.Start+valid])
		launch.Apply(launch.Partition(0, valid, valid), buf, buf, fn)
		narrow(output[b.Start:b.Start+valid], buf)
	})
}

func widen(dst []float32, src []float16.Float16) {
	for i, h := range src {
		dst[i] = h.Float32()
	}
}

func narrow(dst []float16.Float16, src []float32) {
	for i, f := range src {
		dst[i] = float16.Fromfloat32(f)
	}
}
