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

// Package activation evaluates neural network activation functions over
// flat buffers using block-partitioned masked kernels.
//
// # Supported Kinds
//
//   - KindTanh - tanh(x)
//   - KindReLU - max(0, x)
//   - KindSoftplus - log(1 + e^x)
//   - KindSoftsign - x / (|x| + 1)
//   - KindSigmoid - 1 / (1 + e^-x)
//   - KindSiLU - x * sigmoid(x), also known as Swish
//   - KindGELU - exact erf form, or the tanh approximation with Config.Approximate
//   - KindSoftmax - normalized per axis, or the legacy per-lane formula with
//     Config.LegacySoftmax
//
// Evaluate is the entry point: it validates a Config, splits the buffer into
// units of Config.BlockWidth elements and runs one masked kernel per unit
// through a launch.Launcher. The per-kind helpers (ReLU, GELU, ...) run the
// same vector functions over a whole slice without a launcher.
//
// Non-finite inputs are not errors: NaN propagates and overflow saturates
// to ±Inf or to the function's limit.
//
// # Example Usage
//
//	cfg := activation.DefaultConfig(activation.KindGELU)
//	cfg.Approximate = true
//	if err := activation.Evaluate(l, cfg, hidden, hidden); err != nil {
//	    return err
//	}
package activation
