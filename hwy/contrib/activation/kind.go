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
	"fmt"
	"strings"

	"github.com/ajroetker/go-highway-act/hwy/contrib/launch"
)

// Kind selects an activation function.
type Kind int

const (
	KindTanh Kind = iota
	KindReLU
	KindSoftplus
	KindSoftsign
	KindSigmoid
	KindSiLU
	KindGELU
	KindSoftmax

	numKinds
)

var kindNames = [numKinds]string{
	KindTanh:     "tanh",
	KindReLU:     "relu",
	KindSoftplus: "softplus",
	KindSoftsign: "softsign",
	KindSigmoid:  "sigmoid",
	KindSiLU:     "silu",
	KindGELU:     "gelu",
	KindSoftmax:  "softmax",
}

// Kinds returns every activation kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// String returns the lower-case name of the kind, e.g. "gelu".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a kind name case-insensitively. "swish" is accepted as
// an alias of "silu".
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "swish" {
		return KindSiLU, nil
	}
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, launch.NewConfigError("ParseKind", "kind", name, launch.ErrUnknownKind)
}
