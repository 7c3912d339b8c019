// Copyright 2026 Blink Labs Software
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

package tree

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"
)

// scalarNode converts a scalar produced by a binary decoder into a Node
func scalarNode(v any) (Node, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case []byte:
		return String(string(x)), nil
	case int64:
		return Int(x), nil
	case uint64:
		return Number(strconv.FormatUint(x, 10)), nil
	case float32:
		return floatNode(float64(x)), nil
	case float64:
		return floatNode(x), nil
	case big.Int:
		return Number(x.String()), nil
	case *big.Int:
		if x == nil {
			return Null{}, nil
		}
		return Number(x.String()), nil
	case time.Time:
		return Int(x.Unix()), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

// Non-finite floats have no textual number form and are treated as null
func floatNode(v float64) Node {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null{}
	}
	return Number(strconv.FormatFloat(v, 'g', -1, 64))
}

// keyString converts a binary map key into an object key
func keyString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedKey, v)
}
