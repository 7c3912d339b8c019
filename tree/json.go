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

	"github.com/go-faster/jx"
)

// FromJSON bridges a JSON document into a tree. Object member order is kept.
func FromJSON(data []byte) (Node, error) {
	d := jx.DecodeBytes(data)
	if d.Next() == jx.Invalid {
		return nil, &FormatError{Format: FormatJSON, Err: ErrEmptyInput}
	}
	n, err := readJSON(d, 0)
	if err != nil {
		return nil, &FormatError{Format: FormatJSON, Err: err}
	}
	if d.Next() != jx.Invalid {
		return nil, &FormatError{Format: FormatJSON, Err: ErrTrailingData}
	}
	return n, nil
}

func readJSON(d *jx.Decoder, depth int) (Node, error) {
	if depth > MaxNesting {
		return nil, ErrTooDeep
	}
	switch tt := d.Next(); tt {
	case jx.Null:
		if err := d.Null(); err != nil {
			return nil, err
		}
		return Null{}, nil
	case jx.Bool:
		v, err := d.Bool()
		if err != nil {
			return nil, err
		}
		return Bool(v), nil
	case jx.Number:
		// The returned Num references the input buffer, so copy it out
		num, err := d.Num()
		if err != nil {
			return nil, err
		}
		return Number(num.String()), nil
	case jx.String:
		v, err := d.Str()
		if err != nil {
			return nil, err
		}
		return String(v), nil
	case jx.Array:
		arr := Array{}
		err := d.Arr(func(d *jx.Decoder) error {
			item, err := readJSON(d, depth+1)
			if err != nil {
				return err
			}
			arr = append(arr, item)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return arr, nil
	case jx.Object:
		obj := newObject()
		err := d.Obj(func(d *jx.Decoder, key string) error {
			value, err := readJSON(d, depth+1)
			if err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			obj.set(key, value)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %s", tt)
	}
}
