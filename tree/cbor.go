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
	"github.com/blinklabs-io/vkwire/cbor"
)

// FromCBOR bridges a CBOR item into a tree. Map entry order is kept, tags
// other than bignums are transparent, integer map keys become their decimal
// text and byte strings become String.
func FromCBOR(data []byte) (Node, error) {
	if len(data) == 0 {
		return nil, &FormatError{Format: FormatCBOR, Err: ErrEmptyInput}
	}
	dec, err := cbor.NewStreamDecoder(data)
	if err != nil {
		return nil, &FormatError{Format: FormatCBOR, Err: err}
	}
	n, err := readCBOR(dec, 0)
	if err != nil {
		return nil, &FormatError{Format: FormatCBOR, Err: err}
	}
	if !dec.EOF() {
		return nil, &FormatError{Format: FormatCBOR, Err: ErrTrailingData}
	}
	return n, nil
}

func readCBOR(dec *cbor.StreamDecoder, depth int) (Node, error) {
	if depth > MaxNesting {
		return nil, ErrTooDeep
	}
	head, err := dec.PeekHead()
	if err != nil {
		return nil, err
	}
	switch head.MajorType {
	case cbor.CborTypeArray:
		count, indefinite, err := dec.DecodeArrayHeader()
		if err != nil {
			return nil, err
		}
		arr := make(Array, 0, max(count, 0))
		for i := 0; indefinite || i < count; i++ {
			if indefinite && dec.AtBreak() {
				if err := dec.ConsumeBreak(); err != nil {
					return nil, err
				}
				break
			}
			item, err := readCBOR(dec, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, item)
		}
		return arr, nil
	case cbor.CborTypeMap:
		count, indefinite, err := dec.DecodeMapHeader()
		if err != nil {
			return nil, err
		}
		obj := newObject()
		for i := 0; indefinite || i < count; i++ {
			if indefinite && dec.AtBreak() {
				if err := dec.ConsumeBreak(); err != nil {
					return nil, err
				}
				break
			}
			var rawKey any
			if _, _, err := dec.Decode(&rawKey); err != nil {
				return nil, err
			}
			key, err := keyString(rawKey)
			if err != nil {
				return nil, err
			}
			value, err := readCBOR(dec, depth+1)
			if err != nil {
				return nil, err
			}
			obj.set(key, value)
		}
		return obj, nil
	case cbor.CborTypeTag:
		if head.Argument != cbor.CborTagPositiveBignum &&
			head.Argument != cbor.CborTagNegativeBignum {
			if _, err := dec.DecodeTagHeader(); err != nil {
				return nil, err
			}
			return readCBOR(dec, depth+1)
		}
	}
	var value any
	if _, _, err := dec.Decode(&value); err != nil {
		return nil, err
	}
	return scalarNode(value)
}
