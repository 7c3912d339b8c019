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
	"bytes"
	"errors"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Declared lengths are only a capacity hint; a hostile header must not
// force a large allocation before any element is read
const maxPrealloc = 1024

// FromMsgPack bridges a MessagePack value into a tree, with the same
// normalization rules as FromCBOR
func FromMsgPack(data []byte) (Node, error) {
	if len(data) == 0 {
		return nil, &FormatError{Format: FormatMsgPack, Err: ErrEmptyInput}
	}
	r := bytes.NewReader(data)
	dec := msgpack.NewDecoder(r)
	n, err := readMsgPack(dec, 0)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &FormatError{Format: FormatMsgPack, Err: err}
	}
	if r.Len() > 0 {
		return nil, &FormatError{Format: FormatMsgPack, Err: ErrTrailingData}
	}
	return n, nil
}

func isMsgPackMap(c byte) bool {
	return msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32
}

func isMsgPackArray(c byte) bool {
	return msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32
}

func readMsgPack(dec *msgpack.Decoder, depth int) (Node, error) {
	if depth > MaxNesting {
		return nil, ErrTooDeep
	}
	c, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}
	switch {
	case isMsgPackArray(c):
		count, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return Null{}, nil
		}
		arr := make(Array, 0, min(count, maxPrealloc))
		for i := 0; i < count; i++ {
			item, err := readMsgPack(dec, depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, item)
		}
		return arr, nil
	case isMsgPackMap(c):
		count, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		if count < 0 {
			return Null{}, nil
		}
		obj := newObject()
		for i := 0; i < count; i++ {
			rawKey, err := dec.DecodeInterfaceLoose()
			if err != nil {
				return nil, err
			}
			key, err := keyString(rawKey)
			if err != nil {
				return nil, err
			}
			value, err := readMsgPack(dec, depth+1)
			if err != nil {
				return nil, err
			}
			obj.set(key, value)
		}
		return obj, nil
	}
	value, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, err
	}
	return scalarNode(value)
}
