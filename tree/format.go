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
	"strings"
)

// Format identifies a wire encoding
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatCBOR
	FormatMsgPack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	case FormatMsgPack:
		return "msgpack"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat maps a format name to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	case "msgpack", "messagepack", "mp":
		return FormatMsgPack, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Decode bridges data in the given format into a tree
func Decode(format Format, data []byte) (Node, error) {
	switch format {
	case FormatJSON:
		return FromJSON(data)
	case FormatCBOR:
		return FromCBOR(data)
	case FormatMsgPack:
		return FromMsgPack(data)
	}
	return nil, &FormatError{Format: format, Err: ErrUnknownFormat}
}
