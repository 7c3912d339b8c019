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

// Package cbor provides the CBOR primitives used by the binary tree bridge.
//
// It wraps github.com/fxamacker/cbor/v2 with a cached decode mode and a
// StreamDecoder that exposes array, map and tag headers one at a time, so
// callers can walk a CBOR document while keeping map entries in their
// encoded order. The upstream decoder only hands out Go maps, which lose
// that order.
//
// Typical use:
//
//	dec, err := cbor.NewStreamDecoder(data)
//	head, err := dec.PeekHead()
//	switch head.MajorType {
//	case cbor.CborTypeMap:
//	    count, indefinite, err := dec.DecodeMapHeader()
//	    ...
//	default:
//	    var v any
//	    _, _, err = dec.Decode(&v)
//	}
package cbor
