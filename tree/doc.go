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

// Package tree holds the canonical in-memory form of a server response.
//
// Every wire format (JSON, CBOR, MessagePack) is bridged into a tree of
// Node values by FromJSON, FromCBOR or FromMsgPack before any record decoder
// runs, so the decoders in dto and longpoll never see format-specific types.
//
// The accessors in this package (OptString, OptInt, GetFirstLong, HasObject,
// ParseArray, Opt, ...) are total: they accept nil nodes, missing keys and
// mismatched types, and fall back to the caller's default instead of
// failing. A malformed field degrades to "absent" and never aborts a decode.
package tree
