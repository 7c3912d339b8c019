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

package vkwire

import (
	"log/slog"
)

// DecoderOptionFunc is a type that represents functions that modify the Decoder config
type DecoderOptionFunc func(*Decoder)

// WithFormat specifies the serialization of the payloads passed to the Decoder
func WithFormat(format Format) DecoderOptionFunc {
	return func(d *Decoder) {
		d.format = format
	}
}

// WithLogger specifies the logger used for dropped entries and skipped
// updates. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithIgnoredTags replaces the set of attachment types that are dropped
// silently instead of being kept as NotSupported. Types with a decoder are
// never dropped
func WithIgnoredTags(tags ...string) DecoderOptionFunc {
	return func(d *Decoder) {
		d.ignoredTags = append([]string{}, tags...)
	}
}

// WithMaxDepth specifies how deep reposts, parent stories and embedded
// posts may nest
func WithMaxDepth(depth int) DecoderOptionFunc {
	return func(d *Decoder) {
		d.maxDepth = depth
	}
}

// WithUnwrapResponse specifies whether payloads are full API replies of the
// form {"response": ...} or {"error": ...}. This is disabled by default
func WithUnwrapResponse(unwrap bool) DecoderOptionFunc {
	return func(d *Decoder) {
		d.unwrap = unwrap
	}
}
