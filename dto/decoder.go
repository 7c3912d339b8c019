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

package dto

import (
	"log/slog"
)

// DefaultMaxDepth bounds recursion through copy history, parent stories and
// attachments that embed posts
const DefaultMaxDepth = 16

// DefaultIgnoredTags lists attachment types that are dropped silently
// instead of being kept as NotSupported
var DefaultIgnoredTags = []string{
	"mini_app",
	"photos_list",
	"podcast",
	"textlive",
	"textpost_publish",
	"sticker_pack_preview",
	"situational_theme",
	"donut_link",
	"app_action",
	"widget",
}

// Decoder holds the configuration shared by the composite decoders
type Decoder struct {
	logger      *slog.Logger
	ignoredTags map[string]struct{}
	maxDepth    int
}

// DecoderOptionFunc is a type that represents functions that modify the Decoder config
type DecoderOptionFunc func(*Decoder)

// WithLogger specifies the logger used for dropped entries. If none is
// provided, slog.Default() is used at the time of logging
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithIgnoredTags replaces the set of attachment types that are dropped
// silently. It only applies to types with no decoder; known types always decode
func WithIgnoredTags(tags ...string) DecoderOptionFunc {
	return func(d *Decoder) {
		d.ignoredTags = make(map[string]struct{}, len(tags))
		for _, tag := range tags {
			d.ignoredTags[tag] = struct{}{}
		}
	}
}

// WithMaxDepth specifies how deep composite records may nest. Values below 1 are ignored
func WithMaxDepth(depth int) DecoderOptionFunc {
	return func(d *Decoder) {
		if depth > 0 {
			d.maxDepth = depth
		}
	}
}

// NewDecoder returns a Decoder with the given options applied
func NewDecoder(options ...DecoderOptionFunc) *Decoder {
	d := &Decoder{
		maxDepth: DefaultMaxDepth,
	}
	WithIgnoredTags(DefaultIgnoredTags...)(d)
	for _, option := range options {
		option(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

// Default returns the Decoder used by the package-level decode functions
func Default() *Decoder {
	return defaultDecoder
}

func (d *Decoder) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return slog.Default()
}

// IsIgnored reports whether an attachment type is dropped silently
func (d *Decoder) IsIgnored(tag string) bool {
	_, ok := d.ignoredTags[tag]
	return ok
}

// MaxDepth returns the configured nesting limit
func (d *Decoder) MaxDepth() int {
	return d.maxDepth
}

func (d *Decoder) checkDepth(depth int, record string) error {
	if depth > d.maxDepth {
		return &DecodeError{Record: record, Err: ErrMaxDepth}
	}
	return nil
}
