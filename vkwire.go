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

// Package vkwire decodes social network API payloads into typed records.
//
// Raw bytes in one of the supported formats are bridged into a canonical
// tree (see package tree) and handed to the record decoders in package dto
// and the long poll decoder in package longpoll. A Decoder bundles the
// input format and the decoder configuration.
package vkwire

import (
	"fmt"
	"log/slog"

	"github.com/blinklabs-io/vkwire/dto"
	"github.com/blinklabs-io/vkwire/longpoll"
	"github.com/blinklabs-io/vkwire/tree"
)

// Format identifies the serialization of raw payloads
type Format = tree.Format

const (
	FormatJSON    = tree.FormatJSON
	FormatCBOR    = tree.FormatCBOR
	FormatMsgPack = tree.FormatMsgPack
)

// Decoder turns raw payloads into records. It is read-only after
// NewDecoder returns and may be shared between goroutines.
type Decoder struct {
	format       Format
	logger       *slog.Logger
	ignoredTags  []string
	maxDepth     int
	unwrap       bool
	dtoDecoder   *dto.Decoder
	eventDecoder *longpoll.Decoder
}

// NewDecoder returns a Decoder with the specified options. The default format is JSON
func NewDecoder(options ...DecoderOptionFunc) (*Decoder, error) {
	d := &Decoder{
		format:   FormatJSON,
		maxDepth: dto.DefaultMaxDepth,
	}
	// Apply provided options functions
	for _, option := range options {
		option(d)
	}
	switch d.format {
	case FormatJSON, FormatCBOR, FormatMsgPack:
	default:
		return nil, fmt.Errorf("%w: %d", tree.ErrUnknownFormat, int(d.format))
	}
	dtoOptions := []dto.DecoderOptionFunc{
		dto.WithMaxDepth(d.maxDepth),
	}
	eventOptions := []longpoll.DecoderOptionFunc{}
	if d.logger != nil {
		dtoOptions = append(dtoOptions, dto.WithLogger(d.logger))
		eventOptions = append(eventOptions, longpoll.WithLogger(d.logger))
	}
	if d.ignoredTags != nil {
		dtoOptions = append(dtoOptions, dto.WithIgnoredTags(d.ignoredTags...))
	}
	d.dtoDecoder = dto.NewDecoder(dtoOptions...)
	d.eventDecoder = longpoll.NewDecoder(eventOptions...)
	return d, nil
}

// Format returns the configured input format
func (d *Decoder) Format() Format {
	return d.format
}

// Parse bridges a raw payload into a tree. When response unwrapping is
// enabled, API error envelopes are returned as *APIError.
func (d *Decoder) Parse(data []byte) (tree.Node, error) {
	n, err := tree.Decode(d.format, data)
	if err != nil {
		return nil, err
	}
	if d.unwrap {
		return UnwrapResponse(n)
	}
	return n, nil
}

// Attachments decodes an attachment list
func (d *Decoder) Attachments(data []byte) (*dto.Attachments, error) {
	n, err := d.Parse(data)
	if err != nil {
		return nil, err
	}
	return d.dtoDecoder.DecodeAttachments(n), nil
}

// Post decodes a wall post
func (d *Decoder) Post(data []byte) (*dto.Post, error) {
	return decodeWith(d, data, d.dtoDecoder.DecodePost)
}

// Story decodes a story
func (d *Decoder) Story(data []byte) (*dto.Story, error) {
	return decodeWith(d, data, d.dtoDecoder.DecodeStory)
}

// Chat decodes a group chat with its members
func (d *Decoder) Chat(data []byte) (*dto.Chat, error) {
	return decodeWith(d, data, d.dtoDecoder.DecodeChat)
}

// User decodes a user profile
func (d *Decoder) User(data []byte) (*dto.User, error) {
	return decodeWith(d, data, d.dtoDecoder.DecodeUser)
}

// Community decodes a community
func (d *Decoder) Community(data []byte) (*dto.Community, error) {
	return decodeWith(d, data, d.dtoDecoder.DecodeCommunity)
}

// WallReply decodes a wall comment
func (d *Decoder) WallReply(data []byte) (*dto.WallReply, error) {
	return decodeWith(d, data, d.dtoDecoder.DecodeWallReply)
}

// LongpollEvent decodes a single long poll update. It returns (nil, nil)
// when the update carries no usable event.
func (d *Decoder) LongpollEvent(data []byte) (longpoll.Event, error) {
	return decodeWith(d, data, d.eventDecoder.Decode)
}

// LongpollResponse decodes a long poll server reply
func (d *Decoder) LongpollResponse(data []byte) (*longpoll.Response, error) {
	return decodeWith(d, data, d.eventDecoder.DecodeResponse)
}

func decodeWith[T any](d *Decoder, data []byte, decode func(tree.Node) (T, error)) (T, error) {
	var zero T
	n, err := d.Parse(data)
	if err != nil {
		return zero, err
	}
	return decode(n)
}
