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

package main

import (
	"sort"
	"strings"

	"github.com/blinklabs-io/vkwire"
)

type subcommandFunc func(d *vkwire.Decoder, data []byte) (any, error)

var subcommands = map[string]subcommandFunc{
	"dump": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.Parse(data)
	},
	"attachments": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.Attachments(data)
	},
	"post": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.Post(data)
	},
	"story": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.Story(data)
	},
	"chat": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.Chat(data)
	},
	"user": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.User(data)
	},
	"community": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.Community(data)
	},
	"wall-reply": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.WallReply(data)
	},
	"event": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.LongpollEvent(data)
	},
	"longpoll": func(d *vkwire.Decoder, data []byte) (any, error) {
		return d.LongpollResponse(data)
	},
}

func subcommandList() string {
	names := make([]string, 0, len(subcommands))
	for name := range subcommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
