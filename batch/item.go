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

package batch

import (
	"time"
)

// Item is a single raw document moving through a Pool
type Item struct {
	// Index is the position of the item in the submitted batch
	Index int
	// Source names where Data came from, for logging
	Source string
	Data   []byte
	Result any
	Err    error

	decodeDuration time.Duration
	decoded        bool
}

// NewItems wraps raw documents into items numbered in order
func NewItems(sources []string, data [][]byte) []*Item {
	ret := make([]*Item, len(data))
	for i := range data {
		ret[i] = &Item{
			Index: i,
			Data:  data[i],
		}
		if i < len(sources) {
			ret[i].Source = sources[i]
		}
	}
	return ret
}

// DecodeDuration returns how long the decode function ran for this item
func (i *Item) DecodeDuration() time.Duration {
	return i.decodeDuration
}

// IsDecoded reports whether the item was processed without error
func (i *Item) IsDecoded() bool {
	return i.decoded && i.Err == nil
}
