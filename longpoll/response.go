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

package longpoll

import (
	"fmt"

	"github.com/blinklabs-io/vkwire/tree"
)

// Response is one long poll server reply
type Response struct {
	// TS is the cursor for the next request
	TS  string
	PTS int64
	// Failed is non-zero when the server rejected the request; see the Failed* constants
	Failed int
	Events []Event
}

// DecodeResponse decodes a reply using the default Decoder
func DecodeResponse(n tree.Node) (*Response, error) {
	return defaultDecoder.DecodeResponse(n)
}

// DecodeResponse decodes a {"ts", "pts", "updates", "failed"} reply. Updates
// that fail to decode or carry no event are skipped; the reply as a whole
// only fails when it is not an object.
func (d *Decoder) DecodeResponse(n tree.Node) (*Response, error) {
	obj, ok := tree.AsObject(n)
	if !ok {
		return nil, ErrNotObject
	}
	ret := &Response{
		TS:     tree.OptString(obj, "ts", ""),
		PTS:    tree.GetFirstLong(obj, 0, "pts", "new_pts"),
		Failed: tree.OptInt(obj, "failed", 0),
	}
	updates, ok := tree.HasArray(obj, "updates")
	if !ok {
		return ret, nil
	}
	ret.Events = make([]Event, 0, len(updates))
	for i, update := range updates {
		event, err := d.decodeContained(update)
		if err != nil {
			d.log().Debug(
				"skipping long poll update",
				"index", i,
				"error", err,
			)
			continue
		}
		if event == nil {
			continue
		}
		ret.Events = append(ret.Events, event)
	}
	return ret, nil
}

func (d *Decoder) decodeContained(n tree.Node) (ret Event, err error) {
	defer func() {
		if r := recover(); r != nil {
			ret = nil
			err = fmt.Errorf("%w: %v", ErrDecodePanic, r)
		}
	}()
	return d.Decode(n)
}
