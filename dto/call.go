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
	"github.com/blinklabs-io/vkwire/tree"
)

// Call is a "call" attachment describing a finished or missed call
type Call struct {
	InitiatorID int64
	ReceiverID  int64
	State       string
	Time        int64
	Duration    int
	Video       bool
}

func (*Call) AttachmentType() AttachmentType { return AttachmentTypeCall }
func (*Call) isAttachment()                  {}

// NewCallFromNode decodes a call object
func NewCallFromNode(n tree.Node) (*Call, error) {
	obj, err := requireObject(n, "call")
	if err != nil {
		return nil, err
	}
	return &Call{
		InitiatorID: tree.OptLong(obj, "initiator_id", 0),
		ReceiverID:  tree.OptLong(obj, "receiver_id", 0),
		State:       tree.OptString(obj, "state", ""),
		Time:        tree.OptLong(obj, "time", 0),
		Duration:    tree.OptInt(obj, "duration", 0),
		Video:       tree.OptBool(obj, "video"),
	}, nil
}

// Gift is a "gift" attachment
type Gift struct {
	ID                int
	Thumb256          string
	Thumb96           string
	Thumb48           string
	StickersProductID int
}

func (*Gift) AttachmentType() AttachmentType { return AttachmentTypeGift }
func (*Gift) isAttachment()                  {}

// NewGiftFromNode decodes a gift object
func NewGiftFromNode(n tree.Node) (*Gift, error) {
	obj, err := requireObject(n, "gift")
	if err != nil {
		return nil, err
	}
	return &Gift{
		ID:                tree.OptInt(obj, "id", 0),
		Thumb256:          tree.OptString(obj, "thumb_256", ""),
		Thumb96:           tree.OptString(obj, "thumb_96", ""),
		Thumb48:           tree.OptString(obj, "thumb_48", ""),
		StickersProductID: tree.OptInt(obj, "stickers_product_id", 0),
	}, nil
}

// Event is an "event" attachment pointing at a community event
type Event struct {
	ID           int64
	ButtonText   string
	Text         string
	Address      string
	Time         int64
	MemberStatus int
	IsFavorite   bool
	Friends      []int64
}

func (*Event) AttachmentType() AttachmentType { return AttachmentTypeEvent }
func (*Event) isAttachment()                  {}

// NewEventFromNode decodes an event object
func NewEventFromNode(n tree.Node) (*Event, error) {
	obj, err := requireObject(n, "event")
	if err != nil {
		return nil, err
	}
	return &Event{
		ID:           tree.OptLong(obj, "id", 0),
		ButtonText:   tree.OptString(obj, "button_text", ""),
		Text:         tree.OptString(obj, "text", ""),
		Address:      tree.OptString(obj, "address", ""),
		Time:         tree.OptLong(obj, "time", 0),
		MemberStatus: tree.OptInt(obj, "member_status", 0),
		IsFavorite:   tree.OptBool(obj, "is_favorite"),
		Friends:      tree.OptLongArray(obj, "friends", nil),
	}, nil
}
