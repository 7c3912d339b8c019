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

// ChatMember is a participant of a group chat: a *User or a *Community
type ChatMember interface {
	// PeerID returns the owner-style id: positive for users, negative for communities
	PeerID() int64
	isChatMember()
}

func (u *User) PeerID() int64 { return u.ID }
func (*User) isChatMember()   {}

func (c *Community) PeerID() int64 { return -absID(c.ID) }
func (*Community) isChatMember()   {}

// Chat is a group conversation with its participants
type Chat struct {
	ID             int64
	Type           string
	Title          string
	AdminID        int64
	MembersCount   int
	Photo50        string
	Photo100       string
	Photo200       string
	IsDefaultPhoto bool
	Kicked         bool
	Left           bool
	Users          []ChatMember
}

// NewChatFromNode decodes a chat using the default Decoder
func NewChatFromNode(n tree.Node) (*Chat, error) {
	return defaultDecoder.DecodeChat(n)
}

// DecodeChat decodes a chat. The "users" list may mix bare ids, which
// become user stubs, with "profile" and "group" objects.
func (d *Decoder) DecodeChat(n tree.Node) (*Chat, error) {
	return d.decodeChat(n, 0)
}

func (d *Decoder) decodeChat(n tree.Node, depth int) (*Chat, error) {
	if err := d.checkDepth(depth, "chat"); err != nil {
		return nil, err
	}
	obj, err := requireObject(n, "chat")
	if err != nil {
		return nil, err
	}
	ret := &Chat{
		ID:             tree.GetFirstLong(obj, 0, "id", "chat_id"),
		Type:           tree.OptString(obj, "type", ""),
		Title:          tree.OptString(obj, "title", ""),
		AdminID:        tree.OptLong(obj, "admin_id", 0),
		MembersCount:   tree.OptInt(obj, "members_count", 0),
		Photo50:        tree.OptString(obj, "photo_50", ""),
		Photo100:       tree.OptString(obj, "photo_100", ""),
		Photo200:       tree.OptString(obj, "photo_200", ""),
		IsDefaultPhoto: tree.OptBool(obj, "is_default_photo"),
		Kicked:         tree.OptBool(obj, "kicked"),
		Left:           tree.OptBool(obj, "left"),
	}
	if users, ok := tree.HasArray(obj, "users"); ok {
		ret.Users = d.decodeChatMembers(users, depth)
	}
	return ret, nil
}

func (d *Decoder) decodeChatMembers(users tree.Array, depth int) []ChatMember {
	ret := make([]ChatMember, 0, len(users))
	for i, item := range users {
		member, err := decodeEntry(func() (ChatMember, error) {
			return d.decodeChatMember(item, depth)
		})
		if err != nil {
			d.log().Debug(
				"dropping chat member",
				"index", i,
				"error", err,
			)
			continue
		}
		if member == nil {
			continue
		}
		ret = append(ret, member)
	}
	return ret
}

func (d *Decoder) decodeChatMember(n tree.Node, depth int) (ChatMember, error) {
	switch v := n.(type) {
	case tree.Number, tree.String:
		// A bare id; only the id is known
		id := tree.OptLongAt(tree.Array{v}, 0, 0)
		if id == 0 {
			return nil, &DecodeError{Record: "chat member", Err: ErrNotObject}
		}
		return &User{ID: id}, nil
	case *tree.Object:
		switch tree.OptString(v, "type", "") {
		case "profile":
			user, err := d.decodeUser(v, depth+1)
			if err != nil {
				return nil, err
			}
			return user, nil
		case "group":
			community, err := d.decodeCommunity(v, depth+1)
			if err != nil {
				return nil, err
			}
			return community, nil
		}
		return nil, nil
	}
	return nil, &DecodeError{Record: "chat member", Err: ErrNotObject}
}
