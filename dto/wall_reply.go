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

// WallReply is a "wall_reply" attachment: a comment under a wall post
type WallReply struct {
	ID             int
	OwnerID        int64
	FromID         int64
	PostID         int
	Date           int64
	Text           string
	Likes          int
	UserLikes      bool
	CanLike        bool
	ReplyToUser    int64
	ReplyToComment int
	ParentsStack   []int
	Attachments    *Attachments
}

func (*WallReply) AttachmentType() AttachmentType { return AttachmentTypeWallReply }
func (*WallReply) isAttachment()                  {}

// NewWallReplyFromNode decodes a wall reply using the default Decoder
func NewWallReplyFromNode(n tree.Node) (*WallReply, error) {
	return defaultDecoder.DecodeWallReply(n)
}

// DecodeWallReply decodes a wall reply with its attachments
func (d *Decoder) DecodeWallReply(n tree.Node) (*WallReply, error) {
	return d.decodeWallReply(n, 0)
}

func (d *Decoder) decodeWallReplyAttachment(n tree.Node, depth int) (Attachment, error) {
	ret, err := d.decodeWallReply(n, depth+1)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (d *Decoder) decodeWallReply(n tree.Node, depth int) (*WallReply, error) {
	if err := d.checkDepth(depth, "wall reply"); err != nil {
		return nil, err
	}
	obj, err := requireObject(n, "wall reply")
	if err != nil {
		return nil, err
	}
	ret := &WallReply{
		ID:             tree.OptInt(obj, "id", 0),
		OwnerID:        tree.OptLong(obj, "owner_id", 0),
		FromID:         tree.OptLong(obj, "from_id", 0),
		PostID:         tree.OptInt(obj, "post_id", 0),
		Date:           tree.OptLong(obj, "date", 0),
		Text:           tree.OptString(obj, "text", ""),
		Likes:          optCount(obj, "likes"),
		UserLikes:      optNestedBool(obj, "likes", "user_likes"),
		CanLike:        optNestedBool(obj, "likes", "can_like"),
		ReplyToUser:    tree.OptLong(obj, "reply_to_user", 0),
		ReplyToComment: tree.OptInt(obj, "reply_to_comment", 0),
		ParentsStack:   tree.OptIntArray(obj, "parents_stack", nil),
	}
	if attachments, ok := tree.HasArray(obj, "attachments"); ok {
		ret.Attachments = d.decodeAttachments(attachments, depth)
	}
	return ret, nil
}
