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

// PostType classifies a wall post
type PostType string

const (
	PostTypePost     PostType = "post"
	PostTypeCopy     PostType = "copy"
	PostTypeReply    PostType = "reply"
	PostTypePostpone PostType = "postpone"
	PostTypeSuggest  PostType = "suggest"
	PostTypeDonut    PostType = "donut"
)

// ParsePostType maps a post_type tag to a PostType. Unknown or empty tags are plain posts.
func ParsePostType(tag string) PostType {
	switch PostType(tag) {
	case PostTypeCopy, PostTypeReply, PostTypePostpone, PostTypeSuggest, PostTypeDonut:
		return PostType(tag)
	}
	return PostTypePost
}

// Copyright is the source attribution of a post
type Copyright struct {
	Name string
	Link string
}

// PostComments summarizes the comment thread of a post
type PostComments struct {
	Count         int
	CanPost       bool
	GroupsCanPost bool
	CanClose      bool
	CanOpen       bool
}

// PostSource describes how a post was created
type PostSource struct {
	Type     string
	Platform string
	Data     string
	URL      string
}

// Post is a wall post. Posts embed their reposted ancestors in
// CopyHistory, which is nil when the post is not a repost.
type Post struct {
	ID           int
	OwnerID      int64
	FromID       int64
	Date         int64
	Text         string
	PostType     PostType
	Copyright    *Copyright
	ReplyOwnerID int64
	ReplyPostID  int
	FriendsOnly  bool
	Comments     *PostComments
	LikesCount   int
	UserLikes    bool
	CanLike      bool
	CanPublish   bool
	RepostsCount int
	UserReposted bool
	Views        int
	Attachments  *Attachments
	IsDonut      bool
	CanEdit      bool
	IsFavorite   bool
	SignerID     int64
	CreatedBy    int64
	CanPin       bool
	IsPinned     bool
	CopyHistory  []*Post
	PostSource   *PostSource
}

func (*Post) AttachmentType() AttachmentType { return AttachmentTypePost }
func (*Post) isAttachment()                  {}

// NewPostFromNode decodes a post using the default Decoder
func NewPostFromNode(n tree.Node) (*Post, error) {
	return defaultDecoder.DecodePost(n)
}

// DecodePost decodes a post with its copy history and attachments
func (d *Decoder) DecodePost(n tree.Node) (*Post, error) {
	return d.decodePost(n, 0)
}

func (d *Decoder) decodePostAttachment(n tree.Node, depth int) (Attachment, error) {
	ret, err := d.decodePost(n, depth+1)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (d *Decoder) decodePost(n tree.Node, depth int) (*Post, error) {
	if err := d.checkDepth(depth, "post"); err != nil {
		return nil, err
	}
	obj, err := requireObject(n, "post")
	if err != nil {
		return nil, err
	}
	ret := &Post{
		ID:           tree.GetFirstInt(obj, 0, "post_id", "id"),
		OwnerID:      tree.GetFirstLong(obj, 0, "owner_id", "to_id", "source_id"),
		FromID:       tree.OptLong(obj, "from_id", 0),
		Date:         tree.OptLong(obj, "date", 0),
		Text:         tree.OptString(obj, "text", ""),
		PostType:     ParsePostType(tree.OptString(obj, "post_type", "")),
		ReplyOwnerID: tree.OptLong(obj, "reply_owner_id", 0),
		ReplyPostID:  tree.OptInt(obj, "reply_post_id", 0),
		FriendsOnly:  tree.OptBool(obj, "friends_only"),
		IsDonut:      optNestedBool(obj, "donut", "is_donut"),
		CanEdit:      tree.OptBool(obj, "can_edit"),
		IsFavorite:   tree.OptBool(obj, "is_favorite"),
		SignerID:     tree.OptLong(obj, "signer_id", 0),
		CreatedBy:    tree.OptLong(obj, "created_by", 0),
		CanPin:       tree.OptInt(obj, "can_pin", 0) == 1,
		IsPinned:     tree.OptBool(obj, "is_pinned"),
	}
	if ret.IsDonut {
		ret.PostType = PostTypeDonut
	}
	if copyright, ok := tree.HasObject(obj, "copyright"); ok {
		if name := tree.OptString(copyright, "name", ""); name != "" {
			ret.Copyright = &Copyright{
				Name: name,
				Link: tree.OptString(copyright, "link", ""),
			}
		}
	}
	if comments, ok := tree.HasObject(obj, "comments"); ok {
		ret.Comments = &PostComments{
			Count:         tree.OptInt(comments, "count", 0),
			CanPost:       tree.OptBool(comments, "can_post"),
			GroupsCanPost: tree.OptBool(comments, "groups_can_post"),
			CanClose:      tree.OptBool(comments, "can_close"),
			CanOpen:       tree.OptBool(comments, "can_open"),
		}
	}
	if likes, ok := tree.HasObject(obj, "likes"); ok {
		ret.LikesCount = tree.OptInt(likes, "count", 0)
		ret.UserLikes = tree.OptBool(likes, "user_likes")
		ret.CanLike = tree.OptBool(likes, "can_like")
		ret.CanPublish = tree.OptBool(likes, "can_publish")
	}
	if reposts, ok := tree.HasObject(obj, "reposts"); ok {
		ret.RepostsCount = tree.OptInt(reposts, "count", 0)
		ret.UserReposted = tree.OptBool(reposts, "user_reposted")
	}
	ret.Views = optCount(obj, "views")
	if attachments, ok := tree.HasArray(obj, "attachments"); ok {
		ret.Attachments = d.decodeAttachments(attachments, depth)
	}
	if history, ok := tree.HasArray(obj, "copy_history"); ok {
		ret.CopyHistory = d.decodeCopyHistory(history, depth)
	}
	if source, ok := tree.HasObject(obj, "post_source"); ok {
		ret.PostSource = &PostSource{
			Type:     tree.OptString(source, "type", ""),
			Platform: tree.OptString(source, "platform", ""),
			Data:     tree.OptString(source, "data", ""),
			URL:      tree.OptString(source, "url", ""),
		}
	}
	normalizePost(ret)
	return ret, nil
}

// decodeCopyHistory decodes reposted ancestors one by one; an ancestor that
// fails is logged and skipped
func (d *Decoder) decodeCopyHistory(history tree.Array, depth int) []*Post {
	ret := make([]*Post, 0, len(history))
	for i, item := range history {
		post, err := decodeEntry(func() (*Post, error) {
			return d.decodePost(item, depth+1)
		})
		if err != nil {
			d.log().Debug(
				"dropping copy history entry",
				"index", i,
				"error", err,
			)
			continue
		}
		ret = append(ret, post)
	}
	return ret
}

// normalizePost fills identifiers the server leaves out. Removed reposts
// come back with from_id 0, and newsfeed search replies omit reply_owner_id
// and reply_post_id.
func normalizePost(p *Post) {
	if p.FromID == 0 {
		p.FromID = p.OwnerID
	}
	if p.ReplyOwnerID == 0 {
		p.ReplyOwnerID = p.OwnerID
	}
	if p.ReplyPostID == 0 {
		p.ReplyPostID = p.ID
	}
}
