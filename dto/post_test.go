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

package dto_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/blinklabs-io/vkwire/dto"
	"github.com/blinklabs-io/vkwire/internal/test"
	"github.com/blinklabs-io/vkwire/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePostNormalization(t *testing.T) {
	testDefs := []struct {
		name         string
		json         string
		fromID       int64
		replyOwnerID int64
		replyPostID  int
	}{
		{
			name:         "absent",
			json:         `{"id": 1, "owner_id": 5}`,
			fromID:       5,
			replyOwnerID: 5,
			replyPostID:  1,
		},
		{
			name:         "explicit zero",
			json:         `{"id": 1, "owner_id": 5, "from_id": 0, "reply_owner_id": 0, "reply_post_id": 0}`,
			fromID:       5,
			replyOwnerID: 5,
			replyPostID:  1,
		},
		{
			name:         "present",
			json:         `{"id": 1, "owner_id": 5, "from_id": 6, "reply_owner_id": 7, "reply_post_id": 8}`,
			fromID:       6,
			replyOwnerID: 7,
			replyPostID:  8,
		},
		{
			name:         "search reply ids",
			json:         `{"post_id": 3, "to_id": -20}`,
			fromID:       -20,
			replyOwnerID: -20,
			replyPostID:  3,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			post, err := dto.NewPostFromNode(test.MustJSON(testDef.json))
			require.NoError(t, err)
			assert.Equal(t, testDef.fromID, post.FromID)
			assert.Equal(t, testDef.replyOwnerID, post.ReplyOwnerID)
			assert.Equal(t, testDef.replyPostID, post.ReplyPostID)
		})
	}
}

func TestDecodePostFields(t *testing.T) {
	post, err := dto.NewPostFromNode(test.MustJSON(`{
		"id": 11,
		"source_id": -1,
		"date": 1700000000,
		"text": "hello",
		"post_type": "copy",
		"copyright": {"name": "origin", "link": "https://example.com"},
		"comments": {"count": 4, "can_post": 1},
		"likes": {"count": 10, "user_likes": 1, "can_like": 1, "can_publish": 0},
		"reposts": {"count": 2, "user_reposted": 0},
		"views": {"count": 300},
		"can_pin": 1,
		"is_pinned": true,
		"post_source": {"type": "api", "platform": "android"},
		"attachments": [{"type": "photo", "photo": {"id": 1}}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, 11, post.ID)
	assert.Equal(t, int64(-1), post.OwnerID)
	assert.Equal(t, int64(1700000000), post.Date)
	assert.Equal(t, dto.PostTypeCopy, post.PostType)
	assert.Equal(t, &dto.Copyright{Name: "origin", Link: "https://example.com"}, post.Copyright)
	require.NotNil(t, post.Comments)
	assert.Equal(t, 4, post.Comments.Count)
	assert.True(t, post.Comments.CanPost)
	assert.Equal(t, 10, post.LikesCount)
	assert.True(t, post.UserLikes)
	assert.True(t, post.CanLike)
	assert.False(t, post.CanPublish)
	assert.Equal(t, 2, post.RepostsCount)
	assert.Equal(t, 300, post.Views)
	assert.True(t, post.CanPin)
	assert.True(t, post.IsPinned)
	assert.Equal(t, &dto.PostSource{Type: "api", Platform: "android"}, post.PostSource)
	assert.Equal(t, 1, post.Attachments.Len())
	assert.Nil(t, post.CopyHistory)
}

func TestDecodePostCopyrightWithoutName(t *testing.T) {
	post, err := dto.NewPostFromNode(test.MustJSON(`{"id": 1, "copyright": {"link": "x"}}`))
	require.NoError(t, err)
	assert.Nil(t, post.Copyright)
}

func TestDecodePostType(t *testing.T) {
	testDefs := []struct {
		json     string
		expected dto.PostType
	}{
		{json: `{"id": 1}`, expected: dto.PostTypePost},
		{json: `{"id": 1, "post_type": "reply"}`, expected: dto.PostTypeReply},
		{json: `{"id": 1, "post_type": "postpone"}`, expected: dto.PostTypePostpone},
		{json: `{"id": 1, "post_type": "suggest"}`, expected: dto.PostTypeSuggest},
		{json: `{"id": 1, "post_type": "bogus"}`, expected: dto.PostTypePost},
		{json: `{"id": 1, "post_type": "post", "donut": {"is_donut": true}}`, expected: dto.PostTypeDonut},
		{json: `{"id": 1, "post_type": "copy", "donut": {"is_donut": false}}`, expected: dto.PostTypeCopy},
	}
	for _, testDef := range testDefs {
		post, err := dto.NewPostFromNode(test.MustJSON(testDef.json))
		require.NoError(t, err)
		assert.Equal(t, testDef.expected, post.PostType, testDef.json)
		assert.Equal(t, testDef.expected == dto.PostTypeDonut, post.IsDonut, testDef.json)
	}
}

func TestDecodePostCopyHistoryContainment(t *testing.T) {
	post, err := dto.NewPostFromNode(test.MustJSON(`{
		"id": 1,
		"owner_id": 2,
		"copy_history": [
			{"id": 1032, "owner_id": 216143660, "from_id": 0, "date": 0},
			"this post has been removed",
			{"id": 1033, "owner_id": 3}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, post.CopyHistory, 2)
	assert.Equal(t, 1032, post.CopyHistory[0].ID)
	assert.Equal(t, int64(216143660), post.CopyHistory[0].FromID)
	assert.Equal(t, 1033, post.CopyHistory[1].ID)
}

func TestDecodePostNotObject(t *testing.T) {
	for _, input := range []tree.Node{nil, tree.Null{}, tree.Int(1), tree.Array{}} {
		_, err := dto.NewPostFromNode(input)
		require.ErrorIs(t, err, dto.ErrNotObject)
		var decodeErr *dto.DecodeError
		require.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, "post", decodeErr.Record)
	}
}

// nestedRepost builds a post whose copy history nests depth levels deep
func nestedRepost(depth int) string {
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		fmt.Fprintf(&sb, `{"id": %d, "owner_id": 1, "copy_history": [`, i+1)
	}
	sb.WriteString(`{"id": 0}`)
	for i := 0; i < depth; i++ {
		sb.WriteString(`]}`)
	}
	return sb.String()
}

func TestDecodePostMaxDepth(t *testing.T) {
	d := dto.NewDecoder(dto.WithMaxDepth(2))
	post, err := d.DecodePost(test.MustJSON(nestedRepost(5)))
	require.NoError(t, err)
	// Depths 0, 1 and 2 decode; the ancestor at depth 3 is dropped
	require.Len(t, post.CopyHistory, 1)
	require.Len(t, post.CopyHistory[0].CopyHistory, 1)
	assert.Empty(t, post.CopyHistory[0].CopyHistory[0].CopyHistory)
	assert.NotNil(t, post.CopyHistory[0].CopyHistory[0].CopyHistory)
}

func TestDecodePostDefaultDepth(t *testing.T) {
	post, err := dto.NewPostFromNode(test.MustJSON(nestedRepost(40)))
	require.NoError(t, err)
	levels := 0
	for p := post; len(p.CopyHistory) > 0; p = p.CopyHistory[0] {
		levels++
	}
	assert.Equal(t, dto.DefaultMaxDepth, levels)
}

func TestDecodePostWallAttachmentRecursion(t *testing.T) {
	post, err := dto.NewPostFromNode(test.MustJSON(`{
		"id": 1,
		"owner_id": 1,
		"attachments": [
			{"type": "wall", "wall": {"id": 2, "owner_id": 3, "attachments": [
				{"type": "wall_reply", "wall_reply": {"id": 4, "owner_id": 3, "attachments": [
					{"type": "sticker", "sticker": {"sticker_id": 99}}
				]}}
			]}}
		]
	}`))
	require.NoError(t, err)
	require.Equal(t, 1, post.Attachments.Len())
	inner, ok := post.Attachments.Entries[0].Attachment.(*dto.Post)
	require.True(t, ok)
	require.Equal(t, 1, inner.Attachments.Len())
	reply, ok := inner.Attachments.Entries[0].Attachment.(*dto.WallReply)
	require.True(t, ok)
	require.Equal(t, 1, reply.Attachments.Len())
	sticker, ok := reply.Attachments.Entries[0].Attachment.(*dto.Sticker)
	require.True(t, ok)
	assert.Equal(t, 99, sticker.ID)
}

func TestParsePostType(t *testing.T) {
	assert.Equal(t, dto.PostTypePost, dto.ParsePostType(""))
	assert.Equal(t, dto.PostTypeDonut, dto.ParsePostType("donut"))
	assert.Equal(t, dto.PostTypeSuggest, dto.ParsePostType("suggest"))
}
