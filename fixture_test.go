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

package vkwire_test

import (
	"testing"

	"github.com/blinklabs-io/vkwire"
	"github.com/blinklabs-io/vkwire/dto"
	"github.com/blinklabs-io/vkwire/internal/test"
	"github.com/blinklabs-io/vkwire/longpoll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureWallPost(t *testing.T) {
	dec, err := vkwire.NewDecoder(vkwire.WithUnwrapResponse(true))
	require.NoError(t, err)
	post, err := dec.Post(test.Fixture("wall_post.json"))
	require.NoError(t, err)

	assert.Equal(t, 10, post.ID)
	assert.Equal(t, int64(-1), post.OwnerID)
	assert.Equal(t, int64(-1), post.FromID)
	assert.Equal(t, int64(-1), post.ReplyOwnerID)
	assert.Equal(t, 10, post.ReplyPostID)
	assert.Equal(t, dto.PostTypePost, post.PostType)
	assert.Equal(t, 4, post.LikesCount)
	assert.True(t, post.UserLikes)
	assert.False(t, post.CanLike)
	assert.Equal(t, 2, post.RepostsCount)
	assert.Equal(t, 1500, post.Views)

	require.Equal(t, 3, post.Attachments.Len())
	entries := post.Attachments.Entries
	assert.Equal(t, dto.AttachmentTypePhoto, entries[0].Type)
	photo, ok := entries[0].Attachment.(*dto.Photo)
	require.True(t, ok)
	assert.Equal(t, 5, photo.ID)
	assert.Len(t, photo.Sizes, 2)
	assert.Equal(t, dto.AttachmentTypeLink, entries[1].Type)
	link, ok := entries[1].Attachment.(*dto.Link)
	require.True(t, ok)
	assert.Equal(t, "Example", link.Title)
	assert.Equal(t, dto.AttachmentType("hologram"), entries[2].Type)
	unknown, ok := entries[2].Attachment.(*dto.NotSupported)
	require.True(t, ok)
	assert.Equal(t, `{"x":1}`, unknown.Body)

	require.Len(t, post.CopyHistory, 1)
	assert.Equal(t, "original", post.CopyHistory[0].Text)
	assert.Equal(t, int64(7), post.CopyHistory[0].OwnerID)
}

func TestFixtureLongpoll(t *testing.T) {
	dec, err := vkwire.NewDecoder()
	require.NoError(t, err)
	resp, err := dec.LongpollResponse(test.Fixture("longpoll.json"))
	require.NoError(t, err)

	assert.Equal(t, "1820350874", resp.TS)
	assert.Equal(t, int64(10000), resp.PTS)
	assert.Equal(t, 0, resp.Failed)
	require.Len(t, resp.Events, 4)

	added, ok := resp.Events[0].(*longpoll.MessageAdded)
	require.True(t, ok)
	assert.Equal(t, 1619489, added.MessageID)
	assert.Equal(t, "hi\nthere & all", added.Text)
	assert.Equal(t, int64(100), added.FromID)
	assert.True(t, added.IsUnread())
	assert.False(t, added.IsOut())

	online, ok := resp.Events[1].(*longpoll.UserOnline)
	require.True(t, ok)
	assert.Equal(t, int64(42), online.UserID)

	counter, ok := resp.Events[2].(*longpoll.UnreadCounterChanged)
	require.True(t, ok)
	assert.Equal(t, 3, counter.Count)

	read, ok := resp.Events[3].(*longpoll.InputMessagesRead)
	require.True(t, ok)
	assert.Equal(t, int64(2000000001), read.PeerID)
	assert.Equal(t, 1619489, read.LocalID)
}
