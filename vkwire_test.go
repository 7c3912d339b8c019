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
	"errors"
	"testing"

	"github.com/blinklabs-io/vkwire"
	"github.com/blinklabs-io/vkwire/dto"
	"github.com/blinklabs-io/vkwire/internal/test"
	"github.com/blinklabs-io/vkwire/longpoll"
	"github.com/blinklabs-io/vkwire/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderPostAcrossFormats(t *testing.T) {
	testDefs := []struct {
		format vkwire.Format
		data   []byte
	}{
		{
			format: vkwire.FormatJSON,
			data:   []byte(`{"id": 1, "owner_id": -5, "text": "hi"}`),
		},
		{
			// {"id": 1, "owner_id": -5, "text": "hi"}
			format: vkwire.FormatCBOR,
			data:   test.DecodeHexString("a3 626964 01 686f776e65725f6964 24 6474657874 626869"),
		},
		{
			// {"id": 1, "owner_id": -5, "text": "hi"}
			format: vkwire.FormatMsgPack,
			data:   test.DecodeHexString("83 a26964 01 a86f776e65725f6964 fb a474657874 a26869"),
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.format.String(), func(t *testing.T) {
			d, err := vkwire.NewDecoder(vkwire.WithFormat(testDef.format))
			require.NoError(t, err)
			post, err := d.Post(testDef.data)
			require.NoError(t, err)
			assert.Equal(t, 1, post.ID)
			assert.Equal(t, int64(-5), post.OwnerID)
			assert.Equal(t, int64(-5), post.FromID)
			assert.Equal(t, "hi", post.Text)
		})
	}
}

func TestDecoderLongpollAcrossFormats(t *testing.T) {
	testDefs := []struct {
		format vkwire.Format
		data   []byte
	}{
		{format: vkwire.FormatJSON, data: []byte(`[80, 9]`)},
		{format: vkwire.FormatCBOR, data: test.DecodeHexString("82185009")},
		{format: vkwire.FormatMsgPack, data: test.DecodeHexString("925009")},
	}
	for _, testDef := range testDefs {
		d, err := vkwire.NewDecoder(vkwire.WithFormat(testDef.format))
		require.NoError(t, err)
		event, err := d.LongpollEvent(testDef.data)
		require.NoError(t, err)
		assert.Equal(t, &longpoll.UnreadCounterChanged{Count: 9}, event, testDef.format.String())
	}
}

func TestNewDecoderInvalidFormat(t *testing.T) {
	_, err := vkwire.NewDecoder(vkwire.WithFormat(vkwire.Format(42)))
	require.ErrorIs(t, err, tree.ErrUnknownFormat)
}

func TestDecoderParseError(t *testing.T) {
	d, err := vkwire.NewDecoder()
	require.NoError(t, err)
	assert.Equal(t, vkwire.FormatJSON, d.Format())
	_, err = d.Post([]byte(`{"id": 1`))
	require.Error(t, err)
	var formatErr *tree.FormatError
	require.True(t, errors.As(err, &formatErr))
	_, err = d.Post([]byte(`[1]`))
	require.ErrorIs(t, err, dto.ErrNotObject)
}

func TestDecoderOptions(t *testing.T) {
	d, err := vkwire.NewDecoder(
		vkwire.WithIgnoredTags("who_knows", "poll"),
		vkwire.WithMaxDepth(1),
	)
	require.NoError(t, err)
	attachments, err := d.Attachments([]byte(`[
		{"type": "who_knows", "who_knows": {"id": 1}},
		{"type": "mini_app", "mini_app": {}},
		{"type": "poll", "poll": {"id": 4, "question": "?"}},
		{"type": "wall", "wall": {"id": 2, "copy_history": [{"id": 3}]}}
	]`))
	require.NoError(t, err)
	require.Equal(t, 3, attachments.Len())
	notSupported, ok := attachments.Entries[0].Attachment.(*dto.NotSupported)
	require.True(t, ok)
	assert.Equal(t, "mini_app", notSupported.Type)
	assert.IsType(t, &dto.Poll{}, attachments.Entries[1].Attachment)
	post, ok := attachments.Entries[2].Attachment.(*dto.Post)
	require.True(t, ok)
	assert.Empty(t, post.CopyHistory)
}

func TestDecoderUnwrapResponse(t *testing.T) {
	d, err := vkwire.NewDecoder(vkwire.WithUnwrapResponse(true))
	require.NoError(t, err)
	user, err := d.User([]byte(`{"response": {"id": 1, "first_name": "Pavel"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Pavel", user.FirstName)
	_, err = d.User([]byte(`{"error": {
		"error_code": 5,
		"error_msg": "User authorization failed",
		"request_params": [{"key": "method", "value": "users.get"}]
	}}`))
	var apiErr *vkwire.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 5, apiErr.Code)
	assert.Equal(t, []vkwire.RequestParam{{Key: "method", Value: "users.get"}}, apiErr.Params)
	assert.Equal(t, "api error 5: User authorization failed", apiErr.Error())
	_, err = d.User([]byte(`{"something": 1}`))
	require.ErrorIs(t, err, vkwire.ErrNoResponse)
}

func TestDecoderRecords(t *testing.T) {
	d, err := vkwire.NewDecoder()
	require.NoError(t, err)
	story, err := d.Story([]byte(`{"id": 1, "parent_story": {"id": 2}}`))
	require.NoError(t, err)
	require.NotNil(t, story.ParentStory)
	chat, err := d.Chat([]byte(`{"id": 1, "users": [1, 2]}`))
	require.NoError(t, err)
	assert.Len(t, chat.Users, 2)
	community, err := d.Community([]byte(`{"id": 1}`))
	require.NoError(t, err)
	assert.Equal(t, "club1", community.ScreenName)
	reply, err := d.WallReply([]byte(`{"id": 9, "text": "ok"}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", reply.Text)
	resp, err := d.LongpollResponse([]byte(`{"ts": "5", "updates": [[80, 1]]}`))
	require.NoError(t, err)
	assert.Len(t, resp.Events, 1)
}
