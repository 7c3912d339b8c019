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
	"testing"

	"github.com/blinklabs-io/vkwire/dto"
	"github.com/blinklabs-io/vkwire/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserFromNodeDefaults(t *testing.T) {
	user, err := dto.NewUserFromNode(test.MustJSON(`{"user_id": 42, "first_name": "Ann"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "id42", user.ScreenName)
	assert.Equal(t, dto.DefaultUserPhoto50, user.Photo50)
	assert.Equal(t, "Ann", user.FullName())
	assert.NotNil(t, user.Relatives)
	assert.Empty(t, user.Relatives)
	assert.Nil(t, user.Universities)
	assert.Nil(t, user.Counters)
	assert.Nil(t, user.RelationPartner)
}

func TestNewUserFromNode(t *testing.T) {
	user, err := dto.NewUserFromNode(test.MustJSON(`{
		"id": 1,
		"first_name": "Pavel",
		"last_name": "Durov",
		"screen_name": "durov",
		"deactivated": "banned",
		"status": "a &amp; b<br>c",
		"last_seen": {"time": 1700000000, "platform": 7},
		"city": {"id": 2, "title": "Saint Petersburg"},
		"counters": {"friends": 10},
		"personal": {"langs": ["English", "Русский"]},
		"relatives": [{"id": 5, "type": "sibling"}],
		"schools": [{"id": "1", "name": "School"}, 7],
		"relation": 4,
		"relation_partner": {"id": 77, "first_name": "Partner"}
	}`))
	require.NoError(t, err)
	assert.True(t, user.IsBanned)
	assert.False(t, user.IsDeleted)
	assert.Equal(t, "a & b\nc", user.Status)
	assert.Equal(t, int64(1700000000), user.LastSeen)
	assert.Equal(t, 7, user.Platform)
	assert.Equal(t, &dto.Place{ID: 2, Title: "Saint Petersburg"}, user.City)
	require.NotNil(t, user.Counters)
	assert.Equal(t, 10, user.Counters.Friends)
	assert.Equal(t, dto.NoCounter, user.Counters.Photos)
	require.NotNil(t, user.Personal)
	assert.Equal(t, []string{"English", "Русский"}, user.Personal.Langs)
	assert.Equal(t, []dto.Relative{{ID: 5, Type: "sibling"}}, user.Relatives)
	assert.Nil(t, user.Schools)
	require.NotNil(t, user.RelationPartner)
	assert.Equal(t, int64(77), user.RelationPartner.ID)
	assert.Equal(t, "id77", user.RelationPartner.ScreenName)
}

func TestNewCommunityFromNode(t *testing.T) {
	community, err := dto.NewCommunityFromNode(test.MustJSON(`{
		"id": 26,
		"name": "Club",
		"type": "page",
		"ban_info": {"end_date": 1800000000, "comment": "spam"},
		"chats_status": {"count": 3},
		"menu": {"items": [
			{"id": 1, "title": "Shop", "cover": [
				{"url": "small", "width": 100, "height": 50},
				{"url": "tall", "width": 80, "height": 400},
				{"url": "tiny", "width": 10, "height": 10}
			]},
			"skip",
			{"id": 2, "title": "No cover"}
		]},
		"links": [{"id": 1, "url": "https://example.com", "desc": "site"}]
	}`))
	require.NoError(t, err)
	assert.Equal(t, "club26", community.ScreenName)
	assert.Equal(t, dto.CommunityTypePage, community.Type)
	assert.True(t, community.Blacklisted)
	assert.Equal(t, int64(1800000000), community.BanEndDate)
	assert.Equal(t, dto.DefaultCommunityPhoto50, community.Photo50)
	assert.Equal(t, dto.DefaultCommunityPhoto100, community.Photo100)
	assert.Empty(t, community.Photo200)
	require.NotNil(t, community.Counters)
	assert.Equal(t, 3, community.Counters.Chats)
	assert.Equal(t, dto.NoCounter, community.Counters.Photos)
	require.Len(t, community.Menu, 2)
	assert.Equal(t, "tall", community.Menu[0].Cover)
	assert.Empty(t, community.Menu[1].Cover)
	assert.Equal(t, []dto.CommunityLink{{ID: 1, URL: "https://example.com", Description: "site"}}, community.Links)
	assert.Nil(t, community.Contacts)
}

func TestNewCommunityFromNodeType(t *testing.T) {
	for input, expected := range map[string]dto.CommunityType{
		`{"id": 1}`:                  dto.CommunityTypeGroup,
		`{"id": 1, "type": "event"}`: dto.CommunityTypeEvent,
		`{"id": 1, "type": "club"}`:  dto.CommunityTypeGroup,
	} {
		community, err := dto.NewCommunityFromNode(test.MustJSON(input))
		require.NoError(t, err)
		assert.Equal(t, expected, community.Type, input)
	}
}

func TestNewChatFromNode(t *testing.T) {
	chat, err := dto.NewChatFromNode(test.MustJSON(`{
		"id": 100,
		"type": "chat",
		"title": "Team",
		"admin_id": 1,
		"users": [
			1,
			"2",
			{"type": "profile", "id": 3, "first_name": "Carol"},
			{"type": "group", "id": 4, "name": "Bot"},
			{"type": "email", "id": 5},
			"not a number",
			[6]
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, int64(100), chat.ID)
	require.Len(t, chat.Users, 4)
	assert.Equal(t, &dto.User{ID: 1}, chat.Users[0])
	assert.Equal(t, &dto.User{ID: 2}, chat.Users[1])
	carol, ok := chat.Users[2].(*dto.User)
	require.True(t, ok)
	assert.Equal(t, "Carol", carol.FirstName)
	bot, ok := chat.Users[3].(*dto.Community)
	require.True(t, ok)
	assert.Equal(t, "Bot", bot.Name)
	assert.Equal(t, int64(-4), bot.PeerID())
	assert.Equal(t, int64(3), carol.PeerID())
}

func TestNewChatFromNodeWithoutUsers(t *testing.T) {
	chat, err := dto.NewChatFromNode(test.MustJSON(`{"chat_id": 7, "users": []}`))
	require.NoError(t, err)
	assert.Equal(t, int64(7), chat.ID)
	assert.Nil(t, chat.Users)
}

func TestDecoderDecodeCommunity(t *testing.T) {
	d := dto.NewDecoder(dto.WithMaxDepth(1))
	community, err := d.DecodeCommunity(test.MustJSON(`{"id": 5, "type": "event"}`))
	require.NoError(t, err)
	assert.Equal(t, dto.CommunityTypeEvent, community.Type)
	assert.Equal(t, "club5", community.ScreenName)

	_, err = d.DecodeCommunity(test.MustJSON(`"club5"`))
	var decodeErr *dto.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "community", decodeErr.Record)
	assert.ErrorIs(t, err, dto.ErrNotObject)

	chat, err := d.DecodeChat(test.MustJSON(`{"id": 1, "users": [{"type": "group", "id": 5}]}`))
	require.NoError(t, err)
	require.Len(t, chat.Users, 1)
	member, ok := chat.Users[0].(*dto.Community)
	require.True(t, ok)
	assert.Equal(t, int64(-5), member.PeerID())
}
