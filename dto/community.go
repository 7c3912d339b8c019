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
	"fmt"

	"github.com/blinklabs-io/vkwire/internal/textutil"
	"github.com/blinklabs-io/vkwire/tree"
)

// Placeholder avatars for communities without photos
const (
	DefaultCommunityPhoto50  = "https://vk.com/images/community_50.png"
	DefaultCommunityPhoto100 = "https://vk.com/images/community_100.png"
)

// CommunityType is the kind of a community
type CommunityType string

const (
	CommunityTypeGroup CommunityType = "group"
	CommunityTypePage  CommunityType = "page"
	CommunityTypeEvent CommunityType = "event"
)

// CommunityMenuItem is one entry of a community menu
type CommunityMenuItem struct {
	ID    int
	Title string
	URL   string
	Type  string
	Cover string
}

// CommunityContact is one entry of the contact list
type CommunityContact struct {
	UserID      int64
	Description string
	Phone       string
	Email       string
}

// NewCommunityContactFromNode decodes one contact entry
func NewCommunityContactFromNode(n tree.Node) (CommunityContact, error) {
	obj, err := requireObject(n, "community contact")
	if err != nil {
		return CommunityContact{}, err
	}
	return CommunityContact{
		UserID:      tree.OptLong(obj, "user_id", 0),
		Description: tree.OptString(obj, "desc", ""),
		Phone:       tree.OptString(obj, "phone", ""),
		Email:       tree.OptString(obj, "email", ""),
	}, nil
}

// CommunityLink is one entry of the link list
type CommunityLink struct {
	ID          int
	URL         string
	Name        string
	Description string
	Photo100    string
}

// NewCommunityLinkFromNode decodes one link entry
func NewCommunityLinkFromNode(n tree.Node) (CommunityLink, error) {
	obj, err := requireObject(n, "community link")
	if err != nil {
		return CommunityLink{}, err
	}
	return CommunityLink{
		ID:          tree.OptInt(obj, "id", 0),
		URL:         tree.OptString(obj, "url", ""),
		Name:        tree.OptString(obj, "name", ""),
		Description: tree.OptString(obj, "desc", ""),
		Photo100:    tree.OptString(obj, "photo_100", ""),
	}, nil
}

// CommunityCounters holds community counters. Counters the server omitted are -1.
type CommunityCounters struct {
	Photos   int
	Albums   int
	Audios   int
	Videos   int
	Topics   int
	Docs     int
	Articles int
	Market   int
	Chats    int
}

// Community is a group, public page or event
type Community struct {
	ID             int64
	Name           string
	ScreenName     string
	Type           CommunityType
	IsClosed       int
	IsAdmin        bool
	AdminLevel     int
	IsMember       bool
	MemberStatus   int
	Photo50        string
	Photo100       string
	Photo200       string
	City           *Place
	Country        *Place
	Blacklisted    bool
	BanEndDate     int64
	BanComment     string
	Description    string
	WikiPage       string
	MembersCount   int
	Counters       *CommunityCounters
	StartDate      int64
	FinishDate     int64
	CanPost        bool
	CanSeeAllPosts bool
	CanUploadDoc   bool
	CanUploadVideo bool
	CanCreateTopic bool
	CanMessage     bool
	IsFavorite     bool
	IsSubscribed   bool
	Status         string
	StatusAudio    *Audio
	Contacts       []CommunityContact
	Links          []CommunityLink
	Menu           []CommunityMenuItem
	FixedPost      int
	MainAlbumID    int
	Verified       bool
	Site           string
	Activity       string
	Cover          string
}

// NewCommunityFromNode decodes a community object using the default Decoder
func NewCommunityFromNode(n tree.Node) (*Community, error) {
	return defaultDecoder.DecodeCommunity(n)
}

// DecodeCommunity decodes a community object
func (d *Decoder) DecodeCommunity(n tree.Node) (*Community, error) {
	return d.decodeCommunity(n, 0)
}

func (d *Decoder) decodeCommunity(n tree.Node, depth int) (*Community, error) {
	if err := d.checkDepth(depth, "community"); err != nil {
		return nil, err
	}
	obj, err := requireObject(n, "community")
	if err != nil {
		return nil, err
	}
	id := tree.OptLong(obj, "id", 0)
	contacts, _ := obj.Get("contacts")
	links, _ := obj.Get("links")
	ret := &Community{
		ID:             id,
		Name:           tree.OptString(obj, "name", ""),
		ScreenName:     tree.OptString(obj, "screen_name", fmt.Sprintf("club%d", absID(id))),
		Type:           parseCommunityType(tree.OptString(obj, "type", "")),
		IsClosed:       tree.OptInt(obj, "is_closed", 0),
		IsAdmin:        tree.OptBool(obj, "is_admin"),
		AdminLevel:     tree.OptInt(obj, "admin_level", 0),
		IsMember:       tree.OptBool(obj, "is_member"),
		MemberStatus:   tree.OptInt(obj, "member_status", 0),
		Photo50:        tree.OptString(obj, "photo_50", DefaultCommunityPhoto50),
		Photo100:       tree.OptString(obj, "photo_100", DefaultCommunityPhoto100),
		Photo200:       tree.OptString(obj, "photo_200", ""),
		City:           optPlace(obj, "city"),
		Country:        optPlace(obj, "country"),
		Description:    tree.OptString(obj, "description", ""),
		WikiPage:       tree.OptString(obj, "wiki_page", ""),
		MembersCount:   tree.OptInt(obj, "members_count", 0),
		StartDate:      tree.OptLong(obj, "start_date", 0),
		FinishDate:     tree.OptLong(obj, "finish_date", 0),
		CanPost:        tree.OptBool(obj, "can_post"),
		CanSeeAllPosts: tree.OptBool(obj, "can_see_all_posts"),
		CanUploadDoc:   tree.OptBool(obj, "can_upload_doc"),
		CanUploadVideo: tree.OptBool(obj, "can_upload_video"),
		CanCreateTopic: tree.OptBool(obj, "can_create_topic"),
		CanMessage:     tree.OptBool(obj, "can_message"),
		IsFavorite:     tree.OptBool(obj, "is_favorite"),
		IsSubscribed:   tree.OptBool(obj, "is_subscribed"),
		Status:         textutil.Unescape(tree.OptString(obj, "status", "")),
		Contacts:       tree.ParseArray(contacts, nil, NewCommunityContactFromNode),
		Links:          tree.ParseArray(links, nil, NewCommunityLinkFromNode),
		FixedPost:      tree.OptInt(obj, "fixed_post", 0),
		MainAlbumID:    tree.OptInt(obj, "main_album_id", 0),
		Verified:       tree.OptBool(obj, "verified"),
		Site:           tree.OptString(obj, "site", ""),
		Activity:       tree.OptString(obj, "activity", ""),
	}
	if menu, ok := tree.HasObject(obj, "menu"); ok {
		ret.Menu = communityMenu(menu)
	}
	if banInfo, ok := tree.HasObject(obj, "ban_info"); ok {
		ret.Blacklisted = true
		ret.BanEndDate = tree.OptLong(banInfo, "end_date", 0)
		ret.BanComment = tree.OptString(banInfo, "comment", "")
	}
	if counters, ok := tree.HasObject(obj, "counters"); ok {
		ret.Counters = newCommunityCounters(counters)
	}
	if chats, ok := tree.HasObject(obj, "chats_status"); ok {
		if ret.Counters == nil {
			ret.Counters = newCommunityCounters(nil)
		}
		ret.Counters.Chats = tree.OptInt(chats, "count", NoCounter)
	}
	if audio, ok := tree.HasObject(obj, "status_audio"); ok {
		statusAudio, err := NewAudioFromNode(audio)
		if err != nil {
			d.log().Debug("dropping community status audio", "community", id, "error", err)
		}
		ret.StatusAudio = statusAudio
	}
	if cover, ok := tree.HasObject(obj, "cover"); ok && tree.OptBool(cover, "enabled") {
		ret.Cover = largestImageURL(cover, "images")
	}
	return ret, nil
}

func parseCommunityType(tag string) CommunityType {
	switch CommunityType(tag) {
	case CommunityTypePage, CommunityTypeEvent:
		return CommunityType(tag)
	}
	return CommunityTypeGroup
}

func newCommunityCounters(obj *tree.Object) *CommunityCounters {
	return &CommunityCounters{
		Photos:   tree.OptInt(obj, "photos", NoCounter),
		Albums:   tree.OptInt(obj, "albums", NoCounter),
		Audios:   tree.OptInt(obj, "audios", NoCounter),
		Videos:   tree.OptInt(obj, "videos", NoCounter),
		Topics:   tree.OptInt(obj, "topics", NoCounter),
		Docs:     tree.OptInt(obj, "docs", NoCounter),
		Articles: tree.OptInt(obj, "articles", NoCounter),
		Market:   tree.OptInt(obj, "market", NoCounter),
		Chats:    tree.OptInt(obj, "chats", NoCounter),
	}
}

// communityMenu picks, for each item, the cover that is wider or taller
// than every cover before it
func communityMenu(menu *tree.Object) []CommunityMenuItem {
	items, ok := tree.HasArray(menu, "items")
	if !ok {
		return nil
	}
	ret := make([]CommunityMenuItem, 0, len(items))
	for _, node := range items {
		item, ok := tree.AsObject(node)
		if !ok {
			continue
		}
		entry := CommunityMenuItem{
			ID:    tree.OptInt(item, "id", 0),
			Title: tree.OptString(item, "title", ""),
			URL:   tree.OptString(item, "url", ""),
			Type:  tree.OptString(item, "type", ""),
		}
		if covers, ok := tree.HasArray(item, "cover"); ok {
			var width, height int
			for _, node := range covers {
				cover, ok := tree.AsObject(node)
				if !ok {
					continue
				}
				w := tree.OptInt(cover, "width", 0)
				h := tree.OptInt(cover, "height", 0)
				if w > width || h > height {
					width, height = w, h
					entry.Cover = tree.OptString(cover, "url", "")
				}
			}
		}
		ret = append(ret, entry)
	}
	return ret
}

func absID(id int64) int64 {
	if id < 0 {
		return -id
	}
	return id
}
