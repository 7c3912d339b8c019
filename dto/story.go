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

// StoryLink is the swipe-up link of a story
type StoryLink struct {
	Text string
	URL  string
}

// Story is a "story" attachment. A reposted story carries the story it
// reposts in ParentStory.
type Story struct {
	ID                 int
	OwnerID            int64
	Date               int64
	ExpiresAt          int64
	IsExpired          bool
	IsDeleted          bool
	CanSee             bool
	Seen               bool
	Views              int
	AccessKey          string
	Type               string
	Photo              *Photo
	Video              *Video
	Link               *StoryLink
	ParentStoryID      int
	ParentStoryOwnerID int64
	ParentStory        *Story
}

func (*Story) AttachmentType() AttachmentType { return AttachmentTypeStory }
func (*Story) isAttachment()                  {}

// NewStoryFromNode decodes a story using the default Decoder
func NewStoryFromNode(n tree.Node) (*Story, error) {
	return defaultDecoder.DecodeStory(n)
}

// DecodeStory decodes a story and, when present, its parent story. A
// malformed parent is dropped without failing the story.
func (d *Decoder) DecodeStory(n tree.Node) (*Story, error) {
	return d.decodeStory(n, 0)
}

func (d *Decoder) decodeStoryAttachment(n tree.Node, depth int) (Attachment, error) {
	ret, err := d.decodeStory(n, depth+1)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (d *Decoder) decodeStory(n tree.Node, depth int) (*Story, error) {
	if err := d.checkDepth(depth, "story"); err != nil {
		return nil, err
	}
	obj, err := requireObject(n, "story")
	if err != nil {
		return nil, err
	}
	ret := &Story{
		ID:                 tree.OptInt(obj, "id", 0),
		OwnerID:            tree.OptLong(obj, "owner_id", 0),
		Date:               tree.OptLong(obj, "date", 0),
		ExpiresAt:          tree.OptLong(obj, "expires_at", 0),
		IsExpired:          tree.OptBool(obj, "is_expired"),
		IsDeleted:          tree.OptBool(obj, "is_deleted"),
		CanSee:             tree.OptBool(obj, "can_see"),
		Seen:               tree.OptBool(obj, "seen"),
		Views:              tree.OptInt(obj, "views", 0),
		AccessKey:          tree.OptString(obj, "access_key", ""),
		Type:               tree.OptString(obj, "type", ""),
		ParentStoryID:      tree.OptInt(obj, "parent_story_id", 0),
		ParentStoryOwnerID: tree.OptLong(obj, "parent_story_owner_id", 0),
	}
	if photo, ok := tree.HasObject(obj, "photo"); ok {
		ret.Photo, _ = NewPhotoFromNode(photo)
	}
	if video, ok := tree.HasObject(obj, "video"); ok {
		ret.Video, _ = NewVideoFromNode(video)
	}
	if link, ok := tree.HasObject(obj, "link"); ok {
		ret.Link = &StoryLink{
			Text: tree.OptString(link, "text", ""),
			URL:  tree.OptString(link, "url", ""),
		}
	}
	if parent, ok := tree.HasObject(obj, "parent_story"); ok {
		parentStory, err := decodeEntry(func() (*Story, error) {
			return d.decodeStory(parent, depth+1)
		})
		if err != nil {
			d.log().Debug(
				"dropping parent story",
				"story_id", ret.ID,
				"owner_id", ret.OwnerID,
				"error", err,
			)
		} else {
			ret.ParentStory = parentStory
		}
	}
	return ret, nil
}

// Narratives is a "narratives" attachment: a named collection of stories
type Narratives struct {
	ID         int
	OwnerID    int64
	Title      string
	Cover      string
	StoryIDs   []int
	AccessKey  string
	CanSee     bool
	IsFavorite bool
}

func (*Narratives) AttachmentType() AttachmentType { return AttachmentTypeNarratives }
func (*Narratives) isAttachment()                  {}

// NewNarrativesFromNode decodes a narrative object
func NewNarrativesFromNode(n tree.Node) (*Narratives, error) {
	obj, err := requireObject(n, "narratives")
	if err != nil {
		return nil, err
	}
	ret := &Narratives{
		ID:         tree.OptInt(obj, "id", 0),
		OwnerID:    tree.OptLong(obj, "owner_id", 0),
		Title:      tree.OptString(obj, "title", ""),
		StoryIDs:   tree.OptIntArray(obj, "story_ids", nil),
		AccessKey:  tree.OptString(obj, "access_key", ""),
		CanSee:     tree.OptBool(obj, "can_see"),
		IsFavorite: tree.OptBool(obj, "is_favorite"),
	}
	if cover, ok := tree.HasObject(obj, "cover"); ok {
		ret.Cover = largestImageURL(cover, "cropped_sizes")
		if ret.Cover == "" {
			if photo, ok := tree.HasObject(cover, "custom_photo"); ok {
				if best := optPhotoSizes(photo, "sizes"); len(best) > 0 {
					ret.Cover = best[len(best)-1].URL
				}
			}
		}
	}
	return ret, nil
}
