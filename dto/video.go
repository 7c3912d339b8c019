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

// Video is a "video" attachment
type Video struct {
	ID          int
	OwnerID     int64
	AlbumID     int
	Title       string
	Description string
	Duration    int
	Date        int64
	AddingDate  int64
	Views       int
	LocalViews  int
	Comments    int
	Player      string
	Platform    string
	AccessKey   string
	CanComment  bool
	CanRepost   bool
	CanAdd      bool
	Repeat      bool
	Likes       int
	UserLikes   bool
	Reposts     int
	Image       string
	FirstFrame  string
	// Files maps a rendition name (mp4_720, hls, external, ...) to its url
	Files map[string]string
}

func (*Video) AttachmentType() AttachmentType { return AttachmentTypeVideo }
func (*Video) isAttachment()                  {}

// NewVideoFromNode decodes a video object
func NewVideoFromNode(n tree.Node) (*Video, error) {
	obj, err := requireObject(n, "video")
	if err != nil {
		return nil, err
	}
	return &Video{
		ID:          tree.GetFirstInt(obj, 0, "id", "vid"),
		OwnerID:     tree.OptLong(obj, "owner_id", 0),
		AlbumID:     tree.OptInt(obj, "album_id", 0),
		Title:       tree.OptString(obj, "title", ""),
		Description: tree.OptString(obj, "description", ""),
		Duration:    tree.OptInt(obj, "duration", 0),
		Date:        tree.OptLong(obj, "date", 0),
		AddingDate:  tree.OptLong(obj, "adding_date", 0),
		Views:       tree.OptInt(obj, "views", 0),
		LocalViews:  tree.OptInt(obj, "local_views", 0),
		Comments:    tree.OptInt(obj, "comments", 0),
		Player:      tree.OptString(obj, "player", ""),
		Platform:    tree.OptString(obj, "platform", ""),
		AccessKey:   tree.OptString(obj, "access_key", ""),
		CanComment:  tree.OptBool(obj, "can_comment"),
		CanRepost:   tree.OptBool(obj, "can_repost"),
		CanAdd:      tree.OptBool(obj, "can_add"),
		Repeat:      tree.OptBool(obj, "repeat"),
		Likes:       optCount(obj, "likes"),
		UserLikes:   optNestedBool(obj, "likes", "user_likes"),
		Reposts:     optCount(obj, "reposts"),
		Image:       largestImageURL(obj, "image"),
		FirstFrame:  largestImageURL(obj, "first_frame"),
		Files:       videoFiles(obj),
	}, nil
}

func videoFiles(obj *tree.Object) map[string]string {
	files, ok := tree.HasObject(obj, "files")
	if !ok {
		return nil
	}
	ret := make(map[string]string, files.Len())
	files.Range(func(key string, value tree.Node) bool {
		if url, ok := value.(tree.String); ok && url != "" {
			ret[key] = string(url)
		}
		return true
	})
	return ret
}
