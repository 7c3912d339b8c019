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

// PhotoSize is one rendition of a photo
type PhotoSize struct {
	Type   string
	URL    string
	Width  int
	Height int
}

// NewPhotoSizeFromNode decodes one entry of a "sizes" list
func NewPhotoSizeFromNode(n tree.Node) (PhotoSize, error) {
	obj, err := requireObject(n, "photo size")
	if err != nil {
		return PhotoSize{}, err
	}
	return PhotoSize{
		Type:   tree.OptString(obj, "type", ""),
		URL:    tree.GetFirstString(obj, "", "url", "src"),
		Width:  tree.OptInt(obj, "width", 0),
		Height: tree.OptInt(obj, "height", 0),
	}, nil
}

// optPhotoSizes decodes a size list, skipping entries that are not objects
func optPhotoSizes(obj *tree.Object, key string) []PhotoSize {
	arr, ok := tree.HasArray(obj, key)
	if !ok {
		return nil
	}
	ret := make([]PhotoSize, 0, len(arr))
	for _, item := range arr {
		size, err := NewPhotoSizeFromNode(item)
		if err != nil {
			continue
		}
		ret = append(ret, size)
	}
	return ret
}

// Photo is a "photo" attachment
type Photo struct {
	ID         int
	AlbumID    int
	OwnerID    int64
	UserID     int64
	Width      int
	Height     int
	Text       string
	Date       int64
	PostID     int
	AccessKey  string
	Likes      int
	UserLikes  bool
	CanComment bool
	Comments   int
	Tags       int
	Reposts    int
	Sizes      []PhotoSize
}

func (*Photo) AttachmentType() AttachmentType { return AttachmentTypePhoto }
func (*Photo) isAttachment()                  {}

// NewPhotoFromNode decodes a photo object
func NewPhotoFromNode(n tree.Node) (*Photo, error) {
	obj, err := requireObject(n, "photo")
	if err != nil {
		return nil, err
	}
	return &Photo{
		ID:         tree.OptInt(obj, "id", 0),
		AlbumID:    tree.OptInt(obj, "album_id", 0),
		OwnerID:    tree.OptLong(obj, "owner_id", 0),
		UserID:     tree.OptLong(obj, "user_id", 0),
		Width:      tree.OptInt(obj, "width", 0),
		Height:     tree.OptInt(obj, "height", 0),
		Text:       tree.OptString(obj, "text", ""),
		Date:       tree.OptLong(obj, "date", 0),
		PostID:     tree.OptInt(obj, "post_id", 0),
		AccessKey:  tree.OptString(obj, "access_key", ""),
		Likes:      optCount(obj, "likes"),
		UserLikes:  optNestedBool(obj, "likes", "user_likes"),
		CanComment: tree.OptBool(obj, "can_comment"),
		Comments:   optCount(obj, "comments"),
		Tags:       optCount(obj, "tags"),
		Reposts:    optCount(obj, "reposts"),
		Sizes:      optPhotoSizes(obj, "sizes"),
	}, nil
}

// Largest returns the widest rendition, or nil when there are none
func (p *Photo) Largest() *PhotoSize {
	var ret *PhotoSize
	for i := range p.Sizes {
		if ret == nil || p.Sizes[i].Width > ret.Width {
			ret = &p.Sizes[i]
		}
	}
	return ret
}

// PhotoAlbum is an "album" attachment
type PhotoAlbum struct {
	ID          int
	OwnerID     int64
	Title       string
	Description string
	Size        int
	Created     int64
	Updated     int64
	ThumbID     int
	ThumbSrc    string
	CanUpload   bool
	Thumb       *Photo
	Sizes       []PhotoSize
}

func (*PhotoAlbum) AttachmentType() AttachmentType { return AttachmentTypeAlbum }
func (*PhotoAlbum) isAttachment()                  {}

// NewPhotoAlbumFromNode decodes a photo album object
func NewPhotoAlbumFromNode(n tree.Node) (*PhotoAlbum, error) {
	obj, err := requireObject(n, "photo album")
	if err != nil {
		return nil, err
	}
	return &PhotoAlbum{
		ID:          tree.OptInt(obj, "id", 0),
		OwnerID:     tree.OptLong(obj, "owner_id", 0),
		Title:       tree.OptString(obj, "title", ""),
		Description: tree.OptString(obj, "description", ""),
		Size:        tree.OptInt(obj, "size", 0),
		Created:     tree.OptLong(obj, "created", 0),
		Updated:     tree.OptLong(obj, "updated", 0),
		ThumbID:     tree.OptInt(obj, "thumb_id", 0),
		ThumbSrc:    tree.OptString(obj, "thumb_src", ""),
		CanUpload:   tree.OptBool(obj, "can_upload"),
		Thumb:       optPhoto(obj, "thumb"),
		Sizes:       optPhotoSizes(obj, "sizes"),
	}, nil
}
