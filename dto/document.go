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

// Document is a "doc" attachment
type Document struct {
	ID           int
	OwnerID      int64
	Title        string
	Size         int64
	Ext          string
	URL          string
	Date         int64
	Type         int
	AccessKey    string
	PreviewSizes []PhotoSize
	VideoSrc     string
	GraffitiSrc  string
}

func (*Document) AttachmentType() AttachmentType { return AttachmentTypeDoc }
func (*Document) isAttachment()                  {}

// NewDocumentFromNode decodes a document object
func NewDocumentFromNode(n tree.Node) (*Document, error) {
	obj, err := requireObject(n, "document")
	if err != nil {
		return nil, err
	}
	ret := &Document{
		ID:        tree.OptInt(obj, "id", 0),
		OwnerID:   tree.OptLong(obj, "owner_id", 0),
		Title:     tree.OptString(obj, "title", ""),
		Size:      tree.OptLong(obj, "size", 0),
		Ext:       tree.OptString(obj, "ext", ""),
		URL:       tree.OptString(obj, "url", ""),
		Date:      tree.OptLong(obj, "date", 0),
		Type:      tree.OptInt(obj, "type", 0),
		AccessKey: tree.OptString(obj, "access_key", ""),
	}
	if preview, ok := tree.HasObject(obj, "preview"); ok {
		if photo, ok := tree.HasObject(preview, "photo"); ok {
			ret.PreviewSizes = optPhotoSizes(photo, "sizes")
		}
		if video, ok := tree.HasObject(preview, "video"); ok {
			ret.VideoSrc = tree.OptString(video, "src", "")
		}
		if graffiti, ok := tree.HasObject(preview, "graffiti"); ok {
			ret.GraffitiSrc = tree.OptString(graffiti, "src", "")
		}
	}
	return ret, nil
}

// decodeDocumentAttachment turns lottie documents into animated stickers
func decodeDocumentAttachment(n tree.Node) (Attachment, error) {
	doc, err := NewDocumentFromNode(n)
	if err != nil {
		return nil, err
	}
	if doc.Ext == "lottie" {
		return &Sticker{
			ID:           doc.ID,
			AnimationURL: doc.URL,
		}, nil
	}
	return doc, nil
}

// StickerImage is one rendition of a sticker
type StickerImage struct {
	URL    string
	Width  int
	Height int
}

// NewStickerImageFromNode decodes one entry of a sticker image list
func NewStickerImageFromNode(n tree.Node) (StickerImage, error) {
	obj, err := requireObject(n, "sticker image")
	if err != nil {
		return StickerImage{}, err
	}
	return StickerImage{
		URL:    tree.OptString(obj, "url", ""),
		Width:  tree.OptInt(obj, "width", 0),
		Height: tree.OptInt(obj, "height", 0),
	}, nil
}

// Sticker is a "sticker" attachment
type Sticker struct {
	ID                   int
	ProductID            int
	Images               []StickerImage
	ImagesWithBackground []StickerImage
	AnimationURL         string
	IsAllowed            bool
}

func (*Sticker) AttachmentType() AttachmentType { return AttachmentTypeSticker }
func (*Sticker) isAttachment()                  {}

// NewStickerFromNode decodes a sticker object
func NewStickerFromNode(n tree.Node) (*Sticker, error) {
	obj, err := requireObject(n, "sticker")
	if err != nil {
		return nil, err
	}
	images, _ := obj.Get("images")
	withBackground, _ := obj.Get("images_with_background")
	ret := &Sticker{
		ID:                   tree.GetFirstInt(obj, 0, "sticker_id", "id"),
		ProductID:            tree.OptInt(obj, "product_id", 0),
		Images:               tree.ParseArray(images, []StickerImage{}, NewStickerImageFromNode),
		ImagesWithBackground: tree.ParseArray(withBackground, []StickerImage{}, NewStickerImageFromNode),
		AnimationURL:         tree.OptString(obj, "animation_url", ""),
		IsAllowed:            tree.OptBool(obj, "is_allowed"),
	}
	if ret.AnimationURL == "" {
		if animations, ok := tree.HasArray(obj, "animations"); ok {
			if first, ok := tree.OptObjectAt(animations, 0); ok {
				ret.AnimationURL = tree.OptString(first, "url", "")
			}
		}
	}
	return ret, nil
}

// Graffiti is a "graffiti" attachment
type Graffiti struct {
	ID        int
	OwnerID   int64
	URL       string
	Width     int
	Height    int
	AccessKey string
}

func (*Graffiti) AttachmentType() AttachmentType { return AttachmentTypeGraffiti }
func (*Graffiti) isAttachment()                  {}

// NewGraffitiFromNode decodes a graffiti object
func NewGraffitiFromNode(n tree.Node) (*Graffiti, error) {
	obj, err := requireObject(n, "graffiti")
	if err != nil {
		return nil, err
	}
	return &Graffiti{
		ID:        tree.OptInt(obj, "id", 0),
		OwnerID:   tree.OptLong(obj, "owner_id", 0),
		URL:       tree.GetFirstString(obj, "", "url", "photo_586", "photo_200"),
		Width:     tree.OptInt(obj, "width", 0),
		Height:    tree.OptInt(obj, "height", 0),
		AccessKey: tree.OptString(obj, "access_key", ""),
	}, nil
}
