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

// Link is a "link" attachment
type Link struct {
	URL         string
	Title       string
	Caption     string
	Description string
	PreviewPage string
	PreviewURL  string
	Photo       *Photo
}

func (*Link) AttachmentType() AttachmentType { return AttachmentTypeLink }
func (*Link) isAttachment()                  {}

// NewLinkFromNode decodes a link object
func NewLinkFromNode(n tree.Node) (*Link, error) {
	obj, err := requireObject(n, "link")
	if err != nil {
		return nil, err
	}
	return &Link{
		URL:         tree.OptString(obj, "url", ""),
		Title:       tree.OptString(obj, "title", ""),
		Caption:     tree.OptString(obj, "caption", ""),
		Description: tree.OptString(obj, "description", ""),
		PreviewPage: tree.OptString(obj, "preview_page", ""),
		PreviewURL:  tree.OptString(obj, "preview_url", ""),
		Photo:       optPhoto(obj, "photo"),
	}, nil
}

// Article is an "article" attachment
type Article struct {
	ID         int
	OwnerID    int64
	OwnerName  string
	URL        string
	Title      string
	Subtitle   string
	AccessKey  string
	IsFavorite bool
	Photo      *Photo
}

func (*Article) AttachmentType() AttachmentType { return AttachmentTypeArticle }
func (*Article) isAttachment()                  {}

// NewArticleFromNode decodes an article object
func NewArticleFromNode(n tree.Node) (*Article, error) {
	obj, err := requireObject(n, "article")
	if err != nil {
		return nil, err
	}
	return &Article{
		ID:         tree.OptInt(obj, "id", 0),
		OwnerID:    tree.OptLong(obj, "owner_id", 0),
		OwnerName:  tree.OptString(obj, "owner_name", ""),
		URL:        tree.OptString(obj, "url", ""),
		Title:      tree.OptString(obj, "title", ""),
		Subtitle:   tree.OptString(obj, "subtitle", ""),
		AccessKey:  tree.OptString(obj, "access_key", ""),
		IsFavorite: tree.OptBool(obj, "is_favorite"),
		Photo:      optPhoto(obj, "photo"),
	}, nil
}

// WikiPage is a "page" attachment
type WikiPage struct {
	ID        int
	OwnerID   int64
	CreatorID int64
	Title     string
	Source    string
	HTML      string
	ViewURL   string
	Views     int
	Created   int64
	Edited    int64
}

func (*WikiPage) AttachmentType() AttachmentType { return AttachmentTypeWikiPage }
func (*WikiPage) isAttachment()                  {}

// NewWikiPageFromNode decodes a wiki page object. Community pages carry
// group_id instead of owner_id.
func NewWikiPageFromNode(n tree.Node) (*WikiPage, error) {
	obj, err := requireObject(n, "wiki page")
	if err != nil {
		return nil, err
	}
	return &WikiPage{
		ID:        tree.OptInt(obj, "id", 0),
		OwnerID:   tree.GetFirstLong(obj, 0, "owner_id", "group_id"),
		CreatorID: tree.OptLong(obj, "creator_id", 0),
		Title:     tree.OptString(obj, "title", ""),
		Source:    tree.OptString(obj, "source", ""),
		HTML:      tree.OptString(obj, "html", ""),
		ViewURL:   tree.OptString(obj, "view_url", ""),
		Views:     tree.OptInt(obj, "views", 0),
		Created:   tree.OptLong(obj, "created", 0),
		Edited:    tree.OptLong(obj, "edited", 0),
	}, nil
}
