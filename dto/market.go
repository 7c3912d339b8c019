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

// MarketCurrency describes the currency of a price
type MarketCurrency struct {
	ID    int
	Name  string
	Title string
}

// MarketPrice keeps amounts as their decimal text in minor units
type MarketPrice struct {
	Amount    string
	OldAmount string
	Text      string
	Currency  MarketCurrency
}

// Market is a "market" or "product" attachment
type Market struct {
	ID           int
	OwnerID      int64
	Title        string
	Description  string
	Price        *MarketPrice
	Availability int
	Date         int64
	SKU          string
	ThumbPhoto   string
	Weight       int
	CategoryName string
	AccessKey    string
	IsFavorite   bool
}

func (*Market) AttachmentType() AttachmentType { return AttachmentTypeMarket }
func (*Market) isAttachment()                  {}

// NewMarketFromNode decodes a market item
func NewMarketFromNode(n tree.Node) (*Market, error) {
	obj, err := requireObject(n, "market")
	if err != nil {
		return nil, err
	}
	ret := &Market{
		ID:           tree.OptInt(obj, "id", 0),
		OwnerID:      tree.OptLong(obj, "owner_id", 0),
		Title:        tree.OptString(obj, "title", ""),
		Description:  tree.OptString(obj, "description", ""),
		Availability: tree.OptInt(obj, "availability", 0),
		Date:         tree.OptLong(obj, "date", 0),
		SKU:          tree.OptString(obj, "sku", ""),
		ThumbPhoto:   tree.OptString(obj, "thumb_photo", ""),
		Weight:       tree.OptInt(obj, "weight", 0),
		AccessKey:    tree.OptString(obj, "access_key", ""),
		IsFavorite:   tree.OptBool(obj, "is_favorite"),
	}
	if category, ok := tree.HasObject(obj, "category"); ok {
		ret.CategoryName = tree.OptString(category, "name", "")
	}
	if price, ok := tree.HasObject(obj, "price"); ok {
		ret.Price = &MarketPrice{
			Amount:    tree.OptString(price, "amount", ""),
			OldAmount: tree.OptString(price, "old_amount", ""),
			Text:      tree.OptString(price, "text", ""),
		}
		if currency, ok := tree.HasObject(price, "currency"); ok {
			ret.Price.Currency = MarketCurrency{
				ID:    tree.OptInt(currency, "id", 0),
				Name:  tree.OptString(currency, "name", ""),
				Title: tree.OptString(currency, "title", ""),
			}
		}
	}
	return ret, nil
}

// MarketAlbum is a "market_album" attachment
type MarketAlbum struct {
	ID          int
	OwnerID     int64
	Title       string
	Count       int
	UpdatedTime int64
	IsMain      bool
	IsHidden    bool
	AccessKey   string
	Photo       *Photo
}

func (*MarketAlbum) AttachmentType() AttachmentType { return AttachmentTypeMarketAlbum }
func (*MarketAlbum) isAttachment()                  {}

// NewMarketAlbumFromNode decodes a market album
func NewMarketAlbumFromNode(n tree.Node) (*MarketAlbum, error) {
	obj, err := requireObject(n, "market album")
	if err != nil {
		return nil, err
	}
	return &MarketAlbum{
		ID:          tree.OptInt(obj, "id", 0),
		OwnerID:     tree.OptLong(obj, "owner_id", 0),
		Title:       tree.OptString(obj, "title", ""),
		Count:       tree.OptInt(obj, "count", 0),
		UpdatedTime: tree.OptLong(obj, "updated_time", 0),
		IsMain:      tree.OptBool(obj, "is_main"),
		IsHidden:    tree.OptBool(obj, "is_hidden"),
		AccessKey:   tree.OptString(obj, "access_key", ""),
		Photo:       optPhoto(obj, "photo"),
	}, nil
}
