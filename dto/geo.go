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
	"strings"

	"github.com/spf13/cast"

	"github.com/blinklabs-io/vkwire/tree"
)

// GeoPlace is the named place attached to a location
type GeoPlace struct {
	ID        int
	Title     string
	Latitude  float64
	Longitude float64
	Country   string
	City      string
	Address   string
	Icon      string
}

// Geo is a "geo" attachment
type Geo struct {
	Type      string
	Latitude  float64
	Longitude float64
	Showmap   bool
	Place     *GeoPlace
}

func (*Geo) AttachmentType() AttachmentType { return AttachmentTypeGeo }
func (*Geo) isAttachment()                  {}

// NewGeoFromNode decodes a location. Coordinates arrive either as a
// "lat lon" string or as {"latitude", "longitude"}.
func NewGeoFromNode(n tree.Node) (*Geo, error) {
	obj, err := requireObject(n, "geo")
	if err != nil {
		return nil, err
	}
	ret := &Geo{
		Type:    tree.OptString(obj, "type", ""),
		Showmap: tree.OptBool(obj, "showmap"),
	}
	if coords, ok := tree.HasObject(obj, "coordinates"); ok {
		ret.Latitude = tree.OptDouble(coords, "latitude", 0)
		ret.Longitude = tree.OptDouble(coords, "longitude", 0)
	} else {
		parts := strings.Fields(tree.OptString(obj, "coordinates", ""))
		if len(parts) == 2 {
			ret.Latitude = cast.ToFloat64(parts[0])
			ret.Longitude = cast.ToFloat64(parts[1])
		}
	}
	if place, ok := tree.HasObject(obj, "place"); ok {
		ret.Place = &GeoPlace{
			ID:        tree.OptInt(place, "id", 0),
			Title:     tree.OptString(place, "title", ""),
			Latitude:  tree.OptDouble(place, "latitude", 0),
			Longitude: tree.OptDouble(place, "longitude", 0),
			Country:   tree.OptString(place, "country", ""),
			City:      tree.OptString(place, "city", ""),
			Address:   tree.OptString(place, "address", ""),
			Icon:      tree.OptString(place, "icon", ""),
		}
	}
	return ret, nil
}
