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

// optCount reads the "count" field of the nested object stored under key
func optCount(obj *tree.Object, key string) int {
	nested, ok := tree.HasObject(obj, key)
	if !ok {
		return 0
	}
	return tree.OptInt(nested, "count", 0)
}

// optNestedBool reads a boolean field of the nested object stored under key
func optNestedBool(obj *tree.Object, key string, field string) bool {
	nested, ok := tree.HasObject(obj, key)
	if !ok {
		return false
	}
	return tree.OptBool(nested, field)
}

// largestImageURL picks the url of the widest entry of an image list
// shaped like [{"url", "width", "height"}]
func largestImageURL(obj *tree.Object, key string) string {
	arr, ok := tree.HasArray(obj, key)
	if !ok {
		return ""
	}
	var ret string
	best := -1
	for _, item := range arr {
		image, ok := tree.AsObject(item)
		if !ok {
			continue
		}
		width := tree.OptInt(image, "width", 0)
		if width > best {
			best = width
			ret = tree.GetFirstString(image, "", "url", "src")
		}
	}
	return ret
}

// optPhoto decodes an optional nested photo; a malformed one is dropped
func optPhoto(obj *tree.Object, key string) *Photo {
	nested, ok := tree.HasObject(obj, key)
	if !ok {
		return nil
	}
	ret, err := NewPhotoFromNode(nested)
	if err != nil {
		return nil
	}
	return ret
}
