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

// AttachmentType identifies an attachment variant by its wire tag
type AttachmentType string

const (
	AttachmentTypePhoto         AttachmentType = "photo"
	AttachmentTypeVideo         AttachmentType = "video"
	AttachmentTypeAudio         AttachmentType = "audio"
	AttachmentTypeDoc           AttachmentType = "doc"
	AttachmentTypeWall          AttachmentType = "wall"
	AttachmentTypePost          AttachmentType = "post"
	AttachmentTypeFavePost      AttachmentType = "fave_post"
	AttachmentTypeLink          AttachmentType = "link"
	AttachmentTypeArticle       AttachmentType = "article"
	AttachmentTypePoll          AttachmentType = "poll"
	AttachmentTypeWikiPage      AttachmentType = "wiki_page"
	AttachmentTypePage          AttachmentType = "page"
	AttachmentTypeAlbum         AttachmentType = "album"
	AttachmentTypeSticker       AttachmentType = "sticker"
	AttachmentTypeAudioMessage  AttachmentType = "audio_message"
	AttachmentTypeGift          AttachmentType = "gift"
	AttachmentTypeGraffiti      AttachmentType = "graffiti"
	AttachmentTypeStory         AttachmentType = "story"
	AttachmentTypeNarratives    AttachmentType = "narratives"
	AttachmentTypeNarrative     AttachmentType = "narrative"
	AttachmentTypeCall          AttachmentType = "call"
	AttachmentTypeGeo           AttachmentType = "geo"
	AttachmentTypeAudioPlaylist AttachmentType = "audio_playlist"
	AttachmentTypeAudioArtist   AttachmentType = "audio_artist"
	AttachmentTypeArtist        AttachmentType = "artist"
	AttachmentTypeWallReply     AttachmentType = "wall_reply"
	AttachmentTypeEvent         AttachmentType = "event"
	AttachmentTypeMarketAlbum   AttachmentType = "market_album"
	AttachmentTypeMarket        AttachmentType = "market"
	AttachmentTypeProduct       AttachmentType = "product"
	AttachmentTypeNotSupported  AttachmentType = "not_supported"
)

// Attachment is implemented by every decoded attachment variant
type Attachment interface {
	AttachmentType() AttachmentType
	isAttachment()
}

// NotSupported keeps an attachment whose tag has no decoder, with its
// payload rendered back to JSON text
type NotSupported struct {
	Type string
	Body string
}

func (*NotSupported) AttachmentType() AttachmentType { return AttachmentTypeNotSupported }
func (*NotSupported) isAttachment()                  {}

// AttachmentEntry pairs the wire tag with the variant decoded for it. The
// variant type may differ from the tag, e.g. a lottie document becomes a Sticker.
type AttachmentEntry struct {
	Type       AttachmentType
	Attachment Attachment
}

// Attachments is an ordered list of decoded attachments
type Attachments struct {
	Entries []AttachmentEntry
}

// Len returns the number of entries
func (a *Attachments) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Entries)
}

// IsEmpty reports whether there are no entries
func (a *Attachments) IsEmpty() bool {
	return a.Len() == 0
}

// Values returns the decoded variants in wire order
func (a *Attachments) Values() []Attachment {
	if a == nil {
		return nil
	}
	ret := make([]Attachment, 0, len(a.Entries))
	for _, entry := range a.Entries {
		ret = append(ret, entry.Attachment)
	}
	return ret
}

type attachmentDecoderFunc func(d *Decoder, n tree.Node, depth int) (Attachment, error)

// attachmentDecoders is populated in init because several entries recurse
// back into the attachment list decoder
var attachmentDecoders map[AttachmentType]attachmentDecoderFunc

func init() {
	attachmentDecoders = map[AttachmentType]attachmentDecoderFunc{
		AttachmentTypePhoto:         leaf(NewPhotoFromNode),
		AttachmentTypeVideo:         leaf(NewVideoFromNode),
		AttachmentTypeAudio:         leaf(NewAudioFromNode),
		AttachmentTypeDoc:           leaf(decodeDocumentAttachment),
		AttachmentTypeWall:          (*Decoder).decodePostAttachment,
		AttachmentTypePost:          (*Decoder).decodePostAttachment,
		AttachmentTypeFavePost:      (*Decoder).decodePostAttachment,
		AttachmentTypeLink:          leaf(NewLinkFromNode),
		AttachmentTypeArticle:       leaf(NewArticleFromNode),
		AttachmentTypePoll:          leaf(NewPollFromNode),
		AttachmentTypeWikiPage:      leaf(NewWikiPageFromNode),
		AttachmentTypePage:          leaf(NewWikiPageFromNode),
		AttachmentTypeAlbum:         leaf(NewPhotoAlbumFromNode),
		AttachmentTypeSticker:       leaf(NewStickerFromNode),
		AttachmentTypeAudioMessage:  leaf(NewAudioMessageFromNode),
		AttachmentTypeGift:          leaf(NewGiftFromNode),
		AttachmentTypeGraffiti:      leaf(NewGraffitiFromNode),
		AttachmentTypeStory:         (*Decoder).decodeStoryAttachment,
		AttachmentTypeNarratives:    leaf(NewNarrativesFromNode),
		AttachmentTypeNarrative:     leaf(NewNarrativesFromNode),
		AttachmentTypeCall:          leaf(NewCallFromNode),
		AttachmentTypeGeo:           leaf(NewGeoFromNode),
		AttachmentTypeAudioPlaylist: leaf(NewAudioPlaylistFromNode),
		AttachmentTypeAudioArtist:   leaf(NewAudioArtistFromNode),
		AttachmentTypeArtist:        leaf(NewAudioArtistFromNode),
		AttachmentTypeWallReply:     (*Decoder).decodeWallReplyAttachment,
		AttachmentTypeEvent:         leaf(NewEventFromNode),
		AttachmentTypeMarketAlbum:   leaf(NewMarketAlbumFromNode),
		AttachmentTypeMarket:        leaf(NewMarketFromNode),
		AttachmentTypeProduct:       leaf(NewMarketFromNode),
	}
}

func leaf[T Attachment](decode func(tree.Node) (T, error)) attachmentDecoderFunc {
	return func(_ *Decoder, n tree.Node, _ int) (Attachment, error) {
		ret, err := decode(n)
		if err != nil {
			return nil, err
		}
		return ret, nil
	}
}

// IsKnownAttachmentType reports whether tag has a dedicated decoder
func IsKnownAttachmentType(tag string) bool {
	_, ok := attachmentDecoders[AttachmentType(tag)]
	return ok
}

// DecodeAttachments decodes an attachment list using the default Decoder
func DecodeAttachments(n tree.Node) *Attachments {
	return defaultDecoder.DecodeAttachments(n)
}

// DecodeAttachments decodes an Array of {"type": tag, tag: payload} entries.
// Entries without a tag, entries with an ignored tag and entries whose
// decoder fails are dropped; unknown tags are kept as NotSupported. A node
// that is not an Array yields an empty list.
func (d *Decoder) DecodeAttachments(n tree.Node) *Attachments {
	return d.decodeAttachments(n, 0)
}

func (d *Decoder) decodeAttachments(n tree.Node, depth int) *Attachments {
	arr, ok := tree.AsArray(n)
	if !ok || len(arr) == 0 {
		return &Attachments{}
	}
	ret := &Attachments{
		Entries: make([]AttachmentEntry, 0, len(arr)),
	}
	for i, item := range arr {
		obj, ok := tree.AsObject(item)
		if !ok {
			continue
		}
		tag := tree.OptString(obj, "type", "")
		if tag == "" {
			continue
		}
		attachment, err := decodeEntry(func() (Attachment, error) {
			return d.decodeAttachment(tag, obj, depth)
		})
		if err != nil {
			d.log().Debug(
				"dropping attachment",
				"index", i,
				"type", tag,
				"error", err,
			)
			continue
		}
		if attachment == nil {
			continue
		}
		ret.Entries = append(
			ret.Entries,
			AttachmentEntry{
				Type:       AttachmentType(tag),
				Attachment: attachment,
			},
		)
	}
	return ret
}

// DecodeAttachment decodes a single tagged payload. It returns nil without
// an error for ignored tags.
func (d *Decoder) DecodeAttachment(tag string, payload tree.Node) (Attachment, error) {
	entry := tree.ObjectOf(
		tree.Field{Key: "type", Value: tree.String(tag)},
		tree.Field{Key: tag, Value: payload},
	)
	return decodeEntry(func() (Attachment, error) {
		return d.decodeAttachment(tag, entry, 0)
	})
}

func (d *Decoder) decodeAttachment(tag string, entry *tree.Object, depth int) (Attachment, error) {
	payload, _ := entry.Get(tag)
	if decode, ok := attachmentDecoders[AttachmentType(tag)]; ok {
		return decode(d, payload, depth)
	}
	if d.IsIgnored(tag) {
		return nil, nil
	}
	return &NotSupported{
		Type: tag,
		Body: tree.Render(payload),
	}, nil
}
