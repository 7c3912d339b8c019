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
	"github.com/samber/lo"

	"github.com/blinklabs-io/vkwire/tree"
)

// AudioAlbum is the album reference embedded in an audio track
type AudioAlbum struct {
	ID        int
	OwnerID   int64
	Title     string
	AccessKey string
	Thumb     string
}

// Audio is an "audio" attachment
type Audio struct {
	ID         int
	OwnerID    int64
	Artist     string
	Title      string
	Duration   int
	URL        string
	LyricsID   int
	GenreID    int
	AccessKey  string
	Date       int64
	IsHQ       bool
	IsExplicit bool
	Album      *AudioAlbum
	MainArtist string
}

func (*Audio) AttachmentType() AttachmentType { return AttachmentTypeAudio }
func (*Audio) isAttachment()                  {}

// NewAudioFromNode decodes an audio object
func NewAudioFromNode(n tree.Node) (*Audio, error) {
	obj, err := requireObject(n, "audio")
	if err != nil {
		return nil, err
	}
	ret := &Audio{
		ID:         tree.OptInt(obj, "id", 0),
		OwnerID:    tree.OptLong(obj, "owner_id", 0),
		Artist:     tree.OptString(obj, "artist", ""),
		Title:      tree.OptString(obj, "title", ""),
		Duration:   tree.OptInt(obj, "duration", 0),
		URL:        tree.OptString(obj, "url", ""),
		LyricsID:   tree.OptInt(obj, "lyrics_id", 0),
		GenreID:    tree.GetFirstInt(obj, 0, "genre_id", "genre"),
		AccessKey:  tree.OptString(obj, "access_key", ""),
		Date:       tree.OptLong(obj, "date", 0),
		IsHQ:       tree.OptBool(obj, "is_hq"),
		IsExplicit: tree.OptBool(obj, "is_explicit"),
		MainArtist: firstArtistName(obj),
	}
	if album, ok := tree.HasObject(obj, "album"); ok {
		ret.Album = &AudioAlbum{
			ID:        tree.OptInt(album, "id", 0),
			OwnerID:   tree.OptLong(album, "owner_id", 0),
			Title:     tree.OptString(album, "title", ""),
			AccessKey: tree.OptString(album, "access_key", ""),
			Thumb:     audioThumb(album, "thumb"),
		}
	}
	return ret, nil
}

// audioThumb reads the best cover of a {"photo_300", "photo_600", ...} object
func audioThumb(obj *tree.Object, key string) string {
	thumb, ok := tree.HasObject(obj, key)
	if !ok {
		return ""
	}
	return tree.GetFirstString(thumb, "", "photo_600", "photo_300", "photo_270", "photo_135", "photo_68")
}

func firstArtistName(obj *tree.Object) string {
	artists, ok := tree.HasArray(obj, "main_artists")
	if !ok {
		return ""
	}
	first, ok := tree.OptObjectAt(artists, 0)
	if !ok {
		return ""
	}
	return tree.OptString(first, "name", "")
}

// AudioMessage is a voice message attachment
type AudioMessage struct {
	ID              int
	OwnerID         int64
	Duration        int
	Waveform        []int
	LinkOgg         string
	LinkMp3         string
	AccessKey       string
	Transcript      string
	TranscriptState string
	WasListened     bool
}

func (*AudioMessage) AttachmentType() AttachmentType { return AttachmentTypeAudioMessage }
func (*AudioMessage) isAttachment()                  {}

// NewAudioMessageFromNode decodes a voice message object
func NewAudioMessageFromNode(n tree.Node) (*AudioMessage, error) {
	obj, err := requireObject(n, "audio message")
	if err != nil {
		return nil, err
	}
	return &AudioMessage{
		ID:              tree.OptInt(obj, "id", 0),
		OwnerID:         tree.OptLong(obj, "owner_id", 0),
		Duration:        tree.OptInt(obj, "duration", 0),
		Waveform:        tree.OptIntArray(obj, "waveform", nil),
		LinkOgg:         tree.OptString(obj, "link_ogg", ""),
		LinkMp3:         tree.OptString(obj, "link_mp3", ""),
		AccessKey:       tree.OptString(obj, "access_key", ""),
		Transcript:      tree.OptString(obj, "transcript", ""),
		TranscriptState: tree.OptString(obj, "transcript_state", ""),
		WasListened:     tree.OptBool(obj, "was_listened"),
	}, nil
}

// AudioPlaylistRef identifies the playlist a followed copy was made from
type AudioPlaylistRef struct {
	ID        int
	OwnerID   int64
	AccessKey string
}

// AudioPlaylist is an "audio_playlist" attachment
type AudioPlaylist struct {
	ID          int
	OwnerID     int64
	Count       int
	Title       string
	Description string
	Genre       string
	Year        int
	UpdateTime  int64
	Artist      string
	Thumb       string
	AccessKey   string
	Original    *AudioPlaylistRef
}

func (*AudioPlaylist) AttachmentType() AttachmentType { return AttachmentTypeAudioPlaylist }
func (*AudioPlaylist) isAttachment()                  {}

// NewAudioPlaylistFromNode decodes an audio playlist object
func NewAudioPlaylistFromNode(n tree.Node) (*AudioPlaylist, error) {
	obj, err := requireObject(n, "audio playlist")
	if err != nil {
		return nil, err
	}
	ret := &AudioPlaylist{
		ID:          tree.OptInt(obj, "id", 0),
		OwnerID:     tree.OptLong(obj, "owner_id", 0),
		Count:       tree.OptInt(obj, "count", 0),
		Title:       tree.OptString(obj, "title", ""),
		Description: tree.OptString(obj, "description", ""),
		Year:        tree.OptInt(obj, "year", 0),
		UpdateTime:  tree.OptLong(obj, "update_time", 0),
		Artist:      firstArtistName(obj),
		Thumb:       audioThumb(obj, "photo"),
		AccessKey:   tree.OptString(obj, "access_key", ""),
	}
	if ret.Artist == "" {
		ret.Artist = tree.OptString(obj, "artist_name", "")
	}
	if genres, ok := tree.HasArray(obj, "genres"); ok {
		names := lo.FilterMap(genres, func(item tree.Node, _ int) (string, bool) {
			genre, ok := tree.AsObject(item)
			if !ok {
				return "", false
			}
			name := tree.OptString(genre, "name", "")
			return name, name != ""
		})
		if len(names) > 0 {
			ret.Genre = names[0]
		}
	}
	if ret.Thumb == "" {
		if thumbs, ok := tree.HasArray(obj, "thumbs"); ok {
			if first, ok := tree.OptObjectAt(thumbs, 0); ok {
				ret.Thumb = tree.GetFirstString(first, "", "photo_600", "photo_300", "photo_270")
			}
		}
	}
	if original, ok := tree.HasObject(obj, "original"); ok {
		ret.Original = &AudioPlaylistRef{
			ID:        tree.GetFirstInt(original, 0, "playlist_id", "id"),
			OwnerID:   tree.OptLong(original, "owner_id", 0),
			AccessKey: tree.OptString(original, "access_key", ""),
		}
	}
	return ret, nil
}

// AudioArtist is an "artist" attachment
type AudioArtist struct {
	ID    string
	Name  string
	Photo string
}

func (*AudioArtist) AttachmentType() AttachmentType { return AttachmentTypeAudioArtist }
func (*AudioArtist) isAttachment()                  {}

// NewAudioArtistFromNode decodes an artist object
func NewAudioArtistFromNode(n tree.Node) (*AudioArtist, error) {
	obj, err := requireObject(n, "audio artist")
	if err != nil {
		return nil, err
	}
	return &AudioArtist{
		ID:    tree.OptString(obj, "id", ""),
		Name:  tree.OptString(obj, "name", ""),
		Photo: largestImageURL(obj, "photo"),
	}, nil
}
