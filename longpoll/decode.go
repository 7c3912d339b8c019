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

package longpoll

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/blinklabs-io/vkwire/internal/textutil"
	"github.com/blinklabs-io/vkwire/tree"
)

var (
	ErrNotArray      = errors.New("update is not an array")
	ErrTooShort      = errors.New("update is too short")
	ErrInvalidAction = errors.New("update action is not an integer")
	ErrNotObject     = errors.New("response is not an object")
	ErrDecodePanic   = errors.New("update decoder panicked")
)

// Decoder decodes long poll updates. It is read-only after NewDecoder
// returns and may be shared between goroutines.
type Decoder struct {
	logger *slog.Logger
}

// DecoderOptionFunc is a type that represents functions that modify the Decoder config
type DecoderOptionFunc func(*Decoder)

// WithLogger specifies the logger used for skipped updates. If none is
// provided, slog.Default() is used at the time of logging
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// NewDecoder returns a Decoder with the given options applied
func NewDecoder(options ...DecoderOptionFunc) *Decoder {
	d := &Decoder{}
	for _, option := range options {
		option(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

func (d *Decoder) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return slog.Default()
}

// Decode decodes a single update using the default Decoder
func Decode(n tree.Node) (Event, error) {
	return defaultDecoder.Decode(n)
}

// Decode decodes a single update. It returns (nil, nil) when the update
// carries no usable event.
func (d *Decoder) Decode(n tree.Node) (Event, error) {
	arr, ok := tree.AsArray(n)
	if !ok {
		return nil, ErrNotArray
	}
	if len(arr) == 0 {
		return nil, ErrTooShort
	}
	code := tree.OptLongAt(arr, 0, -1)
	if code < 0 {
		return nil, ErrInvalidAction
	}
	action := Action(code)
	required, ok := minLength[action]
	if !ok {
		d.log().Debug("skipping unknown long poll action", "action", int(action))
		return nil, nil
	}
	if len(arr) < required {
		return nil, fmt.Errorf("%w: %s needs %d fields, got %d", ErrTooShort, action, required, len(arr))
	}
	switch action {
	case ActionMessageAdded:
		return wrapMessage(decodeMessage(arr), func(m *Message) Event { return &MessageAdded{*m} }), nil
	case ActionMessageEdited:
		return wrapMessage(decodeMessage(arr), func(m *Message) Event { return &MessageEdited{*m} }), nil
	case ActionMessageChanged:
		return wrapMessage(decodeMessage(arr), func(m *Message) Event { return &MessageChanged{*m} }), nil
	case ActionMessageFlagsSet:
		flags := decodeFlags(arr)
		if flags == nil {
			return nil, nil
		}
		return &MessageFlagsSet{*flags}, nil
	case ActionMessageFlagsReset:
		flags := decodeFlags(arr)
		if flags == nil {
			return nil, nil
		}
		return &MessageFlagsReset{*flags}, nil
	case ActionInputMessagesRead:
		read := decodeRead(arr)
		if read == nil {
			return nil, nil
		}
		return &InputMessagesRead{*read}, nil
	case ActionOutputMessagesRead:
		read := decodeRead(arr)
		if read == nil {
			return nil, nil
		}
		return &OutputMessagesRead{*read}, nil
	case ActionUserOnline:
		return &UserOnline{
			UserID:    -tree.OptLongAt(arr, 1, 0),
			Platform:  tree.OptIntAt(arr, 2, 0),
			Timestamp: tree.OptLongAt(arr, 3, 0),
			AppID:     tree.OptIntAt(arr, 4, 0),
		}, nil
	case ActionUserOffline:
		return &UserOffline{
			UserID:    -tree.OptLongAt(arr, 1, 0),
			IsTimeout: tree.OptIntAt(arr, 2, 0) != 0,
			Timestamp: tree.OptLongAt(arr, 3, 0),
			AppID:     tree.OptIntAt(arr, 4, 0),
		}, nil
	case ActionUserTypingText:
		return &UserTypingText{decodeTyping(arr)}, nil
	case ActionUserTypingVoice:
		return &UserTypingVoice{decodeTyping(arr)}, nil
	case ActionUnreadCounterChanged:
		return &UnreadCounterChanged{
			Count: tree.OptIntAt(arr, 1, 0),
		}, nil
	case ActionReactionChanged:
		ret := decodeReaction(arr)
		if ret == nil {
			return nil, nil
		}
		return ret, nil
	}
	return nil, nil
}

func wrapMessage(m *Message, wrap func(*Message) Event) Event {
	if m == nil {
		return nil
	}
	return wrap(m)
}

// decodeMessage reads [action, id, flags, peer, timestamp, text, extra,
// attachments, random_id, conversation_message_id, edit_time]
func decodeMessage(arr tree.Array) *Message {
	ret := &Message{
		MessageID:             tree.OptIntAt(arr, 1, 0),
		Flags:                 MessageFlags(tree.OptIntAt(arr, 2, 0)),
		PeerID:                tree.OptLongAt(arr, 3, 0),
		Timestamp:             tree.OptLongAt(arr, 4, 0),
		Text:                  textutil.Unescape(tree.OptStringAt(arr, 5, "")),
		RandomID:              tree.OptStringAt(arr, 8, ""),
		ConversationMessageID: tree.OptIntAt(arr, 9, 0),
		EditTime:              tree.OptLongAt(arr, 10, 0),
	}
	if ret.MessageID == 0 {
		return nil
	}
	if extra, ok := tree.OptObjectAt(arr, 6); ok {
		ret.FromID = tree.OptLong(extra, "from", 0)
		ret.SourceText = tree.OptString(extra, "source_text", "")
		ret.SourceAct = tree.OptString(extra, "source_act", "")
		ret.SourceMid = tree.OptLong(extra, "source_mid", 0)
		ret.Payload = tree.OptString(extra, "payload", "")
		if keyboard, ok := tree.HasObject(extra, "keyboard"); ok {
			ret.Keyboard = tree.Render(keyboard)
		}
	}
	if attachments, ok := tree.OptObjectAt(arr, 7); ok {
		ret.HasMedia = attachments.Has("attach1_type")
		if fwd := tree.OptString(attachments, "fwd", ""); fwd != "" {
			ret.Forwarded = strings.Split(fwd, ",")
		}
		ret.Reply = tree.OptString(attachments, "reply", "")
	}
	// Private dialogs omit the sender of incoming messages: it is the peer
	if ret.FromID == 0 && !IsGroupChat(ret.PeerID) && !IsContactChat(ret.PeerID) && !ret.IsOut() {
		ret.FromID = ret.PeerID
	}
	return ret
}

// decodeFlags reads [action, message_id, mask, peer]
func decodeFlags(arr tree.Array) *FlagsUpdate {
	ret := &FlagsUpdate{
		MessageID: tree.OptIntAt(arr, 1, 0),
		Mask:      MessageFlags(tree.OptIntAt(arr, 2, 0)),
		PeerID:    tree.OptLongAt(arr, 3, 0),
	}
	if ret.PeerID == 0 || ret.MessageID == 0 {
		return nil
	}
	return ret
}

// decodeRead reads [action, peer, local_id, unread_count]. A read marker
// without both a peer and a local id points at nothing and yields no event
func decodeRead(arr tree.Array) *ReadUpdate {
	ret := &ReadUpdate{
		PeerID:      tree.OptLongAt(arr, 1, 0),
		LocalID:     tree.OptIntAt(arr, 2, 0),
		UnreadCount: tree.OptIntAt(arr, 3, 0),
	}
	if ret.PeerID == 0 || ret.LocalID == 0 {
		return nil
	}
	return ret
}

// decodeTyping reads [action, peer, [from_ids...], from_ids_count]
func decodeTyping(arr tree.Array) Typing {
	return Typing{
		PeerID:       tree.OptLongAt(arr, 1, 0),
		FromIDs:      tree.OptLongArrayAt(arr, 2, []int64{}),
		FromIDsCount: tree.OptIntAt(arr, 3, 0),
	}
}

// decodeReaction reads [action, type, peer, cmid, (my_reaction), count,
// groups...]. my_reaction is only present for ReactionEventIAdded. Each
// group starts with its own stride: [stride, reaction_id, count, ...].
func decodeReaction(arr tree.Array) *ReactionChanged {
	eventType := parseReactionEventType(tree.OptIntAt(arr, 1, 0))
	if eventType == ReactionEventUnknown {
		return nil
	}
	ret := &ReactionChanged{
		Type:                  eventType,
		PeerID:                tree.OptLongAt(arr, 2, 0),
		ConversationMessageID: tree.OptIntAt(arr, 3, 0),
	}
	countIndex := 4
	if eventType == ReactionEventIAdded {
		ret.MyReaction = tree.OptIntAt(arr, 4, 0)
		countIndex++
	}
	count := tree.OptIntAt(arr, countIndex, 0)
	offset := countIndex + 1
	ret.Reactions = make([]ReactionCount, 0, min(max(count, 0), len(arr)))
	for i := 0; i < count; i++ {
		if offset >= len(arr) {
			break
		}
		stride := tree.OptIntAt(arr, offset, 0)
		if stride < 0 {
			break
		}
		ret.Reactions = append(
			ret.Reactions,
			ReactionCount{
				ReactionID: tree.OptIntAt(arr, offset+1, 0),
				Count:      tree.OptIntAt(arr, offset+2, 0),
			},
		)
		offset += stride + 1
	}
	return ret
}
