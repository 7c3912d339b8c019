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

// Event is implemented by every decoded long poll update
type Event interface {
	Action() Action
	isEvent()
}

// Message is the payload shared by the message added, edited and changed updates
type Message struct {
	MessageID             int
	Flags                 MessageFlags
	PeerID                int64
	Timestamp             int64
	Text                  string
	FromID                int64
	SourceText            string
	SourceAct             string
	SourceMid             int64
	Payload               string
	Keyboard              string
	HasMedia              bool
	Forwarded             []string
	Reply                 string
	RandomID              string
	ConversationMessageID int
	EditTime              int64
}

func (m *Message) IsOut() bool       { return m.Flags.Has(FlagOutbox) }
func (m *Message) IsUnread() bool    { return m.Flags.Has(FlagUnread) }
func (m *Message) IsImportant() bool { return m.Flags.Has(FlagImportant) }
func (m *Message) IsDeleted() bool   { return m.Flags.Has(FlagDeleted) }

type MessageAdded struct {
	Message
}

func (*MessageAdded) Action() Action { return ActionMessageAdded }
func (*MessageAdded) isEvent()       {}

type MessageEdited struct {
	Message
}

func (*MessageEdited) Action() Action { return ActionMessageEdited }
func (*MessageEdited) isEvent()       {}

type MessageChanged struct {
	Message
}

func (*MessageChanged) Action() Action { return ActionMessageChanged }
func (*MessageChanged) isEvent()       {}

// FlagsUpdate is the payload of the flag set and reset updates
type FlagsUpdate struct {
	MessageID int
	Mask      MessageFlags
	PeerID    int64
}

type MessageFlagsSet struct {
	FlagsUpdate
}

func (*MessageFlagsSet) Action() Action { return ActionMessageFlagsSet }
func (*MessageFlagsSet) isEvent()       {}

type MessageFlagsReset struct {
	FlagsUpdate
}

func (*MessageFlagsReset) Action() Action { return ActionMessageFlagsReset }
func (*MessageFlagsReset) isEvent()       {}

// ReadUpdate is the payload of the read updates. Messages up to and
// including LocalID are read.
type ReadUpdate struct {
	PeerID      int64
	LocalID     int
	UnreadCount int
}

type InputMessagesRead struct {
	ReadUpdate
}

func (*InputMessagesRead) Action() Action { return ActionInputMessagesRead }
func (*InputMessagesRead) isEvent()       {}

type OutputMessagesRead struct {
	ReadUpdate
}

func (*OutputMessagesRead) Action() Action { return ActionOutputMessagesRead }
func (*OutputMessagesRead) isEvent()       {}

type UserOnline struct {
	UserID    int64
	Platform  int
	Timestamp int64
	AppID     int
}

func (*UserOnline) Action() Action { return ActionUserOnline }
func (*UserOnline) isEvent()       {}

type UserOffline struct {
	UserID    int64
	IsTimeout bool
	Timestamp int64
	AppID     int
}

func (*UserOffline) Action() Action { return ActionUserOffline }
func (*UserOffline) isEvent()       {}

// Typing is the payload of the typing updates
type Typing struct {
	PeerID       int64
	FromIDs      []int64
	FromIDsCount int
}

type UserTypingText struct {
	Typing
}

func (*UserTypingText) Action() Action { return ActionUserTypingText }
func (*UserTypingText) isEvent()       {}

type UserTypingVoice struct {
	Typing
}

func (*UserTypingVoice) Action() Action { return ActionUserTypingVoice }
func (*UserTypingVoice) isEvent()       {}

type UnreadCounterChanged struct {
	Count int
}

func (*UnreadCounterChanged) Action() Action { return ActionUnreadCounterChanged }
func (*UnreadCounterChanged) isEvent()       {}

// ReactionCount is the number of times one reaction was left on a message
type ReactionCount struct {
	ReactionID int
	Count      int
}

type ReactionChanged struct {
	Type                  ReactionEventType
	PeerID                int64
	ConversationMessageID int
	// MyReaction is only set for ReactionEventIAdded
	MyReaction int
	Reactions  []ReactionCount
}

func (*ReactionChanged) Action() Action { return ActionReactionChanged }
func (*ReactionChanged) isEvent()       {}

// MyReactionChanged reports whether the update is about the current user's own reaction
func (r *ReactionChanged) MyReactionChanged() bool {
	return r.Type == ReactionEventIAdded || r.Type == ReactionEventIDeleted
}
