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
	"fmt"
)

// Action is the leading discriminator of a long poll update
type Action int

const (
	ActionMessageFlagsSet      Action = 2
	ActionMessageFlagsReset    Action = 3
	ActionMessageAdded         Action = 4
	ActionMessageEdited        Action = 5
	ActionInputMessagesRead    Action = 6
	ActionOutputMessagesRead   Action = 7
	ActionUserOnline           Action = 8
	ActionUserOffline          Action = 9
	ActionMessageChanged       Action = 18
	ActionUserTypingText       Action = 63
	ActionUserTypingVoice      Action = 64
	ActionUnreadCounterChanged Action = 80
	ActionReactionChanged      Action = 601
)

func (a Action) String() string {
	switch a {
	case ActionMessageFlagsSet:
		return "MessageFlagsSet"
	case ActionMessageFlagsReset:
		return "MessageFlagsReset"
	case ActionMessageAdded:
		return "MessageAdded"
	case ActionMessageEdited:
		return "MessageEdited"
	case ActionInputMessagesRead:
		return "InputMessagesRead"
	case ActionOutputMessagesRead:
		return "OutputMessagesRead"
	case ActionUserOnline:
		return "UserOnline"
	case ActionUserOffline:
		return "UserOffline"
	case ActionMessageChanged:
		return "MessageChanged"
	case ActionUserTypingText:
		return "UserTypingText"
	case ActionUserTypingVoice:
		return "UserTypingVoice"
	case ActionUnreadCounterChanged:
		return "UnreadCounterChanged"
	case ActionReactionChanged:
		return "ReactionChanged"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// minLength is the shortest update each action can be read from, counting
// the action code itself
var minLength = map[Action]int{
	ActionMessageFlagsSet:      4,
	ActionMessageFlagsReset:    4,
	ActionMessageAdded:         4,
	ActionMessageEdited:        4,
	ActionMessageChanged:       4,
	ActionInputMessagesRead:    3,
	ActionOutputMessagesRead:   3,
	ActionUserOnline:           2,
	ActionUserOffline:          2,
	ActionUserTypingText:       2,
	ActionUserTypingVoice:      2,
	ActionUnreadCounterChanged: 2,
	ActionReactionChanged:      4,
}

// ReactionEventType is the sub-discriminator of ActionReactionChanged
type ReactionEventType int

const (
	ReactionEventUnknown        ReactionEventType = 0
	ReactionEventIAdded         ReactionEventType = 1
	ReactionEventIDeleted       ReactionEventType = 2
	ReactionEventSomeoneAdded   ReactionEventType = 3
	ReactionEventSomeoneDeleted ReactionEventType = 4
)

func parseReactionEventType(v int) ReactionEventType {
	switch ReactionEventType(v) {
	case ReactionEventIAdded, ReactionEventIDeleted, ReactionEventSomeoneAdded, ReactionEventSomeoneDeleted:
		return ReactionEventType(v)
	}
	return ReactionEventUnknown
}

// MessageFlags is the flag mask carried by message updates
type MessageFlags int

const (
	FlagUnread    MessageFlags = 1
	FlagOutbox    MessageFlags = 2
	FlagImportant MessageFlags = 8
	FlagDeleted   MessageFlags = 128
)

// Has reports whether every bit of flag is set
func (f MessageFlags) Has(flag MessageFlags) bool {
	return f&flag == flag
}

// Reasons for a "failed" long poll response
const (
	FailedHistoryOutdated = 1
	FailedKeyExpired      = 2
	FailedInfoLost        = 3
	FailedInvalidVersion  = 4
)
