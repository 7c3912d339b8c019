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

// PollAnswer is one option of a poll
type PollAnswer struct {
	ID    int64
	Text  string
	Votes int
	Rate  float64
}

// NewPollAnswerFromNode decodes one poll option
func NewPollAnswerFromNode(n tree.Node) (PollAnswer, error) {
	obj, err := requireObject(n, "poll answer")
	if err != nil {
		return PollAnswer{}, err
	}
	return PollAnswer{
		ID:    tree.OptLong(obj, "id", 0),
		Text:  tree.OptString(obj, "text", ""),
		Votes: tree.OptInt(obj, "votes", 0),
		Rate:  tree.OptDouble(obj, "rate", 0),
	}, nil
}

// Poll is a "poll" attachment
type Poll struct {
	ID        int
	OwnerID   int64
	AuthorID  int64
	Created   int64
	Question  string
	Votes     int
	AnswerIDs []int64
	Anonymous bool
	Multiple  bool
	EndDate   int64
	Closed    bool
	IsBoard   bool
	CanEdit   bool
	CanVote   bool
	CanReport bool
	CanShare  bool
	Answers   []PollAnswer
	Friends   []int64
}

func (*Poll) AttachmentType() AttachmentType { return AttachmentTypePoll }
func (*Poll) isAttachment()                  {}

// NewPollFromNode decodes a poll object. A malformed answer list yields an
// empty answer list rather than a partial one.
func NewPollFromNode(n tree.Node) (*Poll, error) {
	obj, err := requireObject(n, "poll")
	if err != nil {
		return nil, err
	}
	answers, _ := obj.Get("answers")
	ret := &Poll{
		ID:        tree.OptInt(obj, "id", 0),
		OwnerID:   tree.OptLong(obj, "owner_id", 0),
		AuthorID:  tree.OptLong(obj, "author_id", 0),
		Created:   tree.OptLong(obj, "created", 0),
		Question:  tree.OptString(obj, "question", ""),
		Votes:     tree.OptInt(obj, "votes", 0),
		Anonymous: tree.OptBool(obj, "anonymous"),
		Multiple:  tree.OptBool(obj, "multiple"),
		EndDate:   tree.OptLong(obj, "end_date", 0),
		Closed:    tree.OptBool(obj, "closed"),
		IsBoard:   tree.OptBool(obj, "is_board"),
		CanEdit:   tree.OptBool(obj, "can_edit"),
		CanVote:   tree.OptBool(obj, "can_vote"),
		CanReport: tree.OptBool(obj, "can_report"),
		CanShare:  tree.OptBool(obj, "can_share"),
		Answers:   tree.ParseArray(answers, []PollAnswer{}, NewPollAnswerFromNode),
	}
	// Older responses carry a single answer_id
	ret.AnswerIDs = tree.OptLongArray(obj, "answer_ids", nil)
	if ret.AnswerIDs == nil {
		if id := tree.OptLong(obj, "answer_id", 0); id != 0 {
			ret.AnswerIDs = []int64{id}
		}
	}
	if friends, ok := tree.HasArray(obj, "friends"); ok {
		for _, item := range friends {
			if friend, ok := tree.AsObject(item); ok {
				ret.Friends = append(ret.Friends, tree.OptLong(friend, "id", 0))
			}
		}
	}
	return ret, nil
}
