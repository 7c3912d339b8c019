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

// Peer ids above GroupChatOffset address group chats; ids in
// [ContactChatOffset, GroupChatOffset) address contact chats
const (
	GroupChatOffset   int64 = 2_000_000_000
	ContactChatOffset int64 = 1_900_000_000
)

// IsGroupChat reports whether peerID addresses a group chat
func IsGroupChat(peerID int64) bool {
	return peerID > GroupChatOffset
}

// IsContactChat reports whether peerID addresses a contact chat
func IsContactChat(peerID int64) bool {
	return peerID >= ContactChatOffset && peerID < GroupChatOffset
}

// IsCommunity reports whether peerID addresses a community dialog
func IsCommunity(peerID int64) bool {
	return peerID < 0
}

// ChatID returns the local chat id of a group chat peer, or 0
func ChatID(peerID int64) int64 {
	if !IsGroupChat(peerID) {
		return 0
	}
	return peerID - GroupChatOffset
}
