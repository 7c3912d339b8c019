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

// Package dto decodes canonical trees into typed API records.
//
// Leaf decoders (NewPhotoFromNode, NewVideoFromNode, ...) turn one Object
// into one record and fail only when the node is not an Object. Composite
// decoders (posts with copy history, stories with a parent story, chats with
// members, attachment lists) are methods on Decoder and contain failures per
// entry: one malformed list element is logged and dropped, the rest of the
// list survives.
//
// All decoders are stateless. A Decoder is read-only after NewDecoder
// returns and may be shared between goroutines.
package dto
