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

// Package longpoll decodes the positional update arrays delivered by the
// messages long poll server.
//
// Each update is an Array whose first element is an action code; every other
// field is identified only by its index. Decode returns (nil, nil) for
// updates that carry no usable event: unknown actions, unknown reaction
// sub-types, and updates whose required ids are zero.
package longpoll
