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

// Package batch decodes many raw documents in parallel.
//
// A Pool fans items out to a fixed set of workers that each run the same
// decode function. Items are updated in place, so callers read results in
// the order they submitted them regardless of completion order. A failing or
// panicking item never stops the others.
package batch
