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

package tree

import (
	"errors"
	"fmt"
)

// MaxNesting bounds container depth accepted by the bridges
const MaxNesting = 512

var (
	ErrTooDeep          = errors.New("nesting exceeds maximum depth")
	ErrTrailingData     = errors.New("trailing data after top-level value")
	ErrEmptyInput       = errors.New("empty input")
	ErrUnsupportedKey   = errors.New("unsupported map key type")
	ErrUnsupportedValue = errors.New("unsupported value type")
	ErrUnknownFormat    = errors.New("unknown wire format")
)

// FormatError indicates that raw bytes could not be bridged into a tree
type FormatError struct {
	Format Format
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
