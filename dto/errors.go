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
	"errors"
	"fmt"

	"github.com/blinklabs-io/vkwire/tree"
)

var (
	ErrNotObject   = errors.New("node is not an object")
	ErrMaxDepth    = errors.New("maximum nesting depth exceeded")
	ErrDecodePanic = errors.New("decoder panicked")
)

// DecodeError indicates that a single record could not be decoded
type DecodeError struct {
	Record string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Record, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// requireObject narrows n to an Object or returns a record-level failure
func requireObject(n tree.Node, record string) (*tree.Object, error) {
	obj, ok := tree.AsObject(n)
	if !ok {
		return nil, &DecodeError{Record: record, Err: ErrNotObject}
	}
	return obj, nil
}

// decodeEntry runs a single entry-level decode and converts a panic into an
// error, so one bad element cannot take down the whole list
func decodeEntry[T any](f func() (T, error)) (ret T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDecodePanic, r)
		}
	}()
	return f()
}
