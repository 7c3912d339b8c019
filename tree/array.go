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
	"fmt"
	"log/slog"
)

// Opt returns the element at index, or nil when index is out of range
func Opt(arr Array, index int) Node {
	if index < 0 || index >= len(arr) {
		return nil
	}
	return arr[index]
}

// OptIntAt returns the 32-bit integer at index, or fallback
func OptIntAt(arr Array, index int, fallback int) int {
	if ret, ok := toInt32(Opt(arr, index)); ok {
		return ret
	}
	return fallback
}

// OptLongAt returns the 64-bit integer at index, or fallback
func OptLongAt(arr Array, index int, fallback int64) int64 {
	if ret, ok := toInt64(Opt(arr, index)); ok {
		return ret
	}
	return fallback
}

// OptStringAt returns the content of the primitive at index, or fallback
func OptStringAt(arr Array, index int, fallback string) string {
	if text, ok := scalarText(Opt(arr, index)); ok {
		return text
	}
	return fallback
}

// OptObjectAt returns the Object at index
func OptObjectAt(arr Array, index int) (*Object, bool) {
	return AsObject(Opt(arr, index))
}

// OptIntArrayAt returns the non-empty nested array at index as 32-bit integers
func OptIntArrayAt(arr Array, index int, fallback []int) []int {
	nested, ok := AsArray(Opt(arr, index))
	if !ok || len(nested) == 0 {
		return fallback
	}
	return intSlice(nested)
}

// OptLongArrayAt returns the non-empty nested array at index as 64-bit integers
func OptLongArrayAt(arr Array, index int, fallback []int64) []int64 {
	nested, ok := AsArray(Opt(arr, index))
	if !ok || len(nested) == 0 {
		return fallback
	}
	return longSlice(nested)
}

// ParseArray decodes every element of a non-empty Array with decode. If n is
// not such an array, or any element fails, the whole call returns fallback.
func ParseArray[T any](n Node, fallback []T, decode func(Node) (T, error)) (ret []T) {
	arr, ok := AsArray(n)
	if !ok || len(arr) == 0 {
		return fallback
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("tree: array element decode panicked", "panic", fmt.Sprint(r))
			ret = fallback
		}
	}()
	list := make([]T, 0, len(arr))
	for i, item := range arr {
		value, err := decode(item)
		if err != nil {
			slog.Debug("tree: array element decode failed", "index", i, "error", err)
			return fallback
		}
		list = append(list, value)
	}
	return list
}
