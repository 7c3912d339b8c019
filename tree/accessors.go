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
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// scalarText returns the textual content of a primitive node
func scalarText(n Node) (string, bool) {
	switch v := n.(type) {
	case String:
		return string(v), true
	case Number:
		return string(v), true
	case Bool:
		if v {
			return "true", true
		}
		return "false", true
	}
	return "", false
}

// isDecimalFloat reports whether text is a plain base-10 number with an
// optional exponent. Hex floats, digit separators, inf and nan are rejected
func isDecimalFloat(text string) bool {
	i := 0
	if i < len(text) && (text[i] == '-' || text[i] == '+') {
		i++
	}
	digits := 0
	for ; i < len(text) && isDigit(text[i]); i++ {
		digits++
	}
	if i < len(text) && text[i] == '.' {
		for i++; i < len(text) && isDigit(text[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < len(text) && (text[i] == '-' || text[i] == '+') {
			i++
		}
		exp := 0
		for ; i < len(text) && isDigit(text[i]); i++ {
			exp++
		}
		if exp == 0 {
			return false
		}
	}
	return i == len(text)
}

// decimalInteger strips a zero-only fraction ("12.00") from base-10 integer
// text. Leading zeros are decimal, never octal
func decimalInteger(text string) (string, bool) {
	whole, frac, _ := strings.Cut(text, ".")
	digits := strings.TrimLeft(whole, "+-")
	if len(whole)-len(digits) > 1 || digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return "", false
		}
	}
	if strings.Trim(frac, "0") != "" {
		return "", false
	}
	return whole, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func toInt64(n Node) (int64, bool) {
	switch v := n.(type) {
	case Number, String:
		text, _ := scalarText(v)
		whole, ok := decimalInteger(text)
		if !ok {
			slog.Debug("tree: value is not a decimal integer", "value", text)
			return 0, false
		}
		ret, err := strconv.ParseInt(whole, 10, 64)
		if err != nil {
			slog.Debug("tree: value is not an integer", "value", text, "error", err)
			return 0, false
		}
		return ret, true
	}
	return 0, false
}

// Int fields are 32-bit on the wire; anything wider is treated as malformed
func toInt32(n Node) (int, bool) {
	v, ok := toInt64(n)
	if !ok {
		return 0, false
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		slog.Debug("tree: integer out of 32-bit range", "value", v)
		return 0, false
	}
	return int(v), true
}

func toFloat64(n Node) (float64, bool) {
	switch v := n.(type) {
	case Number, String:
		text, _ := scalarText(v)
		if !isDecimalFloat(text) {
			slog.Debug("tree: value is not a decimal number", "value", text)
			return 0, false
		}
		ret, err := cast.ToFloat64E(text)
		if err != nil {
			slog.Debug("tree: value is not a number", "value", text, "error", err)
			return 0, false
		}
		return ret, true
	}
	return 0, false
}

// toBool accepts a boolean, the text "true"/"false", or an integer where 1 means true
func toBool(n Node) (bool, bool) {
	switch v := n.(type) {
	case Bool:
		return bool(v), true
	case Number, String:
		text, _ := scalarText(v)
		switch text {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		if i, ok := toInt64(v); ok {
			return i == 1, true
		}
	}
	return false, false
}

// OptString returns the content of the primitive stored under key, or fallback
func OptString(obj *Object, key string, fallback string) string {
	value, ok := obj.Get(key)
	if !ok {
		return fallback
	}
	if text, ok := scalarText(value); ok {
		return text
	}
	return fallback
}

// OptBool returns the boolean stored under key, or false
func OptBool(obj *Object, key string) bool {
	value, ok := obj.Get(key)
	if !ok {
		return false
	}
	ret, _ := toBool(value)
	return ret
}

// OptInt returns the 32-bit integer stored under key, or fallback
func OptInt(obj *Object, key string, fallback int) int {
	value, ok := obj.Get(key)
	if !ok {
		return fallback
	}
	if ret, ok := toInt32(value); ok {
		return ret
	}
	return fallback
}

// OptLong returns the 64-bit integer stored under key, or fallback
func OptLong(obj *Object, key string, fallback int64) int64 {
	value, ok := obj.Get(key)
	if !ok {
		return fallback
	}
	if ret, ok := toInt64(value); ok {
		return ret
	}
	return fallback
}

// OptFloat returns the number stored under key as a float32, or fallback
func OptFloat(obj *Object, key string, fallback float32) float32 {
	value, ok := obj.Get(key)
	if !ok {
		return fallback
	}
	if ret, ok := toFloat64(value); ok {
		return float32(ret)
	}
	return fallback
}

// OptDouble returns the number stored under key, or fallback
func OptDouble(obj *Object, key string, fallback float64) float64 {
	value, ok := obj.Get(key)
	if !ok {
		return fallback
	}
	if ret, ok := toFloat64(value); ok {
		return ret
	}
	return fallback
}

// GetFirstString returns the first primitive found under any of keys
func GetFirstString(obj *Object, fallback string, keys ...string) string {
	for _, key := range keys {
		value, ok := obj.Get(key)
		if !ok {
			continue
		}
		if text, ok := scalarText(value); ok {
			return text
		}
	}
	return fallback
}

// GetFirstInt returns the first 32-bit integer found under any of keys. The
// server uses different names for the same field across endpoints.
func GetFirstInt(obj *Object, fallback int, keys ...string) int {
	for _, key := range keys {
		value, ok := obj.Get(key)
		if !ok {
			continue
		}
		if ret, ok := toInt32(value); ok {
			return ret
		}
	}
	return fallback
}

// GetFirstLong returns the first 64-bit integer found under any of keys
func GetFirstLong(obj *Object, fallback int64, keys ...string) int64 {
	for _, key := range keys {
		value, ok := obj.Get(key)
		if !ok {
			continue
		}
		if ret, ok := toInt64(value); ok {
			return ret
		}
	}
	return fallback
}

// HasObject returns the Object stored under key. When ok is true the
// returned object is non-nil.
func HasObject(obj *Object, key string) (*Object, bool) {
	value, ok := obj.Get(key)
	if !ok {
		return nil, false
	}
	return AsObject(value)
}

// HasArray returns the non-empty Array stored under key
func HasArray(obj *Object, key string) (Array, bool) {
	value, ok := obj.Get(key)
	if !ok {
		return nil, false
	}
	arr, ok := AsArray(value)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	return arr, true
}

// HasPrimitive reports whether a non-null primitive is stored under key
func HasPrimitive(obj *Object, key string) bool {
	value, ok := obj.Get(key)
	return ok && IsPrimitive(value)
}

// OptStringArray returns the primitives of the array stored under key as
// strings. Non-primitive elements become empty strings.
func OptStringArray(obj *Object, key string, fallback []string) []string {
	arr, ok := HasArray(obj, key)
	if !ok {
		return fallback
	}
	return lo.Map(arr, func(item Node, _ int) string {
		text, _ := scalarText(item)
		return text
	})
}

// OptIntArray returns the array stored under key as 32-bit integers.
// Malformed elements become 0.
func OptIntArray(obj *Object, key string, fallback []int) []int {
	arr, ok := HasArray(obj, key)
	if !ok {
		return fallback
	}
	return intSlice(arr)
}

// OptLongArray returns the array stored under key as 64-bit integers.
// Malformed elements become 0.
func OptLongArray(obj *Object, key string, fallback []int64) []int64 {
	arr, ok := HasArray(obj, key)
	if !ok {
		return fallback
	}
	return longSlice(arr)
}

func intSlice(arr Array) []int {
	return lo.Map(arr, func(item Node, _ int) int {
		ret, _ := toInt32(item)
		return ret
	})
}

func longSlice(arr Array) []int64 {
	return lo.Map(arr, func(item Node, _ int) int64 {
		ret, _ := toInt64(item)
		return ret
	})
}
