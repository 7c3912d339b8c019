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
	"bytes"
	"fmt"

	"github.com/go-faster/jx"
)

// Render returns the compact JSON text of a node. It is used to keep the raw
// form of payloads that cannot be modeled, whatever format they arrived in.
func Render(n Node) string {
	var e jx.Encoder
	encodeNode(&e, n)
	return e.String()
}

func encodeNode(e *jx.Encoder, n Node) {
	switch v := n.(type) {
	case Bool:
		e.Bool(bool(v))
	case Number:
		e.Num(jx.Num(v))
	case String:
		e.Str(string(v))
	case Array:
		e.ArrStart()
		for _, item := range v {
			encodeNode(e, item)
		}
		e.ArrEnd()
	case *Object:
		if v == nil {
			e.Null()
			return
		}
		e.ObjStart()
		v.Range(func(key string, value Node) bool {
			e.FieldStart(key)
			encodeNode(e, value)
			return true
		})
		e.ObjEnd()
	default:
		e.Null()
	}
}

// Dump generates an indented string representing a tree for debugging purposes
func Dump(n Node, prefix string) string {
	var ret bytes.Buffer
	switch v := n.(type) {
	case nil:
		return prefix + "<absent>,\n"
	case Null:
		return prefix + "null,\n"
	case Bool:
		return fmt.Sprintf("%s%t,\n", prefix, bool(v))
	case Number:
		return fmt.Sprintf("%s%s,\n", prefix, string(v))
	case String:
		return fmt.Sprintf("%s%q,\n", prefix, string(v))
	case Array:
		ret.WriteString(prefix + "[\n")
		for _, item := range v {
			ret.WriteString(Dump(item, childPrefix(prefix)))
		}
		ret.WriteString(prefix + "],\n")
	case *Object:
		ret.WriteString(prefix + "{\n")
		newPrefix := childPrefix(prefix)
		v.Range(func(key string, value Node) bool {
			// Nested values start on their own line under the key
			switch value.(type) {
			case Array, *Object:
				ret.WriteString(fmt.Sprintf("%s%q =>\n", newPrefix, key))
				ret.WriteString(Dump(value, newPrefix))
			default:
				ret.WriteString(fmt.Sprintf("%s%q => %s", newPrefix, key, Dump(value, "")))
			}
			return true
		})
		ret.WriteString(prefix + "},\n")
	}
	return ret.String()
}

// childPrefix indents by two more spaces. A non-space user prefix is only
// used on the first line.
func childPrefix(prefix string) string {
	newPrefix := prefix
	if len(newPrefix) > 0 && newPrefix[0] != ' ' {
		newPrefix = ""
	}
	return "  " + newPrefix
}
