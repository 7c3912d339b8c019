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
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies the variant of a Node
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is a decoded value. A nil Node means the value is absent.
type Node interface {
	Kind() Kind
	isNode()
}

// Null is an explicit null on the wire
type Null struct{}

// Bool is a boolean primitive
type Bool bool

// Number is a numeric primitive kept as its literal decimal text, so that
// no precision is lost before a typed accessor reads it
type Number string

// String is a text primitive
type String string

// Array is an ordered list of nodes. Order is significant.
type Array []Node

// Object is an ordered map of nodes with unique keys
type Object struct {
	fields *orderedmap.OrderedMap[string, Node]
}

// Field is a single key/value pair used to build an Object
type Field struct {
	Key   string
	Value Node
}

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Number) Kind() Kind  { return KindNumber }
func (String) Kind() Kind  { return KindString }
func (Array) Kind() Kind   { return KindArray }
func (*Object) Kind() Kind { return KindObject }

func (Null) isNode()    {}
func (Bool) isNode()    {}
func (Number) isNode()  {}
func (String) isNode()  {}
func (Array) isNode()   {}
func (*Object) isNode() {}

// Int returns a Number node for an integer value
func Int(v int64) Number {
	return Number(strconv.FormatInt(v, 10))
}

// ObjectOf builds an Object from the given fields. A repeated key keeps the
// position of its first occurrence and the value of its last.
func ObjectOf(fields ...Field) *Object {
	obj := newObject()
	for _, field := range fields {
		obj.set(field.Key, field.Value)
	}
	return obj
}

func newObject() *Object {
	return &Object{
		fields: orderedmap.New[string, Node](),
	}
}

func (o *Object) set(key string, value Node) {
	o.fields.Set(key, value)
}

// Get returns the node stored under key
func (o *Object) Get(key string) (Node, bool) {
	if o == nil || o.fields == nil {
		return nil, false
	}
	return o.fields.Get(key)
}

// Has reports whether key is present, whatever its value
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of fields
func (o *Object) Len() int {
	if o == nil || o.fields == nil {
		return 0
	}
	return o.fields.Len()
}

// Keys returns the field names in wire order
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	o.Range(func(key string, _ Node) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Range calls f for each field in wire order until f returns false
func (o *Object) Range(f func(key string, value Node) bool) {
	if o == nil || o.fields == nil {
		return
	}
	for pair := o.fields.Oldest(); pair != nil; pair = pair.Next() {
		if !f(pair.Key, pair.Value) {
			return
		}
	}
}

// AsObject narrows a node to a non-nil Object
func AsObject(n Node) (*Object, bool) {
	obj, ok := n.(*Object)
	if !ok || obj == nil {
		return nil, false
	}
	return obj, true
}

// AsArray narrows a node to an Array
func AsArray(n Node) (Array, bool) {
	arr, ok := n.(Array)
	return arr, ok
}

// IsPrimitive reports whether n is a Bool, Number or String. Null is not a primitive.
func IsPrimitive(n Node) bool {
	switch n.(type) {
	case Bool, Number, String:
		return true
	}
	return false
}

// IsNull reports whether n is absent or an explicit null
func IsNull(n Node) bool {
	switch n.(type) {
	case nil, Null:
		return true
	}
	return false
}
