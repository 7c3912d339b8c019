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

package tree_test

import (
	"testing"

	"github.com/blinklabs-io/vkwire/internal/test"
	"github.com/blinklabs-io/vkwire/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptString(t *testing.T) {
	obj := test.MustObject(`{"s":"text","n":12.5,"b":true,"o":{},"z":null}`)
	assert.Equal(t, "text", tree.OptString(obj, "s", "x"))
	assert.Equal(t, "12.5", tree.OptString(obj, "n", "x"))
	assert.Equal(t, "true", tree.OptString(obj, "b", "x"))
	assert.Equal(t, "x", tree.OptString(obj, "o", "x"))
	assert.Equal(t, "x", tree.OptString(obj, "z", "x"))
	assert.Equal(t, "x", tree.OptString(obj, "missing", "x"))
}

func TestOptInt(t *testing.T) {
	obj := test.MustObject(`{"n":42,"s":"-7","bad":"abc","wide":1099511627776,"o":[]}`)
	assert.Equal(t, 42, tree.OptInt(obj, "n", -1))
	assert.Equal(t, -7, tree.OptInt(obj, "s", -1))
	assert.Equal(t, -1, tree.OptInt(obj, "bad", -1))
	assert.Equal(t, -1, tree.OptInt(obj, "wide", -1))
	assert.Equal(t, -1, tree.OptInt(obj, "o", -1))
	assert.Equal(t, -1, tree.OptInt(obj, "missing", -1))
}

func TestOptLong(t *testing.T) {
	obj := test.MustObject(`{"wide":1099511627776,"s":"2000000001","bad":true}`)
	assert.Equal(t, int64(1099511627776), tree.OptLong(obj, "wide", 0))
	assert.Equal(t, int64(2000000001), tree.OptLong(obj, "s", 0))
	assert.Equal(t, int64(5), tree.OptLong(obj, "bad", 5))
}

func TestOptIntDecimalOnly(t *testing.T) {
	obj := test.MustObject(`{"a":"010","b":"0x1F","c":"1_000","d":"0b11","e":"-007","f":"12.00","g":"12.5","h":"+3","i":"--3"}`)
	assert.Equal(t, 10, tree.OptInt(obj, "a", -1))
	assert.Equal(t, -1, tree.OptInt(obj, "b", -1))
	assert.Equal(t, -1, tree.OptInt(obj, "c", -1))
	assert.Equal(t, -1, tree.OptInt(obj, "d", -1))
	assert.Equal(t, -7, tree.OptInt(obj, "e", -1))
	assert.Equal(t, 12, tree.OptInt(obj, "f", -1))
	assert.Equal(t, -1, tree.OptInt(obj, "g", -1))
	assert.Equal(t, 3, tree.OptInt(obj, "h", -1))
	assert.Equal(t, -1, tree.OptInt(obj, "i", -1))
	assert.Equal(t, int64(10), tree.OptLong(obj, "a", -1))
	assert.Equal(t, int64(-1), tree.OptLong(obj, "b", -1))
}

func TestOptFloatAndDouble(t *testing.T) {
	obj := test.MustObject(`{"f":1.5,"s":"2.25","bad":"x"}`)
	assert.InDelta(t, 1.5, tree.OptFloat(obj, "f", 0), 0.0001)
	assert.InDelta(t, 2.25, tree.OptDouble(obj, "s", 0), 0.0001)
	assert.InDelta(t, 9.0, tree.OptDouble(obj, "bad", 9), 0.0001)

	obj = test.MustObject(`{"hex":"0x1p-2","inf":"Inf","nan":"NaN","exp":"1.5e2","sep":"1_0.5"}`)
	assert.InDelta(t, 9.0, tree.OptDouble(obj, "hex", 9), 0.0001)
	assert.InDelta(t, 9.0, tree.OptDouble(obj, "inf", 9), 0.0001)
	assert.InDelta(t, 9.0, tree.OptDouble(obj, "nan", 9), 0.0001)
	assert.InDelta(t, 150.0, tree.OptDouble(obj, "exp", 9), 0.0001)
	assert.InDelta(t, 9.0, tree.OptDouble(obj, "sep", 9), 0.0001)
}

func TestOptBool(t *testing.T) {
	obj := test.MustObject(`{"t":true,"f":false,"one":1,"zero":0,"two":2,"st":"true","s1":"1","bad":"yes"}`)
	assert.True(t, tree.OptBool(obj, "t"))
	assert.False(t, tree.OptBool(obj, "f"))
	assert.True(t, tree.OptBool(obj, "one"))
	assert.False(t, tree.OptBool(obj, "zero"))
	assert.False(t, tree.OptBool(obj, "two"))
	assert.True(t, tree.OptBool(obj, "st"))
	assert.True(t, tree.OptBool(obj, "s1"))
	assert.False(t, tree.OptBool(obj, "bad"))
	assert.False(t, tree.OptBool(obj, "missing"))
}

func TestGetFirst(t *testing.T) {
	obj := test.MustObject(`{"post_id":{},"id":7,"name":"n","title":"t"}`)
	assert.Equal(t, 7, tree.GetFirstInt(obj, 0, "post_id", "id"))
	assert.Equal(t, int64(7), tree.GetFirstLong(obj, 0, "missing", "id"))
	assert.Equal(t, 3, tree.GetFirstInt(obj, 3, "missing"))
	assert.Equal(t, "t", tree.GetFirstString(obj, "", "title", "name"))
	assert.Equal(t, "n", tree.GetFirstString(obj, "", "post_id", "name"))
	assert.Equal(t, "d", tree.GetFirstString(obj, "d"))
}

func TestHasObjectAndArray(t *testing.T) {
	obj := test.MustObject(`{"o":{"a":1},"empty":[],"arr":[1],"n":null}`)
	nested, ok := tree.HasObject(obj, "o")
	require.True(t, ok)
	assert.Equal(t, 1, tree.OptInt(nested, "a", 0))
	_, ok = tree.HasObject(obj, "arr")
	assert.False(t, ok)
	_, ok = tree.HasObject(obj, "n")
	assert.False(t, ok)

	_, ok = tree.HasArray(obj, "empty")
	assert.False(t, ok)
	arr, ok := tree.HasArray(obj, "arr")
	require.True(t, ok)
	assert.Len(t, arr, 1)
}

func TestOptArrays(t *testing.T) {
	obj := test.MustObject(`{"s":["a",1,{},true],"i":[1,"2","x"],"l":[1099511627776,-1],"empty":[]}`)
	assert.Equal(t, []string{"a", "1", "", "true"}, tree.OptStringArray(obj, "s", nil))
	assert.Equal(t, []int{1, 2, 0}, tree.OptIntArray(obj, "i", nil))
	assert.Equal(t, []int64{1099511627776, -1}, tree.OptLongArray(obj, "l", nil))
	assert.Equal(t, []int{9}, tree.OptIntArray(obj, "empty", []int{9}))
	assert.Nil(t, tree.OptStringArray(obj, "missing", nil))
}
