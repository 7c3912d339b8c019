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
)

func TestRender(t *testing.T) {
	testDefs := []struct {
		name     string
		node     tree.Node
		expected string
	}{
		{name: "absent", node: nil, expected: `null`},
		{name: "null", node: tree.Null{}, expected: `null`},
		{name: "nil object", node: (*tree.Object)(nil), expected: `null`},
		{name: "escaped string", node: tree.String("a\"b\n"), expected: `"a\"b\n"`},
		{name: "number text kept", node: tree.Number("1.50"), expected: `1.50`},
		{name: "empty array", node: tree.Array{}, expected: `[]`},
		{
			name:     "object order kept",
			node:     test.MustJSON(`{ "z" : 1, "a" : [ true , {} ] }`),
			expected: `{"z":1,"a":[true,{}]}`,
		},
	}
	for _, tc := range testDefs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tree.Render(tc.node))
		})
	}
}

func TestDump(t *testing.T) {
	n := test.MustJSON(`{"a":1,"b":[true,null],"c":"x"}`)
	expected := "{\n" +
		"  \"a\" => 1,\n" +
		"  \"b\" =>\n" +
		"  [\n" +
		"    true,\n" +
		"    null,\n" +
		"  ],\n" +
		"  \"c\" => \"x\",\n" +
		"},\n"
	assert.Equal(t, expected, tree.Dump(n, ""))
	assert.Equal(t, "<absent>,\n", tree.Dump(nil, ""))
}
