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

package textutil_test

import (
	"testing"

	"github.com/blinklabs-io/vkwire/internal/textutil"
	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	testDefs := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "plain", expected: "plain"},
		{input: "a<br>b<br/>c<br />d", expected: "a\nb\nc\nd"},
		{input: "&quot;q&quot; &amp; &lt;", expected: "\"q\" & <"},
		{input: "&lt;br&gt;", expected: "<br>"},
	}
	for _, tc := range testDefs {
		assert.Equal(t, tc.expected, textutil.Unescape(tc.input), tc.input)
	}
}
