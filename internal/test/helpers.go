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

package test

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/blinklabs-io/vkwire/tree"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace and line breaks in hex string
	hexData = strings.Join(strings.Fields(hexData), "")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// MustJSON parses JSON text into a tree. It panics on error, which makes it usable inline.
func MustJSON(text string) tree.Node {
	ret, err := tree.FromJSON([]byte(text))
	if err != nil {
		panic(fmt.Sprintf("error parsing JSON: %s", err))
	}
	return ret
}

// MustObject parses JSON text that must hold an object
func MustObject(text string) *tree.Object {
	ret, ok := tree.AsObject(MustJSON(text))
	if !ok {
		panic("JSON text is not an object")
	}
	return ret
}

// Fixture reads a file from internal/testdata
func Fixture(name string) []byte {
	_, self, _, _ := runtime.Caller(0)
	path := filepath.Join(filepath.Dir(self), "..", "testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("error reading fixture %s: %s", name, err))
	}
	return data
}
