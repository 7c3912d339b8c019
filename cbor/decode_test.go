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

package cbor_test

import (
	"testing"

	"github.com/blinklabs-io/vkwire/cbor"
	"github.com/blinklabs-io/vkwire/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTestDefinition struct {
	CborHex   string
	Object    any
	BytesRead int
}

var decodeTests = []decodeTestDefinition{
	// Simple list of numbers
	{
		CborHex:   "83010203",
		Object:    []any{uint64(1), uint64(2), uint64(3)},
		BytesRead: 4,
	},
	// Multiple CBOR objects
	{
		CborHex:   "81018102",
		Object:    []any{uint64(1)},
		BytesRead: 2,
	},
	// Negative integer
	{
		CborHex:   "20",
		Object:    int64(-1),
		BytesRead: 1,
	},
}

func TestStreamDecoderDecode(t *testing.T) {
	for _, tc := range decodeTests {
		t.Run(tc.CborHex, func(t *testing.T) {
			dec, err := cbor.NewStreamDecoder(test.DecodeHexString(tc.CborHex))
			require.NoError(t, err)
			var dest any
			start, bytesRead, err := dec.Decode(&dest)
			require.NoError(t, err)
			assert.Equal(t, 0, start)
			assert.Equal(t, tc.BytesRead, bytesRead)
			assert.Equal(t, tc.Object, dest)
		})
	}
}

func TestReadHead(t *testing.T) {
	testDefs := []struct {
		name     string
		cborHex  string
		expected cbor.Head
		wantErr  bool
	}{
		{
			name:     "small uint",
			cborHex:  "17",
			expected: cbor.Head{MajorType: cbor.CborTypeUint, Argument: 23, Length: 1},
		},
		{
			name:     "one byte argument",
			cborHex:  "1818",
			expected: cbor.Head{MajorType: cbor.CborTypeUint, Argument: 24, Length: 2},
		},
		{
			name:     "two byte map length",
			cborHex:  "b90100",
			expected: cbor.Head{MajorType: cbor.CborTypeMap, Argument: 256, Length: 3},
		},
		{
			name:     "indefinite array",
			cborHex:  "9f",
			expected: cbor.Head{MajorType: cbor.CborTypeArray, Length: 1, Indefinite: true},
		},
		{
			name:    "indefinite uint",
			cborHex: "1f",
			wantErr: true,
		},
		{
			name:    "reserved additional info",
			cborHex: "1c",
			wantErr: true,
		},
		{
			name:    "truncated argument",
			cborHex: "19",
			wantErr: true,
		},
	}
	for _, tc := range testDefs {
		t.Run(tc.name, func(t *testing.T) {
			head, err := cbor.ReadHead(test.DecodeHexString(tc.cborHex), 0)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, head)
		})
	}
}

func TestReadHeadOutOfRange(t *testing.T) {
	_, err := cbor.ReadHead([]byte{0x01}, 1)
	assert.ErrorIs(t, err, cbor.ErrUnexpectedEnd)
	_, err = cbor.ReadHead([]byte{0x01}, -1)
	assert.ErrorIs(t, err, cbor.ErrUnexpectedEnd)
}

func TestStreamDecoderPosition(t *testing.T) {
	// [1, 2, 3]
	data := test.DecodeHexString("83010203")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)
	assert.Equal(t, 0, dec.Position())
	assert.False(t, dec.EOF())

	var result []uint64
	start, length, err := dec.Decode(&result)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, length)
	assert.Equal(t, []uint64{1, 2, 3}, result)
	assert.True(t, dec.EOF())
}

func TestStreamDecoderMapInOrder(t *testing.T) {
	// {"b": 1, "a": 2}
	data := test.DecodeHexString("a2 6162 01 6161 02")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)

	count, indefinite, err := dec.DecodeMapHeader()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.False(t, indefinite)
	assert.Equal(t, 1, dec.Position())

	var keys []string
	var values []uint64
	for i := 0; i < count; i++ {
		var key string
		var value uint64
		_, _, err := dec.Decode(&key)
		require.NoError(t, err)
		_, _, err = dec.Decode(&value)
		require.NoError(t, err)
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal(t, []string{"b", "a"}, keys)
	assert.Equal(t, []uint64{1, 2}, values)
	assert.True(t, dec.EOF())
}

func TestStreamDecoderIndefiniteArray(t *testing.T) {
	// [_ 1, 2]
	data := test.DecodeHexString("9f 01 02 ff")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)

	count, indefinite, err := dec.DecodeArrayHeader()
	require.NoError(t, err)
	assert.Equal(t, -1, count)
	assert.True(t, indefinite)

	var items []uint64
	for !dec.AtBreak() {
		var item uint64
		_, _, err := dec.Decode(&item)
		require.NoError(t, err)
		items = append(items, item)
	}
	require.NoError(t, dec.ConsumeBreak())
	assert.Equal(t, []uint64{1, 2}, items)
	assert.True(t, dec.EOF())
}

func TestStreamDecoderTagHeader(t *testing.T) {
	// 32("abc")
	data := test.DecodeHexString("d820 63616263")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)

	head, err := dec.PeekHead()
	require.NoError(t, err)
	assert.Equal(t, cbor.CborTypeTag, head.MajorType)
	assert.Equal(t, 0, dec.Position())

	tagNumber, err := dec.DecodeTagHeader()
	require.NoError(t, err)
	assert.Equal(t, uint64(32), tagNumber)
	assert.Equal(t, 2, dec.Position())

	var content string
	_, _, err = dec.Decode(&content)
	require.NoError(t, err)
	assert.Equal(t, "abc", content)
}

func TestStreamDecoderHeaderErrors(t *testing.T) {
	testDefs := []struct {
		name    string
		cborHex string
		decode  func(*cbor.StreamDecoder) error
	}{
		{
			name:    "array header on map",
			cborHex: "a0",
			decode: func(dec *cbor.StreamDecoder) error {
				_, _, err := dec.DecodeArrayHeader()
				return err
			},
		},
		{
			name:    "map header on array",
			cborHex: "80",
			decode: func(dec *cbor.StreamDecoder) error {
				_, _, err := dec.DecodeMapHeader()
				return err
			},
		},
		{
			name:    "tag header on uint",
			cborHex: "01",
			decode: func(dec *cbor.StreamDecoder) error {
				_, err := dec.DecodeTagHeader()
				return err
			},
		},
		{
			name:    "array length past end of data",
			cborHex: "9a7fffffff",
			decode: func(dec *cbor.StreamDecoder) error {
				_, _, err := dec.DecodeArrayHeader()
				return err
			},
		},
		{
			name:    "array length over int32",
			cborHex: "9bffffffffffffffff",
			decode: func(dec *cbor.StreamDecoder) error {
				_, _, err := dec.DecodeArrayHeader()
				return err
			},
		},
		{
			name:    "break outside container",
			cborHex: "01",
			decode: func(dec *cbor.StreamDecoder) error {
				return dec.ConsumeBreak()
			},
		},
	}
	for _, tc := range testDefs {
		t.Run(tc.name, func(t *testing.T) {
			dec, err := cbor.NewStreamDecoder(test.DecodeHexString(tc.cborHex))
			require.NoError(t, err)
			assert.Error(t, tc.decode(dec))
		})
	}
}

func TestStreamDecoderAdvanceBounds(t *testing.T) {
	dec, err := cbor.NewStreamDecoder([]byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Error(t, dec.Advance(-1))
	assert.Error(t, dec.Advance(3))
	require.NoError(t, dec.Advance(1))
	assert.Equal(t, 1, dec.Position())

	var value uint64
	_, _, err = dec.Decode(&value)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), value)
}
