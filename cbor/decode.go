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

package cbor

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// MaxNestedLevels bounds the depth the upstream decoder will follow inside a single item
const MaxNestedLevels = 256

var ErrUnexpectedEnd = errors.New("unexpected end of CBOR data")

// getDecMode returns a cached DecMode, initializing it on first use.
// Uses sync.Once for thread-safe lazy initialization.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			MaxNestedLevels: MaxNestedLevels,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

// Head describes the initial byte(s) of a CBOR data item
type Head struct {
	MajorType  uint8
	Argument   uint64
	Length     int
	Indefinite bool
}

// ReadHead parses the CBOR head at the given offset without decoding the item content
func ReadHead(data []byte, offset int) (Head, error) {
	if offset < 0 || offset >= len(data) {
		return Head{}, ErrUnexpectedEnd
	}
	firstByte := data[offset]
	head := Head{
		MajorType: firstByte & CborTypeMask,
	}
	additionalInfo := firstByte & CborAdditionalInfoMask
	switch {
	case additionalInfo <= CborMaxUintSimple:
		head.Argument = uint64(additionalInfo)
		head.Length = 1
	case additionalInfo >= 24 && additionalInfo <= 27:
		// 1, 2, 4 or 8 byte big-endian argument follows
		argLen := 1 << (additionalInfo - 24)
		if offset+1+argLen > len(data) {
			return Head{}, ErrUnexpectedEnd
		}
		for i := 0; i < argLen; i++ {
			head.Argument = head.Argument<<8 | uint64(data[offset+1+i])
		}
		head.Length = 1 + argLen
	case additionalInfo == CborIndefinite:
		switch head.MajorType {
		case CborTypeByteString, CborTypeTextString, CborTypeArray, CborTypeMap, CborTypeSimple:
			head.Indefinite = true
			head.Length = 1
		default:
			return Head{}, fmt.Errorf("invalid indefinite length for major type 0x%x", head.MajorType)
		}
	default:
		return Head{}, fmt.Errorf("invalid additional info: %d", additionalInfo)
	}
	return head, nil
}

// StreamDecoder provides sequential CBOR decoding with position tracking.
// It wraps the underlying decoder to track byte offsets of each decoded item.
type StreamDecoder struct {
	dec      *_cbor.Decoder
	decMode  _cbor.DecMode // cached decode mode for reuse in Advance()
	data     []byte
	consumed int // bytes consumed by Advance() calls
}

// NewStreamDecoder creates a decoder for sequential CBOR item extraction with position tracking.
func NewStreamDecoder(data []byte) (*StreamDecoder, error) {
	decMode, err := getDecMode()
	if err != nil {
		return nil, err
	}
	if decMode == nil {
		return nil, errors.New("CBOR decoder mode not initialized")
	}
	return &StreamDecoder{
		dec:     decMode.NewDecoder(bytes.NewReader(data)),
		decMode: decMode,
		data:    data,
	}, nil
}

// Position returns the current byte position in the stream.
func (d *StreamDecoder) Position() int {
	return d.consumed + d.dec.NumBytesRead()
}

// EOF returns true if the decoder has reached the end of the data.
func (d *StreamDecoder) EOF() bool {
	return d.Position() >= len(d.data)
}

// Decode decodes the next CBOR item into dest and returns its byte range.
// Returns (startOffset, length, error).
func (d *StreamDecoder) Decode(dest any) (int, int, error) {
	start := d.Position()
	if err := d.dec.Decode(dest); err != nil {
		return 0, 0, err
	}
	return start, d.Position() - start, nil
}

// Advance moves the decoder position forward by n bytes without decoding.
// This is useful for skipping past headers that were parsed manually.
// Returns an error if n would advance past the end of data.
func (d *StreamDecoder) Advance(n int) error {
	if n < 0 {
		return errors.New("cannot advance by negative amount")
	}
	newPos := d.Position() + n
	if newPos > len(d.data) {
		return errors.New("advance would exceed data bounds")
	}
	d.consumed = newPos
	// Reinitialize decoder with remaining data, reusing cached DecMode
	d.dec = d.decMode.NewDecoder(bytes.NewReader(d.data[d.consumed:]))
	return nil
}

// PeekHead returns the head of the next item without consuming it
func (d *StreamDecoder) PeekHead() (Head, error) {
	return ReadHead(d.data, d.Position())
}

// AtBreak reports whether the next byte is the break marker of an indefinite-length container
func (d *StreamDecoder) AtBreak() bool {
	pos := d.Position()
	return pos < len(d.data) && d.data[pos] == CborBreak
}

// ConsumeBreak moves past the break marker of an indefinite-length container
func (d *StreamDecoder) ConsumeBreak() error {
	if !d.AtBreak() {
		return errors.New("expected break marker")
	}
	return d.Advance(1)
}

// DecodeArrayHeader decodes a CBOR array header and returns the number of elements.
// This advances the position past the header only, not the array contents.
// For indefinite-length arrays the count is -1 and the caller reads until AtBreak().
func (d *StreamDecoder) DecodeArrayHeader() (int, bool, error) {
	return d.decodeContainerHeader(CborTypeArray, "array")
}

// DecodeMapHeader decodes a CBOR map header and returns the number of key-value pairs.
// This advances the position past the header only, not the map contents.
// For indefinite-length maps the count is -1 and the caller reads until AtBreak().
func (d *StreamDecoder) DecodeMapHeader() (int, bool, error) {
	return d.decodeContainerHeader(CborTypeMap, "map")
}

// DecodeTagHeader decodes a CBOR tag header and returns the tag number.
// The tagged content is left for the next call.
func (d *StreamDecoder) DecodeTagHeader() (uint64, error) {
	head, err := d.PeekHead()
	if err != nil {
		return 0, err
	}
	if head.MajorType != CborTypeTag {
		return 0, fmt.Errorf("expected tag (0x%x), got 0x%x", CborTypeTag, head.MajorType)
	}
	if err := d.Advance(head.Length); err != nil {
		return 0, err
	}
	return head.Argument, nil
}

func (d *StreamDecoder) decodeContainerHeader(majorType uint8, name string) (int, bool, error) {
	head, err := d.PeekHead()
	if err != nil {
		return 0, false, err
	}
	if head.MajorType != majorType {
		return 0, false, fmt.Errorf("expected %s (0x%x), got 0x%x", name, majorType, head.MajorType)
	}
	length := -1
	if !head.Indefinite {
		// Use MaxInt32 to prevent overflow when sizing the destination
		if head.Argument > uint64(math.MaxInt32) {
			return 0, false, fmt.Errorf("%s length exceeds maximum int32 value", name)
		}
		length = int(head.Argument)
		// Every element needs at least one byte, which bounds bogus lengths
		if length > len(d.data)-d.Position()-head.Length {
			return 0, false, fmt.Errorf("%s length %d exceeds remaining data", name, length)
		}
	}
	// Advance the decoder position past the header
	if err := d.Advance(head.Length); err != nil {
		return 0, false, err
	}
	return length, head.Indefinite, nil
}
