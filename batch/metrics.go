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

package batch

import (
	"sync/atomic"
	"time"
)

// Stats is a snapshot of the counters of a Pool
type Stats struct {
	Decoded    uint64
	Failed     uint64
	DecodeTime time.Duration
}

type metrics struct {
	decoded    atomic.Uint64
	failed     atomic.Uint64
	decodeTime atomic.Int64
}

func (m *metrics) record(duration time.Duration, err error) {
	if err != nil {
		m.failed.Add(1)
	} else {
		m.decoded.Add(1)
	}
	m.decodeTime.Add(int64(duration))
}

func (m *metrics) snapshot() Stats {
	return Stats{
		Decoded:    m.decoded.Load(),
		Failed:     m.failed.Load(),
		DecodeTime: time.Duration(m.decodeTime.Load()),
	}
}
