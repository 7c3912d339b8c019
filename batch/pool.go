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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrNilDecode   = errors.New("decode function cannot be nil")
	ErrDecodePanic = errors.New("panic while decoding item")
)

// DecodeFunc turns one raw document into a record
type DecodeFunc func(data []byte) (any, error)

// Pool runs a decode function over batches of items with a fixed number of workers
type Pool struct {
	decode  DecodeFunc
	config  PoolConfig
	metrics metrics
}

// NewPool creates a pool for the given decode function. It panics if decode is nil.
func NewPool(decode DecodeFunc, opts ...PoolOption) *Pool {
	if decode == nil {
		panic(ErrNilDecode)
	}
	config := DefaultPoolConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Pool{
		decode: decode,
		config: config,
	}
}

func (p *Pool) log() *slog.Logger {
	if p.config.Logger != nil {
		return p.config.Logger
	}
	return slog.Default()
}

// Stats returns the counters accumulated over every Run
func (p *Pool) Stats() Stats {
	return p.metrics.snapshot()
}

// Run decodes every item and blocks until the workers are done. Per-item
// failures are stored on the item. The returned error is only set when ctx
// ends before every item was handed to a worker; items not handed out keep
// a nil Result and carry the context error.
func (p *Pool) Run(ctx context.Context, items []*Item) error {
	input := make(chan *Item)
	var wg sync.WaitGroup
	for i := 0; i < min(p.config.Workers, max(len(items), 1)); i++ {
		wg.Add(1)
		go p.worker(input, &wg)
	}
	var err error
	next := 0
feed:
	for next < len(items) {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case input <- items[next]:
			next++
		}
	}
	close(input)
	wg.Wait()
	for _, item := range items[next:] {
		item.Err = err
	}
	return err
}

func (p *Pool) worker(input <-chan *Item, wg *sync.WaitGroup) {
	defer wg.Done()
	for item := range input {
		p.process(item)
		p.metrics.record(item.decodeDuration, item.Err)
		if item.Err != nil {
			p.log().Debug(
				"failed to decode item",
				"index", item.Index,
				"source", item.Source,
				"error", item.Err,
			)
		}
	}
}

func (p *Pool) process(item *Item) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			item.Result = nil
			item.Err = fmt.Errorf("%w: %v", ErrDecodePanic, r)
		}
		item.decodeDuration = time.Since(start)
		item.decoded = true
	}()
	item.Result, item.Err = p.decode(item.Data)
}
