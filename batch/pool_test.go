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

package batch_test

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/blinklabs-io/vkwire/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var errOdd = errors.New("odd")

func decodeEven(data []byte) (any, error) {
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return nil, err
	}
	if v%2 != 0 {
		return nil, errOdd
	}
	return v, nil
}

func numberItems(count int) []*batch.Item {
	data := make([][]byte, count)
	sources := make([]string, count)
	for i := 0; i < count; i++ {
		data[i] = []byte(strconv.Itoa(i))
		sources[i] = "item-" + strconv.Itoa(i)
	}
	return batch.NewItems(sources, data)
}

func TestPoolRun(t *testing.T) {
	defer goleak.VerifyNone(t)
	pool := batch.NewPool(decodeEven, batch.WithWorkers(4))
	items := numberItems(100)
	require.NoError(t, pool.Run(context.Background(), items))
	for i, item := range items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, "item-"+strconv.Itoa(i), item.Source)
		if i%2 == 0 {
			assert.NoError(t, item.Err)
			assert.Equal(t, i, item.Result)
			assert.True(t, item.IsDecoded())
		} else {
			assert.ErrorIs(t, item.Err, errOdd)
			assert.Nil(t, item.Result)
			assert.False(t, item.IsDecoded())
		}
	}
	stats := pool.Stats()
	assert.Equal(t, uint64(50), stats.Decoded)
	assert.Equal(t, uint64(50), stats.Failed)
}

func TestPoolRunPanic(t *testing.T) {
	defer goleak.VerifyNone(t)
	pool := batch.NewPool(func(data []byte) (any, error) {
		if string(data) == "1" {
			panic("boom")
		}
		return string(data), nil
	}, batch.WithWorkers(2))
	items := numberItems(3)
	require.NoError(t, pool.Run(context.Background(), items))
	assert.Equal(t, "0", items[0].Result)
	assert.ErrorIs(t, items[1].Err, batch.ErrDecodePanic)
	assert.Nil(t, items[1].Result)
	assert.Equal(t, "2", items[2].Result)
}

func TestPoolRunCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	var calls atomic.Int64
	pool := batch.NewPool(func(data []byte) (any, error) {
		calls.Add(1)
		return nil, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	items := numberItems(10)
	err := pool.Run(ctx, items)
	require.ErrorIs(t, err, context.Canceled)
	handed := 0
	for _, item := range items {
		if errors.Is(item.Err, context.Canceled) {
			assert.False(t, item.IsDecoded())
			continue
		}
		handed++
	}
	assert.Equal(t, int64(handed), calls.Load())
}

func TestPoolRunEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)
	pool := batch.NewPool(decodeEven)
	require.NoError(t, pool.Run(context.Background(), nil))
	assert.Equal(t, batch.Stats{}, pool.Stats())
}

func TestNewPoolNilDecode(t *testing.T) {
	assert.PanicsWithValue(t, batch.ErrNilDecode, func() {
		batch.NewPool(nil)
	})
}

func TestNewItemsShortSources(t *testing.T) {
	items := batch.NewItems([]string{"a"}, [][]byte{[]byte("x"), []byte("y")})
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Source)
	assert.Equal(t, "", items[1].Source)
	assert.Equal(t, 1, items[1].Index)
}
