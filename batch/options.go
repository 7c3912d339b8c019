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
	"log/slog"
	"runtime"
)

// PoolConfig holds configuration for a Pool
type PoolConfig struct {
	// Workers is the number of parallel decode workers
	Workers int
	Logger  *slog.Logger
}

// DefaultPoolConfig scales the worker count with the CPU count
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Workers: max(runtime.NumCPU()/2, 2),
	}
}

// PoolOption is a functional option for configuring a Pool
type PoolOption func(*PoolConfig)

// WithWorkers sets the number of parallel decode workers. Values below 1 mean 1.
func WithWorkers(workers int) PoolOption {
	return func(c *PoolConfig) {
		c.Workers = max(workers, 1)
	}
}

// WithLogger specifies the logger used to report failed items
func WithLogger(logger *slog.Logger) PoolOption {
	return func(c *PoolConfig) {
		c.Logger = logger
	}
}
