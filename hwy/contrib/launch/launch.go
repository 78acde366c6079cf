// Copyright 2025 go-highway Authors
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

package launch

import (
	"log/slog"
	"time"

	"github.com/ajroetker/go-highway-act/hwy/contrib/workerpool"
)

// Launcher is the dispatch loop: it computes the number of units for a
// launch and invokes the kernel once per unit. A Launcher holds no per-launch
// state and is safe for concurrent use. A nil *Launcher behaves like
// New() with no options.
type Launcher struct {
	pool        *workerpool.Pool
	metrics     *Metrics
	logger      *slog.Logger
	minParallel int
}

// Option configures a Launcher.
type Option func(*Launcher)

// WithPool runs units on pool. Without a pool units run serially in id order.
func WithPool(pool *workerpool.Pool) Option {
	return func(l *Launcher) {
		l.pool = pool
	}
}

// WithMetrics records every launch in m.
func WithMetrics(m *Metrics) Option {
	return func(l *Launcher) {
		l.metrics = m
	}
}

// WithLogger sets the logger used for debug records of each launch.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Launcher) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMinParallel overrides MinParallelElements.
func WithMinParallel(n int) Option {
	return func(l *Launcher) {
		l.minParallel = max(n, 0)
	}
}

// New creates a Launcher.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		logger:      slog.New(slog.DiscardHandler),
		minParallel: MinParallelElements,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var serial = New()

// Launch runs kernel once for every unit in [0, NumUnits(n, width)), passing
// each the block produced by Partition(unit, width, n). It returns only after
// every unit has finished.
//
// Any positive width gives correct results; it is a tuning parameter.
// A non-positive width or negative n is rejected with a *ConfigError before
// any unit runs.
func (l *Launcher) Launch(kernel string, n, width int, fn func(Block)) error {
	if l == nil {
		l = serial
	}
	if width <= 0 {
		return l.Reject(kernel, NewConfigError(kernel, "block_width", width, ErrInvalidBlockWidth))
	}
	if n < 0 {
		return l.Reject(kernel, NewConfigError(kernel, "n", n, ErrInvalidLength))
	}

	units := NumUnits(n, width)
	parallel := l.pool != nil && units > 1 && n >= l.minParallel

	start := time.Now()
	if parallel {
		l.pool.ForEachUnit(units, UnitBatch, func(unit int) {
			fn(Partition(unit, width, n))
		})
	} else {
		for unit := range units {
			fn(Partition(unit, width, n))
		}
	}
	elapsed := time.Since(start)

	masked := units*width - n
	l.metrics.observeLaunch(kernel, units, masked, elapsed)
	l.logger.Debug("kernel launched",
		slog.String("kernel", kernel),
		slog.Int("n", n),
		slog.Int("block_width", width),
		slog.Int("units", units),
		slog.Int("masked_lanes", masked),
		slog.Bool("parallel", parallel),
		slog.Duration("elapsed", elapsed),
	)
	return nil
}

// Reject records a configuration failure for kernel and returns err.
// Entry points that validate their own arguments call it so that rejected
// calls show up in the same metrics and logs as launches.
func (l *Launcher) Reject(kernel string, err error) error {
	if l == nil {
		l = serial
	}
	l.metrics.observeReject(kernel, err)
	l.logger.Debug("kernel launch rejected",
		slog.String("kernel", kernel),
		slog.String("error", err.Error()),
	)
	return err
}

// Pool returns the pool units run on, or nil for serial launches.
func (l *Launcher) Pool() *workerpool.Pool {
	if l == nil {
		return nil
	}
	return l.pool
}
