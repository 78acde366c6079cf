// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool that runs
// independent units of work in parallel. Workers are spawned once and reused
// across many kernel launches, so a launch costs a few channel sends instead
// of a goroutine per unit.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ForEachUnit(numUnits, 4, func(unit int) {
//	    runBlock(unit)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. The zero value is not usable; call New.
type Pool struct {
	numWorkers int
	jobs       chan *job

	// mu guards closed and the channel: senders hold the read lock, so
	// Close cannot close jobs under an in-flight send.
	mu     sync.RWMutex
	closed bool
}

// job is one ForEachUnit call. Every participating goroutine drains the
// same cursor, so fast workers take more batches than slow ones.
type job struct {
	fn       func(unit int)
	numUnits int
	batch    int
	cursor   atomic.Int64
	helpers  sync.WaitGroup
}

// drain runs batches until the cursor passes numUnits.
func (j *job) drain() {
	for {
		start := int(j.cursor.Add(int64(j.batch))) - j.batch
		if start >= j.numUnits {
			return
		}
		end := min(start+j.batch, j.numUnits)
		for unit := start; unit < end; unit++ {
			j.fn(unit)
		}
	}
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan *job, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

// enlist hands j to as many workers as it has spare batches for. The caller
// is the remaining participant.
func (p *Pool) enlist(j *job) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	numBatches := (j.numUnits + j.batch - 1) / j.batch
	helpers := min(p.numWorkers, numBatches) - 1
	j.helpers.Add(helpers)
	for range helpers {
		p.jobs <- j
	}
}

func (p *Pool) worker() {
	for j := range p.jobs {
		j.drain()
		j.helpers.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Calls already in progress complete;
// later calls run on the caller's goroutine alone. Close may race with
// ForEachUnit, and calling it multiple times is safe.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.jobs)
}

// ForEachUnit calls fn exactly once for every unit id in [0, numUnits) and
// returns when all calls have finished. Units are claimed batchSize at a
// time from a shared atomic cursor; there is no ordering between units.
//
// The calling goroutine drains units too, so a nil or closed pool still
// makes progress, serially.
func (p *Pool) ForEachUnit(numUnits, batchSize int, fn func(unit int)) {
	if numUnits <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	j := &job{fn: fn, numUnits: numUnits, batch: batchSize}

	if p != nil {
		p.enlist(j)
	}
	j.drain()
	j.helpers.Wait()
}
