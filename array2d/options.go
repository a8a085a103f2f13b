// SPDX-License-Identifier: MIT

// Package array2d: functional configuration for performance tunables.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Tunables only: no option changes observable results, only speed.
//   - Zero value works: an Options{} resolves every field to its default, so the
//     zero Array[T] needs no constructor.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package array2d

import (
	"runtime"
	"unsafe"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCacheLineBytes is the assumed cache line size used to size the square
	// blocks of Transpose/Transposed (block = cache line / element size).
	DefaultCacheLineBytes = 64

	// DefaultParallelThreshold is the element count above which FillParallel fans
	// out across workers. At or below it the fill is sequential.
	DefaultParallelThreshold = 10_000

	// DefaultMaxWorkers of 0 means "use runtime.GOMAXPROCS(0)".
	DefaultMaxWorkers = 0
)

// Options carries per-array tunables. Fields are unexported; use WithX.
// A zero field means "use the default".
type Options struct {
	cacheLineBytes    int
	parallelThreshold int
	maxWorkers        int
	thresholdSet      bool // distinguishes WithParallelThreshold(0) from "unset"
}

// Option mutates Options during construction.
type Option func(*Options)

// WithCacheLineBytes overrides the cache line size used for transpose blocking.
// Panics if n <= 0.
func WithCacheLineBytes(n int) Option {
	if n <= 0 {
		panic("array2d: WithCacheLineBytes requires n > 0")
	}

	return func(o *Options) { o.cacheLineBytes = n }
}

// WithParallelThreshold overrides the FillParallel cutoff. Zero forces the
// parallel path for every non-empty array. Panics if n < 0.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic("array2d: WithParallelThreshold requires n >= 0")
	}

	return func(o *Options) {
		o.parallelThreshold = n
		o.thresholdSet = true
	}
}

// WithMaxWorkers caps the number of goroutines used by FillParallel.
// Zero restores the GOMAXPROCS default. Panics if n < 0.
func WithMaxWorkers(n int) Option {
	if n < 0 {
		panic("array2d: WithMaxWorkers requires n >= 0")
	}

	return func(o *Options) { o.maxWorkers = n }
}

// gatherOptions applies opts over the zero Options in order; later options win.
func gatherOptions(opts []Option) Options {
	var o Options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// CacheLineBytes reports the effective cache line size.
func (o Options) CacheLineBytes() int {
	if o.cacheLineBytes <= 0 {
		return DefaultCacheLineBytes
	}

	return o.cacheLineBytes
}

// ParallelThreshold reports the effective FillParallel cutoff.
func (o Options) ParallelThreshold() int {
	if !o.thresholdSet {
		return DefaultParallelThreshold
	}

	return o.parallelThreshold
}

// MaxWorkers reports the effective FillParallel worker cap (always >= 1).
func (o Options) MaxWorkers() int {
	if o.maxWorkers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.maxWorkers
}

// blockSize returns the transpose block edge for element type T:
// cache line bytes / sizeof(T), never less than 1.
func blockSize[T any](o Options) int {
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem <= 0 {
		return o.CacheLineBytes()
	}
	if bs := o.CacheLineBytes() / elem; bs > 1 {
		return bs
	}

	return 1
}
