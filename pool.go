// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

import "sync"

// Pool recycles RGBA32 destination buffers grouped by dimensions.
//
// Rendering layers that own several textures of the same size can keep one
// Pool and avoid a fresh allocation per frame.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][][]byte
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// size. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][][]byte),
		maxSize: maxPerBucket,
	}
}

// Get returns a width×height RGBA32 buffer. Reused buffers keep their old
// contents; every transfer overwrites all bytes. Returns nil for
// non-positive dimensions.
func (p *Pool) Get(width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]byte, RGBA32Bytes(width, height))
}

// Put returns buf to the pool. Buffers whose length does not match
// width×height×4, and buffers beyond the bucket limit, are dropped.
func (p *Pool) Put(buf []byte, width, height int) {
	if width <= 0 || height <= 0 || len(buf) != RGBA32Bytes(width, height) {
		return
	}
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}
