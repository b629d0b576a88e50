// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

import (
	"fmt"
	"runtime"
	"unsafe"
)

// Frame is a filled RGBA32 destination buffer ready for upload.
type Frame struct {
	Pix    []byte
	Width  int
	Height int

	// Alpha is the constant the frame was converted with.
	Alpha uint8
}

// Validate checks that Pix holds Width×Height RGBA32 pixels.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 || len(f.Pix) < RGBA32Bytes(f.Width, f.Height) {
		return &DimensionMismatchError{
			SrcWidth: f.Width, SrcHeight: f.Height,
			DstWidth: f.Width, DstHeight: f.Height,
			DstBytes: len(f.Pix),
		}
	}
	return nil
}

// UploadSink delivers a converted frame to the GPU side.
//
// Upload is synchronous and must be called from the goroutine that owns the
// GPU context. Implementations must not retain f.Pix after returning.
type UploadSink interface {
	Upload(f Frame) error
}

// WithPixels hands fn a raw pointer to the first byte of pix. The pointer is
// valid only until fn returns; pix is kept reachable for exactly that long.
// Native code must not store the pointer.
func WithPixels(pix []byte, fn func(p unsafe.Pointer) error) error {
	if len(pix) == 0 {
		return fmt.Errorf("%w: empty pixel buffer", ErrDimensionMismatch)
	}
	defer runtime.KeepAlive(pix)
	return fn(unsafe.Pointer(unsafe.SliceData(pix)))
}
