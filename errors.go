// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

import (
	"errors"
	"fmt"
)

// Errors returned by transfer and upload operations.
var (
	// ErrDimensionMismatch is returned when the destination does not match
	// the source extents under the 1:1 pixel mapping.
	ErrDimensionMismatch = errors.New("texfeed: dimension mismatch")

	// ErrInvalidBuffer is returned when a PixelBuffer is malformed
	// (unknown format, non-positive size, short stride or short data).
	ErrInvalidBuffer = errors.New("texfeed: invalid pixel buffer")

	// ErrNativeSymbolUnresolved is returned when the native upload library
	// or one of its entry points cannot be located.
	ErrNativeSymbolUnresolved = errors.New("texfeed: native symbol unresolved")

	// ErrNativeUploadFailed is returned when a native upload call reports a
	// non-success status.
	ErrNativeUploadFailed = errors.New("texfeed: native upload failed")

	// ErrNilSink is returned when an Updater or upload wrapper has no sink
	// or image to deliver frames to.
	ErrNilSink = errors.New("texfeed: nil upload sink")
)

// DimensionMismatchError describes a source/destination geometry conflict.
// It matches ErrDimensionMismatch with errors.Is.
type DimensionMismatchError struct {
	SrcWidth, SrcHeight int
	DstWidth, DstHeight int

	// DstBytes is the destination capacity in bytes, or -1 when the
	// capacity was not the cause.
	DstBytes int
}

func (e *DimensionMismatchError) Error() string {
	if e.DstBytes >= 0 {
		return fmt.Sprintf("%v: %dx%d RGBA32 needs %d bytes, destination has %d",
			ErrDimensionMismatch, e.DstWidth, e.DstHeight, e.DstWidth*e.DstHeight*4, e.DstBytes)
	}
	return fmt.Sprintf("%v: source %dx%d, destination %dx%d",
		ErrDimensionMismatch, e.SrcWidth, e.SrcHeight, e.DstWidth, e.DstHeight)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}

// checkGeometry reports whether a w×h source maps 1:1 onto a texWidth×texHeight
// destination backed by dstLen bytes.
func checkGeometry(w, h, texWidth, texHeight, dstLen int) error {
	if w != texWidth || h != texHeight {
		return &DimensionMismatchError{
			SrcWidth: w, SrcHeight: h,
			DstWidth: texWidth, DstHeight: texHeight,
			DstBytes: -1,
		}
	}
	if dstLen < RGBA32Bytes(texWidth, texHeight) {
		return &DimensionMismatchError{
			SrcWidth: w, SrcHeight: h,
			DstWidth: texWidth, DstHeight: texHeight,
			DstBytes: dstLen,
		}
	}
	return nil
}

// RGBA32Bytes returns the size of a tightly packed RGBA32 buffer.
func RGBA32Bytes(width, height int) int {
	return width * height * 4
}
