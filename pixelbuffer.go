// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

import "fmt"

// RowOrder is the vertical order in which rows are stored.
type RowOrder uint8

const (
	// TopDown stores the visually topmost row first.
	TopDown RowOrder = iota

	// BottomUp stores the visually bottom row first, as OpenGL readbacks
	// and BMP files do.
	BottomUp
)

// String returns "TopDown" or "BottomUp".
func (o RowOrder) String() string {
	if o == BottomUp {
		return "BottomUp"
	}
	return "TopDown"
}

// PixelBuffer describes a contiguous block of source pixels.
//
// PixelBuffer borrows Pix; it never copies or retains it beyond the call it
// is passed to. The pixel at storage row y, column x starts at
// Pix[y*Stride + x*Format.BytesPerPixel()].
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int

	// Stride is the number of bytes between the starts of two stored rows.
	// Zero means tightly packed.
	Stride int

	Format Format
	Order  RowOrder
}

// NewPixelBuffer wraps pix as a tightly packed top-down buffer and
// validates it.
func NewPixelBuffer(pix []byte, width, height int, format Format) (PixelBuffer, error) {
	b := PixelBuffer{Pix: pix, Width: width, Height: height, Format: format}
	return b, b.Validate()
}

// RowStride returns the effective stride in bytes.
func (b PixelBuffer) RowStride() int {
	if b.Stride == 0 {
		return b.Format.RowBytes(b.Width)
	}
	return b.Stride
}

// Validate checks that the buffer can be read as described. The last row
// may be shorter than Stride as long as it holds Width pixels.
func (b PixelBuffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidBuffer, b.Width, b.Height)
	}
	if !b.Format.IsValid() {
		return fmt.Errorf("%w: unknown format %d", ErrInvalidBuffer, b.Format)
	}
	rowBytes := b.Format.RowBytes(b.Width)
	stride := b.RowStride()
	if stride < rowBytes {
		return fmt.Errorf("%w: stride %d below row size %d", ErrInvalidBuffer, stride, rowBytes)
	}
	need := stride*(b.Height-1) + rowBytes
	if len(b.Pix) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrInvalidBuffer, len(b.Pix), need)
	}
	return nil
}

// Row returns the pixels of storage row y, trimmed to Width pixels.
// Returns nil if y is out of range.
func (b PixelBuffer) Row(y int) []byte {
	if y < 0 || y >= b.Height {
		return nil
	}
	off := y * b.RowStride()
	return b.Pix[off : off+b.Format.RowBytes(b.Width)]
}
