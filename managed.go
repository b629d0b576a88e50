// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

import (
	"fmt"
	"unsafe"
)

// ManagedImage is an image object that knows how to write itself into an
// RGBA32 texture buffer given only a raw pointer.
//
// dst points at texWidth*texHeight*4 writable bytes that stay valid for the
// duration of the call only.
type ManagedImage interface {
	CopyToRGBA32(dst unsafe.Pointer, texWidth, texHeight int, alpha uint8) error
	CopyToRGBA32FlipVertical(dst unsafe.Pointer, texWidth, texHeight int, alpha uint8) error
}

// ImageManagedUpload is an UploadSink that lets the source image fill the
// frame buffer through its own routines.
type ImageManagedUpload struct {
	Image ManagedImage

	// Flip selects CopyToRGBA32FlipVertical.
	Flip bool
}

// Upload implements UploadSink.
func (u *ImageManagedUpload) Upload(f Frame) error {
	if u.Image == nil {
		return ErrNilSink
	}
	if err := f.Validate(); err != nil {
		return err
	}
	return WithPixels(f.Pix, func(p unsafe.Pointer) error {
		if u.Flip {
			return u.Image.CopyToRGBA32FlipVertical(p, f.Width, f.Height, f.Alpha)
		}
		return u.Image.CopyToRGBA32(p, f.Width, f.Height, f.Alpha)
	})
}

// SourceImage is a ManagedImage backed by a PixelBuffer. Both copy routines
// run Transfer, so the only difference between them is row order.
type SourceImage struct {
	Buf PixelBuffer
}

// CopyToRGBA32 implements ManagedImage.
func (s *SourceImage) CopyToRGBA32(dst unsafe.Pointer, texWidth, texHeight int, alpha uint8) error {
	return s.copyTo(dst, texWidth, texHeight, alpha, false)
}

// CopyToRGBA32FlipVertical implements ManagedImage.
func (s *SourceImage) CopyToRGBA32FlipVertical(dst unsafe.Pointer, texWidth, texHeight int, alpha uint8) error {
	return s.copyTo(dst, texWidth, texHeight, alpha, true)
}

func (s *SourceImage) copyTo(dst unsafe.Pointer, texWidth, texHeight int, alpha uint8, flip bool) error {
	if dst == nil {
		return fmt.Errorf("%w: nil destination pointer", ErrDimensionMismatch)
	}
	if texWidth <= 0 || texHeight <= 0 {
		return &DimensionMismatchError{
			SrcWidth: s.Buf.Width, SrcHeight: s.Buf.Height,
			DstWidth: texWidth, DstHeight: texHeight,
			DstBytes: -1,
		}
	}
	pix := unsafe.Slice((*byte)(dst), RGBA32Bytes(texWidth, texHeight))
	return Transfer(s.Buf, pix, texWidth, texHeight, alpha, flip)
}
