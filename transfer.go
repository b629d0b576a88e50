// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

import (
	"context"
	"fmt"
	"image"
	"log/slog"
)

// Engine converts source pixel buffers into RGBA32 destination buffers.
//
// The zero Engine copies rows in storage order. Set Rows to change which
// source row feeds each destination row; destination rows are always
// written top-down.
type Engine struct {
	Rows RowMapper
}

// Transfer converts src into dst, a texWidth×texHeight RGBA32 buffer, with
// every alpha byte set to alpha.
//
// Geometry is validated before anything is written: a source whose extents
// differ from texWidth×texHeight, or a dst shorter than texWidth*texHeight*4
// bytes, fails with ErrDimensionMismatch and leaves dst untouched.
func (e Engine) Transfer(src PixelBuffer, dst []byte, texWidth, texHeight int, alpha uint8) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if err := checkGeometry(src.Width, src.Height, texWidth, texHeight, len(dst)); err != nil {
		return err
	}
	return e.transferRows(src, dst, texWidth*4, alpha)
}

// TransferImage converts src into dst, whose bounds must match the source
// extents. dst.Stride may exceed 4*width.
func (e Engine) TransferImage(src PixelBuffer, dst *image.RGBA, alpha uint8) error {
	if err := src.Validate(); err != nil {
		return err
	}
	if dst == nil {
		return fmt.Errorf("%w: nil destination image", ErrDimensionMismatch)
	}
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	if src.Width != w || src.Height != h {
		return &DimensionMismatchError{
			SrcWidth: src.Width, SrcHeight: src.Height,
			DstWidth: w, DstHeight: h,
			DstBytes: -1,
		}
	}
	if need := dst.Stride*(h-1) + w*4; dst.Stride < w*4 || len(dst.Pix) < need {
		return &DimensionMismatchError{
			SrcWidth: src.Width, SrcHeight: src.Height,
			DstWidth: w, DstHeight: h,
			DstBytes: len(dst.Pix),
		}
	}
	return e.transferRows(src, dst.Pix, dst.Stride, alpha)
}

// transferRows runs ConvertRow once per destination row. The row mapping is
// checked before the first write so a bad mapper cannot tear the output.
func (e Engine) transferRows(src PixelBuffer, dst []byte, dstStride int, alpha uint8) error {
	rows := e.Rows
	if rows == nil {
		rows = IdentityRows
	}
	h := src.Height
	for i := 0; i < h; i++ {
		if sy := rows(i, h); sy < 0 || sy >= h {
			return fmt.Errorf("%w: row %d maps to source row %d of %d", ErrDimensionMismatch, i, sy, h)
		}
	}

	rowBytes := src.Width * 4
	for i := 0; i < h; i++ {
		off := i * dstStride
		ConvertRow(dst[off:off+rowBytes], src.Row(rows(i, h)), src.Width, src.Format, alpha)
	}

	if lg := Logger(); lg.Enabled(context.Background(), slog.LevelDebug) {
		lg.Debug("texfeed: transfer",
			slog.Int("width", src.Width),
			slog.Int("height", h),
			slog.String("format", src.Format.String()),
			slog.String("order", src.Order.String()),
			slog.Int("alpha", int(alpha)))
	}
	return nil
}

// FlipRows returns MirroredRows when flipVertical is set and IdentityRows
// otherwise. Storage order is taken as is.
func FlipRows(flipVertical bool) RowMapper {
	if flipVertical {
		return MirroredRows
	}
	return IdentityRows
}

// RowsFor returns the mapper that produces an upright destination from a
// source stored in order when flipVertical is false. For a BottomUp source
// the flag is inverted, so callers can reason in visual orientation.
func RowsFor(order RowOrder, flipVertical bool) RowMapper {
	return FlipRows(flipVertical != (order == BottomUp))
}

// Transfer converts src into the texWidth×texHeight RGBA32 buffer dst with a
// constant alpha. Destination row i is read from storage row i, or from
// storage row H-i-1 when flipVertical is set. src.Order is not consulted.
func Transfer(src PixelBuffer, dst []byte, texWidth, texHeight int, alpha uint8, flipVertical bool) error {
	return Engine{Rows: FlipRows(flipVertical)}.Transfer(src, dst, texWidth, texHeight, alpha)
}

// TransferUpright is Transfer without a vertical flip.
func TransferUpright(src PixelBuffer, dst []byte, texWidth, texHeight int, alpha uint8) error {
	return Transfer(src, dst, texWidth, texHeight, alpha, false)
}

// TransferFlipVertical is Transfer with a vertical flip.
func TransferFlipVertical(src PixelBuffer, dst []byte, texWidth, texHeight int, alpha uint8) error {
	return Transfer(src, dst, texWidth, texHeight, alpha, true)
}

// TransferOriented is Transfer with flipVertical taken relative to the
// visual orientation recorded in src.Order: with flipVertical false the
// destination is upright whether src is stored TopDown or BottomUp.
func TransferOriented(src PixelBuffer, dst []byte, texWidth, texHeight int, alpha uint8, flipVertical bool) error {
	return Engine{Rows: RowsFor(src.Order, flipVertical)}.Transfer(src, dst, texWidth, texHeight, alpha)
}

// TransferImage converts src into an RGBA image of the same size, using the
// same row mapping as Transfer.
func TransferImage(src PixelBuffer, dst *image.RGBA, alpha uint8, flipVertical bool) error {
	return Engine{Rows: FlipRows(flipVertical)}.TransferImage(src, dst, alpha)
}
