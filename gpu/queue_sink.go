// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/texfeed"
	"github.com/gogpu/wgpu/hal"
)

// TextureDescriptor describes a width×height RGBA8 texture that frames can
// be written into and sampled from.
func TextureDescriptor(label string, width, height int) (*hal.TextureDescriptor, error) {
	w, h, err := extent(width, height)
	if err != nil {
		return nil, err
	}
	return &hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}, nil
}

// QueueSink uploads frames with hal.Queue.WriteTexture. The texture must be
// RGBA8 and created with CopyDst usage.
//
// X and Y offset the write, so a frame can update a sub-rectangle of a
// larger texture.
type QueueSink struct {
	Queue   hal.Queue
	Texture hal.Texture
	X, Y    uint32
}

// Upload implements texfeed.UploadSink.
func (s *QueueSink) Upload(f texfeed.Frame) error {
	if s.Queue == nil || s.Texture == nil {
		return texfeed.ErrNilSink
	}
	if err := f.Validate(); err != nil {
		return err
	}
	dst, layout, size, err := writeRegion(s.Texture, s.X, s.Y, f.Width, f.Height)
	if err != nil {
		return err
	}

	if err := s.Queue.WriteTexture(dst, f.Pix[:texfeed.RGBA32Bytes(f.Width, f.Height)], layout, size); err != nil {
		texfeed.Logger().Warn("gpu: queue texture write failed",
			slog.Int("width", f.Width),
			slog.Int("height", f.Height),
			slog.Any("err", err))
		return fmt.Errorf("gpu: queue texture write failed: %w", err)
	}

	if lg := texfeed.Logger(); lg.Enabled(context.Background(), slog.LevelDebug) {
		lg.Debug("gpu: queue texture write",
			slog.Int("width", f.Width),
			slog.Int("height", f.Height),
			slog.Uint64("x", uint64(s.X)),
			slog.Uint64("y", uint64(s.Y)))
	}
	return nil
}

// writeRegion builds the copy descriptors for a tightly packed width×height
// RGBA32 block placed at (x, y).
func writeRegion(tex hal.Texture, x, y uint32, width, height int) (*hal.ImageCopyTexture, *hal.ImageDataLayout, *hal.Extent3D, error) {
	w, h, err := extent(width, height)
	if err != nil {
		return nil, nil, nil, err
	}
	dst := &hal.ImageCopyTexture{
		Texture:  tex,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: x, Y: y, Z: 0},
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  w * 4,
		RowsPerImage: h,
	}
	size := &hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}
	return dst, layout, size, nil
}

func extent(width, height int) (uint32, uint32, error) {
	if width <= 0 || height <= 0 || uint64(width) > math.MaxUint32/4 || uint64(height) > math.MaxUint32 {
		return 0, 0, fmt.Errorf("%w: texture size %dx%d", texfeed.ErrDimensionMismatch, width, height)
	}
	return uint32(width), uint32(height), nil //nolint:gosec // range checked above
}
