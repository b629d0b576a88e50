// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/texfeed"
)

// UpdaterSink uploads frames into a texture implementing
// gpucontext.TextureUpdater. Width and Height are the texture size; frames
// of any other size are rejected before UpdateData is called.
type UpdaterSink struct {
	Texture gpucontext.TextureUpdater
	Width   int
	Height  int
}

// Upload implements texfeed.UploadSink.
func (s *UpdaterSink) Upload(f texfeed.Frame) error {
	if s.Texture == nil {
		return texfeed.ErrNilSink
	}
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Width != s.Width || f.Height != s.Height {
		return &texfeed.DimensionMismatchError{
			SrcWidth: f.Width, SrcHeight: f.Height,
			DstWidth: s.Width, DstHeight: s.Height,
			DstBytes: -1,
		}
	}
	if err := s.Texture.UpdateData(f.Pix[:texfeed.RGBA32Bytes(f.Width, f.Height)]); err != nil {
		return fmt.Errorf("gpu: texture update failed: %w", err)
	}
	return nil
}
