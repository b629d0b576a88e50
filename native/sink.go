// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import "github.com/gogpu/texfeed"

// TextureSink adapts a DirectUpload to texfeed.UploadSink for one texture.
type TextureSink struct {
	Direct *DirectUpload
	Handle TextureHandle

	// Sub writes the frame as a sub-rectangle at (X, Y) instead of
	// replacing the whole texture.
	Sub  bool
	X, Y int

	// LastStatus is the native status of the most recent call.
	LastStatus Status
}

// Upload implements texfeed.UploadSink.
func (s *TextureSink) Upload(f texfeed.Frame) error {
	if s.Direct == nil {
		return texfeed.ErrNilSink
	}
	if err := f.Validate(); err != nil {
		return err
	}
	var err error
	if s.Sub {
		s.LastStatus, err = s.Direct.UploadSub(s.Handle, s.X, s.Y, f.Width, f.Height, f.Pix)
	} else {
		s.LastStatus, err = s.Direct.UploadFull(s.Handle, f.Width, f.Height, f.Pix)
	}
	return err
}
