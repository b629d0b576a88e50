// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

// UpdaterOption configures an Updater during creation.
//
// Example:
//
//	u, err := texfeed.NewUpdater(buf, 640, 480, sink,
//	    texfeed.WithFlipVertical(true),
//	    texfeed.WithAlpha(200),
//	)
type UpdaterOption func(*updaterOptions)

type updaterOptions struct {
	alpha    uint8
	flip     bool
	oriented bool
	rows     RowMapper
}

func defaultUpdaterOptions() updaterOptions {
	return updaterOptions{alpha: Opaque}
}

// WithAlpha sets the constant alpha written to every pixel. Default Opaque.
func WithAlpha(a uint8) UpdaterOption {
	return func(o *updaterOptions) {
		o.alpha = a
	}
}

// WithFlipVertical reverses row order during transfer.
func WithFlipVertical(flip bool) UpdaterOption {
	return func(o *updaterOptions) {
		o.flip = flip
	}
}

// WithOrientedRows makes WithFlipVertical relative to each source's
// RowOrder instead of its storage order: with flip off, BottomUp frames
// come out upright too.
func WithOrientedRows(oriented bool) UpdaterOption {
	return func(o *updaterOptions) {
		o.oriented = oriented
	}
}

// WithRowMapper installs a custom row mapping. It takes precedence over
// WithFlipVertical and WithOrientedRows.
func WithRowMapper(m RowMapper) UpdaterOption {
	return func(o *updaterOptions) {
		o.rows = m
	}
}

// Updater converts one source frame per call into a caller-owned RGBA32
// buffer and hands it to an UploadSink.
//
// For images that fill the buffer themselves, use ImageManagedUpload
// directly instead.
//
// Updater is NOT safe for concurrent use; call it from the render goroutine.
type Updater struct {
	dst    []byte
	width  int
	height int
	sink   UploadSink
	opts   updaterOptions
}

// NewUpdater creates an Updater writing into dst, a width×height RGBA32
// buffer owned by the caller.
func NewUpdater(dst []byte, width, height int, sink UploadSink, opts ...UpdaterOption) (*Updater, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	if err := (Frame{Pix: dst, Width: width, Height: height}).Validate(); err != nil {
		return nil, err
	}
	o := defaultUpdaterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Updater{dst: dst, width: width, height: height, sink: sink, opts: o}, nil
}

// Update transfers src and uploads the result. Errors from either stage are
// returned as-is; nothing is retried, the next frame is the retry.
func (u *Updater) Update(src PixelBuffer) error {
	rows := u.opts.rows
	switch {
	case rows != nil:
	case u.opts.oriented:
		rows = RowsFor(src.Order, u.opts.flip)
	default:
		rows = FlipRows(u.opts.flip)
	}
	if err := (Engine{Rows: rows}).Transfer(src, u.dst, u.width, u.height, u.opts.alpha); err != nil {
		return err
	}
	return u.sink.Upload(u.Frame())
}

// Frame returns the current destination buffer as a Frame.
func (u *Updater) Frame() Frame {
	return Frame{Pix: u.dst, Width: u.width, Height: u.height, Alpha: u.opts.alpha}
}

// Alpha returns the configured alpha constant.
func (u *Updater) Alpha() uint8 {
	return u.opts.alpha
}
