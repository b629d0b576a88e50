// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sync"
	"unsafe"

	"github.com/gogpu/texfeed"
)

// Default symbol names exported by the texture update library.
const (
	DefaultFullSymbol = "updateTextureRGBA32"
	DefaultSubSymbol  = "updateSubTextureRGBA32"
)

// TextureHandle identifies a GPU texture created by the rendering layer.
// texfeed never interprets it.
type TextureHandle uint32

// Status is the raw status returned by a native upload call.
type Status int32

// StatusOK is the status native upload functions return on success.
const StatusOK Status = 0

// DefaultLibrary returns the platform file name of the texture update
// library.
func DefaultLibrary() string {
	switch runtime.GOOS {
	case "windows":
		return "OpenGLTextureUpdate.dll"
	case "darwin", "ios":
		return "libOpenGLTextureUpdate.dylib"
	default:
		return "libOpenGLTextureUpdate.so"
	}
}

// Option configures a DirectUpload.
type Option func(*DirectUpload)

// WithBinder replaces the goffi binder, mainly for tests and for hosts that
// already hold resolved function pointers.
func WithBinder(b Binder) Option {
	return func(d *DirectUpload) {
		d.binder = b
	}
}

// WithSymbols overrides the full and sub-rectangle symbol names.
func WithSymbols(full, sub string) Option {
	return func(d *DirectUpload) {
		d.fullSymbol = full
		d.subSymbol = sub
	}
}

// DirectUpload replaces texture pixels through two functions exported by a
// native library:
//
//	int updateTextureRGBA32(int texture, int width, int height, void* buffer);
//	int updateSubTextureRGBA32(int texture, int x, int y, int width, int height, void* buffer);
//
// Symbols are resolved once, on first use. A resolution failure is final:
// every later call returns the same error.
//
// DirectUpload must be used from the goroutine that owns the GPU context.
type DirectUpload struct {
	library    string
	fullSymbol string
	subSymbol  string
	binder     Binder

	once    sync.Once
	full    Proc
	sub     Proc
	bindErr error
}

// New returns a DirectUpload for library. Nothing is loaded until the first
// upload or an explicit Resolve.
func New(library string, opts ...Option) *DirectUpload {
	d := &DirectUpload{
		library:    library,
		fullSymbol: DefaultFullSymbol,
		subSymbol:  DefaultSubSymbol,
		binder:     DefaultBinder(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Library returns the configured library name.
func (d *DirectUpload) Library() string {
	return d.library
}

// Resolve binds both symbols now. Hosts call it at startup to surface a
// missing library before the first frame.
func (d *DirectUpload) Resolve() error {
	d.once.Do(d.resolve)
	return d.bindErr
}

func (d *DirectUpload) resolve() {
	full, err := d.binder.Bind(d.library, d.fullSymbol,
		[]ArgKind{ArgInt32, ArgInt32, ArgInt32, ArgPointer})
	if err != nil {
		d.bindErr = &SymbolError{Library: d.library, Symbol: d.fullSymbol, Err: err}
		texfeed.Logger().Warn("native: bind failed", slog.String("library", d.library), slog.Any("err", err))
		return
	}
	sub, err := d.binder.Bind(d.library, d.subSymbol,
		[]ArgKind{ArgInt32, ArgInt32, ArgInt32, ArgInt32, ArgInt32, ArgPointer})
	if err != nil {
		d.bindErr = &SymbolError{Library: d.library, Symbol: d.subSymbol, Err: err}
		texfeed.Logger().Warn("native: bind failed", slog.String("library", d.library), slog.Any("err", err))
		return
	}
	d.full, d.sub = full, sub
	texfeed.Logger().Info("native: texture update library bound",
		slog.String("library", d.library),
		slog.String("full", d.fullSymbol),
		slog.String("sub", d.subSymbol))
}

// UploadFull replaces the whole texture with a width×height RGBA32 buffer.
// The native status is returned unchanged; a status other than StatusOK also
// yields an *UploadError.
func (d *DirectUpload) UploadFull(h TextureHandle, width, height int, pix []byte) (Status, error) {
	if err := d.Resolve(); err != nil {
		return 0, err
	}
	if err := checkRegion(0, 0, width, height, pix); err != nil {
		return 0, err
	}
	tex, w, hh := int32(h), int32(width), int32(height) //nolint:gosec // checked by checkRegion
	return d.call(d.full, d.fullSymbol, h, pix, unsafe.Pointer(&tex), unsafe.Pointer(&w), unsafe.Pointer(&hh))
}

// UploadSub replaces the width×height rectangle at (x, y). pix holds only
// the rectangle, tightly packed.
func (d *DirectUpload) UploadSub(h TextureHandle, x, y, width, height int, pix []byte) (Status, error) {
	if err := d.Resolve(); err != nil {
		return 0, err
	}
	if err := checkRegion(x, y, width, height, pix); err != nil {
		return 0, err
	}
	tex, xo, yo, w, hh := int32(h), int32(x), int32(y), int32(width), int32(height) //nolint:gosec // checked by checkRegion
	return d.call(d.sub, d.subSymbol, h, pix,
		unsafe.Pointer(&tex), unsafe.Pointer(&xo), unsafe.Pointer(&yo), unsafe.Pointer(&w), unsafe.Pointer(&hh))
}

// call appends the buffer pointer to args and invokes p while pix is
// borrowed.
func (d *DirectUpload) call(p Proc, symbol string, h TextureHandle, pix []byte, args ...unsafe.Pointer) (Status, error) {
	var status Status
	err := texfeed.WithPixels(pix, func(ptr unsafe.Pointer) error {
		ret, err := p.Call(append(args, unsafe.Pointer(&ptr))...)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", texfeed.ErrNativeUploadFailed, symbol, err)
		}
		status = Status(ret)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if status != StatusOK {
		texfeed.Logger().Warn("native: upload returned failure",
			slog.String("symbol", symbol),
			slog.Uint64("texture", uint64(h)),
			slog.Int("status", int(status)))
		return status, &UploadError{Symbol: symbol, Handle: h, Status: status}
	}
	return status, nil
}

// checkRegion rejects regions whose far edges or byte size do not fit the
// C int parameters.
func checkRegion(x, y, width, height int, pix []byte) error {
	if width <= 0 || height <= 0 || x < 0 || y < 0 ||
		int64(x)+int64(width) > math.MaxInt32 ||
		int64(y)+int64(height) > math.MaxInt32 ||
		int64(width)*int64(height) > math.MaxInt32/4 {
		return fmt.Errorf("%w: region %dx%d at (%d,%d)", texfeed.ErrDimensionMismatch, width, height, x, y)
	}
	if need := texfeed.RGBA32Bytes(width, height); len(pix) < need {
		return &texfeed.DimensionMismatchError{
			SrcWidth: width, SrcHeight: height,
			DstWidth: width, DstHeight: height,
			DstBytes: len(pix),
		}
	}
	return nil
}

// SymbolError reports a library or symbol that could not be bound.
// It matches texfeed.ErrNativeSymbolUnresolved with errors.Is.
type SymbolError struct {
	Library string
	Symbol  string
	Err     error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: %s in %s: %v", texfeed.ErrNativeSymbolUnresolved, e.Symbol, e.Library, e.Err)
}

// Unwrap returns the sentinel and the binder's error.
func (e *SymbolError) Unwrap() []error {
	return []error{texfeed.ErrNativeSymbolUnresolved, e.Err}
}

// UploadError carries a non-success native status.
// It matches texfeed.ErrNativeUploadFailed with errors.Is.
type UploadError struct {
	Symbol string
	Handle TextureHandle
	Status Status
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%v: %s(texture=%d) returned status %d",
		texfeed.ErrNativeUploadFailed, e.Symbol, e.Handle, e.Status)
}

// Unwrap returns texfeed.ErrNativeUploadFailed.
func (e *UploadError) Unwrap() error {
	return texfeed.ErrNativeUploadFailed
}
