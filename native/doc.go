// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package native uploads RGBA32 frames into textures through a prebuilt
// native library, addressing each texture by an opaque integer handle.
//
// Symbols are bound with goffi, so no cgo toolchain is needed:
//
//	up := native.New(native.DefaultLibrary())
//	if err := up.Resolve(); err != nil {
//	    log.Fatal(err) // library or symbol missing
//	}
//	status, err := up.UploadFull(handle, 640, 480, frame)
//
// Statuses are passed through untouched. A non-zero status is also
// reported as an *UploadError so callers can branch with errors.Is.
package native
