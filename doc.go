// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texfeed moves decoded camera and tracker frames into GPU textures.
//
// # Overview
//
// Each frame, a source image (1 to 4 channels, any supported channel
// order, top-down or bottom-up rows) is converted into a tightly packed
// RGBA32 buffer owned by the rendering layer, and that buffer is handed to
// an [UploadSink]. Conversion reorders channels into R, G, B, A, writes a
// constant alpha and can mirror the image vertically. No color-space
// conversion is done.
//
// # Quick Start
//
//	src, _ := texfeed.NewPixelBuffer(bgr, 640, 480, texfeed.FormatBGR8)
//	dst := make([]byte, texfeed.RGBA32Bytes(640, 480))
//	if err := texfeed.Transfer(src, dst, 640, 480, texfeed.Opaque, true); err != nil {
//	    return err
//	}
//
// # Upload paths
//
//   - [ImageManagedUpload]: the image object fills the buffer through its
//     own [ManagedImage] routines, given a raw pointer.
//   - native.DirectUpload: a native library replaces all or part of a
//     texture identified by a numeric handle.
//   - gpu.QueueSink and gpu.UpdaterSink: write into gogpu/wgpu textures.
//
// # Errors
//
// Geometry is checked before any byte is written. A source whose extents
// differ from the destination fails with [ErrDimensionMismatch] and leaves
// the destination, and therefore the previous frame on screen, intact.
//
// # Threading
//
// All operations are synchronous and intended for the goroutine that owns
// the GPU context.
package texfeed
