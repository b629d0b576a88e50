// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu delivers texfeed frames to gogpu textures.
//
// [QueueSink] writes through a wgpu HAL queue into a texture the caller
// created (see [TextureDescriptor]). [UpdaterSink] targets any texture
// exposing gpucontext.TextureUpdater, such as gogpu's own textures.
//
//	sink := &gpu.QueueSink{Queue: queue, Texture: tex}
//	u, err := texfeed.NewUpdater(buf, w, h, sink)
package gpu
