// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command texfeed runs one frame through the texfeed transfer engine.
//
// The input image is repacked as a bottom-up BGR frame, the layout tracking
// cameras deliver, then converted to RGBA32 and either written as PNG or
// uploaded through a native texture update library.
//
//	texfeed -in frame.bmp -out frame.png -alpha 200
//	texfeed -in frame.png -lib ./libOpenGLTextureUpdate.so -handle 3
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/texfeed"
	"github.com/gogpu/texfeed/native"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
)

func main() {
	var (
		in      = flag.String("in", "", "input image (PNG, JPEG or BMP)")
		out     = flag.String("out", "frame.png", "output PNG when no -lib is given")
		alpha   = flag.Uint("alpha", uint(texfeed.Opaque), "constant alpha 0-255")
		flip    = flag.Bool("flip", false, "flip the image vertically")
		lib     = flag.String("lib", "", "native texture update library")
		handle  = flag.Uint("handle", 0, "texture handle for -lib")
		sub     = flag.Bool("sub", false, "use the sub-rectangle entry point")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *alpha > 255 {
		log.Fatalf("alpha %d out of range", *alpha)
	}
	if *verbose {
		texfeed.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	src, err := loadFrame(*in)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *in, err)
	}

	var sink texfeed.UploadSink
	if *lib != "" {
		up := native.New(*lib)
		if err := up.Resolve(); err != nil {
			log.Fatalf("Failed to bind %s: %v", *lib, err)
		}
		sink = &native.TextureSink{Direct: up, Handle: native.TextureHandle(*handle), Sub: *sub} //nolint:gosec // opaque token
	} else {
		sink = pngSink{path: *out}
	}

	pool := texfeed.NewPool(1)
	dst := pool.Get(src.Width, src.Height)
	defer pool.Put(dst, src.Width, src.Height)

	u, err := texfeed.NewUpdater(dst, src.Width, src.Height, sink,
		texfeed.WithAlpha(uint8(*alpha)), //nolint:gosec // range checked above
		texfeed.WithFlipVertical(*flip),
		texfeed.WithOrientedRows(true),
	)
	if err != nil {
		log.Fatalf("Failed to create updater: %v", err)
	}
	if err := u.Update(src); err != nil {
		log.Fatalf("Frame upload failed: %v", err)
	}

	log.Printf("Frame %dx%d delivered (alpha=%d, flip=%v)\n", src.Width, src.Height, *alpha, *flip)
}

// loadFrame decodes path and repacks it as a bottom-up BGR buffer.
func loadFrame(path string) (texfeed.PixelBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return texfeed.PixelBuffer{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return texfeed.PixelBuffer{}, err
	}
	b := img.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	return bottomUpBGR(rgba), nil
}

// bottomUpBGR repacks img the way a tracker hands frames over: B, G, R
// samples with the last visual row stored first.
func bottomUpBGR(img *image.NRGBA) texfeed.PixelBuffer {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pix := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		srow := img.Pix[y*img.Stride : y*img.Stride+w*4]
		drow := pix[(h-1-y)*w*3 : (h-y)*w*3]
		for x := 0; x < w; x++ {
			drow[x*3+0] = srow[x*4+2]
			drow[x*3+1] = srow[x*4+1]
			drow[x*3+2] = srow[x*4+0]
		}
	}
	return texfeed.PixelBuffer{
		Pix:    pix,
		Width:  w,
		Height: h,
		Format: texfeed.FormatBGR8,
		Order:  texfeed.BottomUp,
	}
}

// pngSink writes each frame to a PNG file instead of a texture.
type pngSink struct {
	path string
}

func (s pngSink) Upload(f texfeed.Frame) error {
	img := &image.NRGBA{
		Pix:    f.Pix[:texfeed.RGBA32Bytes(f.Width, f.Height)],
		Stride: f.Width * 4,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
	out, err := os.Create(s.path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	return out.Close()
}
