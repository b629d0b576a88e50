// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

import (
	"bytes"
	"errors"
	"image"
	"testing"
)

// bgrFromRGB packs RGB triples into a BGR8 byte slice.
func bgrFromRGB(px [][3]byte) []byte {
	out := make([]byte, 0, len(px)*3)
	for _, p := range px {
		out = append(out, p[2], p[1], p[0])
	}
	return out
}

// gradientBGR returns a w×h BGR8 buffer where every pixel is distinct.
func gradientBGR(w, h int) PixelBuffer {
	pix := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 3
			pix[i+0] = byte(x*7 + y)      // B
			pix[i+1] = byte(y*13 + 3)     // G
			pix[i+2] = byte(x + y*w + 11) // R
		}
	}
	return PixelBuffer{Pix: pix, Width: w, Height: h, Format: FormatBGR8}
}

func TestTransferBoundary2x2(t *testing.T) {
	src := PixelBuffer{
		Pix:    bgrFromRGB([][3]byte{{10, 20, 30}, {40, 50, 60}, {70, 80, 90}, {100, 110, 120}}),
		Width:  2,
		Height: 2,
		Format: FormatBGR8,
	}

	tests := []struct {
		name string
		flip bool
		want []byte
	}{
		{
			name: "upright",
			flip: false,
			want: []byte{10, 20, 30, 255, 40, 50, 60, 255, 70, 80, 90, 255, 100, 110, 120, 255},
		},
		{
			name: "flipped",
			flip: true,
			want: []byte{70, 80, 90, 255, 100, 110, 120, 255, 10, 20, 30, 255, 40, 50, 60, 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 16)
			if err := Transfer(src, dst, 2, 2, 255, tt.flip); err != nil {
				t.Fatalf("Transfer() = %v", err)
			}
			if !bytes.Equal(dst, tt.want) {
				t.Errorf("dst = %v, want %v", dst, tt.want)
			}
		})
	}
}

func TestTransferPixelMapping(t *testing.T) {
	for _, n := range []int{1, 3, 8, 17} {
		src := gradientBGR(n, n)
		for _, flip := range []bool{false, true} {
			dst := make([]byte, RGBA32Bytes(n, n))
			if err := Transfer(src, dst, n, n, 77, flip); err != nil {
				t.Fatalf("n=%d flip=%v: Transfer() = %v", n, flip, err)
			}
			for y := 0; y < n; y++ {
				sy := y
				if flip {
					sy = n - 1 - y
				}
				for x := 0; x < n; x++ {
					s := src.Pix[(sy*n+x)*3:]
					d := dst[(y*n+x)*4:]
					if d[0] != s[2] || d[1] != s[1] || d[2] != s[0] || d[3] != 77 {
						t.Fatalf("n=%d flip=%v: pixel (%d,%d) = %v, want R=%d G=%d B=%d A=77",
							n, flip, x, y, d[:4], s[2], s[1], s[0])
					}
				}
			}
		}
	}
}

func TestTransferIdempotent(t *testing.T) {
	src := gradientBGR(13, 9)
	a := make([]byte, RGBA32Bytes(13, 9))
	b := make([]byte, RGBA32Bytes(13, 9))
	for i := range b {
		b[i] = 0xAA // stale content must be fully overwritten
	}
	if err := Transfer(src, a, 13, 9, 128, true); err != nil {
		t.Fatal(err)
	}
	if err := Transfer(src, b, 13, 9, 128, true); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two transfers with identical parameters differ")
	}
}

func TestTransferAlphaInvariance(t *testing.T) {
	src := gradientBGR(6, 5)
	opaque := make([]byte, RGBA32Bytes(6, 5))
	transparent := make([]byte, RGBA32Bytes(6, 5))
	if err := Transfer(src, opaque, 6, 5, 255, false); err != nil {
		t.Fatal(err)
	}
	if err := Transfer(src, transparent, 6, 5, 0, false); err != nil {
		t.Fatal(err)
	}
	for i := range opaque {
		if i%4 == 3 {
			if opaque[i] != 255 || transparent[i] != 0 {
				t.Fatalf("alpha byte %d = %d/%d, want 255/0", i, opaque[i], transparent[i])
			}
			continue
		}
		if opaque[i] != transparent[i] {
			t.Fatalf("color byte %d changed with alpha: %d vs %d", i, opaque[i], transparent[i])
		}
	}
}

func TestTransferDimensionMismatch(t *testing.T) {
	src := gradientBGR(4, 4)

	tests := []struct {
		name          string
		dst           []byte
		width, height int
	}{
		{"4x4 into 2x2", make([]byte, RGBA32Bytes(2, 2)), 2, 2},
		{"width differs", make([]byte, RGBA32Bytes(5, 4)), 5, 4},
		{"height differs", make([]byte, RGBA32Bytes(4, 3)), 4, 3},
		{"short destination", make([]byte, RGBA32Bytes(4, 4)-1), 4, 4},
		{"nil destination", nil, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.dst {
				tt.dst[i] = 0x5A
			}
			err := Transfer(src, tt.dst, tt.width, tt.height, 255, false)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("Transfer() error = %v, want ErrDimensionMismatch", err)
			}
			var dm *DimensionMismatchError
			if !errors.As(err, &dm) {
				t.Fatalf("Transfer() error %T is not *DimensionMismatchError", err)
			}
			if dm.SrcWidth != 4 || dm.SrcHeight != 4 {
				t.Errorf("source extents = %dx%d, want 4x4", dm.SrcWidth, dm.SrcHeight)
			}
			for i, b := range tt.dst {
				if b != 0x5A {
					t.Fatalf("dst[%d] written despite mismatch", i)
				}
			}
		})
	}
}

func TestTransferInvalidSource(t *testing.T) {
	tests := []struct {
		name string
		src  PixelBuffer
	}{
		{"zero width", PixelBuffer{Pix: make([]byte, 12), Width: 0, Height: 2, Format: FormatBGR8}},
		{"unknown format", PixelBuffer{Pix: make([]byte, 12), Width: 2, Height: 2, Format: Format(99)}},
		{"short data", PixelBuffer{Pix: make([]byte, 11), Width: 2, Height: 2, Format: FormatBGR8}},
		{"short stride", PixelBuffer{Pix: make([]byte, 12), Width: 2, Height: 2, Stride: 5, Format: FormatBGR8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Transfer(tt.src, make([]byte, 64), tt.src.Width, tt.src.Height, 255, false)
			if !errors.Is(err, ErrInvalidBuffer) {
				t.Errorf("Transfer() error = %v, want ErrInvalidBuffer", err)
			}
		})
	}
}

func TestTransferBottomUpSource(t *testing.T) {
	// Boundary pixels stored bottom-up: storage row 0 is the visual bottom.
	src := PixelBuffer{
		Pix:    []byte{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120},
		Width:  2,
		Height: 2,
		Format: FormatRGB8,
		Order:  BottomUp,
	}
	storage := []byte{10, 20, 30, 255, 40, 50, 60, 255, 70, 80, 90, 255, 100, 110, 120, 255}
	mirrored := []byte{70, 80, 90, 255, 100, 110, 120, 255, 10, 20, 30, 255, 40, 50, 60, 255}

	tests := []struct {
		name string
		fn   func(PixelBuffer, []byte, int, int, uint8) error
		want []byte
	}{
		{"upright reads storage rows", TransferUpright, storage},
		{"flip reads rows H-i-1", TransferFlipVertical, mirrored},
		{"oriented upright", func(s PixelBuffer, d []byte, w, h int, a uint8) error {
			return TransferOriented(s, d, w, h, a, false)
		}, mirrored},
		{"oriented flip", func(s PixelBuffer, d []byte, w, h int, a uint8) error {
			return TransferOriented(s, d, w, h, a, true)
		}, storage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, 16)
			if err := tt.fn(src, dst, 2, 2, 255); err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(dst, tt.want) {
				t.Errorf("dst = %v, want %v", dst, tt.want)
			}
		})
	}

	// Order does not change Transfer: TopDown and BottomUp give the same bytes.
	top := src
	top.Order = TopDown
	for _, flip := range []bool{false, true} {
		a, b := make([]byte, 16), make([]byte, 16)
		if err := Transfer(src, a, 2, 2, 255, flip); err != nil {
			t.Fatal(err)
		}
		if err := Transfer(top, b, 2, 2, 255, flip); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("flip=%v: BottomUp %v, TopDown %v", flip, a, b)
		}
	}
}

func TestTransferPaddedStride(t *testing.T) {
	// 2x2 BGR with 2 bytes of row padding.
	pix := []byte{
		30, 20, 10, 60, 50, 40, 0xEE, 0xEE,
		90, 80, 70, 120, 110, 100,
	}
	src := PixelBuffer{Pix: pix, Width: 2, Height: 2, Stride: 8, Format: FormatBGR8}
	dst := make([]byte, 16)
	if err := TransferUpright(src, dst, 2, 2, 255); err != nil {
		t.Fatal(err)
	}
	want := []byte{10, 20, 30, 255, 40, 50, 60, 255, 70, 80, 90, 255, 100, 110, 120, 255}
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}

	if err := TransferFlipVertical(src, dst, 2, 2, 255); err != nil {
		t.Fatal(err)
	}
	want = []byte{70, 80, 90, 255, 100, 110, 120, 255, 10, 20, 30, 255, 40, 50, 60, 255}
	if !bytes.Equal(dst, want) {
		t.Errorf("flipped dst = %v, want %v", dst, want)
	}
}

func TestEngineCustomRows(t *testing.T) {
	src := PixelBuffer{
		Pix:    bgrFromRGB([][3]byte{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}),
		Width:  1,
		Height: 3,
		Format: FormatBGR8,
	}

	t.Run("constant row", func(t *testing.T) {
		dst := make([]byte, 12)
		e := Engine{Rows: func(int, int) int { return 1 }}
		if err := e.Transfer(src, dst, 1, 3, 9); err != nil {
			t.Fatal(err)
		}
		want := []byte{2, 2, 2, 9, 2, 2, 2, 9, 2, 2, 2, 9}
		if !bytes.Equal(dst, want) {
			t.Errorf("dst = %v, want %v", dst, want)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		dst := make([]byte, 12)
		e := Engine{Rows: func(i, h int) int { return i + 1 }}
		err := e.Transfer(src, dst, 1, 3, 9)
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Fatalf("Transfer() error = %v, want ErrDimensionMismatch", err)
		}
		if !bytes.Equal(dst, make([]byte, 12)) {
			t.Error("dst written before row mapping was rejected")
		}
	})
}

func TestTransferImage(t *testing.T) {
	src := gradientBGR(3, 2)

	t.Run("padded stride", func(t *testing.T) {
		img := &image.RGBA{
			Pix:    make([]byte, 20*2),
			Stride: 20,
			Rect:   image.Rect(0, 0, 3, 2),
		}
		if err := TransferImage(src, img, 255, false); err != nil {
			t.Fatal(err)
		}
		packed := make([]byte, RGBA32Bytes(3, 2))
		if err := Transfer(src, packed, 3, 2, 255, false); err != nil {
			t.Fatal(err)
		}
		for y := 0; y < 2; y++ {
			if !bytes.Equal(img.Pix[y*20:y*20+12], packed[y*12:y*12+12]) {
				t.Errorf("row %d = %v, want %v", y, img.Pix[y*20:y*20+12], packed[y*12:y*12+12])
			}
			for _, b := range img.Pix[y*20+12 : y*20+20] {
				if b != 0 {
					t.Fatalf("row %d padding written", y)
				}
			}
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		if err := TransferImage(src, img, 255, false); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("TransferImage() error = %v, want ErrDimensionMismatch", err)
		}
	})

	t.Run("nil image", func(t *testing.T) {
		if err := TransferImage(src, nil, 255, false); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("TransferImage() error = %v, want ErrDimensionMismatch", err)
		}
	})
}

func TestFlipRows(t *testing.T) {
	if got := FlipRows(false)(1, 4); got != 1 {
		t.Errorf("FlipRows(false)(1, 4) = %d, want 1", got)
	}
	if got := FlipRows(true)(1, 4); got != 2 {
		t.Errorf("FlipRows(true)(1, 4) = %d, want 2", got)
	}
}

func TestRowsFor(t *testing.T) {
	tests := []struct {
		order RowOrder
		flip  bool
		want  int // mapping of row 0 with h=4
	}{
		{TopDown, false, 0},
		{TopDown, true, 3},
		{BottomUp, false, 3},
		{BottomUp, true, 0},
	}
	for _, tt := range tests {
		if got := RowsFor(tt.order, tt.flip)(0, 4); got != tt.want {
			t.Errorf("RowsFor(%v, %v)(0, 4) = %d, want %d", tt.order, tt.flip, got, tt.want)
		}
	}
}

func BenchmarkTransfer640x480(b *testing.B) {
	src := gradientBGR(640, 480)
	dst := make([]byte, RGBA32Bytes(640, 480))
	b.SetBytes(int64(len(dst)))
	b.ReportAllocs()
	for b.Loop() {
		if err := Transfer(src, dst, 640, 480, 255, true); err != nil {
			b.Fatal(err)
		}
	}
}
