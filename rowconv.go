// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

// Opaque is the alpha value for fully opaque output.
const Opaque uint8 = 255

// RowMapper maps a destination row index to the source storage row read
// for it, given the image height h.
type RowMapper func(i, h int) int

// IdentityRows reads source row i for destination row i.
func IdentityRows(i, _ int) int { return i }

// MirroredRows reads source row h-i-1 for destination row i.
func MirroredRows(i, h int) int { return h - i - 1 }

// ConvertRow writes n RGBA32 pixels into dst from n source pixels of format
// f in src. R, G and B are taken from the positions f declares, so BGR input
// is reordered; A is always set to alpha. Source alpha is never read.
//
// dst must hold n*4 bytes and src n*f.BytesPerPixel() bytes. Lengths are
// not checked beyond Go's slice bounds; Transfer validates them first. An
// invalid format writes nothing.
func ConvertRow(dst, src []byte, n int, f Format, alpha uint8) {
	switch f {
	case FormatBGR8:
		convertBGR(dst[:n*4], src[:n*3], alpha)
		return
	case FormatRGBA8:
		copy(dst[:n*4], src[:n*4])
		for i := 3; i < n*4; i += 4 {
			dst[i] = alpha
		}
		return
	}

	info := f.Info()
	bpp := info.BytesPerPixel
	if bpp == 0 {
		return
	}
	dst = dst[:n*4]
	src = src[:n*bpp]
	if info.IsGrayscale {
		for i, j := 0, 0; i < len(dst); i, j = i+4, j+bpp {
			l := src[j]
			d := dst[i : i+4 : i+4]
			d[0], d[1], d[2], d[3] = l, l, l, alpha
		}
		return
	}
	for i, j := 0, 0; i < len(dst); i, j = i+4, j+bpp {
		s := src[j : j+bpp : j+bpp]
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = s[info.R], s[info.G], s[info.B], alpha
	}
}

// convertBGR is the hot path for tracker frames.
func convertBGR(dst, src []byte, alpha uint8) {
	for i, j := 0, 0; i < len(dst); i, j = i+4, j+3 {
		s := src[j : j+3 : j+3] // small cap lets the compiler drop bounds checks
		d := dst[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = s[2], s[1], s[0], alpha
	}
}
