// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package texfeed

// Format describes how one source pixel is laid out in memory.
type Format uint8

const (
	// FormatGray8 is 8-bit luminance (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatGrayAlpha8 is 8-bit luminance followed by 8-bit alpha
	// (2 bytes per pixel). The alpha byte is never read.
	FormatGrayAlpha8

	// FormatRGB8 is 24-bit R, G, B (3 bytes per pixel).
	FormatRGB8

	// FormatBGR8 is 24-bit B, G, R (3 bytes per pixel).
	// This is the layout tracking cameras deliver by default.
	FormatBGR8

	// FormatRGBA8 is 32-bit R, G, B, A (4 bytes per pixel).
	// The alpha byte is never read.
	FormatRGBA8

	// FormatBGRA8 is 32-bit B, G, R, A (4 bytes per pixel).
	// The alpha byte is never read.
	FormatBGRA8

	formatCount
)

// FormatInfo contains metadata about a source pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of stored channels.
	Channels int

	// HasAlpha indicates the format stores an alpha byte.
	HasAlpha bool

	// IsGrayscale indicates luminance is replicated into R, G and B.
	IsGrayscale bool

	// R, G and B are the byte offsets of each color within one pixel.
	R, G, B int
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8: {
		BytesPerPixel: 1,
		Channels:      1,
		IsGrayscale:   true,
	},
	FormatGrayAlpha8: {
		BytesPerPixel: 2,
		Channels:      2,
		HasAlpha:      true,
		IsGrayscale:   true,
	},
	FormatRGB8: {
		BytesPerPixel: 3,
		Channels:      3,
		R:             0, G: 1, B: 2,
	},
	FormatBGR8: {
		BytesPerPixel: 3,
		Channels:      3,
		R:             2, G: 1, B: 0,
	},
	FormatRGBA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
		R:             0, G: 1, B: 2,
	},
	FormatBGRA8: {
		BytesPerPixel: 4,
		Channels:      4,
		HasAlpha:      true,
		R:             2, G: 1, B: 0,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per source pixel.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Channels returns the number of stored channels.
func (f Format) Channels() int {
	return f.Info().Channels
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes returns the packed size of one row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatGrayAlpha8:
		return "GrayAlpha8"
	case FormatRGB8:
		return "RGB8"
	case FormatBGR8:
		return "BGR8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "Unknown"
	}
}

// FormatFor returns the format matching a channel count and channel
// sequence such as "BGR" or "RGBA". Gray sequences may be empty.
// The second result is false when no format matches.
func FormatFor(channels int, seq string) (Format, bool) {
	switch channels {
	case 1:
		return FormatGray8, true
	case 2:
		return FormatGrayAlpha8, true
	case 3:
		switch seq {
		case "BGR":
			return FormatBGR8, true
		case "RGB":
			return FormatRGB8, true
		}
	case 4:
		switch seq {
		case "BGRA":
			return FormatBGRA8, true
		case "RGBA":
			return FormatRGBA8, true
		}
	}
	return 0, false
}
