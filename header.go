package icopack

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/bodgit/icopack/ico"
)

const (
	// Enough to cover the signature and the IHDR fields up to color type
	headerLength = 26
	maxDimension = 256
)

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47}

var (
	// ErrShortHeader is returned when there are fewer bytes than needed to
	// read the PNG header
	ErrShortHeader = errors.New("file too short for a PNG header")
	// ErrNotPNG is returned when the PNG file signature is not present
	ErrNotPNG = errors.New("PNG file signature not present")
	// ErrTooLarge is returned when either dimension is greater than 256
	ErrTooLarge = errors.New("image files cannot be larger than 256x256")
)

// PNG color types
const (
	colorGrayscale      = 0
	colorTruecolor      = 2
	colorIndexed        = 3
	colorGrayscaleAlpha = 4
	colorTruecolorAlpha = 6
)

// Header holds the fields of a PNG header needed to build an ICO directory
// entry.
type Header struct {
	Width        int
	Height       int
	BitsPerPixel int
}

func channels(colorType byte) int {
	switch colorType {
	case colorTruecolor:
		return 3
	case colorGrayscaleAlpha:
		return 2
	case colorTruecolorAlpha:
		return 4
	default: // colorGrayscale, colorIndexed and anything unknown
		return 1
	}
}

// InspectPNG reads the width, height and effective bits per pixel from the
// start of a PNG file. Nothing beyond the first 26 bytes is examined.
func InspectPNG(b []byte) (Header, error) {
	if len(b) < headerLength {
		return Header{}, ErrShortHeader
	}

	if !bytes.Equal(b[:len(pngSignature)], pngSignature) {
		return Header{}, ErrNotPNG
	}

	// PNG is big-endian, unlike ICO
	width := binary.BigEndian.Uint32(b[16:])
	height := binary.BigEndian.Uint32(b[20:])
	if width > maxDimension || height > maxDimension {
		return Header{}, ErrTooLarge
	}

	return Header{
		Width:        int(width),
		Height:       int(height),
		BitsPerPixel: int(b[24]) * channels(b[25]),
	}, nil
}

// ColorCount returns the number of palette colors implied by the bits per
// pixel, 0 meaning there is no palette.
func (h Header) ColorCount() uint8 {
	switch {
	case h.BitsPerPixel < 8:
		return uint8(1 << h.BitsPerPixel)
	case h.BitsPerPixel == 8:
		return 255
	default:
		return 0
	}
}

// Entry returns the ICO directory entry for the PNG file data described by
// the header.
func (h Header) Entry(data []byte) ico.Entry {
	return ico.Entry{
		Width:        ico.Dimension(h.Width),
		Height:       ico.Dimension(h.Height),
		ColorCount:   h.ColorCount(),
		Planes:       1,
		BitsPerPixel: uint16(h.BitsPerPixel),
		Data:         data,
	}
}
