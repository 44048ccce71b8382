/*
Package ico implements an encoder and a directory decoder for the Windows ICO
container format with PNG-encoded images.

The file is written as a 6 byte ICONDIR header holding a reserved zero, the
image type (1 for icons) and the number of images, followed by one 16 byte
ICONDIRENTRY per image and finally the image payloads themselves, stored
back to back in directory order. Every multi-byte field is little-endian.
There is no padding so the resulting file is exactly 6 + 16 * N bytes plus
the sum of the payload sizes.

Only the header and directory table can be read back, with DecodeDirectory,
which is enough to check the layout of a container written by Encode.
*/
package ico

const (
	headerSize   = 6
	entrySize    = 16
	typeIcon     = 1
	maxEntries   = 1<<16 - 1
	maxDimension = 256
)

// Entry is a single image to be stored in an ICO container. The payload size
// and offset are derived from Data by the encoder.
type Entry struct {
	Width        uint8
	Height       uint8
	ColorCount   uint8
	Planes       uint16
	BitsPerPixel uint16
	Data         []byte
}

// DirEntry is a single ICONDIRENTRY as read back from an ICO container.
type DirEntry struct {
	Width        uint8
	Height       uint8
	ColorCount   uint8
	Planes       uint16
	BitsPerPixel uint16
	Size         uint32
	Offset       uint32
}

// Dimension returns the one byte encoding of an image width or height. The
// format has no room for 256 so it is stored as 0.
func Dimension(n int) uint8 {
	if n == maxDimension {
		return 0
	}
	return uint8(n)
}

// Size is the inverse of Dimension.
func Size(b uint8) int {
	if b == 0 {
		return maxDimension
	}
	return int(b)
}
