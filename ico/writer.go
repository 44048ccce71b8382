package ico

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
)

var (
	errTooMany    = errors.New("ico: too many images")
	errTooLarge   = errors.New("ico: image data too large")
	errEmptyImage = errors.New("ico: image has no data")
)

type header struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type direntry struct {
	Width        uint8
	Height       uint8
	ColorCount   uint8
	Reserved     uint8
	Planes       uint16
	BitsPerPixel uint16
	Size         uint32
	Offset       uint32
}

type encoder struct {
	w io.Writer
}

// Work out every directory entry up front so nothing is written for a set of
// entries that can't be represented
func directory(entries []Entry) ([]direntry, error) {
	if len(entries) > maxEntries {
		return nil, errTooMany
	}

	dir := make([]direntry, 0, len(entries))
	offset := uint64(headerSize + entrySize*len(entries))
	for _, e := range entries {
		if len(e.Data) == 0 {
			return nil, errEmptyImage
		}
		size := uint64(len(e.Data))
		if offset+size > math.MaxUint32 {
			return nil, errTooLarge
		}
		dir = append(dir, direntry{
			Width:        e.Width,
			Height:       e.Height,
			ColorCount:   e.ColorCount,
			Planes:       e.Planes,
			BitsPerPixel: e.BitsPerPixel,
			Size:         uint32(size),
			Offset:       uint32(offset),
		})
		offset += size
	}
	return dir, nil
}

func (e *encoder) encode(entries []Entry) error {
	dir, err := directory(entries)
	if err != nil {
		return err
	}

	h := header{
		Type:  typeIcon,
		Count: uint16(len(dir)),
	}
	if err := binary.Write(e.w, binary.LittleEndian, &h); err != nil {
		return err
	}

	for i := range dir {
		if err := binary.Write(e.w, binary.LittleEndian, &dir[i]); err != nil {
			return err
		}
	}

	// Payloads follow in the same order as the directory
	for _, entry := range entries {
		if _, err := e.w.Write(entry.Data); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the entries to w as an ICO container, in the order given. An
// empty slice produces a valid container with no images.
func Encode(w io.Writer, entries []Entry) error {
	e := encoder{w: w}

	return e.encode(entries)
}
