package ico

import (
	"encoding/binary"
	"errors"
	"io"
)

var (
	errReserved  = errors.New("ico: reserved field is not zero")
	errNotIcon   = errors.New("ico: not an icon")
	errTruncated = errors.New("ico: not enough directory data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	count int
	dir   []DirEntry

	tmp [entrySize]byte
}

func (d *decoder) readHeader() error {
	if err := readFull(d.r, d.tmp[:headerSize]); err != nil {
		return err
	}

	if binary.LittleEndian.Uint16(d.tmp[0:]) != 0 {
		return errReserved
	}
	if binary.LittleEndian.Uint16(d.tmp[2:]) != typeIcon {
		return errNotIcon
	}
	d.count = int(binary.LittleEndian.Uint16(d.tmp[4:]))

	return nil
}

func (d *decoder) readEntries() error {
	d.dir = make([]DirEntry, 0, d.count)
	for i := 0; i < d.count; i++ {
		if err := readFull(d.r, d.tmp[:]); err != nil {
			return err
		}
		if d.tmp[3] != 0 {
			return errReserved
		}
		d.dir = append(d.dir, DirEntry{
			Width:        d.tmp[0],
			Height:       d.tmp[1],
			ColorCount:   d.tmp[2],
			Planes:       binary.LittleEndian.Uint16(d.tmp[4:]),
			BitsPerPixel: binary.LittleEndian.Uint16(d.tmp[6:]),
			Size:         binary.LittleEndian.Uint32(d.tmp[8:]),
			Offset:       binary.LittleEndian.Uint32(d.tmp[12:]),
		})
	}
	return nil
}

func (d *decoder) decode(r io.Reader) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errTruncated
	}

	if err := d.readEntries(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errTruncated
	}

	return nil
}

// DecodeDirectory reads the ICONDIR header and directory table from r. The
// image payloads are not read. It exists for verifying containers written by
// Encode; this package doesn't decode images.
func DecodeDirectory(r io.Reader) ([]DirEntry, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.dir, nil
}
