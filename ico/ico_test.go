package ico

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimension(t *testing.T) {
	tables := []struct {
		n int
		b uint8
	}{
		{1, 1},
		{16, 16},
		{255, 255},
		{256, 0},
	}

	for _, table := range tables {
		assert.Equal(t, table.b, Dimension(table.n))
		assert.Equal(t, table.n, Size(table.b))
	}
}

func TestEncodeEmpty(t *testing.T) {
	var b bytes.Buffer
	require.Nil(t, Encode(&b, nil))
	assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x00, 0x00, 0x00}, b.Bytes())

	dir, err := DecodeDirectory(bytes.NewReader(b.Bytes()))
	require.Nil(t, err)
	assert.Len(t, dir, 0)
}

func TestEncodeSingle(t *testing.T) {
	data := bytes.Repeat([]byte{0xaa}, 30)

	var b bytes.Buffer
	require.Nil(t, Encode(&b, []Entry{
		{Width: 16, Height: 16, ColorCount: 255, Planes: 1, BitsPerPixel: 8, Data: data},
	}))

	want := []byte{
		0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
		0x10, 0x10, 0xff, 0x00, 0x01, 0x00, 0x08, 0x00,
		0x1e, 0x00, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, want, b.Bytes()[:headerSize+entrySize])
	assert.Equal(t, data, b.Bytes()[headerSize+entrySize:])
}

func TestEncodeOffsets(t *testing.T) {
	entries := []Entry{
		{Width: 16, Height: 16, Planes: 1, BitsPerPixel: 32, Data: bytes.Repeat([]byte{1}, 100)},
		{Width: 48, Height: 48, Planes: 1, BitsPerPixel: 24, Data: bytes.Repeat([]byte{2}, 7)},
		{Width: 0, Height: 0, Planes: 1, BitsPerPixel: 32, Data: bytes.Repeat([]byte{3}, 1000)},
	}

	var b bytes.Buffer
	require.Nil(t, Encode(&b, entries))

	dir, err := DecodeDirectory(bytes.NewReader(b.Bytes()))
	require.Nil(t, err)
	require.Len(t, dir, len(entries))

	total := headerSize + entrySize*len(entries)
	offset := uint32(total)
	for i, d := range dir {
		assert.Equal(t, offset, d.Offset)
		assert.Equal(t, uint32(len(entries[i].Data)), d.Size)
		assert.Equal(t, entries[i].Width, d.Width)
		assert.Equal(t, entries[i].BitsPerPixel, d.BitsPerPixel)
		assert.Equal(t, entries[i].Data, b.Bytes()[d.Offset:d.Offset+d.Size])
		offset += d.Size
		total += len(entries[i].Data)
	}
	assert.Equal(t, total, b.Len())
}

func TestEncodeErrors(t *testing.T) {
	var b bytes.Buffer
	assert.Equal(t, errEmptyImage, Encode(&b, []Entry{{Width: 16, Height: 16}}))
	assert.Equal(t, 0, b.Len())

	assert.Equal(t, errTooMany, Encode(&b, make([]Entry, maxEntries+1)))
	assert.Equal(t, 0, b.Len())
}

func TestDecodeDirectoryErrors(t *testing.T) {
	tables := []struct {
		name string
		b    []byte
		err  error
	}{
		{"empty", []byte{}, errTruncated},
		{"short header", []byte{0x00, 0x00, 0x01}, errTruncated},
		{"reserved", []byte{0x01, 0x00, 0x01, 0x00, 0x00, 0x00}, errReserved},
		{"cursor", []byte{0x00, 0x00, 0x02, 0x00, 0x00, 0x00}, errNotIcon},
		{"missing entry", []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x10, 0x10}, errTruncated},
		{
			"entry reserved",
			[]byte{
				0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
				0x10, 0x10, 0x00, 0x01, 0x01, 0x00, 0x20, 0x00,
				0x01, 0x00, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00,
			},
			errReserved,
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			_, err := DecodeDirectory(bytes.NewReader(table.b))
			assert.Equal(t, table.err, err)
		})
	}
}
