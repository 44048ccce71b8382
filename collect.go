package icopack

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bodgit/icopack/ico"
	"github.com/hashicorp/go-multierror"
)

// Sizes lists the supported icon sizes in the order they are looked up and
// written.
var Sizes = []int{16, 32, 48, 64, 128, 256}

var (
	// ErrMissing is returned for a size with no file in the iconset
	ErrMissing = errors.New("missing")
	// ErrRead is returned when a file exists but could not be read
	ErrRead = errors.New("read failed")
)

// Filename returns the iconset filename for the given size.
func Filename(size int) string {
	return fmt.Sprintf("icon_%dx%d.png", size, size)
}

// Slot is the outcome for one icon size. Exactly one of Entry and Err is set.
type Slot struct {
	Size     int
	Filename string
	Entry    *ico.Entry
	Err      error
}

// Included reports whether the slot holds an image to be written.
func (s Slot) Included() bool {
	return s.Entry != nil
}

// SkipError records why the file for a slot was skipped.
type SkipError struct {
	Path string
	Err  error
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SkipError) Unwrap() error {
	return e.Err
}

// The handle is released as soon as the contents are read
func readFile(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %v", ErrMissing, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: not a regular file", ErrRead)
	}

	b := make([]byte, info.Size())
	if _, err := io.ReadFull(f, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return b, nil
}

func (p *Packer) collect(dir string, size int) Slot {
	slot := Slot{
		Size:     size,
		Filename: Filename(size),
	}
	file := filepath.Join(dir, slot.Filename)

	b, err := readFile(file)
	if err != nil {
		slot.Err = &SkipError{Path: file, Err: err}
		return slot
	}

	p.logger.Info("Collecting image info", "file", slot.Filename)

	h, err := InspectPNG(b)
	if err != nil {
		slot.Err = &SkipError{Path: file, Err: err}
		return slot
	}

	entry := h.Entry(b)
	slot.Entry = &entry

	return slot
}

// Collect reads and inspects the image for every supported size from the
// iconset directory dir, always returning one slot per size. A file that is
// missing or unusable leaves an empty slot and doesn't stop the collection.
// The returned error is a *multierror.Error listing every skipped file, or
// nil if nothing was skipped; it is a report rather than a failure.
func (p *Packer) Collect(dir string) ([]Slot, error) {
	var skipped *multierror.Error

	slots := make([]Slot, 0, len(Sizes))
	for _, size := range Sizes {
		slot := p.collect(dir, size)
		if slot.Err != nil {
			p.logger.Warn("Skipping file", "file", slot.Filename, "reason", slot.Err)
			skipped = multierror.Append(skipped, slot.Err)
		}
		slots = append(slots, slot)
	}

	return slots, skipped.ErrorOrNil()
}
