package icopack

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/icopack/ico"
	"github.com/hashicorp/go-multierror"
)

// ErrCreateOutput is returned when the output file can't be opened
var ErrCreateOutput = errors.New("failed to open output file")

func skippedPaths(merr *multierror.Error) []string {
	paths := make([]string, 0, merr.Len())
	for _, err := range merr.Errors {
		var skip *SkipError
		if errors.As(err, &skip) {
			paths = append(paths, skip.Path)
		}
	}
	return paths
}

// Write encodes the included slots to w as an ICO file, in the order given.
func (p *Packer) Write(w io.Writer, slots []Slot) error {
	entries := make([]ico.Entry, 0, len(slots))
	for _, slot := range slots {
		if !slot.Included() {
			continue
		}
		p.logger.Info("Writing image data", "file", slot.Filename)
		entries = append(entries, *slot.Entry)
	}

	return ico.Encode(w, entries)
}

// Pack collects the images in the iconset directory dir and writes them to
// the ICO file output, which is created or truncated. Skipped images are
// logged, along with a summary once the run finishes, and otherwise ignored
// so the only errors returned are those opening or writing output.
func (p *Packer) Pack(output, dir string) error {
	p.logger.Info("Creating ico", "name", filepath.Base(output))

	slots, err := p.Collect(dir)

	var skipped *multierror.Error
	if errors.As(err, &skipped) {
		defer p.logger.Warn("Skipped files", "count", skipped.Len(), "files", skippedPaths(skipped))
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := p.Write(w, slots); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	path, err := filepath.Abs(output)
	if err != nil {
		path = output
	}
	p.logger.Info("Ico created", "path", path)

	return nil
}
