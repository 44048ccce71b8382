/*
Package icopack is a library for packing the PNG images of an iconset
directory into a single Windows ICO file.
*/
package icopack

import "log/slog"

// Packer collects iconset images and writes them out as an ICO file.
type Packer struct {
	logger *slog.Logger
}

// New returns a Packer that reports progress and skipped files to logger.
func New(logger *slog.Logger) *Packer {
	return &Packer{
		logger: logger,
	}
}
