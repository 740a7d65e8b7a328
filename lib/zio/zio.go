//
// Copyright © 2026 the fastqcontam authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package zio opens and creates files with transparent compression
// selected from the file extension. Sequencing files are routinely
// stored as .gz, .zst or .lz4; everything else is read and written
// as plain text.
package zio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/pierrec/lz4"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var err error
	for _, c := range rc.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (wc *writeCloser) Close() error {
	var err error
	// Compressor first, then the underlying file
	for _, c := range wc.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens path for reading, decompressing .gz, .zst and .lz4 input.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".gz":
		zr, err := pgzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &readCloser{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), f}}, nil
	case ".lz4":
		return &readCloser{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	}
	return f, nil
}

// Create creates path for writing, compressing .gz, .zst and .lz4
// output. Output with a .gz extension is written as BGZF, a valid gzip
// stream readable by any gzip implementation.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".gz":
		zw := bgzf.NewWriter(f, 1)
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case ".lz4":
		zw := lz4.NewWriter(f)
		return &writeCloser{Writer: zw, closers: []io.Closer{zw, f}}, nil
	}
	return f, nil
}
