//
// Copyright © 2026 the fastqcontam authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package fastq provides line counting and 4-line record reading and
// writing for FASTQ files.
package fastq

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"fastqcontam/lib/zio"
)

// LinesPerRecord is the number of lines of one FASTQ record:
// identifier, sequence, separator and quality string.
const LinesPerRecord = 4

// CountLines counts the lines of path, decompressing by extension. A
// final byte that is not a newline still terminates a line, so a file
// without a trailing newline counts the same as one with it.
func CountLines(path string) (int, error) {
	r, err := zio.Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	var n int
	var last byte
	var any bool
	buf := make([]byte, 1024*1024)
	for {
		m, err := r.Read(buf)
		if m > 0 {
			n += bytes.Count(buf[:m], []byte{'\n'})
			last = buf[m-1]
			any = true
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}
	}
	if any && last != '\n' {
		n++
	}
	return n, nil
}

// Record is one FASTQ read: 4 lines without their newlines.
type Record struct {
	ID   string
	Seq  string
	Plus string
	Qual string
}

// Reader reads FASTQ records from an io.Reader.
type Reader struct {
	s *bufio.Scanner
	n int
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 1024*1024), 1024*1024)
	return &Reader{s: s}
}

// Read returns the next record, io.EOF at end of input, or an error if
// the input ends inside a record.
func (r *Reader) Read() (Record, error) {
	var rec Record
	lines := [LinesPerRecord]*string{&rec.ID, &rec.Seq, &rec.Plus, &rec.Qual}
	for i := 0; i < LinesPerRecord; i++ {
		if !r.s.Scan() {
			if err := r.s.Err(); err != nil {
				return rec, err
			}
			if i == 0 {
				return rec, io.EOF
			}
			return rec, fmt.Errorf("truncated record %d: %d of %d lines", r.n+1, i, LinesPerRecord)
		}
		*lines[i] = r.s.Text()
	}
	r.n++
	return rec, nil
}

// Writer writes FASTQ records to an io.Writer.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Write(rec Record) error {
	for _, line := range []string{rec.ID, rec.Seq, rec.Plus, rec.Qual} {
		if _, err := w.w.WriteString(line); err != nil {
			return err
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Flush() error {
	return w.w.Flush()
}
