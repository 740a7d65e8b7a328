//
// Copyright © 2026 the fastqcontam authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package zio

import (
	"io"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRoundtrip(t *testing.T) {
	content := "@read1\nACGTACGT\n+\nIIIIIIII\n"
	for _, name := range []string{"reads.fastq", "reads.fastq.gz", "reads.fastq.zst", "reads.fastq.lz4"} {
		t.Run(name, func(t *testing.T) {
			c := qt.New(t)
			path := filepath.Join(t.TempDir(), name)
			w, err := Create(path)
			c.Assert(err, qt.IsNil)
			_, err = io.WriteString(w, content)
			c.Assert(err, qt.IsNil)
			c.Assert(w.Close(), qt.IsNil)

			r, err := Open(path)
			c.Assert(err, qt.IsNil)
			got, err := io.ReadAll(r)
			c.Assert(err, qt.IsNil)
			c.Assert(r.Close(), qt.IsNil)
			c.Assert(string(got), qt.Equals, content)
		})
	}
}

func TestOpenMissing(t *testing.T) {
	c := qt.New(t)
	_, err := Open(filepath.Join(t.TempDir(), "absent.fastq"))
	c.Assert(err, qt.IsNotNil)
}
