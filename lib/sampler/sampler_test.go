//
// Copyright © 2026 the fastqcontam authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package sampler

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"fastqcontam/lib/fastq"
)

func writePairs(t *testing.T, dir, tag string, mate, reads int) string {
	t.Helper()
	path := filepath.Join(dir, fmt.Sprintf("%s_R%d.fastq", tag, mate))
	var sb strings.Builder
	for i := 0; i < reads; i++ {
		fmt.Fprintf(&sb, "@%s%d/%d\nACGTACGT\n+\nIIIIIIII\n", tag, i, mate)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readIDs(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	var ids []string
	r := fastq.NewReader(f)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, rec.ID)
	}
	return ids
}

func TestExecCommand(t *testing.T) {
	c := qt.New(t)
	e := &Exec{Tool: "fastq-sample"}
	cmd := e.command(context.Background(), Request{
		Mate1:     "sample_R1.fastq",
		Mate2:     "sample_R2.fastq",
		Reads:     800,
		Seed:      5,
		OutPrefix: "tmp/temp_sample20",
	})
	c.Assert(cmd.Args, qt.DeepEquals, []string{
		"fastq-sample", "-n", "800", "-o", "tmp/temp_sample20", "-s", "5",
		"sample_R1.fastq", "sample_R2.fastq",
	})
}

func TestExecMissingTool(t *testing.T) {
	c := qt.New(t)
	e := &Exec{Tool: filepath.Join(t.TempDir(), "no-such-tool")}
	err := e.Sample(context.Background(), Request{OutPrefix: filepath.Join(t.TempDir(), "x")})
	c.Assert(err, qt.IsNotNil)
}

func TestReservoirSample(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	m1 := writePairs(t, dir, "s", 1, 200)
	m2 := writePairs(t, dir, "s", 2, 200)
	req := Request{Mate1: m1, Mate2: m2, Reads: 10, Seed: 7, OutPrefix: filepath.Join(dir, "sub")}
	err := Reservoir{}.Sample(context.Background(), req)
	c.Assert(err, qt.IsNil)

	ids1 := readIDs(t, req.OutMate1())
	ids2 := readIDs(t, req.OutMate2())
	c.Assert(ids1, qt.HasLen, 10)
	c.Assert(ids2, qt.HasLen, 10)
	// Same selection on both mates, pairs stay matched
	for i := range ids1 {
		c.Assert(strings.TrimSuffix(ids1[i], "/1"), qt.Equals, strings.TrimSuffix(ids2[i], "/2"))
	}
}

func TestReservoirDeterminism(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	m1 := writePairs(t, dir, "s", 1, 200)
	m2 := writePairs(t, dir, "s", 2, 200)

	reqA := Request{Mate1: m1, Mate2: m2, Reads: 10, Seed: 7, OutPrefix: filepath.Join(dir, "a")}
	reqB := Request{Mate1: m1, Mate2: m2, Reads: 10, Seed: 7, OutPrefix: filepath.Join(dir, "b")}
	c.Assert(Reservoir{}.Sample(context.Background(), reqA), qt.IsNil)
	c.Assert(Reservoir{}.Sample(context.Background(), reqB), qt.IsNil)
	a, err := os.ReadFile(reqA.OutMate1())
	c.Assert(err, qt.IsNil)
	b, err := os.ReadFile(reqB.OutMate1())
	c.Assert(err, qt.IsNil)
	c.Assert(string(a), qt.Equals, string(b))

	// Another seed keeps the count but changes the selection
	reqC := Request{Mate1: m1, Mate2: m2, Reads: 10, Seed: 8, OutPrefix: filepath.Join(dir, "c")}
	c.Assert(Reservoir{}.Sample(context.Background(), reqC), qt.IsNil)
	c.Assert(readIDs(t, reqC.OutMate1()), qt.HasLen, 10)
	d, err := os.ReadFile(reqC.OutMate1())
	c.Assert(err, qt.IsNil)
	c.Assert(string(d) == string(a), qt.IsFalse)
}

func TestReservoirTooFewReads(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	m1 := writePairs(t, dir, "s", 1, 20)
	m2 := writePairs(t, dir, "s", 2, 20)
	req := Request{Mate1: m1, Mate2: m2, Reads: 30, Seed: 1, OutPrefix: filepath.Join(dir, "sub")}
	err := Reservoir{}.Sample(context.Background(), req)
	c.Assert(err, qt.ErrorMatches, ".*30 reads requested but only 20 available")
}
