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
	"math/rand"
	"os"

	"fastqcontam/lib/fastq"
	"fastqcontam/lib/zio"
)

// Reservoir samples read pairs in-process with seeded reservoir
// selection over record indices. The same index set is applied to both
// mates and selected records keep their file order.
type Reservoir struct{}

func (Reservoir) Sample(ctx context.Context, req Request) error {
	nLines, err := fastq.CountLines(req.Mate1)
	if err != nil {
		return err
	}
	nReads := nLines / fastq.LinesPerRecord
	if req.Reads > nReads {
		return fmt.Errorf("%s: %d reads requested but only %d available", req.Mate1, req.Reads, nReads)
	}

	keep := selectIndices(nReads, req.Reads, req.Seed)

	if err := copySelected(ctx, req.Mate1, req.OutMate1(), keep); err != nil {
		return err
	}
	return copySelected(ctx, req.Mate2, req.OutMate2(), keep)
}

// selectIndices picks k of n indices with the classic reservoir
// algorithm, deterministic for a given seed.
func selectIndices(n, k int, seed int64) []bool {
	rng := rand.New(rand.NewSource(seed))
	sel := make([]int, k)
	for i := 0; i < k; i++ {
		sel[i] = i
	}
	for i := k; i < n; i++ {
		j := rng.Intn(i + 1)
		if j < k {
			sel[j] = i
		}
	}
	keep := make([]bool, n)
	for _, i := range sel {
		keep[i] = true
	}
	return keep
}

func copySelected(ctx context.Context, in, out string, keep []bool) error {
	r, err := zio.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	reader := fastq.NewReader(r)
	writer := fastq.NewWriter(f)
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("%s: %v", in, err)
		}
		if i < len(keep) && keep[i] {
			if err := writer.Write(rec); err != nil {
				return err
			}
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}
	return f.Close()
}
