//
// Copyright © 2026 the fastqcontam authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package sampler draws a fixed number of read pairs at random from a
// paired-end FASTQ source. Selection is deterministic for a given seed
// and both mates always receive the same selection, so pairs stay
// matched.
package sampler

import "context"

// Request describes one subsampling run over a paired-end source.
type Request struct {
	// Mate1 and Mate2 are the two files of the paired-end source.
	Mate1 string
	Mate2 string

	// Reads is the number of read pairs to draw.
	Reads int

	// Seed for the pseudo-random selection.
	Seed int64

	// OutPrefix is the output prefix; the sampled pairs are written
	// to <OutPrefix>.1.fastq and <OutPrefix>.2.fastq.
	OutPrefix string
}

// OutMate1 returns the mate-1 output path for the request.
func (r Request) OutMate1() string {
	return r.OutPrefix + ".1.fastq"
}

// OutMate2 returns the mate-2 output path for the request.
func (r Request) OutMate2() string {
	return r.OutPrefix + ".2.fastq"
}

// Sampler draws matched read pairs at random from a paired-end source.
type Sampler interface {
	Sample(ctx context.Context, req Request) error
}
