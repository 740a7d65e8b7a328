//
// Copyright © 2026 the fastqcontam authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package contam

import (
	"fmt"
	"math"

	"fastqcontam/lib/fastq"
)

// Plan is the read split computed for one contamination proportion.
type Plan struct {
	// Proportion is the requested contamination proportion.
	Proportion float64

	// Percent is round(Proportion*100), used in temporary and final
	// file names.
	Percent int

	// TotalLines is the line count of the sample mate-1 file.
	TotalLines int

	// SampleReads read pairs are drawn from the sample source.
	SampleReads int

	// ContamLines lines are needed from the contaminant source,
	// giving ContamReads read pairs.
	ContamLines int
	ContamReads int
}

// PlanProportion computes the sample/contaminant read split for one
// proportion and verifies the contaminant source is large enough.
//
// The conversions truncate: first lines, then lines to reads. The
// output may therefore fall one read short of an exact mix, and that
// rounding must stay bit-for-bit stable across runs.
func PlanProportion(totalLines, contamAvail int, p float64) (Plan, error) {
	sampleLines := int(float64(totalLines) * (1. - p))
	contamLines := int(float64(totalLines) * p)
	if contamAvail < contamLines {
		return Plan{}, fmt.Errorf("contaminant files too small to provide the %d lines required for %g contamination", contamLines, p)
	}
	return Plan{
		Proportion:  p,
		Percent:     int(math.Round(p * 100.)),
		TotalLines:  totalLines,
		SampleReads: sampleLines / fastq.LinesPerRecord,
		ContamLines: contamLines,
		ContamReads: contamLines / fastq.LinesPerRecord,
	}, nil
}
