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

	"fastqcontam/lib/fastq"
)

// ValidateInputs checks that both mates of each paired-end source have
// the same number of lines. It returns the sample and contaminant line
// counts so later stages do not re-read the inputs.
func ValidateInputs(cfg *Config) (sampleLines, contamLines int, err error) {
	sampleLines, err = fastq.CountLines(cfg.SampleMate1)
	if err != nil {
		return 0, 0, err
	}
	n2, err := fastq.CountLines(cfg.SampleMate2)
	if err != nil {
		return 0, 0, err
	}
	if sampleLines != n2 {
		return 0, 0, fmt.Errorf("the 2 paired-end sample files provided have a different number of reads/lines (%d != %d)", sampleLines, n2)
	}
	contamLines, err = fastq.CountLines(cfg.ContamMate1)
	if err != nil {
		return 0, 0, err
	}
	n2, err = fastq.CountLines(cfg.ContamMate2)
	if err != nil {
		return 0, 0, err
	}
	if contamLines != n2 {
		return 0, 0, fmt.Errorf("the 2 paired-end contaminant files provided have a different number of reads/lines (%d != %d)", contamLines, n2)
	}
	return sampleLines, contamLines, nil
}
