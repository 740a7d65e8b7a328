//
// Copyright © 2026 the fastqcontam authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

// Package contam simulates cross-sample contamination by mixing a
// controlled proportion of read pairs from a contaminant paired-end
// FASTQ source into a sample paired-end FASTQ source.
package contam

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	// The two paired-end FASTQ files containing the sample data.
	SampleMate1 string
	SampleMate2 string

	// The two paired-end FASTQ files containing the contaminating
	// data.
	ContamMate1 string
	ContamMate2 string

	// The requested contamination proportions, each in (0, 0.5].
	// Every proportion produces one independent output pair.
	Proportions []float64

	// Seed for the random read selection. The same seed on the same
	// data set produces the same random sample.
	Seed int64

	// The directory receiving the final contaminated files. Default
	// is the current directory.
	OutputDir string

	// The directory holding the temporary subsample files of a run.
	TempDir string

	// The number of proportions processed concurrently. Proportions
	// are independent; 1 keeps processing fully sequential.
	NumWorker int

	// Verbose level; 0 is silent.
	VerboseLevel int
}

// ReadConfig loads a Config from a JSON file.
func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg := new(Config)
	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return cfg, nil
}

// CheckConfig verifies the configuration is complete and the requested
// proportions are within (0, 0.5].
func CheckConfig(cfg *Config) error {
	if cfg.SampleMate1 == "" || cfg.SampleMate2 == "" {
		return fmt.Errorf("two paired-end sample files are required")
	}
	if cfg.ContamMate1 == "" || cfg.ContamMate2 == "" {
		return fmt.Errorf("two paired-end contaminant files are required")
	}
	if len(cfg.Proportions) == 0 {
		return fmt.Errorf("no contamination proportion requested")
	}
	for _, p := range cfg.Proportions {
		if p <= 0. || p > 0.5 {
			return fmt.Errorf("contamination proportion %g out of range (0, 0.5]", p)
		}
	}
	if cfg.NumWorker < 1 {
		cfg.NumWorker = 1
	}
	return nil
}
