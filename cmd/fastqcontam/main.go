//
// Copyright © 2026 the fastqcontam authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"fastqcontam/lib/contam"
	"fastqcontam/lib/sampler"
)

var version = "DEV"

func splitPair(raw, what string) (string, string) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		log.Fatalf("Two comma-separated %s files are required, got %q", what, raw)
	}
	return parts[0], parts[1]
}

// makeTemp creates a unique per-run directory for the temporary
// subsample files.
func makeTemp(base string) string {
	xuid, err := uuid.NewUUID()
	if err != nil {
		log.Fatal(err)
	}
	if base == "" {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "fastqcontam_"+xuid.String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatal(err)
	}
	return dir
}

func main() {
	// Arguments: General
	var pathConfig string
	var nWorker, verboseLevel int
	var verbose, keepTemp, printVersion bool
	flag.StringVar(&pathConfig, "path_config", "", "Path to JSON configuration file (flags override)")
	flag.IntVar(&nWorker, "num_worker", 1, "Number of proportion(s) processed concurrently")
	flag.IntVar(&verboseLevel, "verbose_level", 0, "Verbose level")
	flag.BoolVar(&verbose, "verbose", false, "Verbose")
	flag.BoolVar(&keepTemp, "keep_temp", false, "Keep the temporary subsample files")
	flag.BoolVar(&printVersion, "version", false, "Print version and quit")
	// Arguments: Input
	var sampleFilesRaw, contamFilesRaw, proportionsRaw string
	var seed int64
	flag.StringVar(&sampleFilesRaw, "sampleFiles", "", "Two paired-end FASTQ files containing the sample data (comma separated)")
	flag.StringVar(&sampleFilesRaw, "f", "", "Short for sampleFiles")
	flag.StringVar(&contamFilesRaw, "contaminantFiles", "", "Two paired-end FASTQ files containing the contaminating data (comma separated)")
	flag.StringVar(&contamFilesRaw, "c", "", "Short for contaminantFiles")
	flag.StringVar(&proportionsRaw, "proportionContaminant", "", "Proportion(s) (>0 & <=0.5) of contamination required (comma separated)")
	flag.StringVar(&proportionsRaw, "p", "", "Short for proportionContaminant")
	flag.Int64Var(&seed, "seed", 0, "Seed the random number generator. The same seed on the same data set will produce the same random sample (default 1)")
	flag.Int64Var(&seed, "s", 0, "Short for seed")
	// Arguments: Sampling
	var samplerRaw, pathFastqSample string
	flag.StringVar(&samplerRaw, "sampler", "exec", "Read sampling primitive: 'exec' (external fastq-sample) or 'builtin'")
	flag.StringVar(&pathFastqSample, "fastq_sample", sampler.DefaultTool, "Path to the external fastq-sample program")
	// Arguments: Output
	var outputDir, tempDir string
	flag.StringVar(&outputDir, "output_dir", "", "Path to output directory (default current directory)")
	flag.StringVar(&tempDir, "temp_dir", "", "Base directory for temporary subsample files (default OS temp)")
	// Arguments: Parse
	flag.Parse()

	// Version
	if printVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Verbose
	if verbose && verboseLevel == 0 {
		verboseLevel = 1
	}

	// Time start
	var timeStart time.Time
	if verboseLevel > 0 {
		timeStart = time.Now()
	}

	// Config
	var cfg *contam.Config
	if pathConfig != "" {
		var err error
		cfg, err = contam.ReadConfig(pathConfig)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		cfg = new(contam.Config)
	}
	if sampleFilesRaw != "" {
		cfg.SampleMate1, cfg.SampleMate2 = splitPair(sampleFilesRaw, "sample")
	}
	if contamFilesRaw != "" {
		cfg.ContamMate1, cfg.ContamMate2 = splitPair(contamFilesRaw, "contaminant")
	}
	if proportionsRaw != "" {
		cfg.Proportions = cfg.Proportions[:0]
		for _, raw := range strings.Split(proportionsRaw, ",") {
			p, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				log.Fatal(err)
			}
			cfg.Proportions = append(cfg.Proportions, p)
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	if nWorker > 1 {
		cfg.NumWorker = nWorker
	}
	if verboseLevel > 0 {
		cfg.VerboseLevel = verboseLevel
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}

	// Check arguments
	if err := contam.CheckConfig(cfg); err != nil {
		log.Fatal(err)
	}
	for _, p := range []string{cfg.SampleMate1, cfg.SampleMate2, cfg.ContamMate1, cfg.ContamMate2} {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			log.Fatalln(p, "not found")
		}
	}

	// Sampling primitive
	var smp sampler.Sampler
	switch samplerRaw {
	case "exec":
		smp = &sampler.Exec{Tool: pathFastqSample}
	case "builtin":
		smp = sampler.Reservoir{}
	default:
		log.Fatalf("Unknown sampler %q: 'exec' or 'builtin'", samplerRaw)
	}

	// Temporary directory
	if tempDir == "" {
		tempDir = cfg.TempDir
	}
	cfg.TempDir = makeTemp(tempDir)
	if !keepTemp {
		defer os.RemoveAll(cfg.TempDir)
	}
	if verboseLevel > 0 {
		timeNow := time.Now()
		fmt.Printf("%.1fmin - Storing temporary files in %s\n", timeNow.Sub(timeStart).Minutes(), cfg.TempDir)
	}

	// Simulate contamination for each proportion
	if err := contam.Run(context.Background(), cfg, smp); err != nil {
		// log.Fatal skips the deferred cleanup
		if !keepTemp {
			os.RemoveAll(cfg.TempDir)
		}
		log.Fatal(err)
	}

	// Verbose
	if verboseLevel > 0 {
		timeEnd := time.Now()
		fmt.Printf("%.1fmin - Done %d proportion(s)\n", timeEnd.Sub(timeStart).Minutes(), len(cfg.Proportions))
	}
}
