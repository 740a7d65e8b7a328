//
// Copyright © 2026 the fastqcontam authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package contam

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fastqcontam/lib/sampler"
	"fastqcontam/lib/zio"
)

// OutputNames returns the final mate-1 and mate-2 paths for a plan.
// The names encode the contamination percentage and the original
// sample file names, so different proportions never collide.
func OutputNames(cfg *Config, plan Plan) (string, string) {
	mate1 := fmt.Sprintf("conPercent%d_%s", plan.Percent, filepath.Base(cfg.SampleMate1))
	mate2 := fmt.Sprintf("conPercent%d_%s", plan.Percent, filepath.Base(cfg.SampleMate2))
	return filepath.Join(cfg.OutputDir, mate1), filepath.Join(cfg.OutputDir, mate2)
}

func tempPrefixes(cfg *Config, plan Plan) (string, string) {
	return filepath.Join(cfg.TempDir, fmt.Sprintf("temp_sample%d", plan.Percent)),
		filepath.Join(cfg.TempDir, fmt.Sprintf("temp_contaminant%d", plan.Percent))
}

// Simulate produces the contaminated output pair for one plan: it
// subsamples the sample and contaminant sources with the same seed,
// then concatenates the subsamples per mate, sample reads first. The
// temporary subsample files are removed after a successful merge.
func Simulate(ctx context.Context, cfg *Config, smp sampler.Sampler, plan Plan) error {
	prefixSample, prefixContam := tempPrefixes(cfg, plan)
	reqSample := sampler.Request{
		Mate1:     cfg.SampleMate1,
		Mate2:     cfg.SampleMate2,
		Reads:     plan.SampleReads,
		Seed:      cfg.Seed,
		OutPrefix: prefixSample,
	}
	reqContam := sampler.Request{
		Mate1:     cfg.ContamMate1,
		Mate2:     cfg.ContamMate2,
		Reads:     plan.ContamReads,
		Seed:      cfg.Seed,
		OutPrefix: prefixContam,
	}
	if err := smp.Sample(ctx, reqSample); err != nil {
		return fmt.Errorf("subsampling sample files: %w", err)
	}
	if err := smp.Sample(ctx, reqContam); err != nil {
		return fmt.Errorf("subsampling contaminant files: %w", err)
	}

	out1, out2 := OutputNames(cfg, plan)
	if err := concatFiles(out1, reqSample.OutMate1(), reqContam.OutMate1()); err != nil {
		return err
	}
	if err := concatFiles(out2, reqSample.OutMate2(), reqContam.OutMate2()); err != nil {
		return err
	}

	for _, p := range []string{reqSample.OutMate1(), reqSample.OutMate2(), reqContam.OutMate1(), reqContam.OutMate2()} {
		if err := os.Remove(p); err != nil {
			return err
		}
	}
	return nil
}

// concatFiles writes the concatenation of srcs to dst, compressing by
// the dst extension.
func concatFiles(dst string, srcs ...string) error {
	w, err := zio.Create(dst)
	if err != nil {
		return err
	}
	for _, src := range srcs {
		f, err := os.Open(src)
		if err != nil {
			w.Close()
			return err
		}
		_, err = io.Copy(w, f)
		f.Close()
		if err != nil {
			w.Close()
			return fmt.Errorf("merging %s into %s: %v", src, dst, err)
		}
	}
	return w.Close()
}
