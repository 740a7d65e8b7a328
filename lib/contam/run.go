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
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/fatih/set.v0"

	"fastqcontam/lib/sampler"
)

// Run validates the inputs, computes the read split of every requested
// proportion, then simulates the proportions. Validation and sizing
// run before any sampling, so a bad request aborts the run with no
// output written. NumWorker > 1 processes proportions concurrently;
// the first failure cancels the remaining ones.
func Run(ctx context.Context, cfg *Config, smp sampler.Sampler) error {
	if err := CheckConfig(cfg); err != nil {
		return err
	}

	timeStart := time.Now()
	sampleLines, contamLines, err := ValidateInputs(cfg)
	if err != nil {
		return err
	}
	if cfg.VerboseLevel > 0 {
		timeNow := time.Now()
		fmt.Printf("%.1fmin - Sample: %d lines, contaminant: %d lines\n", timeNow.Sub(timeStart).Minutes(), sampleLines, contamLines)
	}

	// All plans are computed before any sampling
	plans := make([]Plan, 0, len(cfg.Proportions))
	percents := set.New(set.NonThreadSafe)
	for _, p := range cfg.Proportions {
		plan, err := PlanProportion(sampleLines, contamLines, p)
		if err != nil {
			return err
		}
		if percents.Has(plan.Percent) {
			return fmt.Errorf("duplicate contamination percentage %d%%: output files would collide", plan.Percent)
		}
		percents.Add(plan.Percent)
		plans = append(plans, plan)
	}

	// Start sync errgroup
	g, gctx := errgroup.WithContext(ctx)

	// Start plan channel
	chPlan := make(chan Plan)
	g.Go(func() error {
		defer close(chPlan)
		for _, plan := range plans {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case chPlan <- plan:
			}
		}
		return nil
	})

	// Spawn worker goroutine(s)
	for i := 0; i < cfg.NumWorker; i++ {
		g.Go(func() error {
			for plan := range chPlan {
				if err := Simulate(gctx, cfg, smp, plan); err != nil {
					return fmt.Errorf("proportion %g: %w", plan.Proportion, err)
				}
				if cfg.VerboseLevel > 0 {
					timeNow := time.Now()
					out1, out2 := OutputNames(cfg, plan)
					fmt.Printf("%.1fmin - Wrote %s and %s\n", timeNow.Sub(timeStart).Minutes(), out1, out2)
				}
			}
			return nil
		})
	}

	return g.Wait()
}
