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
	"os/exec"
	"strconv"
)

// DefaultTool is the external sampling program from the fastq-tools
// suite.
const DefaultTool = "fastq-sample"

// Exec samples read pairs by running an external fastq-sample
// compatible program. The program is invoked with an explicit argument
// list, never through a shell, and a non-zero exit status is returned
// as an error.
type Exec struct {
	// Tool is the program name or path; DefaultTool if empty.
	Tool string

	// Stderr receives the program diagnostics; os.Stderr if nil.
	Stderr io.Writer
}

func (e *Exec) command(ctx context.Context, req Request) *exec.Cmd {
	tool := e.Tool
	if tool == "" {
		tool = DefaultTool
	}
	cmd := exec.CommandContext(ctx, tool,
		"-n", strconv.Itoa(req.Reads),
		"-o", req.OutPrefix,
		"-s", strconv.FormatInt(req.Seed, 10),
		req.Mate1, req.Mate2)
	cmd.Env = os.Environ()
	if e.Stderr != nil {
		cmd.Stderr = e.Stderr
	} else {
		cmd.Stderr = os.Stderr
	}
	return cmd
}

func (e *Exec) Sample(ctx context.Context, req Request) error {
	cmd := e.command(ctx, req)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s %s: %w", cmd.Args[0], req.Mate1, req.Mate2, err)
	}
	return nil
}
