package main

import (
	"fmt"

	"github.com/fwojciec/chatexport"
	"github.com/fwojciec/chatexport/export"
	"github.com/fwojciec/chatexport/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	jobs := c.jobs()
	deps.Logger.Info("export started", "files", len(jobs), "lang", deps.Catalog.Language())

	// A single file prints its output unbuffered.
	if len(jobs) == 1 {
		if _, err := deps.Exporter.Export(deps.Ctx, jobs[0], deps.Stdout); err != nil {
			return &reportedError{err: err}
		}
		return nil
	}

	progress := func(completed, total int, o *export.Outcome) {
		deps.Logger.Info("export finished",
			"input", o.Job.Input,
			"completed", completed,
			"total", total,
			"err", o.Err,
		)
	}
	outcomes := deps.Exporter.Batch(deps.Ctx, jobs, c.Concurrency, progress)

	for i, o := range outcomes {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "==> %s <==\n", o.Job.Input)
		_, _ = deps.Stdout.Write(o.Output)
	}

	if failed := export.Failed(outcomes); failed > 0 {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, deps.Catalog.Sprintf(chatexport.MsgBatchFailed, failed, len(outcomes)))
		return &reportedError{err: fmt.Errorf("%d of %d files failed", failed, len(outcomes))}
	}
	return nil
}

// jobs pairs every input with its output path.
func (c *ExportCmd) jobs() []export.Job {
	jobs := make([]export.Job, len(c.Files))
	for i, input := range c.Files {
		output := c.Output
		if output == "" {
			output = fs.OutputPath(input)
		}
		jobs[i] = export.Job{Input: input, Output: output}
	}
	return jobs
}
