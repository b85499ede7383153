/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package main

import (
	"fmt"

	"github.com/hexkit/hexgen/cli"
	"github.com/hexkit/hexgen/logging"
	"github.com/hexkit/hexgen/scaffold"
	"github.com/spf13/cobra"
)

// addCommitFlags wires the flags shared by every generation command.
func addCommitFlags(cmd *cobra.Command, opts *cli.GenerateCLIOptions) {
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output base path (default is the configured output root)")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Skip confirmation prompts")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite pre-existing files")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report intended artifacts without writing them")
}

// runGenerate validates options, resolves the project configuration fresh
// for this invocation, generates the artifact set, and commits it.
func runGenerate(cmd *cobra.Command, kind scaffold.ComponentType, opts cli.GenerateCLIOptions) error {
	ctx := cmd.Context()

	if err := cli.NewValidator().ValidateGenerateOptions(opts); err != nil {
		return err
	}

	outputBase := opts.Output
	if outputBase == "" {
		if cfg := configFromContext(cmd); cfg != nil && cfg.Output.Root != "" {
			outputBase = cfg.Output.Root
		} else {
			outputBase = "."
		}
	}

	// Loaded fresh per command; no cached config survives across
	// invocations.
	projectCfg := scaffold.LoadProjectConfig(ctx, outputBase)

	for _, w := range scaffold.CheckRequires(projectCfg.Requires, version) {
		logging.WarnContext(ctx, "%s", w)
	}

	genOpts := scaffold.GenerateOptions{
		Domain:      opts.Domain,
		AdapterType: opts.AdapterType,
		WithModel:   opts.WithModel,
		WithService: opts.WithService,
		WithPort:    opts.WithPort,
		WithSchema:  opts.WithSchema,
		ModelName:   opts.ModelName,
		ServiceName: opts.ServiceName,
		PortName:    opts.PortName,
		AdapterName: opts.AdapterName,
		OutputBase:  outputBase,
	}

	generator := scaffold.NewGenerator(projectCfg)

	for _, w := range generator.PrerequisiteWarnings(kind, opts.Name, genOpts) {
		logging.WarnContext(ctx, "%s", w)
	}

	artifacts, err := generator.Generate(kind, opts.Name, genOpts)
	if err != nil {
		return err
	}

	report, err := scaffold.NewFSCommitter().Commit(ctx, artifacts, scaffold.CommitOptions{
		DryRun: opts.DryRun,
		Force:  opts.Force,
	})
	if err != nil {
		return err
	}

	reportCommit(cmd, report)

	if report.HasConflicts() && !opts.DryRun {
		return fmt.Errorf("%d path(s) already exist; re-run with --force to overwrite", len(report.Conflicts))
	}

	return nil
}

// reportCommit prints the per-path outcome of a commit.
func reportCommit(cmd *cobra.Command, report *scaffold.CommitReport) {
	ctx := cmd.Context()

	for _, p := range report.Planned {
		logging.InfoContext(ctx, "would create %s", p)
	}
	for _, p := range report.Created {
		logging.InfoContext(ctx, "created %s", p)
	}
	for _, p := range report.Overwritten {
		logging.InfoContext(ctx, "overwrote %s", p)
	}
	for _, p := range report.Conflicts {
		logging.ErrorContext(ctx, "conflict: %s already exists", p)
	}
}
