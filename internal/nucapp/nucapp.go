// internal/nucapp/nucapp.go

// Package nucapp wires the nucalign personality: the nucmer-style aligner
// that scans both strands by default and carries the extension-stage
// option block.
package nucapp

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"helixalign/internal/appcore"
	"helixalign/internal/cli"
	"helixalign/internal/config"
	"helixalign/internal/output"
	"helixalign/internal/version"
	"helixalign/internal/writers"
)

// NewCommand builds the nucalign root command.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	opt := &cli.NucOptions{}
	cmd := &cobra.Command{
		Use:     "nucalign [flags] <reference.fa> <query.fa> [query2.fa ...]",
		Short:   "anchor queries against a reference on both strands",
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			return cli.Usage(cobra.MinimumNArgs(2)(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opt, args, stdout, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return cli.Usage(err) })
	opt.Register(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, opt *cli.NucOptions, args []string, stdout, stderr io.Writer) error {
	if err := opt.Validate(); err != nil {
		return err
	}
	kind, err := opt.Kind()
	if err != nil {
		return err
	}
	strand, err := opt.Strand()
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(opt.Format)
	if err != nil {
		return cli.Usage(err)
	}

	// File and environment settings fill in extension values the user did
	// not set on the command line.
	fileExt, err := config.LoadExtension(opt.ConfigFile)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if !fs.Changed("breaklen") {
		opt.BreakLength = fileExt.BreakLength
	}
	if !fs.Changed("mincluster") {
		opt.MinCluster = fileExt.MinCluster
	}
	if !fs.Changed("diagdiff") {
		opt.DiagDiff = fileExt.DiagDiff
	}
	if !fs.Changed("diagfactor") {
		opt.DiagFactor = fileExt.DiagFactor
	}
	if !fs.Changed("maxgap") {
		opt.MaxGap = fileExt.MaxGap
	}

	var progress func(done, total int)
	if !opt.NoProgress && !opt.Quiet {
		progress = newProgressObserver(stderr).update
	}

	return appcore.Run(cmd.Context(), appcore.Params{
		RefPath:    args[0],
		QueryPaths: args[1:],
		Kind:       kind,
		MinLength:  opt.MinMatch,
		Strand:     strand,
		Workers:    opt.Threads,
		Extension:  opt.Extension(),
		Progress:   progress,
		Format:     format,
		Stats:      opt.Stats,
		Quiet:      opt.Quiet,
	}, stdout, stderr)
}

// Run executes argv and maps errors onto process exit codes: 0 ok (or
// downstream closed the pipe), 2 usage, 1 anything else.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(argv)
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case writers.IsBrokenPipe(err):
		return 0
	case cli.IsUsage(err):
		fmt.Fprintln(stderr, "error:", err)
		return 2
	default:
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
}
