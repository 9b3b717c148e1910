// internal/app/app.go

// Package app wires the helixalign personality: the mummer-style matcher
// that scans the forward strand of each query.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"helixalign-core/align"

	"helixalign/internal/appcore"
	"helixalign/internal/cli"
	"helixalign/internal/output"
	"helixalign/internal/version"
	"helixalign/internal/writers"
)

// NewCommand builds the helixalign root command.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	opt := &cli.Options{}
	cmd := &cobra.Command{
		Use:     "helixalign [flags] <reference.fa> <query.fa> [query2.fa ...]",
		Short:   "find maximal exact matches between a reference and query sequences",
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			return cli.Usage(cobra.MinimumNArgs(2)(cmd, args))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opt, args, stdout, stderr)
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

func run(ctx context.Context, opt *cli.Options, args []string, stdout, stderr io.Writer) error {
	if err := opt.Validate(); err != nil {
		return err
	}
	kind, err := opt.Kind()
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(opt.Format)
	if err != nil {
		return cli.Usage(err)
	}
	return appcore.Run(ctx, appcore.Params{
		RefPath:    args[0],
		QueryPaths: args[1:],
		Kind:       kind,
		MinLength:  opt.MinMatch,
		// The plain matcher scans the forward strand only; strand handling
		// belongs to nucalign.
		Strand:    align.ForwardOnly,
		Workers:   opt.Threads,
		Extension: align.DefaultExtension(),
		Format:    format,
		Stats:     opt.Stats,
		Quiet:     opt.Quiet,
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
