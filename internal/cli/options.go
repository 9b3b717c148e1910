// internal/cli/options.go

// Package cli holds the flag surfaces of the helixalign and nucalign
// commands and resolves them into validated core options.
package cli

import (
	"github.com/spf13/pflag"

	"helixalign-core/align"
	"helixalign-core/match"
)

// Options is the flag surface shared by both command personalities.
type Options struct {
	MUM          bool
	MUMReference bool
	MUMCand      bool
	MaxMatch     bool

	MinMatch int
	Threads  int
	Format   string
	Stats    bool
	Quiet    bool
}

// Register binds the shared flags onto fs.
func (o *Options) Register(fs *pflag.FlagSet) {
	fs.BoolVar(&o.MUM, "mum", false, "match only substrings unique in both sequences")
	fs.BoolVar(&o.MUMReference, "mumreference", false, "match substrings unique in the reference (default)")
	fs.BoolVar(&o.MUMCand, "mumcand", false, "alias of --mumreference")
	fs.BoolVar(&o.MaxMatch, "maxmatch", false, "match all maximal substrings regardless of uniqueness")
	fs.IntVarP(&o.MinMatch, "minmatch", "l", 20, "minimum length of a match")
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker threads (0 = all CPUs)")
	fs.StringVarP(&o.Format, "format", "F", "text", "output format: text | delta | paf | sam")
	fs.BoolVar(&o.Stats, "stats", false, "print reference and query statistics (N50, N90, GC)")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress run logging")
}

// Kind resolves the match-classification flags, rejecting conflicting
// selections. No flag means reference-unique, matching mummer's default.
func (o *Options) Kind() (match.Kind, error) {
	n := 0
	kind := match.UniqueReference
	if o.MUM {
		n++
		kind = match.UniqueBoth
	}
	if o.MUMReference || o.MUMCand {
		n++
		kind = match.UniqueReference
	}
	if o.MaxMatch {
		n++
		kind = match.Unrestricted
	}
	if n > 1 {
		return 0, Usagef("--mum, --mumreference and --maxmatch are mutually exclusive")
	}
	return kind, nil
}

// Validate checks the shared numeric flags.
func (o *Options) Validate() error {
	if o.MinMatch < 1 {
		return Usagef("--minmatch must be >= 1")
	}
	if o.Threads < 0 {
		return Usagef("--threads must be >= 0")
	}
	return nil
}

// NucOptions extends the shared surface with nucmer-style strand selection
// and the extension-stage block. The extension values are validated and
// forwarded, but the clustering stage that consumes them is not part of
// anchor discovery.
type NucOptions struct {
	Options

	ForwardOnly bool
	ReverseOnly bool

	ConfigFile string
	NoProgress bool

	BreakLength int
	MinCluster  int
	DiagDiff    int
	DiagFactor  float64
	MaxGap      int
	MinAlign    int
	NoExtend    bool
	NoOptimize  bool
	NoSimplify  bool
	Banded      bool
}

// Register binds the full nucalign flag surface onto fs.
func (o *NucOptions) Register(fs *pflag.FlagSet) {
	o.Options.Register(fs)
	fs.BoolVarP(&o.ForwardOnly, "forward", "f", false, "use only the forward strand of the queries")
	fs.BoolVarP(&o.ReverseOnly, "reverse", "r", false, "use only the reverse complement of the queries")
	fs.StringVar(&o.ConfigFile, "config", "", "settings file for extension defaults (YAML)")
	fs.BoolVar(&o.NoProgress, "no-progress", false, "disable the progress bar")

	ext := align.DefaultExtension()
	fs.IntVarP(&o.BreakLength, "breaklen", "b", ext.BreakLength, "extension break length")
	fs.IntVarP(&o.MinCluster, "mincluster", "c", ext.MinCluster, "minimum cluster length")
	fs.IntVarP(&o.DiagDiff, "diagdiff", "D", ext.DiagDiff, "maximum diagonal difference in a cluster")
	fs.Float64VarP(&o.DiagFactor, "diagfactor", "d", ext.DiagFactor, "diagonal difference as a fraction of the gap")
	fs.IntVarP(&o.MaxGap, "maxgap", "g", ext.MaxGap, "maximum gap between adjacent cluster matches")
	fs.IntVarP(&o.MinAlign, "minalign", "L", 0, "minimum alignment length after clustering (0 = off)")
	fs.BoolVar(&o.NoExtend, "noextend", false, "skip the cluster extension step")
	fs.BoolVar(&o.NoOptimize, "nooptimize", false, "skip alignment score optimization")
	fs.BoolVar(&o.NoSimplify, "nosimplify", false, "keep shadowed clusters")
	fs.BoolVar(&o.Banded, "banded", false, "band the extension matrix by --diagdiff")
}

// Strand resolves the strand flags, rejecting the conflicting pair.
func (o *NucOptions) Strand() (align.Strand, error) {
	switch {
	case o.ForwardOnly && o.ReverseOnly:
		return 0, Usagef("--forward conflicts with --reverse")
	case o.ForwardOnly:
		return align.ForwardOnly, nil
	case o.ReverseOnly:
		return align.ReverseOnly, nil
	default:
		return align.Both, nil
	}
}

// Validate checks the nucalign flags on top of the shared ones.
func (o *NucOptions) Validate() error {
	if err := o.Options.Validate(); err != nil {
		return err
	}
	if o.BreakLength < 0 || o.MinCluster < 0 || o.DiagDiff < 0 || o.MaxGap < 0 || o.MinAlign < 0 {
		return Usagef("extension lengths must be >= 0")
	}
	if o.DiagFactor < 0 {
		return Usagef("--diagfactor must be >= 0")
	}
	return nil
}

// Extension assembles the inert extension block from the resolved flags.
func (o *NucOptions) Extension() align.ExtensionConfig {
	return align.ExtensionConfig{
		BreakLength: o.BreakLength,
		MinCluster:  o.MinCluster,
		DiagDiff:    o.DiagDiff,
		DiagFactor:  o.DiagFactor,
		MaxGap:      o.MaxGap,
		Extend:      !o.NoExtend,
		Optimize:    !o.NoOptimize,
		Simplify:    !o.NoSimplify,
		Banding:     o.Banded,
	}
}
