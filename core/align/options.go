// core/align/options.go
package align

import (
	"errors"
	"fmt"

	"helixalign-core/match"
)

// Strand selects which query orientations are searched.
type Strand int

const (
	Both Strand = iota
	ForwardOnly
	ReverseOnly
)

// ExtensionConfig is the configuration block of the cluster/extension stage
// that consumes anchor sets downstream. The stage is not built yet: the
// values are validated here and carried untouched, and nothing in anchor
// discovery reads them.
type ExtensionConfig struct {
	BreakLength int
	MinCluster  int
	DiagDiff    int
	DiagFactor  float64
	MaxGap      int
	Extend      bool
	Optimize    bool
	Simplify    bool
	Banding     bool
}

// DefaultExtension returns the nucmer-compatible extension defaults.
func DefaultExtension() ExtensionConfig {
	return ExtensionConfig{
		BreakLength: 200,
		MinCluster:  65,
		DiagDiff:    5,
		DiagFactor:  0.12,
		MaxGap:      90,
		Extend:      true,
		Optimize:    true,
		Simplify:    true,
	}
}

// Options configures an Aligner. The zero value is not valid: MinLength
// must be at least 1.
type Options struct {
	Kind      match.Kind
	MinLength int
	Strand    Strand
	// Workers bounds the parallel fan-out in AlignAll; 0 means one worker
	// per available CPU. The count is owned by the Aligner instance, never
	// by process-global state.
	Workers int
	// Progress, when set, is called once per completed query during
	// AlignAll with the number finished so far and the total. It must not
	// block; it never affects results.
	Progress  func(done, total int)
	Extension ExtensionConfig
}

var (
	ErrInvalidMinLength = errors.New("align: minimum match length must be >= 1")
	ErrInvalidWorkers   = errors.New("align: worker count must be >= 0")
)

func (o *Options) validate() error {
	if o.MinLength < 1 {
		return ErrInvalidMinLength
	}
	if o.Workers < 0 {
		return ErrInvalidWorkers
	}
	if o.Strand < Both || o.Strand > ReverseOnly {
		return fmt.Errorf("align: unknown strand selection %d", o.Strand)
	}
	e := o.Extension
	if e.BreakLength < 0 || e.MinCluster < 0 || e.DiagDiff < 0 || e.MaxGap < 0 {
		return errors.New("align: extension lengths must be >= 0")
	}
	if e.DiagFactor < 0 {
		return errors.New("align: diagonal factor must be >= 0")
	}
	return nil
}
