// internal/app/app_test.go
package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFasta(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	ref := writeFasta(t, "ref.fa", ">ref\nATCGATCGAT\n")
	qry := writeFasta(t, "qry.fa", ">q1\nATCG\n")

	var out, errBuf bytes.Buffer
	code := Run(context.Background(), []string{"--maxmatch", "-l", "4", "-q", ref, qry}, &out, &errBuf)

	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.Equal(t, "> Query: q1\n"+
		"  Ref: 1  Query: 1  Len: 4\n"+
		"  Ref: 5  Query: 1  Len: 4\n", out.String())
}

func TestRunPAFFormat(t *testing.T) {
	ref := writeFasta(t, "ref.fa", ">ref\nATCGATCGAT\n")
	qry := writeFasta(t, "qry.fa", ">q1\nATCG\n")

	var out, errBuf bytes.Buffer
	code := Run(context.Background(), []string{"--maxmatch", "-l", "4", "-F", "paf", "-q", ref, qry}, &out, &errBuf)

	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.Contains(t, out.String(), "q1\t4\t0\t4\t+\tref\t10\t0\t4\t4\t4\t60\n")
}

func TestRunUsageErrors(t *testing.T) {
	var out, errBuf bytes.Buffer

	// Too few arguments.
	code := Run(context.Background(), []string{"only-one.fa"}, &out, &errBuf)
	assert.Equal(t, 2, code)

	// Conflicting match kinds.
	out.Reset()
	errBuf.Reset()
	code = Run(context.Background(), []string{"--mum", "--maxmatch", "a.fa", "b.fa"}, &out, &errBuf)
	assert.Equal(t, 2, code)
	assert.Contains(t, errBuf.String(), "mutually exclusive")

	// Unknown flag goes through the flag-error hook.
	out.Reset()
	errBuf.Reset()
	code = Run(context.Background(), []string{"--bogus", "a.fa", "b.fa"}, &out, &errBuf)
	assert.Equal(t, 2, code)
}

func TestRunMissingReference(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), []string{"-q", "nope.fa", "also-nope.fa"}, &out, &errBuf)
	assert.Equal(t, 1, code)
	assert.Contains(t, errBuf.String(), "read reference")
}
