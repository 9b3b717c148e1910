// internal/nucapp/nucapp_test.go
package nucapp

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunBothStrands(t *testing.T) {
	// The query is the reverse complement of the reference, so only the
	// reverse pass produces an anchor.
	ref := writeFile(t, "ref.fa", ">ref\nTTTGATTACATTT\n")
	qry := writeFile(t, "qry.fa", ">q1\nAAATGTAATCAAA\n")

	var out, errBuf bytes.Buffer
	code := Run(context.Background(),
		[]string{"--maxmatch", "-l", "13", "-q", "--no-progress", ref, qry}, &out, &errBuf)

	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.Equal(t, "> Query: q1\n  Ref: 1  Query: 1  Len: 13\n", out.String())
}

func TestRunForwardOnlyFindsNothingOnOppositeStrand(t *testing.T) {
	ref := writeFile(t, "ref.fa", ">ref\nTTTGATTACATTT\n")
	qry := writeFile(t, "qry.fa", ">q1\nAAATGTAATCAAA\n")

	var out, errBuf bytes.Buffer
	code := Run(context.Background(),
		[]string{"--maxmatch", "-l", "13", "-f", "-q", "--no-progress", ref, qry}, &out, &errBuf)

	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.Equal(t, "> Query: q1\n", out.String())
}

func TestRunStrandConflict(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run(context.Background(), []string{"-f", "-r", "a.fa", "b.fa"}, &out, &errBuf)
	assert.Equal(t, 2, code)
	assert.Contains(t, errBuf.String(), "--forward conflicts with --reverse")
}

func TestRunConfigFileApplied(t *testing.T) {
	ref := writeFile(t, "ref.fa", ">ref\nATCGATCGAT\n")
	qry := writeFile(t, "qry.fa", ">q1\nATCG\n")
	cfg := writeFile(t, "helixalign.yaml", "break-length: 120\n")

	var out, errBuf bytes.Buffer
	code := Run(context.Background(),
		[]string{"--maxmatch", "-l", "4", "-q", "--no-progress", "--config", cfg, ref, qry}, &out, &errBuf)

	require.Equal(t, 0, code, "stderr: %s", errBuf.String())
	assert.Contains(t, out.String(), "Len: 4")
}

func TestRunMissingConfigFile(t *testing.T) {
	ref := writeFile(t, "ref.fa", ">ref\nATCG\n")

	var out, errBuf bytes.Buffer
	code := Run(context.Background(),
		[]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), ref, ref}, &out, &errBuf)
	assert.Equal(t, 1, code)
}
