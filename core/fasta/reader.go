// core/fasta/reader.go

// Package fasta reads plain or gzip-compressed FASTA into records whose
// sequences are already normalized to the A/C/G/T/N engine alphabet.
// Multi-line records are concatenated per header; record IDs are the first
// whitespace-delimited header token.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"helixalign-core/seq"
)

// allow very long single-line sequences (64 MiB)
const maxLine = 64 * 1024 * 1024

// StreamRecords parses FASTA from r and calls emit once per record, in file
// order. It is cancelable: it returns promptly when ctx is done, even in
// the middle of a record. An emit error aborts the scan and is returned.
func StreamRecords(ctx context.Context, r io.Reader, emit func(seq.Sequence) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id   string
		open bool
		body = make([]byte, 0, 1<<20)
	)
	flush := func() error {
		if !open {
			return nil
		}
		return emit(seq.Sequence{ID: id, Seq: seq.Normalize(body)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id = headerID(line[1:])
			open = true
			body = body[:0]
			continue
		}
		if !open {
			return fmt.Errorf("fasta: sequence data before first header")
		}
		body = append(body, line...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// StreamPath is StreamRecords over an opened path (stdin and gzip aware).
func StreamPath(ctx context.Context, path string, emit func(seq.Sequence) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamRecords(ctx, rc, emit)
}

// ReadAll returns every record in path. Missing or malformed files are
// errors; an empty file yields an empty slice.
func ReadAll(path string) ([]seq.Sequence, error) {
	var out []seq.Sequence
	err := StreamPath(context.Background(), path, func(s seq.Sequence) error {
		out = append(out, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func headerID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
