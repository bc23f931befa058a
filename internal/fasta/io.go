package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/pswsm/fasta-cli-tools/internal/sequence"
)

// Stdio is the path that selects stdin for reading and stdout for writing.
const Stdio = "-"

// Open returns a reader over path, or stdin for "-". Gzip input is detected
// by its magic bytes and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	var (
		src    io.Reader
		closer io.Closer = io.NopCloser(nil)
	)
	if path == Stdio {
		src = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, closer = fh, fh
	}

	br := bufio.NewReader(src)
	if magic, _ := br.Peek(2); len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			closer.Close()
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return readCloser{Reader: gz, close: func() error {
			gz.Close()
			return closer.Close()
		}}, nil
	}
	return readCloser{Reader: br, close: closer.Close}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }

// ReadFile returns the full text at path (see Open).
func ReadFile(path string) (string, error) {
	rc, err := Open(path)
	if err != nil {
		return "", err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// ReadSequence parses the file at path as a single sequence.
func ReadSequence(path string) (sequence.Sequence, error) {
	text, err := ReadFile(path)
	if err != nil {
		return sequence.Sequence{}, err
	}
	seq, err := ParseSequence(text)
	if err != nil {
		return sequence.Sequence{}, fmt.Errorf("%s: %w", path, err)
	}
	return seq, nil
}

// ReadRecords parses every record in the file at path.
func ReadRecords(path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ParseRecords(rc)
}

// WriteFile writes text to path, or to stdout for "-".
func WriteFile(path, text string) error {
	if path == Stdio {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}
