// Package fasta reads and writes the FASTA text format. Parsing is kept
// simple and conservative: header lines start with '>', every other line is
// sequence body.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pswsm/fasta-cli-tools/internal/bioerr"
	"github.com/pswsm/fasta-cli-tools/internal/sequence"
	"github.com/pswsm/fasta-cli-tools/internal/translator"
)

// LineWidth is the body width used when writing sequences.
const LineWidth = 60

// maxLine bounds a single input line; long unwrapped genomes exceed the
// scanner default of 64 KiB.
const maxLine = 64 << 20

// Record represents a single FASTA record (header and raw sequence body).
type Record struct {
	Header   string
	Sequence string
}

// ParseRecords reads FASTA records from r. Sequence lines are concatenated
// and returned as they appear, without validation.
func ParseRecords(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	var records []Record
	var current *Record
	var body strings.Builder
	flush := func() {
		if current != nil {
			current.Sequence = body.String()
			records = append(records, *current)
		}
		body.Reset()
	}
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, ">") {
			flush()
			current = &Record{Header: headerText(line)}
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if current == nil {
			// body before any header belongs to an anonymous record
			current = &Record{}
		}
		body.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fasta: %w", err)
	}
	flush()
	return records, nil
}

func headerText(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, ">"))
}

// ToSequence validates the record body. An empty body is ErrEmptySequence.
func (r Record) ToSequence() (sequence.Sequence, error) {
	if r.Sequence == "" {
		return sequence.Sequence{}, fmt.Errorf("%q: %w", r.Header, bioerr.ErrEmptySequence)
	}
	return sequence.FromText(r.Header, r.Sequence)
}

// ParseSequence reads the whole text as one sequence. All header lines are
// joined into the header and all other lines into the body.
func ParseSequence(raw string) (sequence.Sequence, error) {
	var headers []string
	var body strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, ">") {
			headers = append(headers, headerText(line))
			continue
		}
		body.WriteString(strings.TrimSpace(line))
	}
	return Record{Header: strings.Join(headers, " "), Sequence: body.String()}.ToSequence()
}

// Wrap splits s into lines of at most width characters, each terminated by a
// newline. A width below one disables wrapping.
func Wrap(s string, width int) string {
	if s == "" {
		return ""
	}
	if width < 1 {
		return s + "\n"
	}
	var out strings.Builder
	out.Grow(len(s) + len(s)/width + 1)
	for i := 0; i < len(s); i += width {
		end := i + width
		if end > len(s) {
			end = len(s)
		}
		out.WriteString(s[i:end])
		out.WriteByte('\n')
	}
	return out.String()
}

// FormatRecord renders a header line and a wrapped body.
func FormatRecord(header, body string, width int) string {
	return ">" + header + "\n" + Wrap(body, width)
}

// SerializeSequence renders seq in its presentation case, wrapped at
// LineWidth.
func SerializeSequence(seq sequence.Sequence) string {
	return SerializeSequenceWidth(seq, LineWidth)
}

// SerializeSequenceWidth is SerializeSequence with an explicit line width.
func SerializeSequenceWidth(seq sequence.Sequence, width int) string {
	return FormatRecord(seq.Header(), seq.Display(), width)
}

// SerializeProtein renders the chain wrapped at LineWidth. Symbols are lower
// case unless uppercase is set.
func SerializeProtein(p translator.Protein, uppercase bool) string {
	return Wrap(proteinText(p, uppercase), LineWidth)
}

// SerializeProteinRecord renders p as a FASTA record.
func SerializeProteinRecord(header string, p translator.Protein, uppercase bool, width int) string {
	return FormatRecord(header, proteinText(p, uppercase), width)
}

func proteinText(p translator.Protein, uppercase bool) string {
	if uppercase {
		return p.Upper()
	}
	return p.String()
}
