// Package strand exposes the sequence transforms as named operations so the
// command line can pick them by name and chain them.
package strand

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pswsm/fasta-cli-tools/internal/sequence"
)

// Operation names a strand transform.
type Operation string

const (
	Reverse           Operation = "reverse"
	Complement        Operation = "complement"
	ReverseComplement Operation = "revcomp"
	Transcribe        Operation = "transcribe"
	BackTranscribe    Operation = "backtranscribe"
)

var registry = map[Operation]func(sequence.Sequence) sequence.Sequence{
	Reverse:           sequence.Sequence.Reverse,
	Complement:        sequence.Sequence.Complement,
	ReverseComplement: sequence.Sequence.ReverseComplement,
	Transcribe:        sequence.Sequence.Transcribe,
	BackTranscribe:    sequence.Sequence.BackTranscribe,
}

// aliases accepts the spellings used by older versions of the tool.
var aliases = map[string]Operation{
	"complementary":         Complement,
	"reverse-complement":    ReverseComplement,
	"reverse-complementary": ReverseComplement,
	"reversecomplement":     ReverseComplement,
}

// Operations lists every registered operation, sorted by name.
func Operations() []Operation {
	ops := make([]Operation, 0, len(registry))
	for op := range registry {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Aliases lists the alternative names accepted for op, sorted.
func Aliases(op Operation) []string {
	var out []string
	for name, target := range aliases {
		if target == op {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Parse resolves a user supplied operation name.
func Parse(name string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if op, ok := aliases[key]; ok {
		return op, nil
	}
	op := Operation(key)
	if _, ok := registry[op]; !ok {
		return "", fmt.Errorf("unknown strand operation %q (want one of %v)", name, Operations())
	}
	return op, nil
}

// Apply runs op on seq.
func Apply(op Operation, seq sequence.Sequence) (sequence.Sequence, error) {
	fn, ok := registry[op]
	if !ok {
		return sequence.Sequence{}, fmt.Errorf("unknown strand operation %q", op)
	}
	return fn(seq), nil
}

// Chain applies ops left to right.
func Chain(seq sequence.Sequence, ops ...Operation) (sequence.Sequence, error) {
	var err error
	for _, op := range ops {
		if seq, err = Apply(op, seq); err != nil {
			return sequence.Sequence{}, err
		}
	}
	return seq, nil
}
