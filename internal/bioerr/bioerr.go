// Package bioerr holds the error kinds shared by the sequence, codon and
// translation packages. Each typed error unwraps to one of the sentinels so
// callers can branch with errors.Is and read details with errors.As.
package bioerr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAlphabet          = errors.New("invalid alphabet")
	ErrEmptySequence            = errors.New("empty sequence")
	ErrOutOfRange               = errors.New("out of range")
	ErrLengthNotMultipleOfThree = errors.New("length not a multiple of three")
	ErrMissingChunk             = errors.New("missing chunk")
)

// AlphabetError reports the first base that does not belong to the expected
// alphabet. Want names that alphabet ("dna", "rna" or "dna/rna").
type AlphabetError struct {
	Char rune
	Pos  int
	Want string
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("invalid alphabet: %q at position %d is not a %s base", e.Char, e.Pos, e.Want)
}

func (e *AlphabetError) Unwrap() error { return ErrInvalidAlphabet }

// RangeError reports a cut outside the bounds of a sequence.
type RangeError struct {
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("out of range: cut [%d, %d) of sequence with length %d", e.Start, e.End, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// LengthError reports a translation input whose length leaves a partial codon.
type LengthError struct {
	Len, Rem int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("length %d is not a multiple of three (remainder %d)", e.Len, e.Rem)
}

func (e *LengthError) Unwrap() error { return ErrLengthNotMultipleOfThree }

// CodonError reports text that cannot form a codon.
type CodonError struct {
	Text string
}

func (e *CodonError) Error() string {
	return fmt.Sprintf("invalid codon %q: want exactly 3 bases from {a,c,g,u}", e.Text)
}

func (e *CodonError) Unwrap() error { return ErrInvalidAlphabet }
