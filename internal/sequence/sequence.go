// Package sequence models a nucleotide sequence with its header.
//
// Bases are stored lower case. A Sequence is immutable: every transform
// returns a new value and leaves the receiver untouched. Upper case is a
// presentation flag applied by Display and never written into the stored
// bases, so Bases and Equal compare the same way regardless of case.
package sequence

import (
	"fmt"
	"strings"

	"github.com/pswsm/fasta-cli-tools/internal/bioerr"
)

// Alphabet is the nucleotide alphabet of a sequence.
type Alphabet int

const (
	DNA Alphabet = iota
	RNA
)

func (a Alphabet) String() string {
	if a == RNA {
		return "rna"
	}
	return "dna"
}

// Bases lists the four bases of the alphabet.
func (a Alphabet) Bases() string {
	if a == RNA {
		return "acgu"
	}
	return "acgt"
}

// Sequence is a header plus validated, lower case bases.
type Sequence struct {
	header   string
	bases    string
	alphabet Alphabet
	upper    bool
}

// FromText builds a Sequence from raw body text. Line breaks are removed and
// the bases lower cased. Every base must be DNA or RNA, and a body may not mix
// t and u. The alphabet is RNA when u is present and DNA otherwise.
func FromText(header, raw string) (Sequence, error) {
	bases := strings.ToLower(stripLineBreaks(raw))
	alphabet, err := detect(bases)
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{header: header, bases: bases, alphabet: alphabet}, nil
}

func stripLineBreaks(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\n", "", "\r", "").Replace(s)
}

func detect(bases string) (Alphabet, error) {
	firstT, firstU := -1, -1
	for i, r := range bases {
		switch r {
		case 'a', 'c', 'g':
		case 't':
			if firstU >= 0 {
				return DNA, &bioerr.AlphabetError{Char: r, Pos: i, Want: RNA.String()}
			}
			if firstT < 0 {
				firstT = i
			}
		case 'u':
			if firstT >= 0 {
				return DNA, &bioerr.AlphabetError{Char: r, Pos: i, Want: DNA.String()}
			}
			if firstU < 0 {
				firstU = i
			}
		default:
			return DNA, &bioerr.AlphabetError{Char: r, Pos: i, Want: "dna/rna"}
		}
	}
	if firstU >= 0 {
		return RNA, nil
	}
	return DNA, nil
}

func (s Sequence) Header() string     { return s.header }
func (s Sequence) Bases() string      { return s.bases }
func (s Sequence) Len() int           { return len(s.bases) }
func (s Sequence) Alphabet() Alphabet { return s.alphabet }
func (s Sequence) IsUpper() bool      { return s.upper }

// Display returns the bases in the presentation case.
func (s Sequence) Display() string {
	if s.upper {
		return strings.ToUpper(s.bases)
	}
	return s.bases
}

func (s Sequence) String() string { return s.Display() }

// Equal reports whether s and o have the same header and bases. The
// presentation case is ignored.
func (s Sequence) Equal(o Sequence) bool {
	return s.header == o.header && s.bases == o.bases
}

// derive keeps the alphabet and presentation case of s.
func (s Sequence) derive(header, bases string) Sequence {
	return Sequence{header: header, bases: bases, alphabet: s.alphabet, upper: s.upper}
}

// Conforms returns an AlphabetError for the first base outside a.
func (s Sequence) Conforms(a Alphabet) error {
	allowed := a.Bases()
	for i := 0; i < len(s.bases); i++ {
		if strings.IndexByte(allowed, s.bases[i]) < 0 {
			return &bioerr.AlphabetError{Char: rune(s.bases[i]), Pos: i, Want: a.String()}
		}
	}
	return nil
}

// Cut returns the bases in the half-open range [start, end).
func (s Sequence) Cut(start, end int) (Sequence, error) {
	if start < 0 || start > end || end > len(s.bases) {
		return Sequence{}, &bioerr.RangeError{Start: start, End: end, Len: len(s.bases)}
	}
	return s.derive(fmt.Sprintf("%s, cut %d - %d", s.header, start, end), s.bases[start:end]), nil
}

// ToUppercase marks s for upper case presentation.
func (s Sequence) ToUppercase() Sequence {
	s.upper = true
	return s
}

// ToLowercase marks s for lower case presentation.
func (s Sequence) ToLowercase() Sequence {
	s.upper = false
	return s
}
