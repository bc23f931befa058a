// Package translator turns RNA sequences into amino acid chains using the
// standard genetic code. Transcription is never implicit: DNA input must be
// transcribed by the caller first.
package translator

import (
	"fmt"
	"strings"

	"github.com/pswsm/fasta-cli-tools/internal/bioerr"
	"github.com/pswsm/fasta-cli-tools/internal/codon"
	"github.com/pswsm/fasta-cli-tools/internal/sequence"
)

// Protein is an immutable chain of lower case amino acid symbols.
type Protein struct {
	symbols string
}

// NewProtein wraps an already translated chain. Symbols are lower cased.
func NewProtein(symbols string) Protein {
	return Protein{symbols: strings.ToLower(symbols)}
}

func (p Protein) String() string { return p.symbols }
func (p Protein) Len() int       { return len(p.symbols) }

// Symbols returns the chain one symbol per element.
func (p Protein) Symbols() []codon.Symbol {
	out := make([]codon.Symbol, len(p.symbols))
	for i := range p.symbols {
		out[i] = codon.Symbol(p.symbols[i])
	}
	return out
}

// Upper returns the chain in upper case for display.
func (p Protein) Upper() string { return strings.ToUpper(p.symbols) }

// Translate reads seq codon by codon from position 0 with the standard table.
func Translate(seq sequence.Sequence) (Protein, error) {
	return TranslateWith(codon.Standard(), seq)
}

// TranslateWith is Translate with an explicit codon table.
func TranslateWith(table *codon.Table, seq sequence.Sequence) (Protein, error) {
	if seq.Alphabet() != sequence.RNA {
		if err := seq.Conforms(sequence.RNA); err != nil {
			return Protein{}, fmt.Errorf("translate %q: transcribe dna first: %w", seq.Header(), err)
		}
		return Protein{}, fmt.Errorf("translate %q: %w: sequence is dna, transcribe it first", seq.Header(), bioerr.ErrInvalidAlphabet)
	}
	bases := seq.Bases()
	if rem := len(bases) % codon.Size; rem != 0 {
		return Protein{}, fmt.Errorf("translate %q: %w", seq.Header(), &bioerr.LengthError{Len: len(bases), Rem: rem})
	}

	var sb strings.Builder
	sb.Grow(len(bases) / codon.Size)
	for i := 0; i < len(bases); i += codon.Size {
		c, err := codon.Parse(bases[i : i+codon.Size])
		if err != nil {
			// RNA sequences only hold acgu.
			return Protein{}, err
		}
		sb.WriteByte(byte(table.Lookup(c)))
	}
	return Protein{symbols: sb.String()}, nil
}

// SegmentOnStop splits p after every stop symbol. Each segment keeps its
// terminating stop; a trailing segment without one is kept as is.
func SegmentOnStop(p Protein) []Protein {
	var out []Protein
	rest := p.symbols
	for rest != "" {
		i := strings.IndexByte(rest, byte(codon.Stop))
		if i < 0 {
			out = append(out, Protein{symbols: rest})
			break
		}
		out = append(out, Protein{symbols: rest[:i+1]})
		rest = rest[i+1:]
	}
	return out
}
