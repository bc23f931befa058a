package sequence

import (
	"github.com/pswsm/fasta-cli-tools/internal/bioerr"
)

var complements [2][256]byte

func init() {
	for _, a := range []Alphabet{DNA, RNA} {
		bases, paired := a.Bases(), pairedBases(a)
		for i := range bases {
			complements[a][bases[i]] = paired[i]
		}
	}
}

// pairedBases lines up with Alphabet.Bases: acgt -> tgca, acgu -> ugca.
func pairedBases(a Alphabet) string {
	if a == RNA {
		return "ugca"
	}
	return "tgca"
}

// Reverse returns the bases in reverse order.
func (s Sequence) Reverse() Sequence {
	n := len(s.bases)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = s.bases[n-1-i]
	}
	return s.derive("Reverse of "+s.header, string(out))
}

// Complement pairs every base: a-t (DNA) or a-u (RNA), and c-g.
func (s Sequence) Complement() Sequence {
	out := make([]byte, len(s.bases))
	for i := 0; i < len(s.bases); i++ {
		out[i] = s.pair(i, s.bases[i])
	}
	return s.derive("Complementary of "+s.header, string(out))
}

// ReverseComplement is Complement and Reverse in one pass. Both composition
// orders give the same bases.
func (s Sequence) ReverseComplement() Sequence {
	n := len(s.bases)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = s.pair(n-1-i, s.bases[n-1-i])
	}
	return s.derive("Reverse-complementary of "+s.header, string(out))
}

// pair panics on a base FromText would have rejected. Every constructor
// validates bases and the fields are unexported, so the panic is unreachable
// from outside this package.
func (s Sequence) pair(pos int, b byte) byte {
	c := complements[s.alphabet][b]
	if c == 0 {
		panic(&bioerr.AlphabetError{Char: rune(b), Pos: pos, Want: s.alphabet.String()})
	}
	return c
}

// Transcribe rewrites t as u, producing an RNA sequence.
func (s Sequence) Transcribe() Sequence {
	out := s.derive("Transcript of "+s.header, swap(s.bases, 't', 'u'))
	out.alphabet = RNA
	return out
}

// BackTranscribe rewrites u as t, producing a DNA sequence.
func (s Sequence) BackTranscribe() Sequence {
	out := s.derive("Reverse transcript of "+s.header, swap(s.bases, 'u', 't'))
	out.alphabet = DNA
	return out
}

func swap(bases string, from, to byte) string {
	out := []byte(bases)
	for i, b := range out {
		if b == from {
			out[i] = to
		}
	}
	return string(out)
}
