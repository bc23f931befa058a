// Package codon implements the standard genetic code over RNA codons.
package codon

import (
	"strings"

	"github.com/pswsm/fasta-cli-tools/internal/bioerr"
)

// Size is the number of bases in a codon.
const Size = 3

// Bases is the RNA alphabet in index order.
const Bases = "acgu"

// Codon is a validated triplet of lowercase RNA bases.
type Codon [Size]byte

// Parse validates s and returns it as a Codon. Upper case input is accepted
// and stored lower case.
func Parse(s string) (Codon, error) {
	var c Codon
	if len(s) != Size {
		return c, &bioerr.CodonError{Text: s}
	}
	lower := strings.ToLower(s)
	for i := 0; i < Size; i++ {
		if baseIndex(lower[i]) < 0 {
			return c, &bioerr.CodonError{Text: s}
		}
		c[i] = lower[i]
	}
	return c, nil
}

// MustParse is Parse for codons known at compile time.
func MustParse(s string) Codon {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Codon) String() string { return string(c[:]) }

// Index maps the codon onto 0..63, reading it as a base-4 number over Bases.
func (c Codon) Index() int {
	return baseIndex(c[0])*16 + baseIndex(c[1])*4 + baseIndex(c[2])
}

// FromIndex is the inverse of Index.
func FromIndex(i int) Codon {
	return Codon{Bases[(i>>4)&3], Bases[(i>>2)&3], Bases[i&3]}
}

func (c Codon) valid() bool {
	for _, b := range c {
		if baseIndex(b) < 0 {
			return false
		}
	}
	return true
}

func baseIndex(b byte) int {
	switch b {
	case 'a':
		return 0
	case 'c':
		return 1
	case 'g':
		return 2
	case 'u':
		return 3
	}
	return -1
}
