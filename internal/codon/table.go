package codon

import (
	"errors"
	"fmt"
)

// Symbol is the single-letter code of an amino acid, lower case, or Stop.
type Symbol byte

// Stop terminates a protein chain.
const Stop Symbol = '*'

func (s Symbol) String() string { return string(rune(s)) }

// Aminoacid is one entry of a codon table: a symbol and every codon that
// encodes it.
type Aminoacid struct {
	Symbol Symbol
	Name   string
	Codons []Codon
}

var (
	ErrDuplicateCodon  = errors.New("codon assigned more than once")
	ErrMissingCodon    = errors.New("codon not assigned")
	ErrDuplicateSymbol = errors.New("symbol listed more than once")
)

// Table is an immutable codon to symbol lookup.
type Table struct {
	symbols [64]Symbol
	catalog []Aminoacid
	bySym   map[Symbol]int
}

// NewTable builds a table from catalog. Every one of the 64 codons must be
// assigned exactly once.
func NewTable(catalog []Aminoacid) (*Table, error) {
	t := &Table{bySym: make(map[Symbol]int, len(catalog))}
	var seen [64]bool
	for i, aa := range catalog {
		if _, dup := t.bySym[aa.Symbol]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, aa.Symbol)
		}
		t.bySym[aa.Symbol] = i
		for _, c := range aa.Codons {
			if !c.valid() {
				return nil, fmt.Errorf("codon %q of %s: %w", c.String(), aa.Symbol, errInvalidEntry)
			}
			idx := c.Index()
			if seen[idx] {
				return nil, fmt.Errorf("%w: %s (%s and %s)", ErrDuplicateCodon, c, t.symbols[idx], aa.Symbol)
			}
			seen[idx] = true
			t.symbols[idx] = aa.Symbol
		}
	}
	for idx, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingCodon, FromIndex(idx))
		}
	}
	t.catalog = cloneCatalog(catalog)
	return t, nil
}

var errInvalidEntry = errors.New("not an rna codon")

// Lookup returns the symbol encoded by c. A Codon built with Parse always has
// an entry.
func (t *Table) Lookup(c Codon) Symbol {
	return t.symbols[c.Index()]
}

// Aminoacids returns a copy of the catalog the table was built from.
func (t *Table) Aminoacids() []Aminoacid {
	return cloneCatalog(t.catalog)
}

// Aminoacid returns the catalog entry for sym.
func (t *Table) Aminoacid(sym Symbol) (Aminoacid, bool) {
	i, ok := t.bySym[sym]
	if !ok {
		return Aminoacid{}, false
	}
	aa := t.catalog[i]
	aa.Codons = append([]Codon(nil), aa.Codons...)
	return aa, true
}

func cloneCatalog(catalog []Aminoacid) []Aminoacid {
	out := make([]Aminoacid, len(catalog))
	for i, aa := range catalog {
		out[i] = aa
		out[i].Codons = append([]Codon(nil), aa.Codons...)
	}
	return out
}
