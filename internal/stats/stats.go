// Package stats reports base composition.
package stats

import (
	"sort"
	"strconv"

	"github.com/pswsm/fasta-cli-tools/internal/sequence"
)

// Composition counts the bases of one sequence. T counts t for DNA and u for
// RNA.
type Composition struct {
	Length     int
	A, C, G, T int
}

// Analyze counts the bases of seq.
func Analyze(seq sequence.Sequence) Composition {
	c := Composition{Length: seq.Len()}
	bases := seq.Bases()
	for i := 0; i < len(bases); i++ {
		switch bases[i] {
		case 'a':
			c.A++
		case 'c':
			c.C++
		case 'g':
			c.G++
		case 't', 'u':
			c.T++
		}
	}
	return c
}

func (c Composition) ATCount() int { return c.A + c.T }
func (c Composition) GCCount() int { return c.G + c.C }

func (c Composition) ATPercent() float64 { return percent(c.ATCount(), c.Length) }
func (c Composition) GCPercent() float64 { return percent(c.GCCount(), c.Length) }

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

// Field is one labelled value of a report.
type Field struct {
	Key, Value string
}

// Fields returns the report rows sorted by key.
func (c Composition) Fields() []Field {
	fields := []Field{
		{"Nucleotides", strconv.Itoa(c.Length)},
		{"AT Count", strconv.Itoa(c.ATCount())},
		{"AT Percent", strconv.FormatFloat(c.ATPercent(), 'f', 2, 64)},
		{"GC Count", strconv.Itoa(c.GCCount())},
		{"GC Percent", strconv.FormatFloat(c.GCPercent(), 'f', 2, 64)},
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}
