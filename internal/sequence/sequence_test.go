package sequence

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/pswsm/fasta-cli-tools/internal/bioerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, raw string) Sequence {
	t.Helper()
	s, err := FromText("test header", raw)
	require.NoError(t, err)
	return s
}

func randomSeqs(t *testing.T, a Alphabet, n int) []Sequence {
	t.Helper()
	rng := rand.New(rand.NewPCG(7, uint64(a)))
	out := make([]Sequence, 0, n)
	for i := 0; i < n; i++ {
		b := make([]byte, rng.IntN(90))
		for j := range b {
			b[j] = a.Bases()[rng.IntN(4)]
		}
		out = append(out, mustSeq(t, string(b)))
	}
	return out
}

func TestFromTextNormalises(t *testing.T) {
	s := mustSeq(t, "ATcg\nGG\r\nta\n")
	assert.Equal(t, "atcgggta", s.Bases())
	assert.Equal(t, DNA, s.Alphabet())
	assert.Equal(t, "test header", s.Header())
	assert.Equal(t, 8, s.Len())
}

func TestFromTextDetectsAlphabet(t *testing.T) {
	assert.Equal(t, RNA, mustSeq(t, "aucg").Alphabet())
	assert.Equal(t, DNA, mustSeq(t, "atcg").Alphabet())
	assert.Equal(t, DNA, mustSeq(t, "accg").Alphabet())
	assert.Equal(t, DNA, mustSeq(t, "").Alphabet())
}

func TestFromTextRejects(t *testing.T) {
	cases := []struct {
		raw  string
		char rune
		pos  int
	}{
		{"acgn", 'n', 3},
		{"ac\ng-t", '-', 3},
		{"atgu", 'u', 3},
		{"augct", 't', 4},
		{"acg t", ' ', 3},
	}
	for _, c := range cases {
		_, err := FromText("h", c.raw)
		require.ErrorIs(t, err, bioerr.ErrInvalidAlphabet, c.raw)
		var ae *bioerr.AlphabetError
		require.True(t, errors.As(err, &ae))
		assert.Equal(t, c.char, ae.Char, c.raw)
		assert.Equal(t, c.pos, ae.Pos, c.raw)
	}
}

func TestReverse(t *testing.T) {
	r := mustSeq(t, "atcg").Reverse()
	assert.Equal(t, "gcta", r.Bases())
	assert.Equal(t, "Reverse of test header", r.Header())
}

func TestComplementDNA(t *testing.T) {
	c := mustSeq(t, "atcg").Complement()
	assert.Equal(t, "tagc", c.Bases())
	assert.Equal(t, "Complementary of test header", c.Header())
}

func TestComplementRNA(t *testing.T) {
	c := mustSeq(t, "aucg").Complement()
	assert.Equal(t, "uagc", c.Bases())
	assert.Equal(t, RNA, c.Alphabet())
}

func TestTransformsDoNotMutate(t *testing.T) {
	s := mustSeq(t, "aacg")
	_ = s.Reverse()
	_ = s.Complement()
	_ = s.ReverseComplement()
	_ = s.ToUppercase()
	assert.Equal(t, "aacg", s.Bases())
	assert.Equal(t, "test header", s.Header())
	assert.False(t, s.IsUpper())
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	for _, a := range []Alphabet{DNA, RNA} {
		for _, s := range randomSeqs(t, a, 200) {
			assert.Equal(t, s.Bases(), s.Reverse().Reverse().Bases())
		}
	}
}

func TestComplementTwiceIsIdentity(t *testing.T) {
	for _, a := range []Alphabet{DNA, RNA} {
		for _, s := range randomSeqs(t, a, 200) {
			assert.Equal(t, s.Bases(), s.Complement().Complement().Bases())
		}
	}
}

func TestReverseComplementOrderIndependent(t *testing.T) {
	for _, a := range []Alphabet{DNA, RNA} {
		for _, s := range randomSeqs(t, a, 200) {
			rc := s.ReverseComplement().Bases()
			assert.Equal(t, rc, s.Reverse().Complement().Bases())
			assert.Equal(t, rc, s.Complement().Reverse().Bases())
		}
	}
}

func TestReverseComplementKnown(t *testing.T) {
	rc := mustSeq(t, "aagtc").ReverseComplement()
	assert.Equal(t, "gactt", rc.Bases())
	assert.Equal(t, "Reverse-complementary of test header", rc.Header())

	// A cut of an RNA sequence stays RNA even without a u left in it.
	cut, err := mustSeq(t, "uuaa").Cut(2, 4)
	require.NoError(t, err)
	assert.Equal(t, "uu", cut.ReverseComplement().Bases())
}

func TestCut(t *testing.T) {
	s := mustSeq(t, "atcgatcg")
	c, err := s.Cut(2, 5)
	require.NoError(t, err)
	assert.Equal(t, "cga", c.Bases())
	assert.Equal(t, "test header, cut 2 - 5", c.Header())

	whole, err := s.Cut(0, s.Len())
	require.NoError(t, err)
	assert.Equal(t, s.Bases(), whole.Bases())

	empty, err := s.Cut(8, 8)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestCutOutOfRange(t *testing.T) {
	s := mustSeq(t, "atcg")
	for _, r := range [][2]int{{0, 5}, {3, 2}, {5, 5}, {-1, 2}} {
		_, err := s.Cut(r[0], r[1])
		require.ErrorIs(t, err, bioerr.ErrOutOfRange, "%v", r)
		var re *bioerr.RangeError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, 4, re.Len)
	}
}

func TestCasePresentation(t *testing.T) {
	s := mustSeq(t, "ATCG")
	up := s.ToUppercase()
	assert.Equal(t, "ATCG", up.Display())
	assert.Equal(t, "atcg", up.Bases())
	assert.True(t, up.Equal(s))
	assert.Equal(t, "atcg", up.ToLowercase().Display())

	// presentation case survives transforms
	assert.Equal(t, "GCTA", up.Reverse().Display())
}

func TestConforms(t *testing.T) {
	assert.NoError(t, mustSeq(t, "aucg").Conforms(RNA))
	assert.NoError(t, mustSeq(t, "accg").Conforms(RNA))

	err := mustSeq(t, "acgt").Conforms(RNA)
	var ae *bioerr.AlphabetError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 't', ae.Char)
	assert.Equal(t, 3, ae.Pos)
	assert.Equal(t, "rna", ae.Want)
}

func TestTranscription(t *testing.T) {
	s := mustSeq(t, "atgtga")
	rna := s.Transcribe()
	assert.Equal(t, "auguga", rna.Bases())
	assert.Equal(t, RNA, rna.Alphabet())
	assert.Equal(t, "Transcript of test header", rna.Header())

	dna := rna.BackTranscribe()
	assert.Equal(t, s.Bases(), dna.Bases())
	assert.Equal(t, DNA, dna.Alphabet())
}

func TestComplementPanicsOnBypassedInvariant(t *testing.T) {
	bad := Sequence{bases: "acx"}
	assert.Panics(t, func() { bad.Complement() })
}
