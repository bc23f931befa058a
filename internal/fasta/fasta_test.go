package fasta

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pswsm/fasta-cli-tools/internal/bioerr"
	"github.com/pswsm/fasta-cli-tools/internal/sequence"
	"github.com/pswsm/fasta-cli-tools/internal/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordsSimple(t *testing.T) {
	input := ">seq1\nATGC\n>seq2 desc\nGGTT\nAA\n"
	recs, err := ParseRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Header != "seq1" || recs[0].Sequence != "ATGC" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Header != "seq2 desc" || recs[1].Sequence != "GGTTAA" {
		t.Fatalf("unexpected second record: %+v", recs[1])
	}
}

func TestParseRecordsCRLFAndBlankLines(t *testing.T) {
	recs, err := ParseRecords(strings.NewReader("\r\n> a\r\nac\r\n\r\ngt\r\n"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, Record{Header: "a", Sequence: "acgt"}, recs[0])
}

func TestParseRecordsHeaderOnly(t *testing.T) {
	recs, err := ParseRecords(strings.NewReader(">empty\n>next\nacg\n"))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	_, err = recs[0].ToSequence()
	assert.ErrorIs(t, err, bioerr.ErrEmptySequence)
	s, err := recs[1].ToSequence()
	require.NoError(t, err)
	assert.Equal(t, "acg", s.Bases())
}

func TestParseSequence(t *testing.T) {
	s, err := ParseSequence("> test header\nATCG\naaTT\n")
	require.NoError(t, err)
	assert.Equal(t, "test header", s.Header())
	assert.Equal(t, "atcgaatt", s.Bases())
}

func TestParseSequenceEmptyBody(t *testing.T) {
	for _, raw := range []string{">only a header\n", ">h\n\n\n", ""} {
		_, err := ParseSequence(raw)
		assert.ErrorIs(t, err, bioerr.ErrEmptySequence, raw)
	}
}

func TestParseSequenceInvalid(t *testing.T) {
	_, err := ParseSequence(">h\nacgx\n")
	assert.ErrorIs(t, err, bioerr.ErrInvalidAlphabet)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "", Wrap("", 60))
	assert.Equal(t, "abc\n", Wrap("abc", 60))
	assert.Equal(t, "ab\ncd\ne\n", Wrap("abcde", 2))
	assert.Equal(t, "abcde\n", Wrap("abcde", 0))
}

func TestSerializeSequenceWrapsAt60(t *testing.T) {
	s, err := sequence.FromText("long", strings.Repeat("acgt", 40))
	require.NoError(t, err)
	out := SerializeSequence(s)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, ">long", lines[0])
	assert.Len(t, lines[1], 60)
	assert.Len(t, lines[2], 60)
	assert.Len(t, lines[3], 40)

	assert.Equal(t, ">long, cut 0 - 60\n"+strings.ToUpper(lines[1])+"\n", SerializeSequence(mustCut(t, s.ToUppercase(), 60)))
}

func mustCut(t *testing.T, s sequence.Sequence, n int) sequence.Sequence {
	t.Helper()
	c, err := s.Cut(0, n)
	require.NoError(t, err)
	return c
}

func TestSerializeRoundTrip(t *testing.T) {
	s, err := sequence.FromText("round trip", strings.Repeat("gattaca", 30))
	require.NoError(t, err)
	back, err := ParseSequence(SerializeSequence(s))
	require.NoError(t, err)
	assert.True(t, s.Equal(back))
}

func TestSerializeProtein(t *testing.T) {
	p := translator.NewProtein("mrr*")
	assert.Equal(t, "mrr*\n", SerializeProtein(p, false))
	assert.Equal(t, "MRR*\n", SerializeProtein(p, true))
	assert.Equal(t, ">orf\nMR\nR*\n", SerializeProteinRecord("orf", p, true, 2))
}

func TestReadSequencePlainAndGzip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "in.fasta")
	require.NoError(t, os.WriteFile(plain, []byte(">p\nacgt\n"), 0o644))

	gzPath := filepath.Join(dir, "in.fasta.gz")
	f, err := os.Create(gzPath)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(">z\nAUGG\nCC\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	s, err := ReadSequence(plain)
	require.NoError(t, err)
	assert.Equal(t, "acgt", s.Bases())

	s, err = ReadSequence(gzPath)
	require.NoError(t, err)
	assert.Equal(t, "z", s.Header())
	assert.Equal(t, "auggcc", s.Bases())
	assert.Equal(t, sequence.RNA, s.Alphabet())
}

func TestReadSequenceMissingFile(t *testing.T) {
	_, err := ReadSequence(filepath.Join(t.TempDir(), "nope.fasta"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecordsAndWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.fasta")
	require.NoError(t, WriteFile(path, ">a\nac\n>b\ngu\n"))
	recs, err := ReadRecords(path)
	require.NoError(t, err)
	assert.Equal(t, []Record{{Header: "a", Sequence: "ac"}, {Header: "b", Sequence: "gu"}}, recs)
}
