package bioerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrorsUnwrapToKind(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{&AlphabetError{Char: 'x', Pos: 3, Want: "dna/rna"}, ErrInvalidAlphabet},
		{&RangeError{Start: 4, End: 2, Len: 10}, ErrOutOfRange},
		{&LengthError{Len: 10, Rem: 1}, ErrLengthNotMultipleOfThree},
		{&CodonError{Text: "at"}, ErrInvalidAlphabet},
	}
	for _, c := range cases {
		wrapped := fmt.Errorf("context: %w", c.err)
		assert.ErrorIs(t, wrapped, c.kind, c.err.Error())
	}
}

func TestAlphabetErrorDetail(t *testing.T) {
	err := fmt.Errorf("parse: %w", &AlphabetError{Char: 'n', Pos: 7, Want: "dna/rna"})
	var ae *AlphabetError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 'n', ae.Char)
	assert.Equal(t, 7, ae.Pos)
	assert.Contains(t, err.Error(), `'n' at position 7`)
}

func TestLengthErrorMessage(t *testing.T) {
	err := &LengthError{Len: 11, Rem: 2}
	assert.EqualError(t, err, "length 11 is not a multiple of three (remainder 2)")
}
