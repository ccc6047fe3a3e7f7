package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSquare_Components(t *testing.T) {
	sq := NewSquare(FileE, Rank4)
	require.Equal(t, FileE, sq.File())
	require.Equal(t, Rank4, sq.Rank())
	require.Equal(t, uint(4), sq.File().Value())
	require.Equal(t, uint(3), sq.Rank().Value())
	require.True(t, sq.File() >= FileD)
	require.True(t, sq.Rank() < Rank5)
}

func TestSquare_String(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{NewSquare(FileA, Rank1), "a1"},
		{NewSquare(FileE, Rank4), "e4"},
		{NewSquare(FileH, Rank8), "h8"},
		{NewSquare(9, 9), "j10"},
		{NewSquare(30, 2), "30,2"},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, tc.sq.String())
	}
}

func TestParseSquare(t *testing.T) {
	for _, s := range []string{"a1", "e4", "h8", "j10", "z99"} {
		sq, err := ParseSquare(s)
		require.NoError(t, err, s)
		require.Equal(t, s, sq.String())
	}

	for _, s := range []string{"", "a", "a0", "A1", "11", "e-4", "ex"} {
		_, err := ParseSquare(s)
		require.ErrorIs(t, err, ErrInvalidSquare, s)
	}
}

func TestParseCoords(t *testing.T) {
	sq, err := ParseCoords("4,3")
	require.NoError(t, err)
	require.Equal(t, NewSquare(4, 3), sq)

	sq, err = ParseCoords(" 12 , 0 ")
	require.NoError(t, err)
	require.Equal(t, NewSquare(12, 0), sq)

	for _, s := range []string{"4", "4,", ",3", "a,1", "-1,2"} {
		_, err := ParseCoords(s)
		require.ErrorIs(t, err, ErrInvalidSquare, s)
	}
}

func TestParse_AcceptsBothForms(t *testing.T) {
	a, err := Parse("e4")
	require.NoError(t, err)
	b, err := Parse("4,3")
	require.NoError(t, err)
	require.Equal(t, a, b)
}
