package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classicPuzzle = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"

func TestNewFromString(t *testing.T) {
	t.Run("classic puzzle", func(t *testing.T) {
		b, err := NewFromString(classicPuzzle)
		require.NoError(t, err)
		assert.Equal(t, 5, b.Get(MakePos(0, 0)))
		assert.Equal(t, 3, b.Get(MakePos(0, 1)))
		assert.Equal(t, EmptyCell, b.Get(MakePos(0, 2)))
		assert.Equal(t, 9, b.Get(MakePos(8, 8)))
		assert.Equal(t, 30, b.HintCount())
	})

	t.Run("dots as empty", func(t *testing.T) {
		b, err := NewFromString(strings.Repeat(".", CellCount))
		require.NoError(t, err)
		assert.Equal(t, CellCount, b.EmptyCount())
	})

	t.Run("too short", func(t *testing.T) {
		_, err := NewFromString("123")
		require.ErrorIs(t, err, ErrBadRepresentation)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := NewFromString(classicPuzzle + "0")
		require.ErrorIs(t, err, ErrBadRepresentation)
	})

	t.Run("invalid character", func(t *testing.T) {
		bad := "x" + classicPuzzle[1:]
		_, err := NewFromString(bad)
		require.ErrorIs(t, err, ErrBadRepresentation)
		assert.Contains(t, err.Error(), "position 0")
	})
}

func TestStringRoundTrip(t *testing.T) {
	b, err := NewFromString(classicPuzzle)
	require.NoError(t, err)
	assert.Equal(t, classicPuzzle, b.String())

	again, err := NewFromString(b.String())
	require.NoError(t, err)
	assert.Equal(t, *b, *again)
}

func TestViews(t *testing.T) {
	b, err := NewFromString(classicPuzzle)
	require.NoError(t, err)

	assert.Equal(t, [9]int{5, 3, 0, 0, 7, 0, 0, 0, 0}, b.Row(0))
	assert.Equal(t, [9]int{0, 0, 0, 4, 1, 9, 0, 0, 5}, b.Row(7))
	assert.Equal(t, [9]int{5, 6, 0, 8, 4, 7, 0, 0, 0}, b.Column(0))
	assert.Equal(t, [9]int{0, 0, 0, 3, 1, 6, 0, 5, 9}, b.Column(8))
	assert.Equal(t, [9]int{5, 3, 0, 6, 0, 0, 0, 9, 8}, b.Tile(0, 0))
	assert.Equal(t, [9]int{2, 8, 0, 0, 0, 5, 0, 7, 9}, b.Tile(2, 2))
}

func TestViewsCoverEveryCell(t *testing.T) {
	// Fill cells with a recognizable pattern and check each view projects
	// exactly the cells its unit owns.
	b := New()
	for pos := range CellCount {
		b.SetForce(pos, pos%9+1)
	}

	for r := range 9 {
		row := b.Row(r)
		for c := range 9 {
			assert.Equal(t, b.Get(MakePos(r, c)), row[c])
		}
	}
	for c := range 9 {
		col := b.Column(c)
		for r := range 9 {
			assert.Equal(t, b.Get(MakePos(r, c)), col[r])
		}
	}
	for tr := range 3 {
		for tc := range 3 {
			tile := b.Tile(tr, tc)
			for i, val := range tile {
				r := tr*3 + i/3
				c := tc*3 + i%3
				assert.Equal(t, b.Get(MakePos(r, c)), val)
			}
		}
	}
}

func TestSet(t *testing.T) {
	t.Run("legal placement", func(t *testing.T) {
		b := New()
		require.NoError(t, b.Set(MakePos(4, 4), 7))
		assert.Equal(t, 7, b.Get(MakePos(4, 4)))
		assert.Equal(t, CellCount-1, b.EmptyCount())
	})

	t.Run("row conflict", func(t *testing.T) {
		b := New()
		require.NoError(t, b.Set(MakePos(0, 0), 7))
		require.ErrorIs(t, b.Set(MakePos(0, 8), 7), ErrIllegalMove)
	})

	t.Run("column conflict", func(t *testing.T) {
		b := New()
		require.NoError(t, b.Set(MakePos(0, 0), 7))
		require.ErrorIs(t, b.Set(MakePos(8, 0), 7), ErrIllegalMove)
	})

	t.Run("tile conflict", func(t *testing.T) {
		b := New()
		require.NoError(t, b.Set(MakePos(0, 0), 7))
		require.ErrorIs(t, b.Set(MakePos(2, 2), 7), ErrIllegalMove)
	})

	t.Run("bad position", func(t *testing.T) {
		b := New()
		require.ErrorIs(t, b.Set(-1, 5), ErrInvalidPosition)
		require.ErrorIs(t, b.Set(CellCount, 5), ErrInvalidPosition)
	})

	t.Run("bad value", func(t *testing.T) {
		b := New()
		require.ErrorIs(t, b.Set(0, 10), ErrInvalidValue)
		require.ErrorIs(t, b.Set(0, -3), ErrInvalidValue)
	})
}

func TestClear(t *testing.T) {
	b := New()
	require.NoError(t, b.Set(MakePos(1, 1), 5))
	require.NoError(t, b.Clear(MakePos(1, 1)))
	assert.Equal(t, EmptyCell, b.Get(MakePos(1, 1)))
	assert.Equal(t, CellCount, b.EmptyCount())

	// Clearing twice is harmless.
	require.NoError(t, b.Clear(MakePos(1, 1)))

	// The digit is legal again after the clear.
	require.NoError(t, b.Set(MakePos(1, 2), 5))
}

func TestClone(t *testing.T) {
	b, err := NewFromString(classicPuzzle)
	require.NoError(t, err)

	clone := b.Clone()
	require.NoError(t, clone.Set(MakePos(0, 2), 4))

	assert.Equal(t, EmptyCell, b.Get(MakePos(0, 2)), "mutating the clone must not touch the original")
	assert.Equal(t, 4, clone.Get(MakePos(0, 2)))
}

func TestMakePos(t *testing.T) {
	assert.Equal(t, 0, MakePos(0, 0))
	assert.Equal(t, 80, MakePos(8, 8))
	assert.Equal(t, 40, MakePos(4, 4))
	assert.Equal(t, InvalidCell, MakePos(-1, 0))
	assert.Equal(t, InvalidCell, MakePos(0, 9))
}
