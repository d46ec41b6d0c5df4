package generator

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rybkr/entropy-sudoku/internal/board"
)

func TestComplete(t *testing.T) {
	t.Run("produces a valid solved grid", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			b := Complete(seed)
			require.Equal(t, 0, b.EmptyCount(), "seed %d left empty cells", seed)
			require.True(t, b.IsValid(), "seed %d broke constraints", seed)

			for i := range 9 {
				row, col, tile := b.Row(i), b.Column(i), b.Tile(i/3, i%3)
				assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, row[:])
				assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, col[:])
				assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, tile[:])
			}
		}
	})

	t.Run("deterministic for a seed", func(t *testing.T) {
		assert.Equal(t, Complete(42).String(), Complete(42).String())
	})

	t.Run("different seeds differ", func(t *testing.T) {
		// Not impossible for two seeds to collide, but these should not.
		assert.NotEqual(t, Complete(1).String(), Complete(2).String())
		assert.NotEqual(t, Complete(2).String(), Complete(3).String())
	})
}

func TestCarve(t *testing.T) {
	t.Run("hint count within range", func(t *testing.T) {
		for seed := int64(1); seed <= 20; seed++ {
			b := Complete(seed)
			hints, err := Carve(b, seed*7, 20, 30)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, hints, 20)
			assert.Less(t, hints, 30)
			assert.Equal(t, hints, b.HintCount(), "returned count must match the board")
		}
	})

	t.Run("deterministic for a seed", func(t *testing.T) {
		a := Complete(5)
		b := Complete(5)
		_, err := Carve(a, 11, 25, 35)
		require.NoError(t, err)
		_, err = Carve(b, 11, 25, 35)
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("remaining hints match the source solution", func(t *testing.T) {
		solution := Complete(9)
		puzzle := solution.Clone()
		_, err := Carve(puzzle, 13, 28, 36)
		require.NoError(t, err)

		for pos := range board.CellCount {
			if v := puzzle.Get(pos); v != board.EmptyCell {
				assert.Equal(t, solution.Get(pos), v, "hint at pos %d was altered", pos)
			}
		}
	})

	t.Run("min not below max fails", func(t *testing.T) {
		b := Complete(1)
		_, err := Carve(b, 1, 30, 30)
		require.ErrorIs(t, err, ErrHintRange)
		_, err = Carve(b, 1, 35, 30)
		require.ErrorIs(t, err, ErrHintRange)
	})

	t.Run("out-of-bounds hints fail", func(t *testing.T) {
		b := Complete(1)
		_, err := Carve(b, 1, 5, 30)
		require.ErrorIs(t, err, ErrInvalidHints)
		_, err = Carve(b, 1, 30, 90)
		require.ErrorIs(t, err, ErrInvalidHints)
	})

	t.Run("incomplete grid fails", func(t *testing.T) {
		_, err := Carve(board.New(), 1, 20, 30)
		require.ErrorIs(t, err, ErrIncompleteGrid)
	})
}

func TestGenerate(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	t.Run("seeded generation is reproducible", func(t *testing.T) {
		opts := &Options{GridSeed: 42, CarveSeed: 1337, MinHints: 28, MaxHints: 36, Logger: log}
		r1, err := New(opts).Generate()
		require.NoError(t, err)
		r2, err := New(opts).Generate()
		require.NoError(t, err)

		assert.Equal(t, r1.Puzzle.String(), r2.Puzzle.String())
		assert.Equal(t, r1.Solution.String(), r2.Solution.String())
		assert.Equal(t, r1.Hints, r2.Hints)
		assert.Equal(t, int64(42), r1.GridSeed)
		assert.Equal(t, int64(1337), r1.CarveSeed)
	})

	t.Run("puzzle is carved from its solution", func(t *testing.T) {
		opts := &Options{GridSeed: 7, CarveSeed: 8, MinHints: 24, MaxHints: 32, Logger: log}
		res, err := New(opts).Generate()
		require.NoError(t, err)

		assert.True(t, res.Solution.IsSolved())
		assert.Equal(t, res.Hints, res.Puzzle.HintCount())
		for pos := range board.CellCount {
			if v := res.Puzzle.Get(pos); v != board.EmptyCell {
				assert.Equal(t, res.Solution.Get(pos), v)
			}
		}
	})

	t.Run("zero seeds resolve to recorded usable seeds", func(t *testing.T) {
		// The caller's zero seeds mean "pick for me"; the result must carry
		// the picked seeds so the exact puzzle can be regenerated from them.
		opts := &Options{MinHints: 28, MaxHints: 36, Logger: log}
		res, err := New(opts).Generate()
		require.NoError(t, err)
		require.NotZero(t, res.GridSeed)
		require.NotZero(t, res.CarveSeed)

		replay, err := New(&Options{
			GridSeed:  res.GridSeed,
			CarveSeed: res.CarveSeed,
			MinHints:  28,
			MaxHints:  36,
			Logger:    log,
		}).Generate()
		require.NoError(t, err)
		assert.Equal(t, res.Puzzle.String(), replay.Puzzle.String())
		assert.Equal(t, res.Solution.String(), replay.Solution.String())
		assert.Equal(t, res.Hints, replay.Hints)
	})

	t.Run("bad hint range surfaces", func(t *testing.T) {
		opts := &Options{GridSeed: 1, CarveSeed: 2, MinHints: 36, MaxHints: 28, Logger: log}
		_, err := New(opts).Generate()
		require.ErrorIs(t, err, ErrHintRange)
	})
}
