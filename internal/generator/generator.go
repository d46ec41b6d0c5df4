package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rybkr/entropy-sudoku/internal/board"
)

const (
	MinValidHintCount = 17
	MaxValidHintCount = 80
)

var (
	ErrHintRange      = errors.New("min hints must be less than max hints")
	ErrInvalidHints   = errors.New("hint count must be between 17 and 80")
	ErrIncompleteGrid = errors.New("carving requires a completely filled grid")
)

// Generator creates Sudoku puzzles.
type Generator struct {
	options *Options
	log     *logrus.Logger
}

// New creates a puzzle generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	log := options.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Generator{options: options, log: log}
}

// Result is a generated puzzle together with its source solution and the
// seeds that actually produced it. Rerunning generation with the recorded
// seed pair reproduces the puzzle exactly.
type Result struct {
	Puzzle    *board.Board
	Solution  *board.Board
	Hints     int
	GridSeed  int64
	CarveSeed int64
}

// Generate creates a new Sudoku puzzle.
// Zero seeds are replaced with time-based ones; the result carries the seeds
// actually used so any puzzle can be reproduced exactly.
func (g *Generator) Generate() (*Result, error) {
	gridSeed := g.options.GridSeed
	if gridSeed == 0 {
		gridSeed = time.Now().UnixNano()
	}
	carveSeed := g.options.CarveSeed
	if carveSeed == 0 {
		carveSeed = time.Now().UnixNano() + 1
	}

	solution := Complete(gridSeed)
	puzzle := solution.Clone()
	hints, err := Carve(puzzle, carveSeed, g.options.MinHints, g.options.MaxHints)
	if err != nil {
		return nil, err
	}

	g.log.WithFields(logrus.Fields{
		"gridSeed":  gridSeed,
		"carveSeed": carveSeed,
		"hints":     hints,
	}).Info("generated puzzle")

	return &Result{
		Puzzle:    puzzle,
		Solution:  solution,
		Hints:     hints,
		GridSeed:  gridSeed,
		CarveSeed: carveSeed,
	}, nil
}

// Complete builds a fully solved, rule-valid grid, deterministic for a given
// seed. Construction is by structured permutation rather than search:
//
//  1. The first row is a random permutation of 1-9.
//  2. Each next row is the previous rotated left — by 1 when the row starts
//     a new 3-row band, by 3 otherwise. The resulting offset pattern
//     satisfies every row, column, and tile constraint.
//  3. Rows are shuffled within each band and columns within each stack.
//     Staying inside a band or stack keeps every constraint intact.
//  4. Digits are relabeled through a random bijection of 1-9.
func Complete(seed int64) *board.Board {
	rng := rand.New(rand.NewSource(seed))

	var rows [9][9]int
	for i, p := range rng.Perm(9) {
		rows[0][i] = p + 1
	}
	for r := 1; r < 9; r++ {
		shift := 3
		if r%3 == 0 {
			shift = 1
		}
		for i := range 9 {
			rows[r][i] = rows[r-1][(i+shift)%9]
		}
	}

	// Shuffle rows within each band.
	for band := range 3 {
		var shuffled [3][9]int
		for i, p := range rng.Perm(3) {
			shuffled[i] = rows[band*3+p]
		}
		for i := range 3 {
			rows[band*3+i] = shuffled[i]
		}
	}

	// Shuffle columns within each stack.
	for stack := range 3 {
		perm := rng.Perm(3)
		for r := range 9 {
			var shuffled [3]int
			for i, p := range perm {
				shuffled[i] = rows[r][stack*3+p]
			}
			for i := range 3 {
				rows[r][stack*3+i] = shuffled[i]
			}
		}
	}

	// Relabel digits through a random bijection.
	relabel := rng.Perm(9)

	b := board.New()
	for r := range 9 {
		for c := range 9 {
			b.SetForce(board.MakePos(r, c), relabel[rows[r][c]-1]+1)
		}
	}
	return b
}

// Carve clears random cells of a complete grid in place until only a target
// number of hints remain, and returns that hint count. The target is drawn
// uniformly from [minHints, maxHints), so minHints must be strictly below
// maxHints. No uniqueness check is performed: a carved puzzle may admit more
// than one solution.
func Carve(b *board.Board, seed int64, minHints, maxHints int) (int, error) {
	if minHints >= maxHints {
		return 0, fmt.Errorf("%w: got min %d, max %d", ErrHintRange, minHints, maxHints)
	}
	if minHints < MinValidHintCount || maxHints > MaxValidHintCount+1 {
		return 0, fmt.Errorf("%w: got min %d, max %d", ErrInvalidHints, minHints, maxHints)
	}
	if b.EmptyCount() != 0 {
		return 0, fmt.Errorf("%w: %d cells empty", ErrIncompleteGrid, b.EmptyCount())
	}

	rng := rand.New(rand.NewSource(seed))
	hints := minHints + rng.Intn(maxHints-minHints)
	toClear := board.CellCount - hints

	cleared := 0
	for cleared < toClear {
		pos := rng.Intn(board.CellCount)
		if b.Get(pos) == board.EmptyCell {
			continue
		}
		b.Clear(pos)
		cleared++
	}

	return b.HintCount(), nil
}
