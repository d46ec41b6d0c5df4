package solver

import (
	"github.com/rybkr/entropy-sudoku/internal/board"
)

// Difficulty returns an integer measure of a board's difficulty: the number
// of collapse attempts an exhaustive walk over the least-entropy selector
// makes. Cost grows with how under-constrained the board is; use with
// moderately clued puzzles.
func Difficulty(b *board.Board) int {
	s := New(b, nil)
	return s.traceDifficulty()
}

// traceDifficulty implements the measure of a board's difficulty.
func (s *Solver) traceDifficulty() int {
	pos, candidates := s.Board.FindLeastEntropy()
	if pos == -1 || len(candidates) == 0 {
		// Complete, or a dead end; nothing more can be attempted.
		return 0
	}

	score := 0
	for _, candidate := range candidates {
		s.Board.SetForce(pos, candidate)
		score += 1 + s.traceDifficulty()
		s.Board.Clear(pos)
	}
	return score
}
