package solver

import "errors"

var (
	// ErrUnsolvable means backtracking exhausted the whole move history
	// without finding a consistent assignment. The entropy-collapse strategy
	// cannot complete this board; no other strategy is attempted.
	ErrUnsolvable = errors.New("puzzle cannot be solved by entropy collapse")

	// ErrInvalidPuzzle means the starting board already violates Sudoku
	// constraints.
	ErrInvalidPuzzle = errors.New("puzzle violates Sudoku constraints")

	// ErrStepLimit means the solver hit its configured step budget.
	// Backtracking chains are not proven bounded; the limit keeps latency
	// finite on pathological boards.
	ErrStepLimit = errors.New("solver step limit exceeded")
)
