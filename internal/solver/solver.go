package solver

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rybkr/entropy-sudoku/internal/board"
)

// Solver implements an entropy-collapse algorithm with backtracking.
//
// It repeatedly collapses the cell with the fewest remaining candidates.
// Forced fills (exactly one candidate) are applied directly; genuine choices
// are committed with a one-ply lookahead and recorded on a move stack so
// that a later contradiction can rewind the decision together with every
// fill it caused.
type Solver struct {
	Board   *board.Board
	options *Options
	rng     *rand.Rand
	log     *logrus.Logger
	history []move
	steps   int
}

// Options configures solving behavior.
type Options struct {
	// Seed drives the random choice among surviving substitutes during
	// backtracking (0 = time-based). All other decisions are deterministic,
	// so a fixed seed reproduces a run exactly.
	Seed int64

	// MaxSteps caps the total number of collapse and rewind steps
	// (0 = unlimited). Backtracking chains are not proven bounded, so
	// callers that need bounded latency should set this.
	MaxSteps int

	// Logger receives debug-level backtracking traces. nil uses the
	// standard logger.
	Logger *logrus.Logger
}

// DefaultOptions returns standard solver options.
func DefaultOptions() *Options {
	return &Options{}
}

// New creates a solver for the given board. The board is cloned; the solver
// owns its copy exclusively for the duration of solving.
func New(b *board.Board, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log := options.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Solver{
		Board:   b.Clone(),
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
		log:     log,
	}
}

// Solve attempts to complete the puzzle.
// Returns the solved board, or ErrUnsolvable if backtracking exhausts every
// recorded decision, or ErrInvalidPuzzle if the input already breaks the
// rules. A board with no empty cells returns immediately without mutation.
func (s *Solver) Solve() (*board.Board, error) {
	if !s.Board.IsValid() {
		return nil, ErrInvalidPuzzle
	}

	pos, candidates := s.Board.FindLeastEntropy()
	for pos != -1 {
		if err := s.step(); err != nil {
			return nil, err
		}

		switch len(candidates) {
		case 0:
			// Contradiction: rewind the most recent ambiguous decision.
			var err error
			pos, candidates, err = s.backtrack()
			if err != nil {
				return nil, err
			}
			continue

		case 1:
			// Forced fill; charge it to the decision that caused it.
			s.Board.SetForce(pos, candidates[0])
			s.cascade(pos)

		default:
			state := s.collapse(pos, candidates)
			if state == boardComplete {
				return s.Board, nil
			}
			if state == noViableChoice {
				var err error
				pos, candidates, err = s.backtrack()
				if err != nil {
					return nil, err
				}
				continue
			}
		}

		pos, candidates = s.Board.FindLeastEntropy()
	}

	return s.Board, nil
}

// step charges one unit against the configured step budget.
func (s *Solver) step() error {
	s.steps++
	if s.options.MaxSteps > 0 && s.steps > s.options.MaxSteps {
		return ErrStepLimit
	}
	return nil
}

type collapseState int

const (
	choiceCommitted collapseState = iota
	boardComplete
	noViableChoice
)

// collapse resolves a cell with more than one candidate. Each candidate is
// tried tentatively and scored by the size of the next least-entropy cell's
// candidate set; candidates that immediately strand another cell with zero
// options are discarded. The smallest surviving score wins (first tried wins
// ties). This lookahead is a heuristic — it reduces backtracking but does
// not prevent it.
func (s *Solver) collapse(pos int, candidates []int) collapseState {
	bestValue := 0
	bestNext := 10

	for _, value := range candidates {
		s.Board.SetForce(pos, value)
		nextPos, nextCandidates := s.Board.FindLeastEntropy()
		if nextPos == -1 {
			// This candidate completed the board; keep it.
			return boardComplete
		}
		s.Board.Clear(pos)

		if len(nextCandidates) == 0 {
			continue
		}
		if len(nextCandidates) < bestNext {
			bestValue, bestNext = value, len(nextCandidates)
		}
	}

	if bestValue == 0 {
		// Every candidate strands some cell. Leave this one empty and let
		// backtracking unwind an earlier decision.
		return noViableChoice
	}

	s.Board.SetForce(pos, bestValue)
	s.push(pos, bestValue)
	return choiceCommitted
}

// backtrack rewinds ambiguous decisions until one of them has a workable
// substitute value. For each popped move it clears the move's cascades and
// its own cell, recomputes the candidates there excluding the value that
// already failed, and keeps only substitutes that do not immediately strand
// another cell. One survivor is chosen uniformly at random and pushed as a
// fresh move.
//
// Returns the least-entropy selector result for the board after the
// substitution, so the caller can resume without rescanning. A returned
// position of -1 means a substitute completed the board outright.
// Returns ErrUnsolvable when the history is exhausted.
func (s *Solver) backtrack() (int, []int, error) {
	type substitute struct {
		value          int
		nextPos        int
		nextCandidates []int
	}

	for depth := 1; ; depth++ {
		if err := s.step(); err != nil {
			return 0, nil, err
		}
		if len(s.history) == 0 {
			s.log.WithField("depth", depth).Debug("backtracking exhausted move history")
			return 0, nil, ErrUnsolvable
		}

		m := s.pop()
		for _, c := range m.cascades {
			s.Board.Clear(c)
		}
		s.Board.Clear(m.pos)

		candidates, ok := s.Board.Candidates(m.pos)
		if !ok {
			panic("solver: cell not empty after undoing its own move")
		}

		var survivors []substitute
		for _, value := range candidates {
			if value == m.value {
				// Already failed downstream.
				continue
			}
			s.Board.SetForce(m.pos, value)
			nextPos, nextCandidates := s.Board.FindLeastEntropy()
			if nextPos == -1 {
				// The substitute finished the board.
				s.push(m.pos, value)
				return -1, nil, nil
			}
			s.Board.Clear(m.pos)

			if len(nextCandidates) > 0 {
				survivors = append(survivors, substitute{value, nextPos, nextCandidates})
			}
		}

		if len(survivors) == 0 {
			// Nothing works at this level; pop one move further back.
			s.log.WithFields(logrus.Fields{
				"pos":   m.pos,
				"value": m.value,
				"depth": depth,
			}).Debug("no substitute survives, rewinding further")
			continue
		}

		pick := survivors[s.rng.Intn(len(survivors))]
		s.Board.SetForce(m.pos, pick.value)
		s.push(m.pos, pick.value)
		s.log.WithFields(logrus.Fields{
			"pos":        m.pos,
			"failed":     m.value,
			"substitute": pick.value,
			"depth":      depth,
		}).Debug("substituted backtracked move")
		return pick.nextPos, pick.nextCandidates, nil
	}
}
