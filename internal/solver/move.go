package solver

// move records a single entropy-collapse decision: the cell that was
// ambiguous (more than one candidate), the value chosen for it, and the
// cells that were subsequently forced to a single candidate as a direct
// consequence. Undoing the move must undo its cascades with it.
//
// Deterministic single-candidate fills are never pushed as moves of their
// own; they are appended to the cascades of the most recent ambiguous move.
type move struct {
	pos      int
	value    int
	cascades []int
}

// push appends a new ambiguous move to the history stack.
func (s *Solver) push(pos, value int) {
	s.history = append(s.history, move{pos: pos, value: value})
}

// pop removes and returns the most recent move.
// The caller must ensure the history is not empty.
func (s *Solver) pop() move {
	n := len(s.history) - 1
	m := s.history[n]
	s.history = s.history[:n]
	return m
}

// cascade records a forced fill against the most recent ambiguous move, if
// any. Forced fills made before the first ambiguous choice belong to no move:
// they are implied by the starting board and never need undoing.
func (s *Solver) cascade(pos int) {
	if n := len(s.history); n > 0 {
		m := &s.history[n-1]
		m.cascades = append(m.cascades, pos)
	}
}
