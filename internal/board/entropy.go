package board

import "math/bits"

// Entropy here is the number of digits an empty cell can still legally take.
// The cell with the least entropy is the most constrained one and is the
// best place for a solver to act next.

// CandidatesMask returns the bitmask of legal digits for an empty cell.
// The second return is false if the position is invalid or the cell is
// already filled — a filled cell has no candidate set.
func (b *Board) CandidatesMask(pos int) (uint, bool) {
	if !isValidPosition(pos) || b.cells[pos] != EmptyCell {
		return 0, false
	}
	row, col, tile := posToRow[pos], posToCol[pos], posToTile[pos]
	return allNine &^ b.rowMasks[row] &^ b.colMasks[col] &^ b.tileMasks[tile], true
}

// Candidates returns the legal digits 1-9 for an empty cell, ascending.
// The second return is false if the position is invalid or the cell is
// already filled. A true return with an empty slice means the cell is a
// contradiction: it is empty but no digit fits.
func (b *Board) Candidates(pos int) ([]int, bool) {
	mask, ok := b.CandidatesMask(pos)
	if !ok {
		return nil, false
	}
	return maskToCandidates(mask), true
}

// FindLeastEntropy scans all cells in row-major order and returns the empty
// cell with the fewest candidates along with its candidate list. Ties keep
// the earliest-scanned cell, which makes the selection deterministic.
//
// Returns (-1, nil) when no cell is empty — the board is complete.
// A non-negative position with an empty candidate list signals a
// contradiction that the caller must recover from.
func (b *Board) FindLeastEntropy() (int, []int) {
	minPos := -1
	minMask := uint(0)
	minCount := 10

	for pos := range CellCount {
		mask, ok := b.CandidatesMask(pos)
		if !ok {
			continue
		}
		count := bits.OnesCount(mask)
		if count < minCount {
			minPos, minMask, minCount = pos, mask, count
			if count == 0 {
				// Entropy cannot go lower; no later cell can win.
				break
			}
		}
	}

	if minPos == -1 {
		return -1, nil
	}
	return minPos, maskToCandidates(minMask)
}

// maskToCandidates expands a candidate bitmask into ascending digits.
func maskToCandidates(mask uint) []int {
	candidates := make([]int, 0, bits.OnesCount(mask))
	for num := 1; num <= 9; num++ {
		if mask&uint(1<<(num-1)) != 0 {
			candidates = append(candidates, num)
		}
	}
	return candidates
}
