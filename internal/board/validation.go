package board

// IsValid reports whether a board satisfies Sudoku constraints.
// Empty cells are ignored for validation.
func (b *Board) IsValid() bool {
	return len(b.Conflicts()) == 0
}

// Conflicts returns the positions of cells whose value duplicates an earlier
// non-empty cell in the same row, column, or tile. An empty result means the
// board is valid. The masks maintained for candidate calculation cannot
// represent duplicates, so this recomputes from the cells.
func (b *Board) Conflicts() []int {
	var rowCheck, colCheck, tileCheck [9]uint
	var conflicts []int

	for pos := range CellCount {
		val := b.cells[pos]
		if val == EmptyCell {
			continue
		}

		row, col, tile := posToRow[pos], posToCol[pos], posToTile[pos]
		mask := uint(1 << (val - 1))

		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			tileCheck[tile]&mask != 0 {
			conflicts = append(conflicts, pos)
			continue
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		tileCheck[tile] |= mask
	}

	return conflicts
}

// IsSolved reports whether the board is completely filled and valid.
func (b *Board) IsSolved() bool {
	return b.emptyCount == 0 && b.IsValid()
}
