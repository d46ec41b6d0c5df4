package board

import (
	"fmt"
	"strings"
)

// Special cell values
const (
	EmptyCell   = 0
	InvalidCell = -1
	CellCount   = 81
)

// Bitmask values
const (
	allNine = 511
)

// Board represents a 9x9 Sudoku board.
//
// Cells are stored row-major: logical (row, col) lives at linear position
// row*9 + col. A value of EmptyCell means the cell is unfilled.
type Board struct {
	cells [CellCount]int

	// Bitmasks track placed digits in each unit (row/col/tile).
	// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
	// This allows for O(1) candidate calculation.
	rowMasks  [9]uint
	colMasks  [9]uint
	tileMasks [9]uint

	// emptyCount tracks unfilled cells for quick completion checks.
	// Once initialized, emptyCount should only be touched inside Set and Clear.
	emptyCount int
}

// New creates an empty Board.
func New() *Board {
	return &Board{emptyCount: CellCount}
}

// NewFromString creates a Board from an 81-character string.
// Use '.' or '0' for empty cells, '1'-'9' for filled cells.
//
// Placement is unchecked: a string describing a board that violates Sudoku
// constraints still parses. Use IsValid or Conflicts to detect that.
func NewFromString(s string) (*Board, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: string must be exactly %d characters, got %d",
			ErrBadRepresentation, CellCount, len(s))
	}

	b := New()
	for pos := range CellCount {
		ch := s[pos]
		switch ch {
		case '.', '0':
			// Empty cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			b.SetForce(pos, int(ch-'0'))
		default:
			return nil, fmt.Errorf("%w: invalid character '%c' at position %d",
				ErrBadRepresentation, ch, pos)
		}
	}
	return b, nil
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Set attempts to place a value 1-9 at the given position.
// Returns an error if the placement violates Sudoku rules or parameters are invalid.
func (b *Board) Set(pos, val int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}
	if err := b.validateValue(val); err != nil {
		return err
	}
	if val == EmptyCell {
		return b.Clear(pos)
	}
	if b.cells[pos] != EmptyCell {
		b.Clear(pos)
	}

	row, col, tile := posToRow[pos], posToCol[pos], posToTile[pos]
	mask := uint(1 << (val - 1))

	// Check if value already exists in row, column, or tile for Sudoku rules
	if b.rowMasks[row]&mask != 0 {
		return fmt.Errorf("%w: value %d already in row %d", ErrIllegalMove, val, row)
	}
	if b.colMasks[col]&mask != 0 {
		return fmt.Errorf("%w: value %d already in column %d", ErrIllegalMove, val, col)
	}
	if b.tileMasks[tile]&mask != 0 {
		return fmt.Errorf("%w: value %d already in tile %d", ErrIllegalMove, val, tile)
	}

	// Modify the board only once we know it's legal to do so
	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.tileMasks[tile] |= mask
	b.emptyCount--

	return nil
}

// SetForce places a value without validation checks.
// Use only when certain the move is valid.
func (b *Board) SetForce(pos, val int) {
	if b.cells[pos] != EmptyCell {
		b.Clear(pos)
	}

	row, col, tile := posToRow[pos], posToCol[pos], posToTile[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = val
	b.rowMasks[row] |= mask
	b.colMasks[col] |= mask
	b.tileMasks[tile] |= mask
	b.emptyCount--
}

// Clear removes the value at the given position.
// Returns an error if the position is invalid.
// No harm is done calling Clear on an already empty cell.
func (b *Board) Clear(pos int) error {
	if err := b.validatePosition(pos); err != nil {
		return err
	}

	// Exit early if the cell is already empty, no harm no foul
	val := b.cells[pos]
	if val == EmptyCell {
		return nil
	}

	row, col, tile := posToRow[pos], posToCol[pos], posToTile[pos]
	mask := uint(1 << (val - 1))

	b.cells[pos] = EmptyCell
	b.rowMasks[row] &^= mask
	b.colMasks[col] &^= mask
	b.tileMasks[tile] &^= mask
	b.emptyCount++

	return nil
}

// Get returns the value at the given position.
// Returns InvalidCell for invalid positions.
func (b *Board) Get(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return b.cells[pos]
}

// Row returns the 9 values of the given row, left to right.
func (b *Board) Row(row int) [9]int {
	var out [9]int
	for col := range 9 {
		out[col] = b.cells[row*9+col]
	}
	return out
}

// Column returns the 9 values of the given column, top to bottom.
func (b *Board) Column(col int) [9]int {
	var out [9]int
	for row := range 9 {
		out[row] = b.cells[row*9+col]
	}
	return out
}

// Tile returns the 9 values of the 3×3 tile at (tileRow, tileCol), both in
// [0, 2], in row-major order. The tile containing cell (row, col) is
// (row/3, col/3).
func (b *Board) Tile(tileRow, tileCol int) [9]int {
	var out [9]int
	base := tileRow*27 + tileCol*3
	for i := range 9 {
		out[i] = b.cells[base+(i/3)*9+i%3]
	}
	return out
}

// EmptyCount returns the number of empty cells on the board.
func (b *Board) EmptyCount() int {
	return b.emptyCount
}

// HintCount returns the number of filled cells on the board.
func (b *Board) HintCount() int {
	return CellCount - b.emptyCount
}

// String returns the board as an 81-character string, row-major.
// Empty cells are represented as '0', filled cells as '1'-'9'.
// This is the interchange format accepted by NewFromString.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range b.cells {
		sb.WriteByte('0' + byte(cell))
	}

	return sb.String()
}

// Precomputed lookup tables mapping a linear position to its units.
var (
	posToRow  [CellCount]int
	posToCol  [CellCount]int
	posToTile [CellCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// init initializes the position-to-unit lookup tables.
func init() {
	for pos := range CellCount {
		posToRow[pos] = pos / 9
		posToCol[pos] = pos % 9
		posToTile[pos] = 3*(pos/27) + (pos%9)/3
	}
}
