// Package render draws boards for terminal output.
//
// The frame uses box-drawing characters, delimiting the 3×3 tiles:
//
//	┌───────┬───────┬───────┐
//	│ 5 3   │   7   │       │
//	...
//	└───────┴───────┴───────┘
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rybkr/entropy-sudoku/internal/board"
)

const (
	verticalLine   = "│"
	horizontalLine = "─"
	topLeft        = "┌"
	topRight       = "┐"
	bottomLeft     = "└"
	bottomRight    = "┘"
	downT          = "┬"
	upT            = "┴"
	rightT         = "├"
	leftT          = "┤"
	plus           = "┼"
)

var (
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	hintStyle   = lipgloss.NewStyle().Bold(true)
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Board renders a board with plain digits. Empty cells are blank.
func Board(b *board.Board) string {
	return draw(b, nil)
}

// Solution renders a solved board, highlighting the cells that were empty in
// the puzzle it came from. Hints keep the plain bold style.
func Solution(solved, puzzle *board.Board) string {
	return draw(solved, puzzle)
}

func draw(b, puzzle *board.Board) string {
	var sb strings.Builder

	sb.WriteString(frameLine(topLeft, downT, topRight))
	for r := range 9 {
		if r > 0 && r%3 == 0 {
			sb.WriteString(frameLine(rightT, plus, leftT))
		}
		sb.WriteString(rowLine(b, puzzle, r))
	}
	sb.WriteString(frameLine(bottomLeft, upT, bottomRight))

	return sb.String()
}

// frameLine builds a horizontal border: three 7-dash segments joined by the
// given connectors, matching the width of a rendered row.
func frameLine(left, mid, right string) string {
	segment := strings.Repeat(horizontalLine, 7)
	return frameStyle.Render(left+segment+mid+segment+mid+segment+right) + "\n"
}

func rowLine(b, puzzle *board.Board, row int) string {
	var sb strings.Builder
	bar := frameStyle.Render(verticalLine)

	for col, val := range b.Row(row) {
		if col%3 == 0 {
			sb.WriteString(bar + " ")
		}
		sb.WriteString(cell(puzzle, board.MakePos(row, col), val) + " ")
	}
	sb.WriteString(bar + "\n")

	return sb.String()
}

func cell(puzzle *board.Board, pos, val int) string {
	if val == board.EmptyCell {
		return " "
	}
	digit := string(rune('0' + val))
	if puzzle != nil && puzzle.Get(pos) == board.EmptyCell {
		return solvedStyle.Render(digit)
	}
	return hintStyle.Render(digit)
}
