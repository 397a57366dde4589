package othello

import (
	"fmt"
	"strings"
)

const BoardSize = 8

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Board is a plain value: assigning or passing it copies all 64 cells, so a
// search node never shares storage with the live game.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

func NewBoard() Board {
	b := Board{}
	b.Reset()
	return b
}

func (b *Board) Reset() {
	b.cells = [BoardSize][BoardSize]Cell{}
	mid := BoardSize / 2
	b.cells[mid-1][mid-1] = CellWhite
	b.cells[mid-1][mid] = CellBlack
	b.cells[mid][mid-1] = CellBlack
	b.cells[mid][mid] = CellWhite
}

// Get returns ErrOutOfBounds when either coordinate is outside [0,8).
func (b Board) Get(row, col int) (Cell, error) {
	if !InBounds(row, col) {
		return CellEmpty, fmt.Errorf("get (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	return b.cells[row][col], nil
}

// At is the unchecked accessor; callers guarantee the coordinates.
func (b Board) At(row, col int) Cell {
	return b.cells[row][col]
}

func (b *Board) set(row, col int, value Cell) {
	b.cells[row][col] = value
}

func InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < BoardSize && col < BoardSize
}

func (b Board) IsEmpty(row, col int) bool {
	return InBounds(row, col) && b.cells[row][col] == CellEmpty
}

func (b Board) Count(cell Cell) int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.cells[row][col] == cell {
				count++
			}
		}
	}
	return count
}

func (b Board) CountEmpty() int {
	return b.Count(CellEmpty)
}

func (b Board) Score() (black, white int) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch b.cells[row][col] {
			case CellBlack:
				black++
			case CellWhite:
				white++
			}
		}
	}
	return black, white
}

func (b Board) Clone() Board {
	return b
}

// String renders the board the way the terminal prints it: a column header,
// then one line per row with '.', 'B' or 'W'.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.cells[row][col].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from eight rows of '.', 'B' and 'W'. Spaces are
// ignored so rows may be written either packed or spaced out.
func ParseBoard(rows []string) (Board, error) {
	b := Board{}
	if len(rows) != BoardSize {
		return b, fmt.Errorf("parse board: want %d rows, got %d", BoardSize, len(rows))
	}
	for row, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		if len(line) != BoardSize {
			return b, fmt.Errorf("parse board: row %d has %d cells", row, len(line))
		}
		for col := 0; col < BoardSize; col++ {
			cell, err := cellFromSymbol(line[col])
			if err != nil {
				return b, fmt.Errorf("parse board: row %d col %d: %w", row, col, err)
			}
			b.cells[row][col] = cell
		}
	}
	return b, nil
}

func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows)
	if err != nil {
		panic(err)
	}
	return b
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

func (c Cell) Symbol() byte {
	switch c {
	case CellBlack:
		return 'B'
	case CellWhite:
		return 'W'
	default:
		return '.'
	}
}

func cellFromSymbol(symbol byte) (Cell, error) {
	switch symbol {
	case '.', '-', '_':
		return CellEmpty, nil
	case 'B', 'b', 'X', 'x':
		return CellBlack, nil
	case 'W', 'w', 'O', 'o':
		return CellWhite, nil
	default:
		return CellEmpty, fmt.Errorf("unknown cell %q", symbol)
	}
}
