package othello

import "fmt"

type Direction struct {
	DRow int
	DCol int
}

var directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Directions returns the eight compass offsets. The result is an array value,
// so callers cannot modify the package table.
func Directions() [8]Direction {
	return directions
}

// FlipLineInDirection walks from (row, col) along dir collecting opponent
// discs. The run is returned only when it is non-empty and closed by one of
// player's own discs; otherwise the result is nil.
func (b Board) FlipLineInDirection(row, col int, player PlayerColor, dir Direction) []Move {
	own := CellFromPlayer(player)
	opp := CellFromPlayer(Opponent(player))
	var line []Move
	r := row + dir.DRow
	c := col + dir.DCol
	for InBounds(r, c) && b.cells[r][c] == opp {
		line = append(line, Move{Row: r, Col: c})
		r += dir.DRow
		c += dir.DCol
	}
	if len(line) == 0 || !InBounds(r, c) || b.cells[r][c] != own {
		return nil
	}
	return line
}

func (b Board) IsLegal(row, col int, player PlayerColor) bool {
	if !b.IsEmpty(row, col) {
		return false
	}
	for _, dir := range directions {
		if len(b.FlipLineInDirection(row, col, player, dir)) > 0 {
			return true
		}
	}
	return false
}

// LegalMoves lists every legal placement in row-major order.
func (b Board) LegalMoves(player PlayerColor) []Move {
	var moves []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.IsLegal(row, col, player) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (b Board) HasLegalMove(player PlayerColor) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.IsLegal(row, col, player) {
				return true
			}
		}
	}
	return false
}

// ApplyMove places player's disc and flips every sandwiched line. On error the
// board is left untouched. The returned slice lists the flipped cells.
func (b *Board) ApplyMove(row, col int, player PlayerColor) ([]Move, error) {
	if !InBounds(row, col) {
		return nil, fmt.Errorf("apply (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	if !b.IsLegal(row, col, player) {
		return nil, fmt.Errorf("apply (%d,%d) for %s: %w", row, col, player, ErrIllegalMove)
	}
	// Lines are collected before any write so every direction sees the
	// pre-move board.
	var flipped []Move
	for _, dir := range directions {
		flipped = append(flipped, b.FlipLineInDirection(row, col, player, dir)...)
	}
	cell := CellFromPlayer(player)
	b.set(row, col, cell)
	for _, m := range flipped {
		b.set(m.Row, m.Col, cell)
	}
	return flipped, nil
}

// IsTerminal is true only when neither side can move. A full board always
// satisfies this, but so can a board with empty cells.
func (b Board) IsTerminal() bool {
	return !b.HasLegalMove(PlayerBlack) && !b.HasLegalMove(PlayerWhite)
}

// Winner reports false on a tie.
func (b Board) Winner() (PlayerColor, bool) {
	black, white := b.Score()
	switch {
	case black > white:
		return PlayerBlack, true
	case white > black:
		return PlayerWhite, true
	default:
		return PlayerBlack, false
	}
}
