package othello

type ZobristTable struct {
	cells [BoardSize * BoardSize * 2]uint64
	side  uint64
}

var zobrist = newZobristTable(0x9e3779b97f4a7c15)

func newZobristTable(seed uint64) *ZobristTable {
	rng := splitmix64{state: seed}
	table := &ZobristTable{}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	return table
}

func (z *ZobristTable) disc(row, col int, player PlayerColor) uint64 {
	idx := (row*BoardSize + col) * 2
	if player == PlayerWhite {
		idx++
	}
	return z.cells[idx]
}

func ComputeHash(board Board, toMove PlayerColor) uint64 {
	var hash uint64
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			player, err := PlayerFromCell(board.At(row, col))
			if err != nil {
				continue
			}
			hash ^= zobrist.disc(row, col, player)
		}
	}
	if toMove == PlayerWhite {
		hash ^= zobrist.side
	}
	return hash
}

// updateHashAfterMove folds a placement and its flips into hash. The side bit
// is toggled because the turn always changes after a move.
func updateHashAfterMove(hash uint64, move Move, player PlayerColor, flipped []Move) uint64 {
	hash ^= zobrist.disc(move.Row, move.Col, player)
	opp := Opponent(player)
	for _, m := range flipped {
		hash ^= zobrist.disc(m.Row, m.Col, opp)
		hash ^= zobrist.disc(m.Row, m.Col, player)
	}
	return hash ^ zobrist.side
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
