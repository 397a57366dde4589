package othello

// Corners are worth holding; the X and C squares next to them hand corners
// to the opponent.
var positionWeights = [BoardSize][BoardSize]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

const materialWeight = 2

func PositionWeight(row, col int) int {
	return positionWeights[row][col]
}

// Evaluate scores board from player's point of view; positive favours player.
func Evaluate(board Board, player PlayerColor) int {
	own := CellFromPlayer(player)
	opp := CellFromPlayer(Opponent(player))
	score := 0
	ownCount := 0
	oppCount := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			switch board.At(row, col) {
			case own:
				score += positionWeights[row][col]
				ownCount++
			case opp:
				score -= positionWeights[row][col]
				oppCount++
			}
		}
	}
	return score + materialWeight*(ownCount-oppCount)
}
