package othello

import (
	"math"
	"time"
)

const scoreInf = math.MaxInt32

type SearchStats struct {
	Nodes   int64
	Leaves  int64
	Cutoffs int64
	Passes  int64
	Start   time.Time
	Elapsed time.Duration
}

type SearchResult struct {
	Move  Move
	Score int
	OK    bool
	Depth int
	Stats SearchStats
}

type searcher struct {
	player PlayerColor
	stats  *SearchStats
}

// search is depth-limited minimax with alpha-beta pruning. Scores are always
// from s.player's point of view: the maximizing side is s.player.
func (s *searcher) search(board Board, depth int, alpha, beta int, maximizing bool) int {
	s.stats.Nodes++
	if depth == 0 || board.IsTerminal() {
		s.stats.Leaves++
		return Evaluate(board, s.player)
	}
	mover := s.player
	if !maximizing {
		mover = Opponent(s.player)
	}
	moves := board.LegalMoves(mover)
	if len(moves) == 0 {
		// The mover passes: same board, other side to play.
		s.stats.Passes++
		return s.search(board, depth-1, alpha, beta, !maximizing)
	}

	if maximizing {
		best := -scoreInf
		for _, move := range moves {
			child := board
			if _, err := child.ApplyMove(move.Row, move.Col, mover); err != nil {
				continue
			}
			score := s.search(child, depth-1, alpha, beta, false)
			if score > best {
				best = score
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
		return best
	}

	best := scoreInf
	for _, move := range moves {
		child := board
		if _, err := child.ApplyMove(move.Row, move.Col, mover); err != nil {
			continue
		}
		score := s.search(child, depth-1, alpha, beta, true)
		if score < best {
			best = score
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return best
}

// searchRoot scores every legal move of s.player. The root never prunes a
// candidate; it only narrows alpha so deeper nodes can cut.
func (s *searcher) searchRoot(board Board, depth int) SearchResult {
	result := SearchResult{Depth: depth}
	moves := board.LegalMoves(s.player)
	if len(moves) == 0 {
		return result
	}
	alpha := -scoreInf
	beta := scoreInf
	for _, move := range moves {
		child := board
		if _, err := child.ApplyMove(move.Row, move.Col, s.player); err != nil {
			continue
		}
		score := s.search(child, depth-1, alpha, beta, false)
		if !result.OK || score > result.Score {
			result.Move = move
			result.Score = score
			result.OK = true
		}
		if result.Score > alpha {
			alpha = result.Score
		}
	}
	return result
}
