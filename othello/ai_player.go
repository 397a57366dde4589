package othello

import (
	"fmt"
	"log"
	"time"
)

// AIPlayer picks moves for one colour with a fixed-depth alpha-beta search.
// Depths above 6 work but full-width search grows quickly; expect seconds per
// move at 7 and worse beyond.
type AIPlayer struct {
	player   PlayerColor
	depth    int
	logStats bool
}

func NewAIPlayer(player PlayerColor, depth int) (*AIPlayer, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("depth %d: %w", depth, ErrInvalidDepth)
	}
	return &AIPlayer{player: player, depth: depth}, nil
}

func (a *AIPlayer) Player() PlayerColor {
	return a.player
}

func (a *AIPlayer) Depth() int {
	return a.depth
}

func (a *AIPlayer) Name() string {
	return fmt.Sprintf("minimax(%s, depth %d)", a.player, a.depth)
}

func (a *AIPlayer) SetLogStats(enabled bool) {
	a.logStats = enabled
}

// ChooseMove returns false when the AI has no legal move and must pass.
func (a *AIPlayer) ChooseMove(board Board) (Move, bool) {
	result := a.Search(board)
	return result.Move, result.OK
}

func (a *AIPlayer) Search(board Board) SearchResult {
	stats := &SearchStats{Start: time.Now()}
	s := searcher{player: a.player, stats: stats}
	result := s.searchRoot(board, a.depth)
	stats.Elapsed = time.Since(stats.Start)
	result.Stats = *stats
	if a.logStats {
		logSearchStats(a.Name(), result)
	}
	return result
}

func logSearchStats(tag string, result SearchResult) {
	stats := result.Stats
	nps := 0.0
	if stats.Elapsed > 0 {
		nps = float64(stats.Nodes) / stats.Elapsed.Seconds()
	}
	move := "pass"
	if result.OK {
		move = result.Move.String()
	}
	log.Printf("[ai] %s move=%s score=%d nodes=%d leaves=%d cutoffs=%d passes=%d time=%dms nps=%.0f",
		tag, move, result.Score, stats.Nodes, stats.Leaves, stats.Cutoffs, stats.Passes,
		stats.Elapsed.Milliseconds(), nps)
}
