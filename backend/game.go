package main

import (
	"log"
	"time"

	"github.com/AmineOuatt/othello-game/othello"
)

type Game struct {
	settings    GameSettings
	state       othello.GameState
	history     MoveHistory
	blackPlayer IPlayer
	whitePlayer IPlayer
	hintAI      *AIWorker
	hintHash    uint64
	hintActive  bool
	turnStart   time.Time

	// searchDone belongs to the most recently started search of any worker,
	// including workers already replaced by createPlayers or a new hint depth.
	searchDone <-chan struct{}
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.stopHint(nil)
	g.settings = settings
	g.state.Reset()
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
	g.logMatchup()
}

func (g *Game) Start() {
	if g.state.Status == othello.StatusNotStarted {
		g.state.Status = othello.StatusRunning
		g.turnStart = time.Now()
		g.stopHint(nil)
	}
}

func (g *Game) State() othello.GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) TryApplyMove(move othello.Move) (bool, string) {
	return g.applyMove(move, othello.SearchResult{})
}

func (g *Game) applyMove(move othello.Move, search othello.SearchResult) (bool, string) {
	if g.state.Status != othello.StatusRunning {
		return false, othello.ErrGameOver.Error()
	}
	player := g.state.ToMove
	isAiMove := !g.playerForColor(player).IsHuman()
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	flipped, err := g.state.Play(move)
	if err != nil {
		return false, err.Error()
	}
	g.stopHint(nil)
	entry := HistoryEntry{
		Move:      move,
		Player:    player,
		Flipped:   flipped,
		ElapsedMs: elapsedMs,
		IsAi:      isAiMove,
	}
	if search.OK {
		entry.Depth = search.Depth
		entry.Score = search.Score
	}
	g.history.Push(entry)
	g.turnStart = time.Now()
	g.logOutcome()
	return true, ""
}

func (g *Game) applyPass() bool {
	player := g.state.ToMove
	if err := g.state.Pass(); err != nil {
		return false
	}
	g.history.Push(HistoryEntry{
		Player:    player,
		Pass:      true,
		ElapsedMs: float64(time.Since(g.turnStart).Milliseconds()),
		IsAi:      !g.playerForColor(player).IsHuman(),
	})
	log.Printf("[game] %s has no legal move and passes", player)
	g.turnStart = time.Now()
	g.logOutcome()
	return true
}

// Tick advances the game by at most one turn and reports whether the state
// changed. A side without legal moves passes automatically, human or not.
func (g *Game) Tick(hintEnabled bool, hintSink func(ghostPayload)) bool {
	if g.state.Status != othello.StatusRunning {
		g.stopHint(hintSink)
		return false
	}
	if g.state.MustPass() {
		g.stopHint(hintSink)
		if ai, ok := g.currentPlayer().(*AIWorker); ok {
			ai.StopThinking()
		}
		return g.applyPass()
	}
	player := g.currentPlayer()
	if player.IsHuman() {
		if hintEnabled && hintSink != nil {
			g.updateHint(hintSink)
		} else {
			g.stopHint(hintSink)
		}
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			move := human.TakePendingMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		return false
	}
	g.stopHint(hintSink)
	ai, ok := player.(*AIWorker)
	if !ok {
		return false
	}
	delay := time.Duration(GetConfig().AiMoveDelayMs) * time.Millisecond
	if ai.HasMoveReady() && time.Since(g.turnStart) >= delay {
		result, hash := ai.TakeResult()
		if hash != g.state.Hash {
			return false
		}
		if !result.OK {
			return g.applyPass()
		}
		applied, reason := g.applyMove(result.Move, result)
		if !applied {
			log.Printf("[game] AI move %s rejected: %s", result.Move, reason)
		}
		return applied
	}
	if !ai.IsThinking() && !ai.HasMoveReady() {
		g.startSearch(ai)
	}
	return false
}

// startSearch keeps a single search goroutine per game. Searches cannot be
// interrupted, so a stopped one is waited out across ticks before the next
// begins.
func (g *Game) startSearch(ai *AIWorker) bool {
	if g.searchDone != nil {
		select {
		case <-g.searchDone:
		default:
			return false
		}
	}
	done := ai.StartThinking(g.state.Clone())
	if done == nil {
		return false
	}
	g.searchDone = done
	return true
}

func (g *Game) SubmitHumanMove(move othello.Move) bool {
	human, ok := g.currentPlayer().(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color othello.PlayerColor) IPlayer {
	if color == othello.PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	for _, player := range []IPlayer{g.blackPlayer, g.whitePlayer} {
		if ai, ok := player.(*AIWorker); ok {
			ai.StopThinking()
		}
	}
	g.blackPlayer = newPlayer(g.settings, othello.PlayerBlack)
	g.whitePlayer = newPlayer(g.settings, othello.PlayerWhite)
}

func newPlayer(settings GameSettings, color othello.PlayerColor) IPlayer {
	if settings.TypeFor(color) == PlayerHuman {
		return NewHumanPlayer()
	}
	ai, err := NewAIWorker(color, settings.DepthFor(color))
	if err != nil {
		log.Printf("[game] %s AI unavailable, falling back to default depth: %v", color, err)
		ai, err = NewAIWorker(color, DefaultConfig().AiDepth)
		if err != nil {
			return NewHumanPlayer()
		}
	}
	return ai
}

func (g *Game) logMatchup() {
	log.Printf("[game] Black (%s) vs White (%s)", g.blackPlayer.Label(), g.whitePlayer.Label())
}

func (g *Game) logOutcome() {
	if !g.state.IsOver() {
		return
	}
	black, white := g.state.Board.Score()
	log.Printf("[game] finished %s: black=%d white=%d plies=%d", g.state.Status, black, white, g.state.Plies)
}

func (g *Game) AiThinking() bool {
	if ai, ok := g.currentPlayer().(*AIWorker); ok {
		return ai.IsThinking()
	}
	return false
}

func (g *Game) ResetForConfigChange() {
	g.stopHint(nil)
	g.hintAI = nil
	for _, player := range []IPlayer{g.blackPlayer, g.whitePlayer} {
		if ai, ok := player.(*AIWorker); ok {
			ai.StopThinking()
		}
	}
}

// updateHint searches the human's position once per position hash and
// publishes the best move when the search finishes.
func (g *Game) updateHint(hintSink func(ghostPayload)) {
	toMove := g.state.ToMove
	if g.hintAI == nil || g.hintAI.Player() != toMove || g.hintAI.Depth() != GetConfig().HintDepth {
		if g.hintAI != nil {
			g.hintAI.StopThinking()
		}
		ai, err := NewAIWorker(toMove, GetConfig().HintDepth)
		if err != nil {
			return
		}
		g.hintAI = ai
		g.hintHash = 0
	}
	if g.hintAI.HasMoveReady() {
		result, hash := g.hintAI.TakeResult()
		if hash != g.state.Hash || !result.OK {
			return
		}
		hintSink(ghostPayload{
			Mode:       "best_move",
			Best:       &ghostCell{Row: result.Move.Row, Col: result.Move.Col, Player: playerToInt(toMove)},
			Depth:      result.Depth,
			Score:      result.Score,
			NextPlayer: playerToInt(toMove),
			HistoryLen: g.history.Size(),
			Active:     true,
		})
		g.hintActive = true
		return
	}
	if g.hintHash == g.state.Hash {
		return
	}
	g.hintAI.StopThinking()
	if g.startSearch(g.hintAI) {
		g.hintHash = g.state.Hash
	}
}

func (g *Game) stopHint(hintSink func(ghostPayload)) {
	g.hintHash = 0
	if g.hintAI != nil {
		g.hintAI.StopThinking()
	}
	// Without a sink the retraction waits for the next tick that has one.
	if hintSink != nil && g.hintActive {
		hintSink(ghostPayload{Mode: "best_move", Active: false})
		g.hintActive = false
	}
}
