package main

import (
	"sync"

	"github.com/AmineOuatt/othello-game/othello"
)

// GameController serialises everything that touches the live Game: the
// ticker, HTTP handlers and websocket readers all go through it.
type GameController struct {
	mu             sync.Mutex
	game           Game
	ghostEnabled   func() bool
	ghostPublisher func(ghostPayload)
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) SetGhostPublisher(enabled func() bool, publisher func(ghostPayload)) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.ghostEnabled = enabled
	gc.ghostPublisher = publisher
}

// gameSnapshot is the whole status of one game read under a single lock, so
// the board, history and side to move always describe the same position.
type gameSnapshot struct {
	State           othello.GameState
	Settings        GameSettings
	History         MoveHistory
	AiThinking      bool
	TurnStartedAtMs int64
}

// OnCellClicked queues a human move for the next Tick. A click off the board,
// on an occupied square or on a square that flips nothing is refused at once
// with the reason, so the browser does not wait a tick to learn it.
func (gc *GameController) OnCellClicked(row, col int) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	move := othello.Move{Row: row, Col: col}
	if !move.IsValid() {
		return false, othello.ErrOutOfBounds.Error()
	}
	state := gc.game.state
	if state.Status != othello.StatusRunning {
		return false, othello.ErrGameOver.Error()
	}
	if !gc.game.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	if !state.Board.IsLegal(row, col, state.ToMove) {
		return false, othello.ErrIllegalMove.Error()
	}
	return gc.game.SubmitHumanMove(move), ""
}

func (gc *GameController) ApplyHumanMove(move othello.Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if gc.game.state.Status != othello.StatusRunning {
		return false, othello.ErrGameOver.Error()
	}
	if !gc.game.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	return gc.game.TryApplyMove(move)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	ghostEnabled := false
	if gc.ghostEnabled != nil {
		ghostEnabled = gc.ghostEnabled()
	}
	return gc.game.Tick(ghostEnabled, gc.ghostPublisher)
}

func (gc *GameController) State() othello.GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Snapshot() gameSnapshot {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gameSnapshot{
		State:           gc.game.State(),
		Settings:        gc.game.settings,
		History:         gc.game.History(),
		AiThinking:      gc.game.AiThinking(),
		TurnStartedAtMs: gc.game.TurnStartedAtMs(),
	}
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.settings
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History().Last()
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) StartGame(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.Start()
}

// UpdateSettings swaps player types or depths. Without reset the position
// and history are kept and play continues with the new players.
func (gc *GameController) UpdateSettings(update GameSettings, reset bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if reset {
		gc.game.Reset(update)
		return
	}
	gc.game.settings = update
	gc.game.createPlayers()
}

func (gc *GameController) ResetForConfigChange() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.ResetForConfigChange()
}
