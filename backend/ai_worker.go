package main

import (
	"sync"
	"sync/atomic"

	"github.com/AmineOuatt/othello-game/othello"
)

// AIWorker runs othello.AIPlayer searches off the ticker goroutine. The search
// itself cannot be interrupted, so StopThinking only bumps the generation:
// an abandoned search runs to completion and its result is dropped. A worker
// never has more than one search goroutine alive.
type AIWorker struct {
	engine     *othello.AIPlayer
	moveMutex  sync.Mutex
	generation atomic.Uint64
	thinking   atomic.Bool
	moveReady  atomic.Bool
	readyMove  othello.SearchResult
	readyHash  uint64
	workerDone chan struct{}
	running    atomic.Int32
}

func NewAIWorker(player othello.PlayerColor, depth int) (*AIWorker, error) {
	engine, err := othello.NewAIPlayer(player, depth)
	if err != nil {
		return nil, err
	}
	return &AIWorker{engine: engine}, nil
}

func (a *AIWorker) IsHuman() bool {
	return false
}

func (a *AIWorker) Label() string {
	return a.engine.Name()
}

func (a *AIWorker) Player() othello.PlayerColor {
	return a.engine.Player()
}

func (a *AIWorker) Depth() int {
	return a.engine.Depth()
}

// StartThinking searches state in the background. The result is tagged with
// state.Hash so callers can tell whether it still matches the live game.
// While an abandoned search is still running nothing is started and nil is
// returned; the caller retries on a later tick. Otherwise the returned channel
// is closed when the new search goroutine exits.
func (a *AIWorker) StartThinking(state othello.GameState) <-chan struct{} {
	if a.thinking.Load() || !a.Idle() {
		return nil
	}
	gen := a.generation.Add(1)
	a.thinking.Store(true)
	a.moveReady.Store(false)
	board := state.Board
	hash := state.Hash
	// Each search gets its own engine copy so an abandoned search never
	// shares the log flag with the next one.
	engine := *a.engine
	engine.SetLogStats(GetConfig().AiLogSearchStats)
	done := make(chan struct{})
	a.workerDone = done
	a.running.Add(1)

	go func() {
		defer close(done)
		defer a.running.Add(-1)
		result := engine.Search(board)
		a.moveMutex.Lock()
		defer a.moveMutex.Unlock()
		if a.generation.Load() != gen {
			return
		}
		a.readyMove = result
		a.readyHash = hash
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
	return done
}

// Idle reports whether no search goroutine of this worker is alive, including
// one that was stopped and is still finishing.
func (a *AIWorker) Idle() bool {
	if a.workerDone == nil {
		return true
	}
	select {
	case <-a.workerDone:
		return true
	default:
		return false
	}
}

func (a *AIWorker) StopThinking() {
	a.moveMutex.Lock()
	a.generation.Add(1)
	a.thinking.Store(false)
	a.moveReady.Store(false)
	a.moveMutex.Unlock()
}

func (a *AIWorker) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIWorker) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIWorker) TakeResult() (othello.SearchResult, uint64) {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove, a.readyHash
}
