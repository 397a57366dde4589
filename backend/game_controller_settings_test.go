package main

import (
	"testing"
	"time"

	"github.com/AmineOuatt/othello-game/othello"
)

func TestUpdateSettingsSwitchToAIVsAIKeepsBoardAndContinuesGame(t *testing.T) {
	withConfig(t, func(cfg *Config) { cfg.AiDepth = 1 })

	settings := humanVsHuman()
	controller := NewGameController(settings)
	controller.StartGame(settings)

	if applied, reason := controller.ApplyHumanMove(othello.Move{Row: 2, Col: 3}); !applied {
		t.Fatalf("expected first human move to apply: %s", reason)
	}
	if applied, reason := controller.ApplyHumanMove(othello.Move{Row: 2, Col: 2}); !applied {
		t.Fatalf("expected second human move to apply: %s", reason)
	}

	before := controller.State()
	beforeHistorySize := controller.History().Size()
	if beforeHistorySize != 2 {
		t.Fatalf("expected 2 moves before settings switch, got %d", beforeHistorySize)
	}

	updated := controller.Settings()
	updated.BlackType = PlayerAI
	updated.WhiteType = PlayerAI
	updated.BlackDepth = 1
	updated.WhiteDepth = 1
	controller.UpdateSettings(updated, false)

	after := controller.State()
	if after.Board != before.Board {
		t.Fatalf("expected discs to be preserved when switching player types")
	}
	if controller.History().Size() != beforeHistorySize {
		t.Fatalf("expected history to be preserved when switching player types")
	}
	if got := controller.Settings(); got.BlackType != PlayerAI || got.WhiteType != PlayerAI {
		t.Fatalf("expected settings to switch to ai_vs_ai, got black=%s white=%s", got.BlackType, got.WhiteType)
	}
	if applied, _ := controller.ApplyHumanMove(othello.Move{Row: 4, Col: 5}); applied {
		t.Fatalf("human moves must be refused once both sides are AI")
	}

	moved := false
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if controller.Tick() {
			moved = true
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !moved {
		t.Fatalf("expected AI to make a move after switching to ai_vs_ai")
	}
	if controller.History().Size() <= beforeHistorySize {
		t.Fatalf("expected history to grow after AI move")
	}
}

func TestResetKeepsSettingsAndClearsBoard(t *testing.T) {
	settings := humanVsHuman()
	controller := NewGameController(settings)
	controller.StartGame(settings)
	if applied, reason := controller.ApplyHumanMove(othello.Move{Row: 2, Col: 3}); !applied {
		t.Fatalf("expected move to apply: %s", reason)
	}
	controller.Reset(controller.Settings())
	state := controller.State()
	if state.Status != othello.StatusNotStarted || state.Board != othello.NewBoard() {
		t.Fatalf("expected a fresh not-started game, got %s", state.Status)
	}
	if controller.History().Size() != 0 {
		t.Fatalf("reset must clear history")
	}
	if applied, _ := controller.ApplyHumanMove(othello.Move{Row: 2, Col: 3}); applied {
		t.Fatalf("moves must be refused until the game starts")
	}
}

func TestCellClickRefusedWithReason(t *testing.T) {
	settings := humanVsHuman()
	controller := NewGameController(settings)

	if queued, reason := controller.OnCellClicked(2, 3); queued || reason != othello.ErrGameOver.Error() {
		t.Fatalf("expected click before start to be refused, got %v %q", queued, reason)
	}
	controller.StartGame(settings)
	cases := []struct {
		row, col int
		reason   string
	}{
		{8, 0, othello.ErrOutOfBounds.Error()},
		{3, 3, othello.ErrIllegalMove.Error()},
		{0, 0, othello.ErrIllegalMove.Error()},
	}
	for _, tc := range cases {
		if queued, reason := controller.OnCellClicked(tc.row, tc.col); queued || reason != tc.reason {
			t.Fatalf("click (%d,%d): got %v %q, want refusal %q", tc.row, tc.col, queued, reason, tc.reason)
		}
	}
	if queued, reason := controller.OnCellClicked(2, 3); !queued {
		t.Fatalf("expected legal click to queue: %s", reason)
	}
	if controller.History().Size() != 0 {
		t.Fatalf("a queued click only applies on the next tick")
	}
}

func TestSnapshotDescribesOnePosition(t *testing.T) {
	settings := humanVsHuman()
	controller := NewGameController(settings)
	controller.StartGame(settings)
	if applied, reason := controller.ApplyHumanMove(othello.Move{Row: 2, Col: 3}); !applied {
		t.Fatalf("expected move to apply: %s", reason)
	}
	snapshot := controller.Snapshot()
	last, ok := snapshot.History.Last()
	if !ok || snapshot.History.Size() != snapshot.State.Plies {
		t.Fatalf("history %d does not match plies %d", snapshot.History.Size(), snapshot.State.Plies)
	}
	if !snapshot.State.HasLastMove || last.Move != snapshot.State.LastMove {
		t.Fatalf("last history move %v does not match state %v", last.Move, snapshot.State.LastMove)
	}
	if snapshot.AiThinking || snapshot.TurnStartedAtMs == 0 {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}
