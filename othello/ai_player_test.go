package othello

import (
	"errors"
	"testing"
)

// referenceMinimax is the unpruned search the alpha-beta version must agree with.
func referenceMinimax(board Board, player PlayerColor, depth int, maximizing bool) int {
	if depth == 0 || board.IsTerminal() {
		return Evaluate(board, player)
	}
	mover := player
	if !maximizing {
		mover = Opponent(player)
	}
	moves := board.LegalMoves(mover)
	if len(moves) == 0 {
		return referenceMinimax(board, player, depth-1, !maximizing)
	}
	best := scoreInf
	if maximizing {
		best = -scoreInf
	}
	for _, move := range moves {
		child := board
		if _, err := child.ApplyMove(move.Row, move.Col, mover); err != nil {
			panic(err)
		}
		score := referenceMinimax(child, player, depth-1, !maximizing)
		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}
	return best
}

func referenceChoice(board Board, player PlayerColor, depth int) (Move, int, bool) {
	var bestMove Move
	bestScore := 0
	found := false
	for _, move := range board.LegalMoves(player) {
		child := board
		if _, err := child.ApplyMove(move.Row, move.Col, player); err != nil {
			panic(err)
		}
		score := referenceMinimax(child, player, depth-1, false)
		if !found || score > bestScore {
			bestMove, bestScore, found = move, score, true
		}
	}
	return bestMove, bestScore, found
}

func midgamePositions(t *testing.T) []GameState {
	t.Helper()
	var positions []GameState
	state := NewGameState()
	for i := 0; i < 24 && !state.IsOver(); i++ {
		if state.MustPass() {
			if err := state.Pass(); err != nil {
				t.Fatalf("pass: %v", err)
			}
			continue
		}
		moves := state.LegalMoves()
		if _, err := state.Play(moves[(i*7)%len(moves)]); err != nil {
			t.Fatalf("play: %v", err)
		}
		if i%6 == 0 {
			positions = append(positions, state)
		}
	}
	return positions
}

func TestNewAIPlayerRejectsNonPositiveDepth(t *testing.T) {
	for _, depth := range []int{0, -1} {
		if _, err := NewAIPlayer(PlayerBlack, depth); !errors.Is(err, ErrInvalidDepth) {
			t.Fatalf("depth %d: expected ErrInvalidDepth, got %v", depth, err)
		}
	}
	ai, err := NewAIPlayer(PlayerWhite, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ai.Player() != PlayerWhite || ai.Depth() != 3 {
		t.Fatalf("unexpected AI config %s", ai.Name())
	}
}

func TestChooseMoveReturnsOnlyLegalMove(t *testing.T) {
	board := MustParseBoard(
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	if moves := board.LegalMoves(PlayerBlack); len(moves) != 1 {
		t.Fatalf("fixture should give black exactly one move, got %v", moves)
	}
	ai, _ := NewAIPlayer(PlayerBlack, 1)
	move, ok := ai.ChooseMove(board)
	if !ok || move != (Move{0, 2}) {
		t.Fatalf("expected (0,2), got %v ok=%v", move, ok)
	}
}

func TestChooseMovePassesWithoutLegalMoves(t *testing.T) {
	board := MustParseBoard(
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	if !board.HasLegalMove(PlayerBlack) {
		t.Fatalf("fixture should leave black a move")
	}
	ai, _ := NewAIPlayer(PlayerWhite, 3)
	if _, ok := ai.ChooseMove(board); ok {
		t.Fatalf("white has no move and must pass")
	}
}

func TestChooseMoveDoesNotMutateBoard(t *testing.T) {
	board := NewBoard()
	before := board
	ai, _ := NewAIPlayer(PlayerBlack, 4)
	if _, ok := ai.ChooseMove(board); !ok {
		t.Fatalf("expected a move at the opening")
	}
	if board != before {
		t.Fatalf("search modified the caller's board")
	}
}

func TestOpeningMoveIsLegalAtEveryDepth(t *testing.T) {
	board := NewBoard()
	for depth := 1; depth <= 4; depth++ {
		ai, _ := NewAIPlayer(PlayerBlack, depth)
		move, ok := ai.ChooseMove(board)
		if !ok || !board.IsLegal(move.Row, move.Col, PlayerBlack) {
			t.Fatalf("depth %d: illegal choice %v", depth, move)
		}
	}
}

func TestAlphaBetaMatchesPlainMinimax(t *testing.T) {
	positions := append([]GameState{NewGameState()}, midgamePositions(t)...)
	for i, state := range positions {
		if state.IsOver() || state.MustPass() {
			continue
		}
		for depth := 1; depth <= 4; depth++ {
			ai, _ := NewAIPlayer(state.ToMove, depth)
			got := ai.Search(state.Board)
			wantMove, wantScore, ok := referenceChoice(state.Board, state.ToMove, depth)
			if got.OK != ok || got.Move != wantMove || got.Score != wantScore {
				t.Fatalf("position %d depth %d: alpha-beta %v/%d, minimax %v/%d",
					i, depth, got.Move, got.Score, wantMove, wantScore)
			}
			if got.Stats.Nodes == 0 {
				t.Fatalf("position %d depth %d: no nodes counted", i, depth)
			}
		}
	}
}

func TestSearchHandlesOpponentPass(t *testing.T) {
	// After black takes (0,2) white cannot reply, so the search has to pass
	// for white and keep going.
	board := MustParseBoard(
		"BW......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	ai, _ := NewAIPlayer(PlayerBlack, 3)
	got := ai.Search(board)
	_, wantScore, _ := referenceChoice(board, PlayerBlack, 3)
	if !got.OK || got.Score != wantScore {
		t.Fatalf("expected score %d, got %d ok=%v", wantScore, got.Score, got.OK)
	}
}

func TestSelfPlayReachesTerminal(t *testing.T) {
	black, _ := NewAIPlayer(PlayerBlack, 2)
	white, _ := NewAIPlayer(PlayerWhite, 1)
	players := map[PlayerColor]*AIPlayer{PlayerBlack: black, PlayerWhite: white}
	state := NewGameState()
	for turns := 0; !state.IsOver(); turns++ {
		if turns > 130 {
			t.Fatalf("game did not finish")
		}
		move, ok := players[state.ToMove].ChooseMove(state.Board)
		if !ok {
			if err := state.Pass(); err != nil {
				t.Fatalf("AI passed with moves available: %v", err)
			}
			continue
		}
		if _, err := state.Play(move); err != nil {
			t.Fatalf("AI chose illegal move %v: %v", move, err)
		}
		b, w := state.Board.Score()
		if b+w+state.Board.CountEmpty() != 64 {
			t.Fatalf("cell counts no longer sum to 64")
		}
	}
	if !state.Board.IsTerminal() {
		t.Fatalf("game over on a non-terminal board")
	}
	if state.Plies > 60 {
		t.Fatalf("more placements than empty squares: %d", state.Plies)
	}
}
