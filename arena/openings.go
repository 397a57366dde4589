package main

import (
	"context"
	"math/rand"

	"github.com/AmineOuatt/othello-game/othello"
)

// generateOpenings emits games in pairs: both engines play each random
// opening once as Black and once as White.
func generateOpenings(
	ctx context.Context,
	games int,
	plies int,
	seed int64,
	gameInfos chan<- gameInfo,
) error {
	var rng = rand.New(rand.NewSource(seed))
	for i := 0; 2*i < games; i++ {
		var opening = randomOpening(rng, plies)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsBlack: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsBlack: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}

// randomOpening plays up to plies uniformly random legal moves from the start
// position. It stops early rather than produce a position with a pass in it.
func randomOpening(rng *rand.Rand, plies int) []othello.Move {
	var state = othello.NewGameState()
	var moves []othello.Move
	for len(moves) < plies {
		var legal = state.LegalMoves()
		if len(legal) == 0 {
			break
		}
		var move = legal[rng.Intn(len(legal))]
		if _, err := state.Play(move); err != nil {
			break
		}
		moves = append(moves, move)
	}
	return moves
}
