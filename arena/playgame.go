package main

import (
	"context"
	"fmt"
	"log"

	"github.com/AmineOuatt/othello-game/othello"
)

// maxTurns bounds the game loop: 60 placements plus at most one pass between
// each of them.
const maxTurns = 2 * (othello.BoardSize*othello.BoardSize - 4)

func playGame(
	ctx context.Context,
	black, white *othello.AIPlayer,
	info gameInfo,
) (gameResult, error) {

	log.Printf("Started game %v\n", info.gameNumber)

	var state = othello.NewGameState()
	var moves []othello.Move
	for _, move := range info.opening {
		if _, err := state.Play(move); err != nil {
			return gameResult{}, fmt.Errorf("game %v opening %v: %w", info.gameNumber, move, err)
		}
		moves = append(moves, move)
	}

	var passes int
	for turn := 0; !state.IsOver(); turn++ {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		if turn > maxTurns {
			return gameResult{}, fmt.Errorf("game %v did not finish after %v turns", info.gameNumber, turn)
		}
		var eng = black
		if state.ToMove == othello.PlayerWhite {
			eng = white
		}
		var move, ok = eng.ChooseMove(state.Board)
		if !ok {
			if err := state.Pass(); err != nil {
				return gameResult{}, fmt.Errorf("game %v: %v passed illegally: %w", info.gameNumber, state.ToMove, err)
			}
			passes++
			continue
		}
		if _, err := state.Play(move); err != nil {
			return gameResult{}, fmt.Errorf("game %v: bad move %v: %w", info.gameNumber, move, err)
		}
		moves = append(moves, move)
	}

	var b, w = state.Board.Score()
	var res = gameResult{
		gameInfo: info,
		moves:    moves,
		passes:   passes,
		black:    b,
		white:    w,
		comment:  fmt.Sprintf("%v-%v", b, w),
	}
	switch state.Status {
	case othello.StatusBlackWon:
		res.result = gameResultBlackWins
	case othello.StatusWhiteWon:
		res.result = gameResultWhiteWins
	default:
		res.result = gameResultDraw
	}
	return res, nil
}
