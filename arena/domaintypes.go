package main

import "github.com/AmineOuatt/othello-game/othello"

const (
	gameResultDraw = iota
	gameResultBlackWins
	gameResultWhiteWins
)

type gameInfo struct {
	opening        []othello.Move
	engineAIsBlack bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	moves    []othello.Move
	passes   int
	black    int
	white    int
	comment  string
	result   int
}
