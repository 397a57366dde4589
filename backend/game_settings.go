package main

import (
	"fmt"

	"github.com/AmineOuatt/othello-game/othello"
)

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

func (t PlayerType) String() string {
	if t == PlayerAI {
		return "AI"
	}
	return "Human"
}

type GameSettings struct {
	BlackType  PlayerType `json:"-"`
	WhiteType  PlayerType `json:"-"`
	BlackDepth int        `json:"black_depth"`
	WhiteDepth int        `json:"white_depth"`
}

func DefaultGameSettings() GameSettings {
	depth := GetConfig().AiDepth
	return GameSettings{
		BlackType:  PlayerHuman,
		WhiteType:  PlayerAI,
		BlackDepth: depth,
		WhiteDepth: depth,
	}
}

func (s GameSettings) TypeFor(color othello.PlayerColor) PlayerType {
	if color == othello.PlayerBlack {
		return s.BlackType
	}
	return s.WhiteType
}

func (s GameSettings) DepthFor(color othello.PlayerColor) int {
	if color == othello.PlayerBlack {
		return s.BlackDepth
	}
	return s.WhiteDepth
}

func (s GameSettings) Validate() error {
	for _, color := range []othello.PlayerColor{othello.PlayerBlack, othello.PlayerWhite} {
		if s.TypeFor(color) == PlayerAI && s.DepthFor(color) <= 0 {
			return fmt.Errorf("%s depth %d: %w", color, s.DepthFor(color), othello.ErrInvalidDepth)
		}
	}
	return nil
}
