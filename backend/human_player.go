package main

import "github.com/AmineOuatt/othello-game/othello"

// HumanPlayer holds a clicked cell until the next tick applies it.
type HumanPlayer struct {
	pending     bool
	pendingMove othello.Move
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) Label() string {
	return "Human"
}

func (h *HumanPlayer) SetPendingMove(move othello.Move) {
	h.pendingMove = move
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}

func (h *HumanPlayer) TakePendingMove() othello.Move {
	h.pending = false
	return h.pendingMove
}
