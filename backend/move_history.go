package main

import "github.com/AmineOuatt/othello-game/othello"

// HistoryEntry records one turn. Pass entries carry no move or flips.
type HistoryEntry struct {
	Move      othello.Move
	Player    othello.PlayerColor
	Pass      bool
	Flipped   []othello.Move
	ElapsedMs float64
	IsAi      bool
	Depth     int
	Score     int
}

type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) Clear() {
	h.entries = nil
}

func (h *MoveHistory) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h MoveHistory) Size() int {
	return len(h.entries)
}

func (h MoveHistory) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}

func (h MoveHistory) Last() (HistoryEntry, bool) {
	if len(h.entries) == 0 {
		return HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1], true
}
