package othello

import "fmt"

type PlayerColor int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

func Opponent(player PlayerColor) PlayerColor {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

func (p PlayerColor) String() string {
	switch p {
	case PlayerBlack:
		return "Black"
	case PlayerWhite:
		return "White"
	default:
		return fmt.Sprintf("PlayerColor(%d)", int(p))
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}

func PlayerFromCell(cell Cell) (PlayerColor, error) {
	switch cell {
	case CellBlack:
		return PlayerBlack, nil
	case CellWhite:
		return PlayerWhite, nil
	default:
		return PlayerBlack, fmt.Errorf("empty cell has no player")
	}
}

func ParsePlayer(name string) (PlayerColor, error) {
	switch name {
	case "black", "Black", "B", "b":
		return PlayerBlack, nil
	case "white", "White", "W", "w":
		return PlayerWhite, nil
	default:
		return PlayerBlack, fmt.Errorf("unknown player %q", name)
	}
}
