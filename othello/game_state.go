package othello

import "fmt"

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

type GameState struct {
	Board       Board
	ToMove      PlayerColor
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	// Passes counts consecutive passes; any move resets it.
	Passes int
	Plies  int
	Hash   uint64
}

func NewGameState() GameState {
	state := GameState{}
	state.Reset()
	state.Status = StatusRunning
	return state
}

// Reset restores the opening position with Black to move. The status is left
// NotStarted so drivers can decide when play begins.
func (s *GameState) Reset() {
	s.Board = NewBoard()
	s.ToMove = PlayerBlack
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = Move{Row: -1, Col: -1}
	s.Passes = 0
	s.Plies = 0
	s.recomputeHash()
}

func (s GameState) Clone() GameState {
	return s
}

func (s *GameState) Play(move Move) ([]Move, error) {
	if s.Status != StatusRunning {
		return nil, ErrGameOver
	}
	player := s.ToMove
	flipped, err := s.Board.ApplyMove(move.Row, move.Col, player)
	if err != nil {
		return nil, err
	}
	s.Hash = updateHashAfterMove(s.Hash, move, player, flipped)
	s.ToMove = Opponent(player)
	s.LastMove = move
	s.HasLastMove = true
	s.Passes = 0
	s.Plies++
	s.settle()
	return flipped, nil
}

// Pass hands the turn to the opponent. It is refused while the side to move
// still has a legal placement.
func (s *GameState) Pass() error {
	if s.Status != StatusRunning {
		return ErrGameOver
	}
	if s.Board.HasLegalMove(s.ToMove) {
		return fmt.Errorf("%s: %w", s.ToMove, ErrMustPlay)
	}
	s.ToMove = Opponent(s.ToMove)
	s.Hash ^= zobrist.side
	s.Passes++
	s.settle()
	return nil
}

func (s GameState) MustPass() bool {
	return s.Status == StatusRunning && !s.Board.HasLegalMove(s.ToMove)
}

func (s GameState) LegalMoves() []Move {
	if s.Status != StatusRunning {
		return nil
	}
	return s.Board.LegalMoves(s.ToMove)
}

func (s GameState) IsOver() bool {
	switch s.Status {
	case StatusBlackWon, StatusWhiteWon, StatusDraw:
		return true
	default:
		return false
	}
}

// Winner is only meaningful once the game is over; a draw or a game still in
// progress reports false.
func (s GameState) Winner() (PlayerColor, bool) {
	switch s.Status {
	case StatusBlackWon:
		return PlayerBlack, true
	case StatusWhiteWon:
		return PlayerWhite, true
	default:
		return PlayerBlack, false
	}
}

func (s *GameState) settle() {
	if !s.Board.IsTerminal() {
		return
	}
	winner, ok := s.Board.Winner()
	switch {
	case !ok:
		s.Status = StatusDraw
	case winner == PlayerBlack:
		s.Status = StatusBlackWon
	default:
		s.Status = StatusWhiteWon
	}
}

func (s *GameState) recomputeHash() {
	s.Hash = ComputeHash(s.Board, s.ToMove)
}

func (s GameStatus) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "running"
	}
}

// NewGameStateFrom starts a running game from an arbitrary position.
func NewGameStateFrom(board Board, toMove PlayerColor) GameState {
	state := GameState{
		Board:    board,
		ToMove:   toMove,
		Status:   StatusRunning,
		LastMove: Move{Row: -1, Col: -1},
	}
	state.recomputeHash()
	state.settle()
	return state
}
