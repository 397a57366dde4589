package othello

import "errors"

var (
	ErrOutOfBounds  = errors.New("out of bounds")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game not running")
	ErrMustPlay     = errors.New("cannot pass with a legal move available")
	ErrInvalidDepth = errors.New("search depth must be positive")
)
