package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoActiveGame     = errors.New("no active game")
	ErrColumnFull       = errors.New("column is full")
	ErrColumnOutOfRange = errors.New("column is out of range")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrCorruptGameState = errors.New("corrupt game state")
)
