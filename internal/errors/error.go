package errors

import "errors"

var (
	ErrOutOfBounds      = errors.New("move outside board")
	ErrOccupied         = errors.New("intersection already occupied")
	ErrSuicide          = errors.New("suicide move not allowed")
	ErrKoViolation      = errors.New("ko rule: board position repeating")
	ErrSessionOver      = errors.New("game is already over")
	ErrNotCurrentPlayer = errors.New("not your turn")
	ErrInvalidColor     = errors.New("color must be black or white")
	ErrGameNotFound     = errors.New("game not found")
	ErrInternal         = errors.New("internal error")
)
