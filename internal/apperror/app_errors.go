package apperror

import "errors"

var (
	ErrOutOfRange      = errors.New("coordinate is out of range")
	ErrAlreadyOccupied = errors.New("cell is already occupied")
	ErrMalformedInput  = errors.New("malformed input")
	ErrGameFinished    = errors.New("game is already finished")
	ErrUnknownGame     = errors.New("unknown game")
	ErrUnknownStorage  = errors.New("unknown storage driver")
	ErrAddrNotFound    = errors.New("redis address string is empty")
)
