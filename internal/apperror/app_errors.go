package apperror

import "errors"

var (
	ErrUnknownMark       = errors.New("unknown mark")
	ErrUnknownGameStatus = errors.New("unknown game status")
)
