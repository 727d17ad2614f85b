package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameNotFinished  = errors.New("game is not finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrCellOutOfRange   = errors.New("cell is out of range")
	ErrMalformedMove    = errors.New("move must be two integers separated by a space")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidWinLength = errors.New("invalid win length")
	ErrStatsNotFound    = errors.New("stats record not found")
	ErrCorruptStats     = errors.New("stats record is corrupt")
)
