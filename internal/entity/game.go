package entity

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the state of one session. Winner is PlayerX or PlayerO on a win, PlayerTie on a draw.
type Game struct {
	ID     string
	Config GameConfig
	Board  *Board
	Winner string
	Status string
	Turn   string
	Moves  int
}

func NewGame(id string, conf GameConfig, firstMark string) *Game {
	return &Game{
		ID:     id,
		Config: conf,
		Board:  NewBoard(conf.BoardSize),
		Turn:   firstMark,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == PlayerTie
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func RandomMark() string {
	if rand.IntN(2) == 0 { //nolint: gosec // it's ok
		return PlayerX
	}
	return PlayerO
}
