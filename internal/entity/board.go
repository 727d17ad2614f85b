package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	MinBoardSize = 3
	MaxBoardSize = 99
	MinWinLength = 3
)

// GameConfig is fixed for the lifetime of a session.
type GameConfig struct {
	BoardSize int
	WinLength int
}

func NewGameConfig(boardSize, winLength int) (GameConfig, error) {
	conf := GameConfig{BoardSize: boardSize, WinLength: winLength}
	if err := conf.Validate(); err != nil {
		return GameConfig{}, err
	}

	return conf, nil
}

// ValidateBoardSize bounds N so the board stays printable and its N*N cells stay small.
func ValidateBoardSize(size int) error {
	if size < MinBoardSize || size > MaxBoardSize {
		return fmt.Errorf("%w: must be between %d and %d, got %d",
			apperror.ErrInvalidBoardSize, MinBoardSize, MaxBoardSize, size)
	}

	return nil
}

func (that GameConfig) Validate() error {
	if err := ValidateBoardSize(that.BoardSize); err != nil {
		return err
	}

	if that.WinLength < MinWinLength || that.WinLength > that.BoardSize {
		return fmt.Errorf("%w: must be between %d and %d, got %d",
			apperror.ErrInvalidWinLength, MinWinLength, that.BoardSize, that.WinLength)
	}

	return nil
}

// Board is an N*N grid stored row by row, cell (row, col) lives at row*N + col.
type Board struct {
	Size  int
	Cells []string
}

func NewBoard(size int) *Board {
	cells := make([]string, size*size)
	for i := range cells {
		cells[i] = EmptyCell
	}

	return &Board{Size: size, Cells: cells}
}

// Index converts zero-based coordinates to a cell index.
func (that *Board) Index(row, col int) int {
	return row*that.Size + col
}

func (that *Board) Contains(row, col int) bool {
	return row >= 0 && row < that.Size && col >= 0 && col < that.Size
}

func (that *Board) At(row, col int) string {
	return that.Cells[that.Index(row, col)]
}

func (that *Board) IsEmpty(index int) bool {
	return that.Cells[index] == EmptyCell
}

// Place sets the mark on a cell. The index must already be validated as in range and empty.
func (that *Board) Place(index int, mark string) {
	that.Cells[index] = mark
}
