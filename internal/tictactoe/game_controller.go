package tictactoe

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type direction struct {
	dx, dy int
}

// horizontal, vertical, diagonal down-right, anti-diagonal down-left.
var directions = []direction{
	{dx: 1, dy: 0},
	{dx: 0, dy: 1},
	{dx: 1, dy: 1},
	{dx: -1, dy: 1},
}

// MakeTurn - validates and applies a zero-based move, then finishes the game on a win or a draw.
func MakeTurn(gameInstance *entity.Game, player string, row, col int) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if err := validateMove(gameInstance, player, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board.Place(gameInstance.Board.Index(row, col), player)
	gameInstance.Moves++
	updateGameStatus(gameInstance, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, player string, row, col int) error {
	if !gameInstance.Board.Contains(row, col) {
		return fmt.Errorf("%w: row and column must be between 1 and %d", apperror.ErrCellOutOfRange, gameInstance.Board.Size)
	}

	if gameInstance.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if !gameInstance.Board.IsEmpty(gameInstance.Board.Index(row, col)) {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - a win is checked before a draw, so a full board with a run is a win.
func updateGameStatus(gameInstance *entity.Game, player string) {
	switch {
	case CheckWin(gameInstance.Board, player, gameInstance.Config.WinLength):
		gameInstance.Winner = player
		gameInstance.Status = entity.StatusFinished
	case CheckDraw(gameInstance.Board):
		gameInstance.Winner = entity.PlayerTie
		gameInstance.Status = entity.StatusFinished
	default:
		gameInstance.Turn = entity.ToggleMark(player)
	}
}

// CheckWin reports whether mark owns winLength contiguous cells in any of the four directions.
func CheckWin(board *entity.Board, mark string, winLength int) bool {
	for row := range board.Size {
		for col := range board.Size {
			for _, dir := range directions {
				if checkLine(board, mark, winLength, row, col, dir) {
					return true
				}
			}
		}
	}

	return false
}

func checkLine(board *entity.Board, mark string, winLength, row, col int, dir direction) bool {
	endRow := row + (winLength-1)*dir.dy
	endCol := col + (winLength-1)*dir.dx
	if !board.Contains(endRow, endCol) {
		return false
	}

	for k := range winLength {
		if board.At(row+k*dir.dy, col+k*dir.dx) != mark {
			return false
		}
	}

	return true
}

// CheckDraw reports whether no empty cell remains. Callers check for a win first.
func CheckDraw(board *entity.Board) bool {
	return !lo.Contains(board.Cells, entity.EmptyCell)
}
