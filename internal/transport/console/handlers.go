package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	msgBoardSizePrompt = "Enter the board size (e.g. 3 for 3x3, 9 for 9x9): "
	msgWinLengthPrompt = "How many marks in a row are needed to win? (3 is typical for 3x3, 5 for 9x9): "
	msgNotAnInteger    = "Invalid input. Please enter a whole number."
	msgBoardSizeRange  = "The board size must be between %d and %d.\n"
	msgWinLengthRange  = "The win length must be between %d and %d.\n"
	msgNewGame         = "\n--- New game on a %dx%d board, %d in a row wins ---\n"
	msgFirstPlayer     = "Player '%s' moves first (chosen at random).\n"
	msgMovePrompt      = "Player '%s', enter your move (row col): "
	msgMalformedMove   = "Invalid input. Enter two numbers separated by a space (e.g. '2 3')."
	msgOutOfRange      = "Coordinates out of range. Enter numbers from 1 to %d.\n"
	msgCellOccupied    = "That cell is already taken. Choose another one."
	msgWinner          = "Player '%s' wins!\n"
	msgDraw            = "It's a draw!"
	msgStatsNotSaved   = "Warning: the result could not be saved to the stats file."
	msgReplayPrompt    = "Play again? (yes/no): "
	msgGoodbye         = "Thanks for playing! Goodbye."
)

// readGameConfig - asks for N until it is valid, then for K until it is valid.
func (that *Server) readGameConfig(ctx context.Context) (entity.GameConfig, error) {
	var boardSize int
	for {
		size, err := that.readInt(ctx, msgBoardSizePrompt)
		if err != nil {
			return entity.GameConfig{}, err
		}

		if err = entity.ValidateBoardSize(size); err != nil {
			that.logger.Debug("board size rejected", "error", err)
			that.printf(msgBoardSizeRange, entity.MinBoardSize, entity.MaxBoardSize)
			continue
		}

		boardSize = size
		break
	}

	for {
		winLength, err := that.readInt(ctx, msgWinLengthPrompt)
		if err != nil {
			return entity.GameConfig{}, err
		}

		conf, err := entity.NewGameConfig(boardSize, winLength)
		if err != nil {
			that.logger.Debug("win length rejected", "error", err)
			that.printf(msgWinLengthRange, entity.MinWinLength, boardSize)
			continue
		}

		return conf, nil
	}
}

func (that *Server) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := that.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}

		value, err := ParseInt(line)
		if err != nil {
			that.println(msgNotAnInteger)
			continue
		}

		return value, nil
	}
}

// playSession - runs one game from an empty board to a win or a draw.
func (that *Server) playSession(ctx context.Context, conf entity.GameConfig) error {
	game, err := that.gameUseCase.StartGame(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	that.printf(msgNewGame, conf.BoardSize, conf.BoardSize, conf.WinLength)
	that.printf(msgFirstPlayer, game.Turn)

	for game.IsOngoing() {
		RenderBoard(that.out, game.Board)

		if err = that.handleMove(ctx, game); err != nil {
			return err
		}
	}

	RenderBoard(that.out, game.Board)

	if game.IsDraw() {
		that.println(msgDraw)
	} else {
		that.printf(msgWinner, game.Winner)
	}

	if _, err = that.gameUseCase.RecordOutcome(ctx, game); err != nil {
		that.logger.Error("stats were not saved", "game_id", game.ID, "error", err)
		that.println(msgStatsNotSaved)
	}

	return nil
}

// handleMove - prompts the current player until a move is accepted.
func (that *Server) handleMove(ctx context.Context, game *entity.Game) error {
	for {
		line, err := that.readLine(ctx, fmt.Sprintf(msgMovePrompt, game.Turn))
		if err != nil {
			return err
		}

		row, col, err := ParseMove(line)
		if err != nil {
			that.println(msgMalformedMove)
			continue
		}

		_, err = that.gameUseCase.MakeTurn(ctx, game, row, col)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperror.ErrCellOutOfRange):
			that.printf(msgOutOfRange, game.Board.Size)
		case errors.Is(err, apperror.ErrCellOccupied):
			that.println(msgCellOccupied)
		default:
			return fmt.Errorf("could not make turn: %w", err)
		}
	}
}

func (that *Server) askReplay(ctx context.Context) (bool, error) {
	answer, err := that.readLine(ctx, msgReplayPrompt)
	if err != nil {
		return false, err
	}

	return IsAffirmative(answer), nil
}
