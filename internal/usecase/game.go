package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type GameUseCase interface {
	StartGame(ctx context.Context, conf entity.GameConfig) (*entity.Game, error)
	// MakeTurn applies a 1-based move for the player whose turn it is.
	MakeTurn(ctx context.Context, game *entity.Game, row, col int) (*entity.Game, error)
	// RecordOutcome stores the result of a finished game.
	RecordOutcome(ctx context.Context, game *entity.Game) (*entity.Stats, error)
}

type statsService interface {
	Update(ctx context.Context, outcome string) (*entity.Stats, error)
}

// FirstMovePicker chooses the mark that opens a game.
type FirstMovePicker func() string

type gameUseCase struct {
	log          *slog.Logger
	statsService statsService
	pickFirst    FirstMovePicker
}

func NewGameUseCase(logger *slog.Logger, statsService statsService, pickFirst FirstMovePicker) GameUseCase {
	if pickFirst == nil {
		pickFirst = entity.RandomMark
	}

	return &gameUseCase{
		log:          logger.With("component", "game"),
		statsService: statsService,
		pickFirst:    pickFirst,
	}
}

func (that *gameUseCase) StartGame(ctx context.Context, conf entity.GameConfig) (*entity.Game, error) {
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("could not start game: %w", err)
	}

	game := entity.NewGame(uuid.NewString(), conf, that.pickFirst())

	that.log.InfoContext(ctx, "game started",
		"game_id", game.ID, "board_size", conf.BoardSize, "win_length", conf.WinLength, "first", game.Turn)

	return game, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, game *entity.Game, row, col int) (*entity.Game, error) {
	if err := tictactoe.MakeTurn(game, game.Turn, row-1, col-1); err != nil {
		that.log.DebugContext(ctx, "move rejected", "game_id", game.ID, "row", row, "col", col, "error", err)
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.log.InfoContext(ctx, "game finished", "game_id", game.ID, "winner", game.Winner, "moves", game.Moves)
	}

	return game, nil
}

func (that *gameUseCase) RecordOutcome(ctx context.Context, game *entity.Game) (*entity.Stats, error) {
	if !game.IsFinished() {
		return nil, fmt.Errorf("could not record outcome of game %s: %w", game.ID, apperror.ErrGameNotFinished)
	}

	stats, err := that.statsService.Update(ctx, game.Winner)
	if err != nil {
		that.log.ErrorContext(ctx, "could not record game outcome", "game_id", game.ID, "error", err)
		return stats, fmt.Errorf("failed to record outcome: %w", err)
	}

	return stats, nil
}
