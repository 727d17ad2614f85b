package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage/sqlite"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the application on stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout)
}

func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	statsRepo, closeStorage, err := newStatsRepository(ctx, conf.Stats)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeStorage(); closeErr != nil {
			log.Error("could not close stats storage", "error", closeErr)
		}
	}()

	statsService := service.NewStatsService(logger, statsRepo)
	if err = statsService.Initialize(ctx); err != nil {
		// the game is still playable, results just will not persist
		log.Error("could not initialize stats", "backend", conf.Stats.Backend, "error", err)
	}

	gameUseCase := usecase.NewGameUseCase(logger, statsService, entity.RandomMark)

	log.Debug("starting console", "backend", conf.Stats.Backend)

	if err = console.New(logger, in, out, gameUseCase, statsService).Start(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	return nil
}

func newStatsRepository(ctx context.Context, conf config.Stats) (repository.StatsRepository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Backend {
	case config.StatsBackendFile:
		return repository.NewFileStatsRepository(conf.Path), noop, nil
	case config.StatsBackendSQLite:
		sqliteStorage, err := sqlite.New(conf.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open sqlite storage: %w", err)
		}

		return repository.NewSQLiteStatsRepository(sqliteStorage), sqliteStorage.Close, nil
	case config.StatsBackendRedis:
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewRedisStatsRepository(redisStorage.Connection, conf.Redis.Key), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStatsBackend, conf.Backend)
	}
}
