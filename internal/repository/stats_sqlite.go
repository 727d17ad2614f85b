package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/repository/storage/sqlite"
)

type sqliteStats struct {
	storage *sqlite.Storage
}

func NewSQLiteStatsRepository(storage *sqlite.Storage) StatsRepository {
	return &sqliteStats{
		storage: storage,
	}
}

func (that *sqliteStats) Init(ctx context.Context) (bool, error) {
	if err := that.storage.Init(ctx); err != nil {
		return false, err
	}

	query := `INSERT OR IGNORE INTO stats (id, x_wins, o_wins, draws) VALUES (1, 0, 0, 0)`

	result, err := that.storage.Connection.ExecContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("can't init stats: %w", err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("can't init stats: %w", err)
	}

	return inserted > 0, nil
}

func (that *sqliteStats) Load(ctx context.Context) (*entity.Stats, error) {
	query := `SELECT x_wins, o_wins, draws FROM stats WHERE id = 1`

	var stats entity.Stats

	err := that.storage.Connection.QueryRowContext(ctx, query).Scan(&stats.XWins, &stats.OWins, &stats.Draws)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrStatsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't load stats: %w", err)
	}

	if err = stats.Validate(); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (that *sqliteStats) Save(ctx context.Context, stats *entity.Stats) error {
	query := `INSERT INTO stats (id, x_wins, o_wins, draws) VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET x_wins = excluded.x_wins, o_wins = excluded.o_wins, draws = excluded.draws`

	_, err := that.storage.Connection.ExecContext(ctx, query, stats.XWins, stats.OWins, stats.Draws)
	if err != nil {
		return fmt.Errorf("can't save stats: %w", err)
	}

	return nil
}
