package repository

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// StatsRepository persists the single stats record.
type StatsRepository interface {
	// Init creates the backing storage and a zeroed record if none exists, reporting whether it did.
	// It is safe to call repeatedly.
	Init(ctx context.Context) (bool, error)
	// Load returns apperror.ErrStatsNotFound when no record exists and apperror.ErrCorruptStats
	// when a stored counter is negative.
	Load(ctx context.Context) (*entity.Stats, error)
	// Save replaces the whole record.
	Save(ctx context.Context, stats *entity.Stats) error
}
