package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type StatsService interface {
	Initialize(ctx context.Context) error
	Load(ctx context.Context) *entity.Stats
	Save(ctx context.Context, stats *entity.Stats) error
	Update(ctx context.Context, outcome string) (*entity.Stats, error)
	Display(ctx context.Context, w io.Writer) error
}

type statsRepo interface {
	Init(ctx context.Context) (bool, error)
	Load(ctx context.Context) (*entity.Stats, error)
	Save(ctx context.Context, stats *entity.Stats) error
}

type statsService struct {
	log       *slog.Logger
	statsRepo statsRepo
}

func NewStatsService(logger *slog.Logger, statsRepo statsRepo) StatsService {
	return &statsService{
		log:       logger.With("component", "stats"),
		statsRepo: statsRepo,
	}
}

func (that *statsService) Initialize(ctx context.Context) error {
	created, err := that.statsRepo.Init(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	if created {
		that.log.Info("stats record created with zeroed counters")
	}

	return nil
}

// Load never fails: a missing or unreadable record is replaced by a zeroed one.
func (that *statsService) Load(ctx context.Context) *entity.Stats {
	stats, err := that.statsRepo.Load(ctx)
	switch {
	case errors.Is(err, apperror.ErrStatsNotFound):
		that.log.Warn("stats record not found, using zeroed stats")
		return entity.NewStats()
	case err != nil:
		that.log.Warn("could not load stats, using zeroed stats", "error", err)
		return entity.NewStats()
	}

	return stats
}

func (that *statsService) Save(ctx context.Context, stats *entity.Stats) error {
	if err := that.statsRepo.Save(ctx, stats); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}

// Update loads the record, counts the outcome and saves it back. An unknown or empty outcome changes nothing.
func (that *statsService) Update(ctx context.Context, outcome string) (*entity.Stats, error) {
	stats := that.Load(ctx)

	if !stats.Record(outcome) {
		that.log.Debug("no outcome to record", "outcome", outcome)
		return stats, nil
	}

	if err := that.Save(ctx, stats); err != nil {
		return stats, err
	}

	that.log.Info("stats updated", "outcome", outcome, "total", stats.Total())

	return stats, nil
}

func (that *statsService) Display(ctx context.Context, w io.Writer) error {
	stats := that.Load(ctx)

	_, err := fmt.Fprintf(w,
		"\n--- GAME STATS ---\nX wins: %d\nO wins: %d\nDraws: %d\n------------------\n\n",
		stats.XWins, stats.OWins, stats.Draws)
	if err != nil {
		return fmt.Errorf("failed to display stats: %w", err)
	}

	return nil
}
