package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	jsonIndent = "    "
)

type fileStats struct {
	path string
}

func NewFileStatsRepository(path string) StatsRepository {
	return &fileStats{
		path: path,
	}
}

func (that *fileStats) Init(_ context.Context) (bool, error) {
	_, err := os.Stat(that.path)
	if err == nil {
		return false, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat stats file: %w", err)
	}

	if err = that.write(entity.NewStats()); err != nil {
		return false, err
	}

	return true, nil
}

func (that *fileStats) Load(_ context.Context) (*entity.Stats, error) {
	data, err := os.ReadFile(that.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperror.ErrStatsNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	var stats entity.Stats
	if err = json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	if err = stats.Validate(); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (that *fileStats) Save(_ context.Context, stats *entity.Stats) error {
	return that.write(stats)
}

// write replaces the file through a rename so a failed write never truncates the previous record.
func (that *fileStats) write(stats *entity.Stats) error {
	statsJSON, err := json.MarshalIndent(stats, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(that.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create stats directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(that.path), filepath.Base(that.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp stats file: %w", err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint: errcheck // no-op after a successful rename

	if _, err = tmp.Write(append(statsJSON, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write stats: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp stats file: %w", err)
	}

	if err = os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to chmod stats file: %w", err)
	}

	if err = os.Rename(tmpName, that.path); err != nil {
		return fmt.Errorf("failed to replace stats file: %w", err)
	}

	return nil
}
