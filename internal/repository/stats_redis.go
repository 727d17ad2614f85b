package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type redisStats struct {
	client *redis.Client
	key    string
}

func NewRedisStatsRepository(client *redis.Client, key string) StatsRepository {
	return &redisStats{
		client: client,
		key:    key,
	}
}

func (that *redisStats) Init(ctx context.Context) (bool, error) {
	statsJSON, err := json.Marshal(entity.NewStats())
	if err != nil {
		return false, fmt.Errorf("could not marshal stats: %w", err)
	}

	created, err := that.client.SetNX(ctx, that.key, statsJSON, 0).Result()
	if err != nil {
		return false, fmt.Errorf("failed to init stats: %w", err)
	}

	return created, nil
}

func (that *redisStats) Load(ctx context.Context) (*entity.Stats, error) {
	response, err := that.client.Get(ctx, that.key).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrStatsNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	var stats entity.Stats
	if err = json.Unmarshal([]byte(response), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}

	if err = stats.Validate(); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (that *redisStats) Save(ctx context.Context, stats *entity.Stats) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("could not marshal stats: %w", err)
	}

	if err = that.client.Set(ctx, that.key, statsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set stats: %w", err)
	}

	return nil
}
