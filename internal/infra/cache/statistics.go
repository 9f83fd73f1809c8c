package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"parking-occupancy/internal/pkg/errs"
	"parking-occupancy/internal/usecase/commands"
	"parking-occupancy/internal/usecase/queries"
	"parking-occupancy/internal/usecase/readmodel"

	"github.com/redis/go-redis/v9"
)

const (
	statisticsKey = "occupancy:stats"
	generationKey = "occupancy:stats:gen"
)

var errStaleSnapshot = errs.New("statistics changed while computing")

// Store is both the read-through snapshot store and an event sink that invalidates it.
type Store interface {
	queries.StatisticsCache
	commands.EventPublisher
}

// StatisticsCache keeps the last computed snapshot in Redis. Every occupancy
// event bumps a generation counter and drops the snapshot; a snapshot computed
// under an older generation is never written back.
type StatisticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatisticsCache(client *redis.Client, ttl time.Duration) *StatisticsCache {
	return &StatisticsCache{client: client, ttl: ttl}
}

func (c *StatisticsCache) Get(ctx context.Context) (*readmodel.StatisticsRM, int64, error) {
	vals, err := c.client.MGet(ctx, statisticsKey, generationKey).Result()
	if err != nil {
		return nil, 0, errs.Wrap(err, "failed to read statistics cache")
	}

	generation, err := parseGeneration(vals[1])
	if err != nil {
		return nil, 0, err
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, generation, nil
	}

	var stats readmodel.StatisticsRM
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, generation, errs.Wrap(err, "failed to decode cached statistics")
	}
	return &stats, generation, nil
}

// Set stores stats only while the generation is still the one Get returned.
// A lost race is not an error; the next read recomputes.
func (c *StatisticsCache) Set(ctx context.Context, generation int64, stats *readmodel.StatisticsRM) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return errs.Wrap(err, "failed to encode statistics")
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errs.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleSnapshot
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, statisticsKey, raw, c.ttl)
			return nil
		})
		return err
	}, generationKey)

	switch {
	case err == nil, errs.Is(err, errStaleSnapshot), errs.Is(err, redis.TxFailedErr):
		return nil
	default:
		return errs.Wrap(err, "failed to write statistics cache")
	}
}

// Publish invalidates the snapshot on any committed change.
func (c *StatisticsCache) Publish(ctx context.Context, _ commands.OccupancyEvent) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, statisticsKey)
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "failed to invalidate statistics cache")
	}
	return nil
}

func parseGeneration(v any) (int64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.Wrap(err, "invalid statistics generation")
	}
	return n, nil
}

// NoopStatisticsCache is used when REDIS_ADDR is empty.
type NoopStatisticsCache struct{}

func (NoopStatisticsCache) Get(context.Context) (*readmodel.StatisticsRM, int64, error) {
	return nil, 0, nil
}

func (NoopStatisticsCache) Set(context.Context, int64, *readmodel.StatisticsRM) error { return nil }

func (NoopStatisticsCache) Publish(context.Context, commands.OccupancyEvent) error { return nil }
