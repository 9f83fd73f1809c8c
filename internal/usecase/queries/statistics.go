package queries

import (
	"context"
	"log/slog"
	"time"

	"parking-occupancy/internal/infra/db"
	"parking-occupancy/internal/pkg/clock"
	"parking-occupancy/internal/usecase/readmodel"
	"parking-occupancy/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// StatisticsCache stores the latest snapshot. Get returns nil on a miss, along
// with the generation to hand back to Set; Set skips the write if any change
// was published in between.
type StatisticsCache interface {
	Get(ctx context.Context) (*readmodel.StatisticsRM, int64, error)
	Set(ctx context.Context, generation int64, stats *readmodel.StatisticsRM) error
}

type StatisticsQueries interface {
	Get(ctx context.Context) (*readmodel.StatisticsRM, error)
}

type statisticsQueriesImpl struct {
	uow      shared.UnitOfWork
	spots    SpotReadStore
	sessions SessionReadStore
	cache    StatisticsCache
	clock    clock.Clock
	loc      *time.Location
}

func NewStatisticsQueries(
	uow shared.UnitOfWork,
	spots SpotReadStore,
	sessions SessionReadStore,
	cache StatisticsCache,
	clk clock.Clock,
	loc *time.Location,
) StatisticsQueries {
	return &statisticsQueriesImpl{
		uow:      uow,
		spots:    spots,
		sessions: sessions,
		cache:    cache,
		clock:    clk,
		loc:      loc,
	}
}

func (q *statisticsQueriesImpl) Get(ctx context.Context) (*readmodel.StatisticsRM, error) {
	now := q.clock.Now()
	dayStart, nextDay := clock.DayBounds(now, q.loc)
	day := dayStart.Format(dateOnly)

	cached, generation, err := q.cache.Get(ctx)
	if err != nil {
		slog.WarnContext(ctx, "statistics cache read failed", "error", err.Error())
	} else if cached != nil && cached.Day == day {
		return cached, nil
	}

	stats := &readmodel.StatisticsRM{Day: day}
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db db.DBTX) error {
		counts, err := q.spots.CountByStatus(ctx, db)
		if err != nil {
			return err
		}
		revenue, err := q.sessions.SumRevenue(ctx, db, dayStart, nextDay)
		if err != nil {
			return err
		}

		stats.Total = counts.Total
		stats.Free = counts.Free
		stats.Occupied = counts.Occupied
		stats.Maintenance = counts.Maintenance
		stats.OccupancyPercent = OccupancyPercent(counts.Occupied, counts.Total)
		stats.RevenueToday = revenue.Round(2)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, generation, stats); err != nil {
		slog.WarnContext(ctx, "statistics cache write failed", "error", err.Error())
	}
	return stats, nil
}

// OccupancyPercent is occupied/total*100 rounded to 2 places, or 0 for an empty lot.
func OccupancyPercent(occupied, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero.Round(2)
	}
	return decimal.NewFromInt(int64(occupied)).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(int64(total)), 2)
}
