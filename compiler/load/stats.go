package load

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// Querier runs catalog queries. It is implemented by *sql.DB, *sql.Conn
// and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// QueryStats holds catalog query statistics.
type QueryStats struct {
	// TotalQueries is the total number of queries executed.
	TotalQueries atomic.Int64
	// TotalDuration is the total time spent executing queries.
	TotalDuration atomic.Int64 // nanoseconds
	// SlowQueries is the count of queries exceeding the slow threshold.
	SlowQueries atomic.Int64
	// Errors is the count of query errors.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *QueryStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:  s.TotalQueries.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		SlowQueries:   s.SlowQueries.Load(),
		Errors:        s.Errors.Load(),
	}
}

// StatsSnapshot is a point-in-time snapshot of query statistics.
type StatsSnapshot struct {
	TotalQueries  int64
	TotalDuration time.Duration
	SlowQueries   int64
	Errors        int64
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("queries=%d duration=%s slow=%d errors=%d",
		s.TotalQueries, s.TotalDuration, s.SlowQueries, s.Errors)
}

// StatsQuerier wraps a Querier with query statistics and slow query logging.
// The duration of a query covers its execution, not the reading of its rows.
type StatsQuerier struct {
	Querier
	stats         QueryStats
	slowThreshold time.Duration
	log           *slog.Logger
}

// StatsOption configures a StatsQuerier.
type StatsOption func(*StatsQuerier)

// WithSlowThreshold sets the duration above which a query is logged as
// slow. Default is 100ms.
func WithSlowThreshold(d time.Duration) StatsOption {
	return func(s *StatsQuerier) { s.slowThreshold = d }
}

// WithLogger sets the logger receiving the queries. Queries are logged at
// debug level, slow queries at warn level.
func WithLogger(l *slog.Logger) StatsOption {
	return func(s *StatsQuerier) { s.log = l }
}

// NewStatsQuerier wraps q with statistics collection.
//
//	db, _ := sql.Open("sqlite", "shop.db")
//	q := load.NewStatsQuerier(db, load.WithLogger(logger))
//	tables, err := load.Inspect(ctx, q, load.SQLite)
//	fmt.Println(q.QueryStats().Stats())
func NewStatsQuerier(q Querier, opts ...StatsOption) *StatsQuerier {
	s := &StatsQuerier{
		Querier:       q,
		slowThreshold: 100 * time.Millisecond,
		log:           slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QueryStats returns the statistics of the wrapped querier.
func (s *StatsQuerier) QueryStats() *QueryStats { return &s.stats }

// QueryContext executes a query and records statistics.
func (s *StatsQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := s.Querier.QueryContext(ctx, query, args...)
	duration := time.Since(start)

	s.stats.TotalQueries.Add(1)
	s.stats.TotalDuration.Add(int64(duration))
	if err != nil {
		s.stats.Errors.Add(1)
	}
	if duration > s.slowThreshold {
		s.stats.SlowQueries.Add(1)
		s.log.WarnContext(ctx, "slow catalog query", "duration", duration, "args", args)
	} else {
		s.log.DebugContext(ctx, "catalog query", "duration", duration, "args", args)
	}
	return rows, err
}
