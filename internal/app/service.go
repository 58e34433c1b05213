// Package app orchestrates the evaluation pipeline: match store on one
// side, the pure report engine on the other.
package app

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/okian/matscore/internal/adapters/store"
	"github.com/okian/matscore/internal/domain/model"
	"github.com/okian/matscore/internal/domain/report"
	"github.com/okian/matscore/pkg/logger"
	"github.com/okian/matscore/pkg/metrics"
)

// Service evaluates stored prediction documents against stored ground
// truth. Single-file evaluation is pure; the service only adds document
// loading, concurrency across files and observability.
type Service struct {
	store *store.Store

	clockTolerance      int
	fieldClockTolerance int
	workerCount         int

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the match store backing the service.
func WithStore(st *store.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithClockTolerance sets the alignment clock tolerance in seconds.
func WithClockTolerance(seconds int) Option {
	return func(s *Service) {
		if seconds >= 0 {
			s.clockTolerance = seconds
		}
	}
}

// WithFieldClockTolerance sets the match_clock field tolerance in seconds.
func WithFieldClockTolerance(seconds int) Option {
	return func(s *Service) {
		if seconds >= 0 {
			s.fieldClockTolerance = seconds
		}
	}
}

// WithWorkerCount sets how many result files are evaluated concurrently.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:               store.New(),
		clockTolerance:      report.DefaultClockTolerance,
		fieldClockTolerance: report.DefaultFieldClockTolerance,
		workerCount:         runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Matches lists the matches available in the store.
func (s *Service) Matches(ctx context.Context) ([]store.MatchInfo, error) {
	return s.store.List(ctx)
}

// ResultNames lists the result files available for a match, newest first.
func (s *Service) ResultNames(ctx context.Context, matchID string) ([]string, error) {
	return s.store.ResultNames(ctx, matchID)
}

// EvaluateFile evaluates a single result file against the match's ground
// truth.
func (s *Service) EvaluateFile(ctx context.Context, matchID, name string) (report.Report, error) {
	if !s.store.Exists(ctx, matchID) {
		return report.Report{}, fmt.Errorf("%w: %s", store.ErrMatchNotFound, matchID)
	}
	gt, err := s.store.GroundTruth(ctx, matchID)
	if err != nil {
		metrics.RecordStoreError()
		return report.Report{}, err
	}
	return s.evaluateOne(ctx, matchID, name, gt)
}

// EvaluateMatch evaluates every result file of a match. Files are
// independent, so they are scored concurrently by a bounded worker pool;
// the returned slice keeps the store's file order regardless of which
// worker finished first.
func (s *Service) EvaluateMatch(ctx context.Context, matchID string) ([]report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.store.Exists(ctx, matchID) {
		return nil, fmt.Errorf("%w: %s", store.ErrMatchNotFound, matchID)
	}
	gt, err := s.store.GroundTruth(ctx, matchID)
	if err != nil {
		metrics.RecordStoreError()
		return nil, err
	}
	names, err := s.store.ResultNames(ctx, matchID)
	if err != nil {
		metrics.RecordStoreError()
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", store.ErrResultNotFound, matchID)
	}

	if s.logger != nil {
		s.logger.Info(ctx, "evaluating match",
			logger.String("match", matchID),
			logger.Int("resultFiles", len(names)),
			logger.Int("workers", s.workerCount),
		)
	}

	reports := make([]report.Report, len(names))
	errs := make([]error, len(names))
	jobs := make(chan int)

	var wg sync.WaitGroup
	workers := s.workerCount
	if workers > len(names) {
		workers = len(names)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				reports[i], errs[i] = s.evaluateOne(ctx, matchID, names[i], gt)
			}
		}()
	}

	for i := range names {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("evaluate %s: %w", names[i], err)
		}
	}
	return reports, nil
}

func (s *Service) evaluateOne(ctx context.Context, matchID, name string, gt model.GroundTruth) (report.Report, error) {
	res, err := s.store.Result(ctx, matchID, name)
	if err != nil {
		metrics.RecordStoreError()
		return report.Report{}, err
	}
	metrics.RecordResultFileRead()

	start := time.Now()
	rep := report.Evaluate(gt, res,
		report.WithClockTolerance(s.clockTolerance),
		report.WithFieldClockTolerance(s.fieldClockTolerance),
		report.WithResultFile(name),
	)
	metrics.RecordEvaluation(time.Since(start).Seconds())
	metrics.RecordAlignment(
		rep.Detection.TruePositives,
		rep.Detection.FalsePositives,
		rep.Detection.FalseNegatives,
	)
	if rep.ClockAccuracy != nil {
		metrics.RecordClockSamples(rep.ClockAccuracy.MatchedWithClock)
	}

	if s.logger != nil {
		s.logger.Debug(ctx, "evaluated result file",
			logger.String("match", matchID),
			logger.String("file", name),
			logger.Float64("f1", rep.Detection.F1),
		)
	}
	return rep, nil
}
