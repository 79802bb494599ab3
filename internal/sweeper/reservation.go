package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/adapter"
	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/purchase"
	"github.com/feral-file/ff-editions/internal/store"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

const (
	DEFAULT_SWEEP_INTERVAL = 30 * time.Second
	DEFAULT_BATCH_SIZE     = 100
)

// ReservationSweeperConfig holds configuration for the reservation sweeper
type ReservationSweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Purchases loaded per query
	WorkerPoolSize int           // Concurrent recoveries
	StaleThreshold time.Duration // Age after which a reservation or minting attempt is stale
}

// reservationSweeper releases supply held by abandoned reservations and unsticks
// minting attempts whose clients stopped polling. It never mints.
type reservationSweeper struct {
	config    *ReservationSweeperConfig
	store     store.Store
	recoverer purchase.Recoverer
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewReservationSweeper creates a new reservation sweeper
func NewReservationSweeper(
	config *ReservationSweeperConfig,
	st store.Store,
	recoverer purchase.Recoverer,
	clock adapter.Clock,
) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SWEEP_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_BATCH_SIZE
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	if config.StaleThreshold <= 0 {
		config.StaleThreshold = domain.DEFAULT_STALE_THRESHOLD
	}

	return &reservationSweeper{
		config:    config,
		store:     st,
		recoverer: recoverer,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *reservationSweeper) Name() string {
	return "reservation-sweeper"
}

// Start runs sweep cycles until the context is canceled or Stop is called
func (s *reservationSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting reservation sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("stale_threshold", s.config.StaleThreshold),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize*2),
		pond.WithContext(ctx),
	)
	defer s.pool.StopAndWait()

	for {
		if err := s.runSweepCycle(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
		}

		if !s.sleep(ctx, s.config.Interval) {
			logger.InfoCtx(ctx, "Reservation sweeper stopping")
			return nil
		}
	}
}

// Stop signals the main loop and waits for the running cycle to finish
func (s *reservationSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping reservation sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Reservation sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Reservation sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle recovers one batch of stale reservations and one batch of stale minting attempts
func (s *reservationSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	staleBefore := startTime.Add(-s.config.StaleThreshold)

	reservations, err := s.listWithRetry(ctx, "stale reservations", func() ([]schema.Purchase, error) {
		return s.store.GetStaleReservations(ctx, staleBefore, s.config.BatchSize)
	})
	if err != nil {
		return err
	}

	minting, err := s.listWithRetry(ctx, "stale minting", func() ([]schema.Purchase, error) {
		return s.store.GetStaleMinting(ctx, staleBefore, s.config.BatchSize)
	})
	if err != nil {
		return err
	}

	if len(reservations) == 0 && len(minting) == 0 {
		logger.DebugCtx(ctx, "Nothing to sweep")
		return nil
	}

	var abandoned, recovered, failed atomic.Int32
	tasks := make([]pond.Task, 0, len(reservations)+len(minting))

	for i := range reservations {
		p := reservations[i]
		tasks = append(tasks, s.pool.Submit(func() {
			ok, err := s.recoverer.AbandonStaleReservation(logger.WithPurchase(ctx, p.ID), &p)
			if err != nil {
				failed.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("purchase_id", p.ID))
				return
			}
			if ok {
				abandoned.Add(1)
			}
		}))
	}

	for i := range minting {
		p := minting[i]
		tasks = append(tasks, s.pool.Submit(func() {
			ok, err := s.recoverer.RecoverStaleMinting(logger.WithPurchase(ctx, p.ID), &p)
			if err != nil {
				failed.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("purchase_id", p.ID))
				return
			}
			if ok {
				recovered.Add(1)
			}
		}))
	}

	for _, task := range tasks {
		_ = task.Wait()
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("stale_reservations", len(reservations)),
		zap.Int("stale_minting", len(minting)),
		zap.Int32("abandoned", abandoned.Load()),
		zap.Int32("recovered", recovered.Load()),
		zap.Int32("failed", failed.Load()),
	)

	return nil
}

// listWithRetry runs a store query with a short exponential backoff
func (s *reservationSweeper) listWithRetry(ctx context.Context, what string, list func() ([]schema.Purchase, error)) ([]schema.Purchase, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second

	var purchases []schema.Purchase
	operation := func() error {
		var err error
		purchases, err = list()
		return err
	}
	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Sweeper query failed, retrying",
			zap.String("query", what),
			zap.Error(err),
			zap.Duration("next_retry_in", next))
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", what, err)
	}
	return purchases, nil
}

// sleep returns false when interrupted by context cancellation or a stop request
func (s *reservationSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
