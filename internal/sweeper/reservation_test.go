package sweeper_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/mocks"
	"github.com/feral-file/ff-editions/internal/store/schema"
	"github.com/feral-file/ff-editions/internal/sweeper"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	recoverer *mocks.MockRecoverer
	clock     *mocks.MockClock
	now       time.Time
	// sleeping is signaled each time the sweeper waits for the next cycle
	sleeping chan struct{}
	sweeper  sweeper.Sweeper
}

func setupTestSweeper(t *testing.T) *testSweeperMocks {
	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		recoverer: mocks.NewMockRecoverer(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		now:       time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		sleeping:  make(chan struct{}, 1),
	}

	tm.clock.EXPECT().Now().Return(tm.now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Millisecond).AnyTimes()
	tm.clock.EXPECT().
		After(time.Minute).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			select {
			case tm.sleeping <- struct{}{}:
			default:
			}
			return make(chan time.Time) // never fires
		}).
		AnyTimes()

	tm.sweeper = sweeper.NewReservationSweeper(&sweeper.ReservationSweeperConfig{
		Interval:       time.Minute,
		BatchSize:      10,
		WorkerPoolSize: 2,
		StaleThreshold: 2 * time.Minute,
	}, tm.store, tm.recoverer, tm.clock)

	return tm
}

// runOneCycle starts the sweeper, waits for the first cycle to finish and stops it
func runOneCycle(t *testing.T, tm *testSweeperMocks) {
	done := make(chan error, 1)
	go func() {
		done <- tm.sweeper.Start(context.Background())
	}()

	select {
	case <-tm.sleeping:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep cycle did not complete")
	}

	require.NoError(t, tm.sweeper.Stop(context.Background()))
	require.NoError(t, <-done)
}

func TestReservationSweeper_Name(t *testing.T) {
	tm := setupTestSweeper(t)
	assert.Equal(t, "reservation-sweeper", tm.sweeper.Name())
}

func TestReservationSweeper_RecoversStalePurchases(t *testing.T) {
	tm := setupTestSweeper(t)
	staleBefore := tm.now.Add(-2 * time.Minute)

	reservations := []schema.Purchase{
		{ID: "reserved-1", Status: domain.PurchaseStatusReserved},
		{ID: "reserved-2", Status: domain.PurchaseStatusReserved},
	}
	minting := []schema.Purchase{
		{ID: "minting-1", Status: domain.PurchaseStatusMinting},
	}

	tm.store.EXPECT().GetStaleReservations(gomock.Any(), staleBefore, 10).Return(reservations, nil).Times(1)
	tm.store.EXPECT().GetStaleMinting(gomock.Any(), staleBefore, 10).Return(minting, nil).Times(1)

	tm.recoverer.EXPECT().
		AbandonStaleReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *schema.Purchase) (bool, error) {
			assert.Contains(t, []string{"reserved-1", "reserved-2"}, p.ID)
			return p.ID == "reserved-1", nil
		}).
		Times(2)
	tm.recoverer.EXPECT().
		RecoverStaleMinting(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *schema.Purchase) (bool, error) {
			assert.Equal(t, "minting-1", p.ID)
			return true, nil
		}).
		Times(1)

	runOneCycle(t, tm)
}

func TestReservationSweeper_RecoveryErrorDoesNotStopBatch(t *testing.T) {
	tm := setupTestSweeper(t)

	tm.store.EXPECT().GetStaleReservations(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]schema.Purchase{{ID: "a"}, {ID: "b"}}, nil).Times(1)
	tm.store.EXPECT().GetStaleMinting(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	tm.recoverer.EXPECT().
		AbandonStaleReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *schema.Purchase) (bool, error) {
			if p.ID == "a" {
				return false, errors.New("db down")
			}
			return true, nil
		}).
		Times(2)

	runOneCycle(t, tm)
}

func TestReservationSweeper_RetriesListQuery(t *testing.T) {
	tm := setupTestSweeper(t)

	gomock.InOrder(
		tm.store.EXPECT().GetStaleReservations(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")).Times(1),
		tm.store.EXPECT().GetStaleReservations(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1),
	)
	tm.store.EXPECT().GetStaleMinting(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	runOneCycle(t, tm)
}

func TestReservationSweeper_StartTwice(t *testing.T) {
	tm := setupTestSweeper(t)

	tm.store.EXPECT().GetStaleReservations(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	tm.store.EXPECT().GetStaleMinting(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	done := make(chan error, 1)
	go func() {
		done <- tm.sweeper.Start(context.Background())
	}()
	<-tm.sleeping

	assert.ErrorContains(t, tm.sweeper.Start(context.Background()), "already running")

	require.NoError(t, tm.sweeper.Stop(context.Background()))
	require.NoError(t, <-done)
	// Stop after stop is a no-op
	require.NoError(t, tm.sweeper.Stop(context.Background()))
}

func TestReservationSweeper_StopsOnContextCancel(t *testing.T) {
	tm := setupTestSweeper(t)

	tm.store.EXPECT().GetStaleReservations(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	tm.store.EXPECT().GetStaleMinting(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- tm.sweeper.Start(ctx)
	}()
	<-tm.sleeping

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}
}
