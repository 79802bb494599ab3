package purchase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffects_FullQueueDropsWithoutBlocking(t *testing.T) {
	e := newEffects(1, 1)

	release := make(chan struct{})
	started := make(chan struct{})
	var ran atomic.Int32

	require.True(t, e.run(context.Background(), "busy", func(context.Context) error {
		close(started)
		<-release
		ran.Add(1)
		return nil
	}))
	<-started

	require.True(t, e.run(context.Background(), "queued", func(context.Context) error {
		ran.Add(1)
		return nil
	}))

	done := make(chan bool, 1)
	go func() {
		done <- e.run(context.Background(), "overflow", func(context.Context) error {
			ran.Add(100)
			return nil
		})
	}()

	select {
	case queued := <-done:
		assert.False(t, queued)
	case <-time.After(time.Second):
		t.Fatal("run blocked on a full queue")
	}

	close(release)
	e.stop()
	assert.Equal(t, int32(2), ran.Load())
}

func TestEffects_FailureAndPanicAreContained(t *testing.T) {
	e := newEffects(2, 4)

	var ran atomic.Int32
	e.run(context.Background(), "failing", func(context.Context) error {
		ran.Add(1)
		return errors.New("notification service down")
	})
	e.run(context.Background(), "panicking", func(context.Context) error {
		ran.Add(1)
		panic("boom")
	})

	e.stop()
	assert.Equal(t, int32(2), ran.Load())
}

func TestEffects_OutliveRequestContext(t *testing.T) {
	e := newEffects(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sawCanceled atomic.Bool
	e.run(ctx, "detached", func(ctx context.Context) error {
		sawCanceled.Store(ctx.Err() != nil)
		return nil
	})

	e.stop()
	assert.False(t, sawCanceled.Load())
}
