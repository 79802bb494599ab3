package purchase

import (
	"context"
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/logger"
)

const (
	defaultEffectsPoolSize  = 4
	defaultEffectsQueueSize = 256
)

// effects runs best-effort side effects (metadata snapshots, notifications) off the request path.
// Failures are logged and never reach the purchase state.
type effects struct {
	pool     pond.Pool
	stopOnce sync.Once
}

func newEffects(poolSize, queueSize int) *effects {
	if poolSize <= 0 {
		poolSize = defaultEffectsPoolSize
	}
	if queueSize <= 0 {
		queueSize = defaultEffectsQueueSize
	}
	return &effects{
		pool: pond.NewPool(poolSize, pond.WithQueueSize(queueSize), pond.WithNonBlocking(true)),
	}
}

// run schedules fn and reports whether it was queued. The request context is
// detached so the effect outlives the response. A full queue drops the effect.
func (e *effects) run(ctx context.Context, name string, fn func(ctx context.Context) error) bool {
	ctx = context.WithoutCancel(ctx)

	_, ok := e.pool.TrySubmit(func() {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorCtx(ctx, fmt.Errorf("side effect panicked: %v", r), zap.String("effect", name))
			}
		}()

		if err := fn(ctx); err != nil {
			logger.WarnCtx(ctx, "Best-effort side effect failed", zap.String("effect", name), zap.Error(err))
		}
	})
	if !ok {
		logger.WarnCtx(ctx, "Side effect queue full, effect dropped",
			zap.String("effect", name),
			zap.Uint64("dropped_total", e.pool.DroppedTasks()))
	}

	return ok
}

// stop waits for every scheduled effect to finish
func (e *effects) stop() {
	e.stopOnce.Do(e.pool.StopAndWait)
}
