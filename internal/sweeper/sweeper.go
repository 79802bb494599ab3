package sweeper

import (
	"context"
)

// Sweeper is a long-running background task that performs periodic maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweeper's main loop until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper, waiting for the in-progress cycle
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging
	Name() string
}
