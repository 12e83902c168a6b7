// Package workers provides the background jobs of the application and a
// small aggregate for running them together. The only job today is the
// periodic decay check, which wakes up on a ticker and asks the engine to
// evaluate its once-per-day inactivity rule.
package workers

import (
	"context"
)

// Worker is a start/stoppable background job. Start launches the job's
// goroutines; Stop blocks until they have fully exited and is safe to call
// on a job that was never started.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// DecayChecker is the slice of the engine the decay job depends on.
// Satisfied by *engine.SessionEngine.
type DecayChecker interface {
	CheckAndApplyDecay(ctx context.Context) bool
}
