package workers

import (
	"context"
	"sync"
	"time"
)

type decayJob struct {
	checker  DecayChecker
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDecayJob creates a worker that calls checker.CheckAndApplyDecay on a
// ticker. If interval is zero or negative it defaults to one hour. The job
// is idle until Start is called.
func NewDecayJob(checker DecayChecker, interval time.Duration) Worker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &decayJob{checker: checker, interval: interval}
}

// Start implements Worker. It stops any previously running job, runs one
// check immediately so a freshly logged-in owner is evaluated without
// waiting a full interval, then launches a background goroutine that runs
// the check every interval. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *decayJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	_ = j.checker.CheckAndApplyDecay(ctx)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.checker.CheckAndApplyDecay(jobCtx)
			}
		}
	}()
}

// Stop implements Worker. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running (no-op in that case).
func (j *decayJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
