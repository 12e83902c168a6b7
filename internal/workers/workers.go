package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates background workers behind a single Start/Stop pair.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops the workers in reverse start order and blocks until each has
// fully exited. Idempotent.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
