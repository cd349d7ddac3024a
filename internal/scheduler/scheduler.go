package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/BuildQueue_Go/internal/worker"
)

// LogMsgTickSkipped is logged when a tick finds the job queue full
const LogMsgTickSkipped = "Scheduled job skipped, worker queue is full"

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick that finds the
// pool's queue full is dropped rather than stacking up behind a slow run.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.TryEnqueue(job) {
					slog.Debug(LogMsgTickSkipped, "job", name)
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
