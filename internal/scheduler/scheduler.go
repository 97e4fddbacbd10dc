package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one periodically started unit of work.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs each job on its own ticker until the context is cancelled.
// Jobs also run once at startup, so a restart resumes interrupted queue runs
// without waiting a full interval.
type Scheduler struct {
	jobs   []Job
	logger *slog.Logger
}

func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

func (s *Scheduler) Add(job Job) {
	s.jobs = append(s.jobs, job)
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "jobs", len(s.jobs))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runLoop(ctx, job)
		}(job)
	}
	wg.Wait()

	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runLoop(ctx context.Context, job Job) {
	s.runJob(ctx, job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runJob(ctx, job)
		}
	}
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	if err := job.Run(ctx); err != nil && ctx.Err() == nil {
		s.logger.Error("job failed", "job", job.Name, "error", err)
	}
}

// TickTimer arms one-shot wakeups for a queue runner. Re-arming replaces the
// pending wakeup instead of stacking timers.
type TickTimer struct {
	ctx  context.Context
	tick func(ctx context.Context) error

	mu    sync.Mutex
	timer *time.Timer
}

func NewTickTimer(ctx context.Context, tick func(ctx context.Context) error) *TickTimer {
	return &TickTimer{ctx: ctx, tick: tick}
}

func (t *TickTimer) ScheduleOnce(delay time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(delay, func() {
		if t.ctx.Err() != nil {
			return
		}
		_ = t.tick(t.ctx)
	})
}

// Stop cancels any pending wakeup.
func (t *TickTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
}
