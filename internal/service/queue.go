package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"city_pulse/internal/domain"
)

// Runner drives one pipeline through its durable city queue, one city per
// tick. The queue row is the run state: enqueueing while a run is in progress
// is a no-op, cancelling deletes the row, and a process restart resumes from
// whatever is left.
type Runner struct {
	queues    QueueStore
	processor CityProcessor
	cities    CitySource
	logger    *slog.Logger
	tickDelay time.Duration

	mu        sync.Mutex
	scheduler TickScheduler
}

func NewRunner(
	queues QueueStore,
	processor CityProcessor,
	cities CitySource,
	logger *slog.Logger,
	tickDelay time.Duration,
) *Runner {
	return &Runner{
		queues:    queues,
		processor: processor,
		cities:    cities,
		logger:    logger.With("pipeline", processor.Pipeline()),
		tickDelay: tickDelay,
	}
}

// SetScheduler wires the one-shot wakeup source. Must be called before the
// runner starts ticking. The runner works without one; ticks then only happen
// through the fallback interval or manual calls.
func (r *Runner) SetScheduler(s TickScheduler) {
	r.scheduler = s
}

func (r *Runner) Pipeline() domain.Pipeline {
	return r.processor.Pipeline()
}

// Enqueue starts a run over all configured cities. An existing queue is
// returned untouched so a run in progress is never restarted.
func (r *Runner) Enqueue(ctx context.Context) (*domain.Queue, error) {
	existing, err := r.queues.Get(ctx, r.processor.Pipeline())
	if err != nil {
		return nil, fmt.Errorf("load queue: %w", err)
	}
	if existing != nil {
		r.logger.Info("run already in progress",
			"remaining", len(existing.Items),
			"total", existing.TotalCount,
		)
		r.armTick()
		return existing, nil
	}

	cities := r.cities.Cities()
	queue := &domain.Queue{
		Pipeline:   r.processor.Pipeline(),
		Items:      cities,
		TotalCount: len(cities),
	}
	if err := r.queues.Save(ctx, queue); err != nil {
		return nil, fmt.Errorf("save queue: %w", err)
	}

	r.logger.Info("run enqueued", "cities", queue.TotalCount)
	r.armTick()
	return queue, nil
}

func (r *Runner) Status(ctx context.Context) (*domain.Queue, error) {
	return r.queues.Get(ctx, r.processor.Pipeline())
}

// Cancel deletes the queue. Periodic scheduling is unaffected and will start
// a fresh run at its next interval.
func (r *Runner) Cancel(ctx context.Context) error {
	return r.queues.Delete(ctx, r.processor.Pipeline())
}

// Tick processes the next city. An auth failure leaves the queue unchanged
// so the same city is retried on the next tick; any other processing error
// consumes the city, because retrying a persistently failing city would wedge
// the whole run.
func (r *Runner) Tick(ctx context.Context) error {
	if !r.mu.TryLock() {
		return nil
	}
	defer r.mu.Unlock()

	queue, err := r.queues.Get(ctx, r.processor.Pipeline())
	if err != nil {
		return fmt.Errorf("load queue: %w", err)
	}
	if queue == nil || len(queue.Items) == 0 {
		if queue != nil {
			if err := r.queues.Delete(ctx, queue.Pipeline); err != nil {
				return fmt.Errorf("delete drained queue: %w", err)
			}
		}
		return nil
	}

	city := queue.Items[0]
	r.logger.Info("processing city",
		"city", city.Slug,
		"remaining", len(queue.Items),
		"total", queue.TotalCount,
	)

	if err := r.processor.ProcessCity(ctx, city); err != nil {
		if isAuthErr(err) {
			r.logger.Error("auth failed, keeping city queued", "city", city.Slug, "error", err)
			r.scheduleNext()
			return err
		}
		r.logger.Error("city processing failed", "city", city.Slug, "error", err)
	}

	queue.Items = queue.Items[1:]
	if len(queue.Items) == 0 {
		if err := r.queues.Delete(ctx, queue.Pipeline); err != nil {
			return fmt.Errorf("delete finished queue: %w", err)
		}
		r.logger.Info("run completed", "cities", queue.TotalCount)
		return nil
	}

	if err := r.queues.Save(ctx, queue); err != nil {
		return fmt.Errorf("save queue: %w", err)
	}
	r.logger.Info("run progress",
		"progress", fmt.Sprintf("%.0f%%", queue.Progress()*100),
		"remaining", len(queue.Items),
	)
	r.scheduleNext()
	return nil
}

func (r *Runner) armTick() {
	if r.scheduler != nil {
		r.scheduler.ScheduleOnce(0)
	}
}

func (r *Runner) scheduleNext() {
	if r.scheduler != nil {
		r.scheduler.ScheduleOnce(r.tickDelay)
	}
}
