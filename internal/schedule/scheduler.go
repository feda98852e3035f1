// Package schedule runs recurring jobs for long-lived tool invocations.
package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/logfields"
)

// Scheduler wraps gocron scheduler for managing periodic tasks. Every job
// runs in singleton mode: a run that is due while the previous one is still
// going is rescheduled instead of overlapping it.
type Scheduler struct {
	scheduler gocron.Scheduler
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewScheduler creates a new scheduler instance driven by clock (real time when nil).
func NewScheduler(clock clockwork.Clock) (*Scheduler, error) {
	opts := []gocron.SchedulerOption{
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(slog.Default().With(slog.String("component", "gocron"))),
		gocron.WithGlobalJobOptions(
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(_ uuid.UUID, name string, recoverData any) {
					slog.Error("Scheduled job panicked", logfields.ScheduleName(name), slog.Any("panic", recoverData))
				}),
			),
		),
	}
	if clock != nil {
		opts = append(opts, gocron.WithClock(clock))
	}
	s, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to create gocron scheduler").Build()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{scheduler: s, ctx: ctx, cancel: cancel}, nil
}

// ScheduleCron registers fn on a five-field cron expression (UTC) and returns the job ID.
func (s *Scheduler) ScheduleCron(name, expr string, fn func(context.Context)) (string, error) {
	job, err := s.scheduler.NewJob(
		gocron.CronJob(expr, false),
		gocron.NewTask(s.wrap(name, fn)),
		gocron.WithName(name),
	)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryConfig, "invalid schedule").
			WithContext("schedule", expr).
			WithContext("name", name).
			Build()
	}
	return job.ID().String(), nil
}

// ScheduleEvery registers fn to run every interval and returns the job ID.
func (s *Scheduler) ScheduleEvery(name string, interval time.Duration, fn func(context.Context)) (string, error) {
	if interval <= 0 {
		return "", errors.ValidationError("schedule interval must be positive").
			WithContext("interval", interval.String()).
			Build()
	}
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.wrap(name, fn)),
		gocron.WithName(name),
	)
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryInternal, "failed to create periodic job").
			WithContext("name", name).
			Build()
	}
	return job.ID().String(), nil
}

// NextRun returns the next scheduled run of the job with the given ID.
func (s *Scheduler) NextRun(id string) (time.Time, bool) {
	for _, job := range s.scheduler.Jobs() {
		if job.ID().String() != id {
			continue
		}
		next, err := job.NextRun()
		return next, err == nil
	}
	return time.Time{}, false
}

// Start begins the scheduler.
func (s *Scheduler) Start() {
	slog.Info("Starting scheduler", logfields.Count(len(s.scheduler.Jobs())))
	s.scheduler.Start()
}

// Stop cancels the context handed to running jobs and waits for them to return.
func (s *Scheduler) Stop() error {
	slog.Info("Stopping scheduler")
	s.cancel()
	return s.scheduler.Shutdown()
}

func (s *Scheduler) wrap(name string, fn func(context.Context)) func() {
	return func() {
		slog.Debug("Executing scheduled job", logfields.ScheduleName(name))
		fn(s.ctx)
	}
}
