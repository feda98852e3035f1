package cli

import (
	"context"
	"time"

	"git.home.luguber.info/inful/kasdocs/internal/assemble"
	"git.home.luguber.info/inful/kasdocs/internal/extract"
	"git.home.luguber.info/inful/kasdocs/internal/foundation"
	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/logfields"
	"git.home.luguber.info/inful/kasdocs/internal/schedule"
	"git.home.luguber.info/inful/kasdocs/internal/updater"
)

// BuildResponse summarizes an assembler run.
type BuildResponse struct {
	Result   *assemble.Result
	Duration time.Duration
}

// ExtractRequest selects the combined document to split. Empty means index.html.
type ExtractRequest struct {
	Source string
}

// Executor runs the tool operations against a Session.
type Executor struct {
	session *Session
}

// NewExecutor creates an executor bound to s.
func NewExecutor(s *Session) *Executor {
	return &Executor{session: s}
}

// ExecuteBuild assembles index.html from the partials.
func (e *Executor) ExecuteBuild(ctx context.Context) foundation.Result[BuildResponse, error] {
	s := e.session
	start := s.Clock.Now()
	res, err := assemble.New(s.Site, s.Config.Order()).
		WithPackageJSON(s.Config.PackageJSONPath(s.Site.Root())).
		WithClock(s.Clock).
		WithRecorder(s.Recorder).
		WithLogger(s.Logger).
		Build(ctx)
	if err != nil {
		return foundation.Err[BuildResponse](err)
	}
	return foundation.Ok[BuildResponse, error](BuildResponse{Result: res, Duration: s.Clock.Since(start)})
}

// ExecuteExtract writes the tagged sections of a combined document back to partials.
func (e *Executor) ExecuteExtract(ctx context.Context, req ExtractRequest) foundation.Result[*extract.Report, error] {
	s := e.session
	report, err := extract.New(s.Site).
		WithOrder(s.Config.Order()).
		WithRecorder(s.Recorder).
		WithLogger(s.Logger).
		Extract(ctx, req.Source)
	if err != nil {
		return foundation.Err[*extract.Report](err)
	}
	return foundation.Ok[*extract.Report, error](report)
}

func (e *Executor) updater() *updater.Updater {
	s := e.session
	return updater.New(s.Site, s.Config).
		WithClock(s.Clock).
		WithRecorder(s.Recorder).
		WithLogger(s.Logger)
}

// ExecuteUpdate runs one scheduled update. Step failures live in the report.
func (e *Executor) ExecuteUpdate(ctx context.Context) *updater.Report {
	return e.updater().Run(ctx)
}

// UpdateSchedule selects when scheduled updates run: a cron expression or a
// fixed interval, never both.
type UpdateSchedule struct {
	Cron  string
	Every time.Duration
}

func (us UpdateSchedule) register(sched *schedule.Scheduler, name string, fn func(context.Context)) (string, error) {
	switch {
	case us.Cron != "" && us.Every != 0:
		return "", errors.ValidationError("cron and interval schedules are mutually exclusive").
			WithContext("schedule", us.Cron).
			WithContext("interval", us.Every.String()).
			Build()
	case us.Cron != "":
		return sched.ScheduleCron(name, us.Cron, fn)
	default:
		return sched.ScheduleEvery(name, us.Every, fn)
	}
}

// ExecuteScheduledUpdates runs an update on every tick of us until ctx is
// done. onReport is called after each run.
func (e *Executor) ExecuteScheduledUpdates(ctx context.Context, us UpdateSchedule, onReport func(*updater.Report)) error {
	sched, err := schedule.NewScheduler(e.session.Clock)
	if err != nil {
		return err
	}
	u := e.updater()
	id, err := us.register(sched, updateJobName, func(jobCtx context.Context) {
		rep := u.Run(jobCtx)
		if onReport != nil {
			onReport(rep)
		}
	})
	if err != nil {
		_ = sched.Stop()
		return err
	}

	sched.Start()
	if next, ok := sched.NextRun(id); ok {
		e.session.Logger.Info("Update scheduled", logfields.ScheduleName(updateJobName), logfields.JobID(id), "next_run", next)
	}
	<-ctx.Done()
	return sched.Stop()
}

const updateJobName = "daily-update"
