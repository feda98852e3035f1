package updater

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"git.home.luguber.info/inful/kasdocs/internal/config"
	"git.home.luguber.info/inful/kasdocs/internal/foundation"
	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/git"
	"git.home.luguber.info/inful/kasdocs/internal/logfields"
	"git.home.luguber.info/inful/kasdocs/internal/metrics"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

// Updater runs the scheduled metadata refresh of a site.
type Updater struct {
	site     *site.Site
	cfg      *config.Config
	commits  git.Lookup
	clock    clockwork.Clock
	recorder metrics.Recorder
	logger   *slog.Logger
}

// New creates an Updater for s.
func New(s *site.Site, cfg *config.Config) *Updater {
	return &Updater{
		site:     s,
		cfg:      cfg,
		commits:  git.HeadLookup{},
		clock:    clockwork.NewRealClock(),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
}

// WithCommitLookup replaces the go-git HEAD lookup.
func (u *Updater) WithCommitLookup(l git.Lookup) *Updater {
	u.commits = l
	return u
}

// WithClock sets the clock that defines "now" for a run.
func (u *Updater) WithClock(c clockwork.Clock) *Updater {
	u.clock = c
	return u
}

// WithRecorder sets the metrics recorder.
func (u *Updater) WithRecorder(r metrics.Recorder) *Updater {
	u.recorder = metrics.OrNoop(r)
	return u
}

// WithLogger sets a custom logger.
func (u *Updater) WithLogger(logger *slog.Logger) *Updater {
	u.logger = logger
	return u
}

// Run performs one update. Steps are independent: a failing step is logged
// and recorded, and the remaining steps still run. Run itself never fails;
// a canceled context marks the steps that did not get to run as failed.
func (u *Updater) Run(ctx context.Context) *Report {
	now := u.clock.Now()
	rep := &Report{RunID: uuid.NewString(), Started: now}
	logger := u.logger.With(logfields.RunID(rep.RunID))
	logger.Info("Running documentation update", logfields.Path(u.site.Root()))

	// read before the stats step replaces stats.json
	prev := u.previousStats()

	steps := map[Step]func() (string, error){
		StepStats:    func() (string, error) { return u.updateStats(now, prev, rep) },
		StepChanges:  func() (string, error) { return u.checkForChanges(now, lastChangeCheck(prev), rep) },
		StepVersions: func() (string, error) { return u.updateVersionsSection(now) },
		StepSitemap:  func() (string, error) { return u.generateSitemap(now) },
	}
	for _, step := range Steps {
		rep.Steps = append(rep.Steps, u.runStep(ctx, logger, step, steps[step]))
	}

	rep.Finished = u.clock.Now()
	if failed := rep.Failed(); len(failed) > 0 {
		logger.Warn("Documentation update finished with failures", logfields.Count(len(failed)))
	} else {
		logger.Info("Documentation update completed")
	}
	return rep
}

func (u *Updater) runStep(ctx context.Context, logger *slog.Logger, step Step, fn func() (string, error)) StepOutcome {
	start := u.clock.Now()
	var res foundation.Result[string, error]
	if err := ctx.Err(); err != nil {
		res = foundation.Err[string, error](errors.WrapError(err, errors.CategoryRuntime, "update canceled").Build())
	} else {
		summary, err := fn()
		res = foundation.FromTuple(summary, err)
	}
	d := u.clock.Since(start)
	u.recorder.ObserveStepDuration(string(step), d)

	res.Match(
		func(summary string) {
			u.recorder.IncStepResult(string(step), metrics.ResultSuccess)
			logger.Info("Update step done", logfields.Step(string(step)), slog.String("summary", summary))
		},
		func(err error) {
			u.recorder.IncStepResult(string(step), metrics.ResultFailed)
			logger.Warn("Update step failed", logfields.Step(string(step)), logfields.Error(err))
		},
	)
	return StepOutcome{Step: step, Result: res, Duration: d}
}
