package updater

import (
	"time"

	"git.home.luguber.info/inful/kasdocs/internal/foundation"
)

// Step names one part of an update run.
type Step string

const (
	StepStats    Step = "stats"
	StepChanges  Step = "changes"
	StepVersions Step = "versions"
	StepSitemap  Step = "sitemap"
)

// Steps lists the update steps in execution order.
var Steps = []Step{StepStats, StepChanges, StepVersions, StepSitemap}

// StepOutcome is the result of one step. The value is a short human summary.
type StepOutcome struct {
	Step     Step
	Result   foundation.Result[string, error]
	Duration time.Duration
}

// Report collects the outcome of an update run.
type Report struct {
	RunID    string
	Started  time.Time
	Finished time.Time
	Steps    []StepOutcome

	Stats   *UpdateStats
	Changes []Change
}

// Outcome returns the outcome of step s.
func (r *Report) Outcome(s Step) (StepOutcome, bool) {
	for _, o := range r.Steps {
		if o.Step == s {
			return o, true
		}
	}
	return StepOutcome{}, false
}

// Failed returns the outcomes that ended in an error.
func (r *Report) Failed() []StepOutcome {
	var failed []StepOutcome
	for _, o := range r.Steps {
		if o.Result.IsErr() {
			failed = append(failed, o)
		}
	}
	return failed
}

// OK reports whether every step succeeded.
func (r *Report) OK() bool { return len(r.Failed()) == 0 }
