package metrics

import "time"

// ResultLabel enumerates outcome labels for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
	ResultFailed  ResultLabel = "failed"
)

// FragmentOutcome enumerates what happened to one fragment during a build.
type FragmentOutcome string

const (
	FragmentLoaded  FragmentOutcome = "loaded"
	FragmentMissing FragmentOutcome = "missing"
	FragmentFailed  FragmentOutcome = "failed"
)

// Recorder defines observability hooks for the assembler, extractor and updater.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(result ResultLabel)
	IncFragment(outcome FragmentOutcome)
	SetOutputBytes(n int64)
	IncExtracted(result ResultLabel)
	ObserveStepDuration(step string, d time.Duration)
	IncStepResult(step string, result ResultLabel)
	SetBuildNumber(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration)        {}
func (NoopRecorder) IncBuildOutcome(ResultLabel)               {}
func (NoopRecorder) IncFragment(FragmentOutcome)               {}
func (NoopRecorder) SetOutputBytes(int64)                      {}
func (NoopRecorder) IncExtracted(ResultLabel)                  {}
func (NoopRecorder) ObserveStepDuration(string, time.Duration) {}
func (NoopRecorder) IncStepResult(string, ResultLabel)         {}
func (NoopRecorder) SetBuildNumber(int)                        {}

// OrNoop returns r, or NoopRecorder when r is nil.
func OrNoop(r Recorder) Recorder {
	if r == nil {
		return NoopRecorder{}
	}
	return r
}
