package assemble

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/logfields"
	"git.home.luguber.info/inful/kasdocs/internal/metrics"
	"git.home.luguber.info/inful/kasdocs/internal/sections"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

// TemplateSource tells where the page template came from.
type TemplateSource string

const (
	TemplateFromFile    TemplateSource = "file"
	TemplateFromDefault TemplateSource = "default"
)

// FragmentFailure records a fragment that exists but could not be read.
type FragmentFailure struct {
	ID  string
	Err error
}

// Result summarizes a completed build.
type Result struct {
	Template         TemplateSource
	Loaded           []string
	Missing          []string
	Failed           []FragmentFailure
	PlaceholderFound bool
	OutputPath       string
	OutputSize       int64
	// Stats is nil when StatsErr is set.
	Stats    *BuildStats
	StatsErr error
}

// Assembler combines the partials of a site into its index page.
type Assembler struct {
	site        *site.Site
	order       sections.Order
	packageJSON string
	clock       clockwork.Clock
	recorder    metrics.Recorder
	logger      *slog.Logger
}

// New creates an Assembler for s that places fragments in the given order.
func New(s *site.Site, order sections.Order) *Assembler {
	return &Assembler{
		site:     s,
		order:    order.Clone(),
		clock:    clockwork.NewRealClock(),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
}

// WithPackageJSON sets the package.json the stats version is read from.
func (a *Assembler) WithPackageJSON(path string) *Assembler {
	a.packageJSON = path
	return a
}

// WithClock sets the clock used for timing and the stats timestamp.
func (a *Assembler) WithClock(c clockwork.Clock) *Assembler {
	a.clock = c
	return a
}

// WithRecorder sets the metrics recorder.
func (a *Assembler) WithRecorder(r metrics.Recorder) *Assembler {
	a.recorder = metrics.OrNoop(r)
	return a
}

// WithLogger sets a custom logger.
func (a *Assembler) WithLogger(logger *slog.Logger) *Assembler {
	a.logger = logger
	return a
}

// Build writes the combined document and then the build stats record. The
// returned error is always a fatal build error; everything else is reported
// through Result.
func (a *Assembler) Build(ctx context.Context) (*Result, error) {
	start := a.clock.Now()
	res := &Result{OutputPath: a.site.OutputPath()}

	tmpl, source, err := a.readTemplate()
	if err != nil {
		a.recorder.IncBuildOutcome(metrics.ResultFailed)
		return nil, err
	}
	res.Template = source

	fragments := make([]string, 0, len(a.order))
	for _, id := range a.order {
		if err := ctx.Err(); err != nil {
			a.recorder.IncBuildOutcome(metrics.ResultFailed)
			return nil, errors.WrapError(err, errors.CategoryBuild, "build canceled").Build()
		}
		content, err := a.site.LoadFragment(id)
		switch {
		case err == nil:
			fragments = append(fragments, content)
			res.Loaded = append(res.Loaded, id)
			a.recorder.IncFragment(metrics.FragmentLoaded)
			a.logger.Debug("Loaded section", logfields.Section(id))
		case site.IsNotExist(err):
			res.Missing = append(res.Missing, id)
			a.recorder.IncFragment(metrics.FragmentMissing)
			a.logger.Warn("Section fragment missing, omitted from output", logfields.Section(id))
		default:
			res.Failed = append(res.Failed, FragmentFailure{ID: id, Err: err})
			a.recorder.IncFragment(metrics.FragmentFailed)
			a.logger.Warn("Failed to load section, omitted from output", logfields.Section(id), logfields.Error(err))
		}
	}

	out, found := Combine(tmpl, fragments)
	res.PlaceholderFound = found
	if !found {
		a.logger.Warn("Template has no placeholder, writing it unchanged",
			slog.String("placeholder", Placeholder), slog.String("template", string(source)))
	}

	if err := a.site.WriteFile(res.OutputPath, []byte(out)); err != nil {
		a.recorder.IncBuildOutcome(metrics.ResultFailed)
		return nil, errors.BuildError("failed to write combined document").
			WithCause(err).
			WithContext("path", res.OutputPath).
			Build()
	}
	res.OutputSize = int64(len(out))
	a.recorder.SetOutputBytes(res.OutputSize)

	stats, err := a.writeStats()
	if err != nil {
		res.StatsErr = err
		a.logger.Warn("Failed to write build stats", logfields.Path(a.site.BuildStatsPath()), logfields.Error(err))
	} else {
		res.Stats = &stats
	}

	a.recorder.ObserveBuildDuration(a.clock.Since(start))
	outcome := metrics.ResultSuccess
	if !found || len(res.Failed) > 0 || res.StatsErr != nil {
		outcome = metrics.ResultWarning
	}
	a.recorder.IncBuildOutcome(outcome)

	a.logger.Info("Documentation built",
		logfields.Path(res.OutputPath),
		logfields.Count(len(res.Loaded)),
		logfields.SizeBytes(res.OutputSize),
		logfields.DurationMS(float64(a.clock.Since(start).Microseconds())/1000))
	return res, nil
}

func (a *Assembler) readTemplate() (string, TemplateSource, error) {
	data, err := a.site.ReadFile(a.site.TemplatePath())
	switch {
	case err == nil:
		return string(data), TemplateFromFile, nil
	case site.IsNotExist(err):
		a.logger.Info("Template not found, using default", logfields.Path(a.site.TemplatePath()))
		return DefaultTemplate(), TemplateFromDefault, nil
	default:
		return "", "", errors.BuildError("failed to read template").
			WithCause(err).
			WithContext("path", a.site.TemplatePath()).
			Build()
	}
}

func (a *Assembler) writeStats() (BuildStats, error) {
	size, sizeErr := a.site.FileSize(a.site.OutputPath())
	stats := NewBuildStats(a.clock.Now(), len(a.order), ReadVersion(a.packageJSON), size, sizeErr)
	if err := a.site.WriteJSON(a.site.BuildStatsPath(), stats); err != nil {
		return stats, err
	}
	return stats, nil
}
