// Package extract splits a combined documentation page back into partials.
package extract

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/kasdocs/internal/logfields"
	"git.home.luguber.info/inful/kasdocs/internal/metrics"
	"git.home.luguber.info/inful/kasdocs/internal/sections"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

// Failure records a region that could not be written back.
type Failure struct {
	ID  string
	Err error
}

// Report lists what an extraction did, in document order.
type Report struct {
	Source   string
	Written  []string
	Failed   []Failure
	Warnings []sections.Warning

	// Unordered lists written ids that a build would not include.
	Unordered []string
}

// Extractor writes every tagged region of a combined document to the partials
// directory. The canonical order, when set, only flags ids a build would skip;
// those regions are still written.
type Extractor struct {
	site     *site.Site
	order    sections.Order
	recorder metrics.Recorder
	logger   *slog.Logger
}

// New creates an Extractor writing into s.
func New(s *site.Site) *Extractor {
	return &Extractor{
		site:     s,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
}

// WithOrder sets the canonical order used to flag unordered ids.
func (e *Extractor) WithOrder(o sections.Order) *Extractor {
	e.order = o
	return e
}

// WithRecorder sets the metrics recorder.
func (e *Extractor) WithRecorder(r metrics.Recorder) *Extractor {
	e.recorder = metrics.OrNoop(r)
	return e
}

// WithLogger sets a custom logger.
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	e.logger = logger
	return e
}

// Extract reads the combined document at source (the site's index.html when
// empty). Failing to read it is the only error returned; a region that cannot
// be written is recorded in the report and the rest are still processed.
func (e *Extractor) Extract(ctx context.Context, source string) (*Report, error) {
	if source == "" {
		source = e.site.OutputPath()
	}
	data, err := e.site.ReadFile(source)
	if err != nil {
		return nil, errors.BuildError("failed to read combined document").
			WithCause(err).
			WithContext("path", source).
			Build()
	}

	regions, warnings := sections.Scan(string(data))
	report := &Report{Source: source, Warnings: warnings}
	for _, w := range warnings {
		e.logger.Warn("Tolerated malformed section markup", logfields.Section(w.ID), slog.Int("offset", w.Offset), slog.String("reason", w.Message))
	}

	for _, r := range regions {
		if err := ctx.Err(); err != nil {
			return report, errors.WrapError(err, errors.CategoryBuild, "extraction canceled").Build()
		}
		if err := e.site.SaveFragment(r.ID, r.Markup); err != nil {
			report.Failed = append(report.Failed, Failure{ID: r.ID, Err: err})
			e.recorder.IncExtracted(metrics.ResultFailed)
			e.logger.Error("Failed to extract section", logfields.Section(r.ID), logfields.Error(err))
			continue
		}
		report.Written = append(report.Written, r.ID)
		e.recorder.IncExtracted(metrics.ResultSuccess)
		if e.order != nil && !e.order.Contains(r.ID) {
			report.Unordered = append(report.Unordered, r.ID)
			e.logger.Warn("Extracted section is not in the build order", logfields.Section(r.ID))
		}
		e.logger.Debug("Extracted section", logfields.Section(r.ID), logfields.SizeBytes(int64(len(r.Markup))))
	}

	e.logger.Info("Extraction finished",
		logfields.Path(source),
		logfields.Count(len(report.Written)),
		slog.Int("failed", len(report.Failed)))
	return report, nil
}
