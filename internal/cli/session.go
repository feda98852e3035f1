// Package cli holds the command execution layer shared by the kasdocs and
// kasdocs-update binaries. Commands parse flags, open a Session and hand it
// to an Executor; the Executor runs the operation and returns a typed response.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"git.home.luguber.info/inful/kasdocs/internal/config"
	"git.home.luguber.info/inful/kasdocs/internal/logfields"
	"git.home.luguber.info/inful/kasdocs/internal/metrics"
	"git.home.luguber.info/inful/kasdocs/internal/site"
)

// Options are the global flags of both tools.
type Options struct {
	Root        string
	ConfigPath  string
	Verbose     bool
	MetricsFile string
	// LogOutput receives structured logs; stderr when nil.
	LogOutput io.Writer
}

// Session is the resolved state of one tool invocation.
type Session struct {
	Site     *site.Site
	Config   *config.Config
	Logger   *slog.Logger
	Recorder metrics.Recorder
	Clock    clockwork.Clock

	prom        *metrics.PrometheusRecorder
	metricsFile string
}

// NewSession loads the configuration of opts.Root and installs the process logger.
func NewSession(opts Options) (*Session, error) {
	s := site.New(opts.Root)
	cfg, err := config.Load(config.ResolvePath(s.Root(), opts.ConfigPath))
	if err != nil {
		return nil, err
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger := config.NewLogger(out, cfg.Log, opts.Verbose)
	slog.SetDefault(logger)

	sess := &Session{
		Site:        s,
		Config:      cfg,
		Logger:      logger,
		Recorder:    metrics.NoopRecorder{},
		Clock:       clockwork.NewRealClock(),
		metricsFile: opts.MetricsFile,
	}
	if opts.MetricsFile != "" {
		sess.prom = metrics.NewPrometheusRecorder(nil)
		sess.Recorder = sess.prom
	}
	logger.Debug("Session ready", logfields.Path(s.Root()), logfields.Count(len(cfg.Sections)))
	return sess, nil
}

// Close writes the metrics textfile when one was requested.
func (s *Session) Close() error {
	if s.prom == nil {
		return nil
	}
	if err := s.prom.WriteTextfile(s.metricsFile); err != nil {
		return err
	}
	s.Logger.Debug("Metrics written", logfields.Path(s.metricsFile))
	return nil
}
