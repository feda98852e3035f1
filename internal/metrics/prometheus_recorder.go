package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "kasdocs"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg           *prom.Registry
	buildDuration prom.Histogram
	buildOutcome  *prom.CounterVec
	fragments     *prom.CounterVec
	outputBytes   prom.Gauge
	extracted     *prom.CounterVec
	stepDuration  *prom.HistogramVec
	stepResults   *prom.CounterVec
	buildNumber   prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of assembling the combined document",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Builds by final status",
		}, []string{"result"}),
		fragments: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "fragments_total",
			Help:      "Fragments considered during builds by outcome",
		}, []string{"outcome"}),
		outputBytes: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "output_bytes",
			Help:      "Size of the last written combined document",
		}),
		extracted: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "extracted_fragments_total",
			Help:      "Fragments written by extraction by result",
		}, []string{"result"}),
		stepDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "update_step_duration_seconds",
			Help:      "Duration of individual update steps",
			Buckets:   prom.DefBuckets,
		}, []string{"step"}),
		stepResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "update_step_results_total",
			Help:      "Update step results by outcome",
		}, []string{"step", "result"}),
		buildNumber: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "build_number",
			Help:      "Build counter after the last update run",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.fragments, pr.outputBytes,
		pr.extracted, pr.stepDuration, pr.stepResults, pr.buildNumber)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(result ResultLabel) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncFragment(outcome FragmentOutcome) {
	if p == nil {
		return
	}
	p.fragments.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetOutputBytes(n int64) {
	if p == nil {
		return
	}
	p.outputBytes.Set(float64(n))
}

func (p *PrometheusRecorder) IncExtracted(result ResultLabel) {
	if p == nil {
		return
	}
	p.extracted.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveStepDuration(step string, d time.Duration) {
	if p == nil {
		return
	}
	p.stepDuration.WithLabelValues(step).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStepResult(step string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stepResults.WithLabelValues(step, string(result)).Inc()
}

func (p *PrometheusRecorder) SetBuildNumber(n int) {
	if p == nil {
		return
	}
	p.buildNumber.Set(float64(n))
}
