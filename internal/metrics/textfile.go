package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/kasdocs/internal/foundation/errors"
)

// WriteTextfile dumps the recorder's registry to path for the node exporter
// textfile collector. The file is replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write metrics textfile").
			WithContext("path", path).
			Build()
	}
	return nil
}
