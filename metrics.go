// SPDX-License-Identifier: EPL-2.0

package retrotape

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ik5/retrotape/decoding"
)

const metricsNamespace = "retrotape"

// Metrics counts decoded files, blocks and bytes by format and status.
type Metrics struct {
	reg    *prometheus.Registry
	files  *prometheus.CounterVec
	blocks *prometheus.CounterVec
	bytes  *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg, or on a fresh registry when
// reg is nil.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	factory := promauto.With(reg)
	labels := []string{"format", "status"}

	return &Metrics{
		reg: reg,
		files: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "files_total",
			Help:      "Decoded files by tape format and file status.",
		}, labels),
		blocks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "blocks_total",
			Help:      "Decoded blocks by tape format and block status.",
		}, labels),
		bytes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "bytes_total",
			Help:      "Bytes of decoded files by tape format and file status.",
		}, labels),
	}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Observer returns the Config.Observer that feeds m for one format.
func (m *Metrics) Observer(format string) *MetricsObserver {
	return &MetricsObserver{metrics: m, format: format}
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	return nil
}

type MetricsObserver struct {
	metrics *Metrics
	format  string
}

func (o *MetricsObserver) ObserveBlock(b decoding.Block) {
	o.metrics.blocks.WithLabelValues(o.format, b.Status.String()).Inc()
}

func (o *MetricsObserver) ObserveFile(f decoding.OutputFile) {
	status := f.Status.String()
	o.metrics.files.WithLabelValues(o.format, status).Inc()
	o.metrics.bytes.WithLabelValues(o.format, status).Add(float64(len(f.Data)))
}
