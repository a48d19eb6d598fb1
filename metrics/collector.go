package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector adapts a Source to prometheus.Collector. Values are read from
// Source.Snapshot on every scrape, so the collector never drifts from the
// engine's own counters and needs no synchronisation with it beyond what the
// caller already provides for the session.
type Collector struct {
	src        Source
	steps      *prometheus.Desc
	mainWrites *prometheus.Desc
	auxWrites  *prometheus.Desc
	pushes     *prometheus.Desc
	pops       *prometheus.Desc
}

// NewCollector builds a Collector for src. namespace prefixes every metric
// name (e.g. "mazestep"); constLabels are attached to every sample and are
// typically used for a session identifier.
func NewCollector(src Source, namespace string, constLabels prometheus.Labels) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, constLabels)
	}
	return &Collector{
		src:        src,
		steps:      desc("steps_total", "Discrete algorithm steps performed"),
		mainWrites: desc("main_memory_writes_total", "Grid cell mutations"),
		auxWrites:  desc("aux_memory_writes_total", "Stack and queue operations"),
		pushes:     desc("aux_memory_pushes_total", "Insertions into auxiliary memory"),
		pops:       desc("aux_memory_pops_total", "Removals from auxiliary memory"),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.steps
	ch <- c.mainWrites
	ch <- c.auxWrites
	ch <- c.pushes
	ch <- c.pops
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Snapshot()
	ch <- prometheus.MustNewConstMetric(c.steps, prometheus.CounterValue, float64(s.Steps))
	ch <- prometheus.MustNewConstMetric(c.mainWrites, prometheus.CounterValue, float64(s.MainMemoryWrites))
	ch <- prometheus.MustNewConstMetric(c.auxWrites, prometheus.CounterValue, float64(s.AuxMemoryWrites))
	ch <- prometheus.MustNewConstMetric(c.pushes, prometheus.CounterValue, float64(s.Pushes))
	ch <- prometheus.MustNewConstMetric(c.pops, prometheus.CounterValue, float64(s.Pops))
}
