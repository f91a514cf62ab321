// Package promstats exports parse statistics as prometheus metrics.
package promstats

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava12/combo/parser"
)

// Collector implements parser.Observer and prometheus.Collector.
// Register it once and pass it to parses with parser.WithObserver.
type Collector struct {
	parses     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	consumed   *prometheus.HistogramVec
	recursions *prometheus.CounterVec
}

// New creates a collector, all metric names are prefixed with namespace.
func New(namespace string) *Collector {
	return &Collector{
		parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parses_total",
				Help:      "Counter for the finished parses by root parser and result."},
			[]string{"parser", "result"},
		),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_duration_seconds",
			Help:      "Histogram for the parse duration.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"parser"}),
		consumed: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parse_consumed_symbols",
			Help:      "Histogram for the number of symbols consumed by a parse.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"parser"}),
		recursions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recursion_guard_trips_total",
				Help:      "Counter for the parsers re-entered at the same position."},
			[]string{"parser"},
		),
	}
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.parses, c.duration, c.consumed, c.recursions}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, col := range c.collectors() {
		col.Describe(ch)
	}
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, col := range c.collectors() {
		col.Collect(ch)
	}
}

// result returns result label value: "success" or failure kind name with spaces replaced.
func result(e parser.ParseEvent) string {
	if e.Success {
		return "success"
	}

	name := e.Kind.String()
	if name == "unknown" {
		return "code_" + strconv.Itoa(int(e.Kind))
	}

	res := []byte(name)
	for i, b := range res {
		if b == ' ' || b == '-' {
			res[i] = '_'
		}
	}
	return string(res)
}

func (c *Collector) ObserveParse(e parser.ParseEvent) {
	c.parses.WithLabelValues(e.Parser, result(e)).Inc()
	c.duration.WithLabelValues(e.Parser).Observe(e.Duration.Seconds())
	c.consumed.WithLabelValues(e.Parser).Observe(float64(e.Consumed))
}

func (c *Collector) ObserveRecursion(name string, _ int) {
	c.recursions.WithLabelValues(name).Inc()
}

var (
	_ parser.Observer      = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)
