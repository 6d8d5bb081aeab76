package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/meikuraledutech/pipeline"
)

const (
	outcomeDAG     = "dag"
	outcomeCyclic  = "cyclic"
	outcomeInvalid = "invalid"
)

type metrics struct {
	requests *prometheus.CounterVec
	nodes    prometheus.Histogram
	edges    prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pipeline_parse_requests_total",
			Help: "Parse requests by outcome.",
		}, []string{"outcome"}),
		nodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pipeline_parse_nodes",
			Help:    "Number of nodes per parsed pipeline.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		edges: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pipeline_parse_edges",
			Help:    "Number of edges per parsed pipeline.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	reg.MustRegister(m.requests, m.nodes, m.edges)
	return m
}

func (m *metrics) observe(res pipeline.Result) {
	outcome := outcomeDAG
	if !res.IsDAG {
		outcome = outcomeCyclic
	}
	m.requests.WithLabelValues(outcome).Inc()
	m.nodes.Observe(float64(res.NumNodes))
	m.edges.Observe(float64(res.NumEdges))
}

func (m *metrics) rejected() {
	m.requests.WithLabelValues(outcomeInvalid).Inc()
}
