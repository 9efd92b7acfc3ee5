// Package metrics defines the Prometheus collectors recorded while analyzing
// emails and helpers to export them without an HTTP endpoint.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1} //nolint: gochecknoglobals

const namespace = "phishlens"

// Candidate sources and drop reasons used as label values.
const (
	SourceHref = "href"
	SourceRaw  = "raw"

	ReasonUnparseable = "unparseable"
	ReasonRejected    = "rejected"
)

// Metrics groups the collectors of the analysis pipeline.
type Metrics struct {
	EmailsAnalyzed     prometheus.Counter
	PhishyKeywordHits  prometheus.Counter
	Candidates         *prometheus.CounterVec
	CandidatesDropped  *prometheus.CounterVec
	DomainsExtracted   prometheus.Counter
	ParserFallbacks    prometheus.Counter
	BatchRecordsFailed prometheus.Counter
	AnalyzeDuration    prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		EmailsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_analyzed_total",
			Help:      "Number of emails analyzed.",
		}),
		PhishyKeywordHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "phishy_keyword_emails_total",
			Help:      "Number of analyzed emails containing a suspicious phrase.",
		}),
		Candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "link_candidates_total",
			Help:      "Number of link candidates found, by source.",
		}, []string{"source"}),
		CandidatesDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "link_candidates_dropped_total",
			Help:      "Number of link candidates that produced no domain, by reason.",
		}, []string{"reason"}),
		DomainsExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domains_extracted_total",
			Help:      "Number of distinct domains extracted, summed over emails.",
		}),
		ParserFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "html_parser_fallbacks_total",
			Help:      "Number of times the regex href parser replaced the configured one.",
		}),
		BatchRecordsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_records_failed_total",
			Help:      "Number of batch input records that could not be decoded.",
		}),
		AnalyzeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analyze_duration_seconds",
			Help:      "Time spent analyzing a single email.",
			Buckets:   DefaultBuckets,
		}),
	}

	for _, c := range []prometheus.Collector{
		m.EmailsAnalyzed,
		m.PhishyKeywordHits,
		m.Candidates,
		m.CandidatesDropped,
		m.DomainsExtracted,
		m.ParserFallbacks,
		m.BatchRecordsFailed,
		m.AnalyzeDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("could not register collector: %w", err)
		}
	}

	return m, nil
}

// WriteTextfile writes everything gathered by g to path in the text format
// read by the node exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("could not write metrics textfile: %w", err)
	}

	return nil
}
