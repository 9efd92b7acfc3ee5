// Package analyzer combines link domain extraction and keyword scoring into
// the feature payload consumed by the phishing classifier.
package analyzer

import (
	"context"
	"phishlens/internal/config"
	"phishlens/internal/extractor"
	"phishlens/internal/keywords"
	"phishlens/pkg/domain"
	"phishlens/pkg/logger"
	"phishlens/pkg/metrics"
	"time"

	"go.uber.org/zap"
)

// Options configure the output of the analyzer.
type Options struct {
	// Registrable adds the registrable domains (eTLD+1) to the payload.
	Registrable bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Registrable: cfg.Extractor.Registrable,
	}
}

// Deps are the collaborators of the analyzer. Metrics may be nil.
type Deps struct {
	Engine  *extractor.Engine
	Scorer  *keywords.Scorer
	Metrics *metrics.Metrics
}

type analyzer struct {
	options Options
	deps    Deps
}

// New creates an Analyzer. Missing engine or scorer fall back to the
// defaults.
func New(deps Deps, options Options) Analyzer {
	if deps.Engine == nil {
		deps.Engine = extractor.New()
	}
	if deps.Scorer == nil {
		deps.Scorer = keywords.New(nil)
	}

	return &analyzer{
		options: options,
		deps:    deps,
	}
}

// Analyze extracts the link domains of the body and scores subject and body
// for suspicious phrases. From, To and Date are copied to the payload.
func (a *analyzer) Analyze(ctx context.Context, email domain.Email) domain.Features {
	start := time.Now()

	set, stats := a.deps.Engine.ExtractWithStats(email.Body)
	matches := a.deps.Scorer.Matches(email.Body, email.Subject)

	features := domain.Features{
		ID:                email.ID,
		From:              email.From,
		To:                email.To,
		Date:              email.Date,
		HasPhishyKeywords: len(matches) > 0,
		Domains:           set.Slice(),
	}
	if a.options.Registrable {
		features.RegistrableDomains = set.Registrable()
	}

	a.record(set, stats, features.HasPhishyKeywords, time.Since(start))

	if stats.ParserFallback {
		logger.Warn(ctx, "html parser failed, used regex fallback")
	}
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "email analyzed",
			zap.Strings("domains", features.Domains),
			zap.Strings("phrases", matches),
			zap.Int("hrefCandidates", stats.HrefCandidates),
			zap.Int("rawCandidates", stats.RawCandidates),
			zap.Int("unparseable", stats.Unparseable),
			zap.Int("rejected", stats.Rejected))
	}

	return features
}

func (a *analyzer) record(set domain.DomainSet, stats extractor.Stats, phishy bool, took time.Duration) {
	m := a.deps.Metrics
	if m == nil {
		return
	}

	m.EmailsAnalyzed.Inc()
	if phishy {
		m.PhishyKeywordHits.Inc()
	}
	m.Candidates.WithLabelValues(metrics.SourceHref).Add(float64(stats.HrefCandidates))
	m.Candidates.WithLabelValues(metrics.SourceRaw).Add(float64(stats.RawCandidates))
	m.CandidatesDropped.WithLabelValues(metrics.ReasonUnparseable).Add(float64(stats.Unparseable))
	m.CandidatesDropped.WithLabelValues(metrics.ReasonRejected).Add(float64(stats.Rejected))
	m.DomainsExtracted.Add(float64(set.Len()))
	if stats.ParserFallback {
		m.ParserFallbacks.Inc()
	}
	m.AnalyzeDuration.Observe(took.Seconds())
}
