package extractor

import "phishlens/pkg/domain"

// Stats describes what happened during one extraction. It lets callers
// record metrics without the engine depending on them.
type Stats struct {
	// HrefCandidates is the number of href values found.
	HrefCandidates int
	// RawCandidates is the number of bare URLs found in the text.
	RawCandidates int
	// Unparseable counts candidates Clean discarded.
	Unparseable int
	// Rejected counts hosts Normalize refused.
	Rejected int
	// ParserFallback is set when the configured LinkParser failed and the
	// regex parser was used instead.
	ParserFallback bool
}

// Engine extracts link domains from email bodies. It holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	parser   LinkParser
	fallback LinkParser
}

// Option configures an Engine.
type Option func(*Engine)

// WithLinkParser sets the primary href parser. The regex parser remains the
// fallback.
func WithLinkParser(p LinkParser) Option {
	return func(e *Engine) {
		if p != nil {
			e.parser = p
		}
	}
}

// New returns an Engine using the tree parser unless configured otherwise.
func New(opts ...Option) *Engine {
	e := &Engine{
		parser:   TreeParser{},
		fallback: RegexParser{},
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract returns the set of canonical domains linked from body. An empty
// set is a normal result.
func (e *Engine) Extract(body string) domain.DomainSet {
	set, _ := e.ExtractWithStats(body)

	return set
}

// ExtractWithStats is Extract plus a description of the run.
func (e *Engine) ExtractWithStats(body string) (domain.DomainSet, Stats) {
	var (
		set   domain.DomainSet
		stats Stats
	)

	text := StripAddresses(body)

	hrefs, fellBack := e.hrefs(text)
	raw := ScanRawURLs(text)
	stats.HrefCandidates = len(hrefs)
	stats.RawCandidates = len(raw)
	stats.ParserFallback = fellBack

	for _, candidate := range append(hrefs, raw...) {
		parsed, ok := Clean(candidate)
		if !ok {
			stats.Unparseable++

			continue
		}
		d, ok := Normalize(parsed.Host)
		if !ok {
			stats.Rejected++

			continue
		}
		set.Add(d)
	}

	return set, stats
}

// hrefs runs the primary parser, then the fallback. If both fail the text
// simply has no href candidates.
func (e *Engine) hrefs(text string) ([]string, bool) {
	hrefs, err := e.parser.Hrefs(text)
	if err == nil {
		return hrefs, false
	}
	if e.fallback == nil || e.fallback.Name() == e.parser.Name() {
		return nil, true
	}

	hrefs, err = e.fallback.Hrefs(text)
	if err != nil {
		return nil, true
	}

	return hrefs, true
}
