package domain

import (
	"golang.org/x/net/publicsuffix"
)

// Domain is a canonical hostname: lowercase, at least one dot, no '@',
// no leading "www." and no port or trailing punctuation.
type Domain string

func (d Domain) String() string { return string(d) }

// Registrable returns the registrable part of the domain (eTLD+1), e.g.
// "mail.example.co.uk" -> "example.co.uk". Domains that are themselves a
// public suffix are returned unchanged.
func (d Domain) Registrable() string {
	r, err := publicsuffix.EffectiveTLDPlusOne(string(d))
	if err != nil {
		return string(d)
	}

	return r
}

// DomainSet is a set of domains that remembers first-insertion order so it
// serializes deterministically. The zero value is ready to use.
type DomainSet struct {
	index map[Domain]struct{}
	order []Domain
}

// NewDomainSet returns a set holding the given domains.
func NewDomainSet(domains ...Domain) DomainSet {
	var s DomainSet
	for _, d := range domains {
		s.Add(d)
	}

	return s
}

// Add inserts d and reports whether it was not already present.
func (s *DomainSet) Add(d Domain) bool {
	if s.index == nil {
		s.index = make(map[Domain]struct{})
	}
	if _, ok := s.index[d]; ok {
		return false
	}
	s.index[d] = struct{}{}
	s.order = append(s.order, d)

	return true
}

// Has reports whether d is in the set.
func (s DomainSet) Has(d Domain) bool {
	_, ok := s.index[d]

	return ok
}

// Len returns the number of domains in the set.
func (s DomainSet) Len() int { return len(s.order) }

// Slice returns the domains as strings in first-seen order. It never returns nil.
func (s DomainSet) Slice() []string {
	out := make([]string, 0, len(s.order))
	for _, d := range s.order {
		out = append(out, string(d))
	}

	return out
}

// Registrable returns the distinct registrable domains of the set in
// first-seen order.
func (s DomainSet) Registrable() []string {
	seen := make(map[string]struct{}, len(s.order))
	out := make([]string, 0, len(s.order))
	for _, d := range s.order {
		r := d.Registrable()
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}

	return out
}
