// Package extractor turns untrusted email text into the set of domains its
// links point at.
//
// The pipeline is: strip email addresses, collect candidates from anchor
// hrefs and from bare URLs in the text, clean each candidate into a parsed
// URL, then normalize its host into a canonical domain. Every stage is best
// effort; a candidate that fails any stage simply contributes nothing, so
// extraction never returns an error.
//
// Two rules are heuristics rather than RFC 3986 behavior: a comma always
// terminates a URL, and a URL embedded inside another URL (a redirect
// wrapper) replaces it.
package extractor
