// Package keywords flags phrasing commonly used by phishing mails.
package keywords

import "strings"

// defaultPhrases is copied by DefaultPhrases and never handed out directly.
var defaultPhrases = [...]string{ //nolint: gochecknoglobals
	"verify", "reset your password", "confirm your identity", "sign in", "unauthorized login",
	"your account", "update your account", "security alert", "click here", "login attempt",
	"secure message", "reactivate", "reset password", "confirm account", "your credentials",
	"important notice", "urgent", "immediate action", "unusual activity", "suspicious login",
	"account locked", "account suspended", "you must", "action required", "follow the link",
	"verify your email", "check the attachment", "shared document", "document has been shared",
	"view document", "dropbox", "onedrive", "sharepoint", "google drive", "view attachment",
	"encrypted message", "compliance notice", "security update", "new device", "you have received a message",
}

// DefaultPhrases returns a fresh copy of the built-in phrase list.
func DefaultPhrases() []string {
	out := make([]string, len(defaultPhrases))
	copy(out, defaultPhrases[:])

	return out
}

// Scorer reports whether a message contains a suspicious phrase. Matching is
// a plain substring test on lower-cased text, so "reverify" matches "verify".
// A Scorer is immutable and safe for concurrent use.
type Scorer struct {
	phrases []string
}

// New returns a Scorer for the given phrases. The list is copied and
// lower-cased; empty phrases are ignored. A list without any usable phrase
// (nil, empty or only blanks) means DefaultPhrases.
func New(phrases []string) *Scorer {
	s := &Scorer{phrases: lowerNonEmpty(phrases)}
	if len(s.phrases) == 0 {
		s.phrases = lowerNonEmpty(defaultPhrases[:])
	}

	return s
}

func lowerNonEmpty(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Phrases returns a copy of the configured phrases.
func (s *Scorer) Phrases() []string {
	out := make([]string, len(s.phrases))
	copy(out, s.phrases)

	return out
}

// ContainsSuspiciousPhrase reports whether any phrase occurs in body or subject.
func (s *Scorer) ContainsSuspiciousPhrase(body, subject string) bool {
	text := normalizedText(body, subject)
	for _, p := range s.phrases {
		if strings.Contains(text, p) {
			return true
		}
	}

	return false
}

// Matches returns every phrase occurring in body or subject, in list order.
func (s *Scorer) Matches(body, subject string) []string {
	text := normalizedText(body, subject)

	var out []string
	for _, p := range s.phrases {
		if strings.Contains(text, p) {
			out = append(out, p)
		}
	}

	return out
}

// normalizedText joins body and subject with a space, so a phrase can span
// the end of the body and the start of the subject.
func normalizedText(body, subject string) string {
	return strings.ToLower(body + " " + subject)
}
