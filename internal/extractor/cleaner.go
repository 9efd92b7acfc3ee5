package extractor

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// ParsedURL is what remains of a candidate once it has been cleaned and
// parsed. Host is the authority without userinfo, i.e. host[:port].
type ParsedURL struct {
	Scheme string
	Host   string
	Path   string
}

const (
	leadingJunk  = `<["'(`
	trailingJunk = `>]"').,;:=`
)

var (
	schemeMarker = regexp.MustCompile(`(?i)https?://`)
	// an unwrapped URL runs up to the first unsafe character
	unwrappedURL = regexp.MustCompile(`(?i)^https?://[^\s<>"'\])]+`)
	schemePrefix = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://`)
	bareDomain   = regexp.MustCompile(`(?i)^[\w.-]+\.[a-z]{2,}$`)
	// scheme, authority and the path that follows it
	authorityURL = regexp.MustCompile(`(?i)^([a-z][a-z0-9+.-]*)://([^/?#]*)([^?#]*)`)
)

// Clean turns a candidate into a ParsedURL with a non-empty Host, or reports
// false when nothing usable is left. The steps, in order:
//   - trim wrapping brackets, quotes and trailing sentence punctuation
//   - cut everything from the first comma on
//   - unwrap the first URL embedded after the start of the string
//   - parse, adding "http://" for scheme-less candidates
//   - fall back to a bare domain found in the path
func Clean(candidate string) (ParsedURL, bool) {
	s := unwrap(truncateAtComma(trimWrapping(candidate)))
	if s == "" {
		return ParsedURL{}, false
	}

	u, ok := parse(s)
	if !ok {
		return ParsedURL{}, false
	}

	host := u.Host
	if host == "" {
		// "http:example.com" parses with the name as opaque data
		p := u.Path
		if p == "" {
			p = u.Opaque
		}
		if bareDomain.MatchString(p) {
			host = p
		}
	}
	if host == "" {
		return ParsedURL{}, false
	}

	return ParsedURL{Scheme: u.Scheme, Host: host, Path: u.Path}, true
}

func trimWrapping(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(leadingJunk, r)
	})

	return strings.TrimRightFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(trailingJunk, r)
	})
}

// truncateAtComma treats a comma as the end of the URL. Commas are legal in
// URLs but pasted link lists are far more common in mail than URLs with commas.
func truncateAtComma(s string) string {
	if i := strings.IndexByte(s, ','); i >= 0 {
		return s[:i]
	}

	return s
}

// unwrap prefers the destination of a redirect wrapper: the first http(s)
// URL starting after position zero replaces the whole string. A URL at
// position zero is only cut at its first unsafe character.
func unwrap(s string) string {
	locs := schemeMarker.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return s
	}

	start := locs[0][0]
	for _, loc := range locs {
		if loc[0] > 0 {
			start = loc[0]

			break
		}
	}

	if m := unwrappedURL.FindString(s[start:]); m != "" {
		return m
	}

	return s[start:]
}

// parseAttempt is one way of reading a cleaned candidate as a URL.
type parseAttempt func(s string) (*url.URL, bool)

// parseChain is tried in order; the first attempt that succeeds wins.
var parseChain = []parseAttempt{ //nolint: gochecknoglobals
	parseDirect,
	parseWithHTTP,
	parseAuthority,
}

func parse(s string) (*url.URL, bool) {
	for _, attempt := range parseChain {
		if u, ok := attempt(s); ok {
			return u, true
		}
	}

	return nil, false
}

// parseDirect parses s as an absolute URL. Scheme-less "www." and "//"
// candidates get an http scheme first.
func parseDirect(s string) (*url.URL, bool) {
	if !schemePrefix.MatchString(s) {
		switch {
		case len(s) >= 4 && strings.EqualFold(s[:4], "www."):
			return parseURL("http://" + s)
		case strings.HasPrefix(s, "//"):
			return parseURL("http:" + s)
		}
	}

	u, ok := parseURL(s)
	if !ok || u.Scheme == "" {
		return nil, false
	}

	return u, true
}

// parseWithHTTP handles bare "example.com/path" candidates.
func parseWithHTTP(s string) (*url.URL, bool) {
	return parseURL("http://" + s)
}

// parseAuthority reads the host straight from the authority when net/url
// rejects the rest of the URL, e.g. a stray '%' in "https://x.test/100%".
func parseAuthority(s string) (*url.URL, bool) {
	if !schemePrefix.MatchString(s) {
		s = "http://" + strings.TrimPrefix(s, "//")
	}

	m := authorityURL.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}

	host := m[2]
	if i := strings.LastIndexByte(host, '@'); i >= 0 {
		host = host[i+1:]
	}
	if host == "" {
		return nil, false
	}

	return &url.URL{Scheme: strings.ToLower(m[1]), Host: host, Path: m[3]}, true
}

func parseURL(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}

	return u, true
}
