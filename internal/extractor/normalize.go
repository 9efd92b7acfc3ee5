package extractor

import (
	"phishlens/pkg/domain"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

var (
	portSuffix    = regexp.MustCompile(`:\d+$`)
	trailingNoise = regexp.MustCompile(`[^\w.-]+$`)
)

// Normalize reduces a parsed host to its canonical domain. It is the only
// admission gate: nothing upstream is trusted to be a valid domain.
//
// The rules, in order:
//   - drop a trailing ":<port>"
//   - lower-case, and convert internationalized names to their ASCII form
//   - remove exactly one leading "www." (so "www.www.x.com" keeps one)
//   - drop trailing characters other than letters, digits, '_', '.', '-'
//   - reject results without a '.' or with an '@'
//
// Normalizing an already canonical domain returns it unchanged.
func Normalize(host string) (domain.Domain, bool) {
	d := strings.ToLower(portSuffix.ReplaceAllLiteralString(host, ""))

	if !isASCII(d) {
		// the lowercased form is kept when the name is not valid IDNA
		if a, err := idna.Lookup.ToASCII(d); err == nil {
			d = a
		}
	}

	d = strings.TrimPrefix(d, "www.")
	d = trailingNoise.ReplaceAllLiteralString(d, "")

	if !strings.Contains(d, ".") || strings.Contains(d, "@") {
		return "", false
	}

	return domain.Domain(d), true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
