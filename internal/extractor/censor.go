package extractor

import "regexp"

// censorPattern never ends a match on sentence punctuation so "see
// https://x.test/a." keeps its full stop.
var censorPattern = regexp.MustCompile(`(?i)https?://[^\s)>\],;]+[^\s)>\],;.!?]`)

// CensoredLink replaces every link in a censored body.
const CensoredLink = "[link censored]"

// CensorLinks replaces http(s) links in text with CensoredLink, for showing a
// message body to a user without clickable or copyable destinations.
func CensorLinks(text string) string {
	return censorPattern.ReplaceAllLiteralString(text, CensoredLink)
}
