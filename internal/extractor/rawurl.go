package extractor

import "regexp"

// rawURLPattern only stops at whitespace, angle
// brackets, quotes and '@', leaving trailing punctuation to Clean.
var rawURLPattern = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s\pZ\v<>"'@]+`)

// ScanRawURLs returns every bare URL-looking substring of text, in order.
func ScanRawURLs(text string) []string {
	return rawURLPattern.FindAllString(text, -1)
}
