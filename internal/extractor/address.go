package extractor

import "regexp"

var addressPattern = regexp.MustCompile(`\b[\w.-]+@[\w.-]+\.\w+\b`)

// StripAddresses removes email addresses from text so their domains are not
// mistaken for link targets.
func StripAddresses(text string) string {
	return addressPattern.ReplaceAllLiteralString(text, "")
}
