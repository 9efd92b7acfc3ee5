package extractor

// LinkParser pulls raw href values out of HTML-ish text. Values are returned
// as written (not resolved against a base, not filtered by scheme) in
// document order, without empty values.
//
//go:generate mockgen -package mockextractor -source=interface.go -destination=mock/mockextractor.go *
type LinkParser interface {
	// Name identifies the implementation in logs and config.
	Name() string
	// Hrefs returns the href values of every anchor in text.
	Hrefs(text string) ([]string, error)
}
