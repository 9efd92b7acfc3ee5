package extractor

import (
	"fmt"
	"phishlens/pkg/serrors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// TreeParserName selects the structural HTML parser.
	TreeParserName = "tree"
	// RegexParserName selects the regular expression parser.
	RegexParserName = "regex"
)

// NewLinkParser returns the LinkParser registered under name.
func NewLinkParser(name string) (LinkParser, error) {
	switch name {
	case TreeParserName:
		return TreeParser{}, nil
	case RegexParserName:
		return RegexParser{}, nil
	default:
		return nil, serrors.With(serrors.ErrInvalidInput, "unknown html parser %q", name)
	}
}

// TreeParser parses the text into an HTML node tree and reads the href of
// every anchor. A new document is built per call.
type TreeParser struct{}

func (TreeParser) Name() string { return TreeParserName }

func (TreeParser) Hrefs(text string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("could not parse html: %w", err)
	}

	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, _ := s.Attr("href"); href != "" {
			hrefs = append(hrefs, href)
		}
	})

	return hrefs, nil
}

// anchorPattern accepts double-quoted, single-quoted and bare href values.
var anchorPattern = regexp.MustCompile(`(?i)<a\b[^>]*\bhref\s*=\s*(?:"([^"]+)"|'([^']+)'|([^>\s]+))[^>]*>`)

// RegexParser scans for anchor tags without building a tree. It is lossy
// (entities stay encoded, commented-out anchors match) and never fails.
type RegexParser struct{}

func (RegexParser) Name() string { return RegexParserName }

func (RegexParser) Hrefs(text string) ([]string, error) {
	var hrefs []string
	for _, m := range anchorPattern.FindAllStringSubmatch(text, -1) {
		for _, group := range m[1:] {
			if group != "" {
				hrefs = append(hrefs, group)

				break
			}
		}
	}

	return hrefs, nil
}
