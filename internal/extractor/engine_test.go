package extractor_test

import (
	"errors"
	"phishlens/internal/extractor"
	mockextractor "phishlens/internal/extractor/mock"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const phishingHTML = `<html><body>
<p>Dear user, <a href="https://www.Secure-Login.test/verify">verify here</a>.</p>
<p>Or paste www.secure-login.test/verify into your browser, or mail help@support.test.</p>
<p>Docs: <a href='http://docs.example.com:8080/guide'>guide</a> <a href=/unsubscribe>unsubscribe</a></p>
</body></html>`

func TestEngine_Extract(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "address never leaks into the result",
			body: "contact me at a@b.com or visit https://example.com",
			want: []string{"example.com"},
		},
		{
			name: "redirect wrapper resolves to destination",
			body: "Click https://tracker.test/go?u=https://evil.test/path now",
			want: []string{"evil.test"},
		},
		{
			name: "comma terminates a url",
			body: "links: https://a.test/x,https://b.test/y",
			want: []string{"a.test"},
		},
		{
			name: "separate urls are all found",
			body: "links: https://a.test/x, https://b.test/y and www.C.test.",
			want: []string{"a.test", "b.test", "c.test"},
		},
		{
			name: "duplicates collapse",
			body: "https://www.example.com/a https://example.com:443/b EXAMPLE.com/c www.example.com",
			want: []string{"example.com"},
		},
		{
			name: "html anchors first, then raw urls",
			body: phishingHTML,
			want: []string{"secure-login.test", "docs.example.com"},
		},
		{
			name: "malformed escapes do not hide a link",
			body: `Sale: https://evil.test/sale/100% off, <a href="https://href.evil.test/a%zz">buy</a>`,
			want: []string{"href.evil.test", "evil.test"},
		},
		{name: "plain text", body: "Lunch tomorrow? Let me know.", want: []string{}},
		{name: "empty", body: "", want: []string{}},
	}

	e := extractor.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, e.Extract(tc.body).Slice())
		})
	}
}

func TestEngine_ExtractWithStats(t *testing.T) {
	set, stats := extractor.New().ExtractWithStats(phishingHTML)
	require.Equal(t, 2, set.Len())
	require.Equal(t, extractor.Stats{
		HrefCandidates: 3,
		RawCandidates:  3,
		Unparseable:    1,
	}, stats)

	set, stats = extractor.New().ExtractWithStats(`<a href="mailto:someone@corp.test">mail</a> and https://ok.test`)
	require.Equal(t, []string{"ok.test"}, set.Slice())
	require.Equal(t, 1, stats.Rejected)
	require.False(t, stats.ParserFallback)
}

func TestEngine_RegexParser(t *testing.T) {
	e := extractor.New(extractor.WithLinkParser(extractor.RegexParser{}))
	require.Equal(t, []string{"secure-login.test", "docs.example.com"}, e.Extract(phishingHTML).Slice())
}

func TestEngine_FallsBackWhenParserFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := `<a href="https://fallback.test/x">x</a> www.raw.test`
	parser := mockextractor.NewMockLinkParser(ctrl)
	parser.EXPECT().Hrefs(body).Return(nil, errors.New("parser unavailable"))
	parser.EXPECT().Name().Return("mock").AnyTimes()

	set, stats := extractor.New(extractor.WithLinkParser(parser)).ExtractWithStats(body)
	require.Equal(t, []string{"fallback.test", "raw.test"}, set.Slice())
	require.True(t, stats.ParserFallback)
	require.Equal(t, 1, stats.HrefCandidates)
}

func TestEngine_NoHrefsWhenFallbackIsSameParser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	body := `<a href="https://href-only.test/x">x</a> and https://raw.test`
	parser := mockextractor.NewMockLinkParser(ctrl)
	parser.EXPECT().Hrefs(body).Return(nil, errors.New("boom"))
	parser.EXPECT().Name().Return(extractor.RegexParserName).AnyTimes()

	set, stats := extractor.New(extractor.WithLinkParser(parser)).ExtractWithStats(body)
	// the raw scanner still sees the href value in the markup
	require.Equal(t, []string{"href-only.test", "raw.test"}, set.Slice())
	require.Zero(t, stats.HrefCandidates)
	require.True(t, stats.ParserFallback)
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := extractor.New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, []string{"secure-login.test", "docs.example.com"}, e.Extract(phishingHTML).Slice())
		}()
	}
	wg.Wait()
}
