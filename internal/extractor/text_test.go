package extractor_test

import (
	"phishlens/internal/extractor"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripAddresses(t *testing.T) {
	require.Equal(t, "write to  today", extractor.StripAddresses("write to john.doe@mail.example.com today"))
	require.Equal(t, "contact me at  or visit https://example.com",
		extractor.StripAddresses("contact me at a@b.com or visit https://example.com"))

	plain := "nothing to strip at https://example.com"
	require.Equal(t, plain, extractor.StripAddresses(plain))
	require.Equal(t, plain, extractor.StripAddresses(extractor.StripAddresses(plain)))
}

func TestScanRawURLs(t *testing.T) {
	got := extractor.ScanRawURLs(`Visit WWW.Example.org/path. Or HTTPS://secure.test/a?b=c"quoted" and a@b.com`)
	require.Equal(t, []string{"WWW.Example.org/path.", "HTTPS://secure.test/a?b=c"}, got)

	got = extractor.ScanRawURLs("https://x.test next <https://y.test/p>")
	require.Equal(t, []string{"https://x.test", "https://y.test/p"}, got)

	require.Empty(t, extractor.ScanRawURLs("no links, only wwwdot and http:/broken"))
}

func TestCensorLinks(t *testing.T) {
	require.Equal(t, "Go to [link censored]. Thanks",
		extractor.CensorLinks("Go to https://evil.test/login. Thanks"))
	require.Equal(t, "a [link censored], b [link censored])",
		extractor.CensorLinks("a HTTP://one.test/x, b https://two.test)"))
	require.Equal(t, "www.example.com stays", extractor.CensorLinks("www.example.com stays"))
}
