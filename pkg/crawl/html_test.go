package crawl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage_TitleAndText(t *testing.T) {
	body := []byte(`<html>
		<head><title>P0300 Random Misfire</title><style>.x{color:red}</style></head>
		<body>
			<script>var tracking = true;</script>
			<h1>Diagnosing P0300</h1>
			<p>Check the   ignition coils first.</p>
			<noscript>enable javascript</noscript>
		</body>
	</html>`)

	page, err := ParsePage(body, "https://forum.example.com/threads/p0300")
	require.NoError(t, err)

	assert.Equal(t, "P0300 Random Misfire", page.Title)
	assert.Contains(t, page.Text, "Diagnosing P0300")
	assert.Contains(t, page.Text, "Check the ignition coils first.")
	// Script, style, and noscript content never leaks into the text.
	assert.NotContains(t, page.Text, "tracking")
	assert.NotContains(t, page.Text, "color:red")
	assert.NotContains(t, page.Text, "enable javascript")
}

func TestParsePage_SameHostLinks(t *testing.T) {
	body := []byte(`<html><body>
		<a href="/threads/p0301">relative</a>
		<a href="https://forum.example.com/threads/p0302">absolute same host</a>
		<a href="https://other.example.org/spam">other host</a>
		<a href="https://forum.example.com/threads/p0303#post-9">with fragment</a>
		<a href="mailto:mod@example.com">mail</a>
		<a href="ftp://forum.example.com/file">other scheme</a>
		<a href="#top">fragment only</a>
		<a href="/threads/p0301">duplicate</a>
	</body></html>`)

	page, err := ParsePage(body, "https://forum.example.com/index")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://forum.example.com/threads/p0301",
		"https://forum.example.com/threads/p0302",
		"https://forum.example.com/threads/p0303",
	}, page.Links)
}

func TestParsePage_EmptyBody(t *testing.T) {
	page, err := ParsePage(nil, "https://forum.example.com")
	require.NoError(t, err)
	assert.Empty(t, page.Title)
	assert.Empty(t, page.Text)
	assert.Empty(t, page.Links)
}

func TestParsePage_TextJoinedWithSingleSpaces(t *testing.T) {
	body := []byte("<html><body><p>one</p>\n\n<p>two</p>\t<span>three</span></body></html>")
	page, err := ParsePage(body, "https://forum.example.com")
	require.NoError(t, err)
	assert.Equal(t, "one two three", page.Text)
}

func TestDeriveTitle_FallbackChain(t *testing.T) {
	assert.Equal(t, "P0301 Misfire", deriveTitle("P0301 Misfire", "body text", "https://x.test/p"))
	assert.Equal(t, "First line", deriveTitle("  ", "\n\n  First line\nsecond", "https://x.test/p"))
	assert.Equal(t, "https://x.test/p", deriveTitle("", "   \n\t\n", "https://x.test/p"))
}
