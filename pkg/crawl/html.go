package crawl

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Page is the useful content of a fetched HTML document.
type Page struct {
	Title string
	Text  string
	Links []string
}

// ParsePage extracts the title, visible text, and same-host links from an
// HTML body. Relative links resolve against baseURL; links to other hosts
// are dropped since the crawler never leaves the seed's domain.
func ParsePage(body []byte, baseURL string) (*Page, error) {
	root, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	page := &Page{}
	var text strings.Builder
	seen := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			case "title":
				if page.Title == "" && n.FirstChild != nil {
					page.Title = strings.TrimSpace(n.FirstChild.Data)
				}
			case "a":
				if link, ok := sameHostLink(n, base); ok && !seen[link] {
					seen[link] = true
					page.Links = append(page.Links, link)
				}
			}
		case html.TextNode:
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				if text.Len() > 0 {
					text.WriteByte(' ')
				}
				text.WriteString(trimmed)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	page.Text = text.String()
	return page, nil
}

// sameHostLink resolves an anchor's href against base and returns it if
// it stays on the same host and uses http(s).
func sameHostLink(n *html.Node, base *url.URL) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key != "href" {
			continue
		}
		href := strings.TrimSpace(attr.Val)
		if href == "" || strings.HasPrefix(href, "#") {
			return "", false
		}
		u, err := base.Parse(href)
		if err != nil {
			return "", false
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return "", false
		}
		if u.Host != base.Host {
			return "", false
		}
		u.Fragment = ""
		return u.String(), true
	}
	return "", false
}
