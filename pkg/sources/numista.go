package sources

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/benckx/coinfolio/pkg/data"
	"golang.org/x/net/html"
)

const numistaBaseURL = "https://en.numista.com"

// retryWaits are the successive delays between failed fetch attempts.
var retryWaits = []time.Duration{
	5 * time.Second, 10 * time.Second, 20 * time.Second, 40 * time.Second, 60 * time.Second,
}

var parenthetical = regexp.MustCompile(`\s*\(.*?\)`)

// SearchQuery builds the catalogue search path for a coin. The km
// argument is the raw Krause reference ("KM# 38", "38" or empty).
func SearchQuery(issuer, denomination, year, km string) string {
	// Numista spells these differently than CoinSnap exports them
	denomination = strings.ReplaceAll(denomination, "kopeks", "kopecks")
	denomination = strings.ReplaceAll(denomination, "kopek", "kopeck")
	denomination = strings.ReplaceAll(denomination, "rubles", "roubles")
	denomination = strings.ReplaceAll(denomination, "ruble", "rouble")
	// Drop parenthetical alternate names, e.g. "2 shillings (florin)"
	denomination = strings.TrimSpace(parenthetical.ReplaceAllString(denomination, ""))

	kmNum := ""
	if km != "" {
		kmNum = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(km, "KM#", ""), "KM #", ""))
	}

	// With a known KM number the no= param is the precise filter; adding
	// denomination to the free-text query only hurts results when the
	// spelling differs.
	parts := []string{issuer, year}
	if kmNum == "" {
		parts = []string{issuer, denomination, year}
	}

	return fmt.Sprintf(
		"/catalogue/index.php?r=%s&st=147&cat=y&im1=&im2=&ru=&ie=&ca=3&no=%s&v=&cu=&a=&dg=&i=&b=&m=&f=&t=&t2=&w=&mt=&u=&g=&c=&wi=&sw=",
		url.QueryEscape(strings.Join(parts, " ")), url.QueryEscape(kmNum))
}

// Numista searches the public catalogue for candidate matches. Requests
// carry a browser user agent; the plain one gets served an interstitial.
type Numista struct {
	client  *http.Client
	baseURL string
	waits   []time.Duration
}

func NewNumista() *Numista {
	return &Numista{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: numistaBaseURL,
		waits:   retryWaits,
	}
}

// Search queries the catalogue for a coin and returns the parsed
// candidates. km may be empty to search by issuer, denomination and
// year alone.
func (n *Numista) Search(issuer, denomination, year, km string) ([]data.Match, error) {
	page, err := n.fetch(n.baseURL + SearchQuery(issuer, denomination, year, km))
	if err != nil {
		return nil, err
	}
	return parseResults(page)
}

func (n *Numista) fetch(searchURL string) (io.ReadCloser, error) {
	var lastErr error
	for attempt := 0; attempt < len(n.waits); attempt++ {
		if attempt > 0 {
			wait := n.waits[attempt-1]
			fmt.Printf("  ⚠️  Attempt %d/%d failed (%v). Retrying in %s …\n",
				attempt, len(n.waits), lastErr, wait)
			time.Sleep(wait)
		}

		req, err := http.NewRequest("GET", searchURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) "+
				"AppleWebKit/537.36 (KHTML, like Gecko) "+
				"Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := n.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("unexpected status %s", resp.Status)
			continue
		}
		return resp.Body, nil
	}
	return nil, fmt.Errorf("failed to fetch %s after %d attempts: %w", searchURL, len(n.waits), lastErr)
}

var (
	pieceHref  = regexp.MustCompile(`/catalogue/pieces(\d+)\.html`)
	plainHref  = regexp.MustCompile(`^/(\d+)$`)
	kmRef      = regexp.MustCompile(`\bKM#\s*(\d+)`)
	coinsCrumb = regexp.MustCompile(`^Coins\s*[›>]\s*`)
)

// parseResults extracts candidate coins from a catalogue search page.
// Each result sits in a div whose class contains "description_piece":
// the Numista id comes from the title anchor's href, the category from
// the <em> breadcrumb, the KM number from the description text.
func parseResults(page io.ReadCloser) ([]data.Match, error) {
	defer page.Close()

	doc, err := html.Parse(page)
	if err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	var matches []data.Match
	seen := make(map[int]bool)

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "description_piece") {
			if m, ok := parsePiece(n); ok && !seen[m.NumistaID] {
				seen[m.NumistaID] = true
				matches = append(matches, m)
			}
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(doc)

	return matches, nil
}

func parsePiece(piece *html.Node) (data.Match, bool) {
	var m data.Match
	found := false

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a":
				if !found {
					if id, ok := numistaID(attr(n, "href")); ok {
						m.NumistaID = id
						m.Title = collapseWhitespace(textContent(n))
						found = true
					}
				}
			case "em":
				if text := coinsCrumb.ReplaceAllString(strings.TrimSpace(textContent(n)), ""); text != "" {
					m.Category = text
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(piece)

	if km := kmRef.FindStringSubmatch(textContent(piece)); km != nil {
		m.KMNumber, _ = strconv.Atoi(km[1])
	}

	return m, found
}

func numistaID(href string) (int, bool) {
	groups := pieceHref.FindStringSubmatch(href)
	if groups == nil {
		groups = plainHref.FindStringSubmatch(href)
	}
	if groups == nil {
		return 0, false
	}
	id, err := strconv.Atoi(groups[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

func hasClass(n *html.Node, class string) bool {
	return strings.Contains(attr(n, "class"), class)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// textContent flattens all text under a node; <br> counts as a space so
// titles broken across lines keep their word boundary.
func textContent(n *html.Node) string {
	var b strings.Builder
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			b.WriteString(" ")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)
	return b.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
