package sources

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchQueryWithKM(t *testing.T) {
	q := SearchQuery("Papal States", "10 soldi", "1867", "KM# 38")

	// With a KM number the free-text query drops the denomination
	assert.Contains(t, q, "r=Papal+States+1867")
	assert.Contains(t, q, "no=38")
	assert.NotContains(t, q, "soldi")
}

func TestSearchQueryWithoutKM(t *testing.T) {
	q := SearchQuery("Russian Empire", "2 kopeks", "1899", "")

	assert.Contains(t, q, "r=Russian+Empire+2+kopecks+1899")
	assert.Contains(t, q, "no=&")
}

func TestSearchQueryNormalizesDenomination(t *testing.T) {
	q := SearchQuery("Russia", "1 ruble", "1913", "")
	assert.Contains(t, q, "1+rouble")

	q = SearchQuery("Australia", "2 shillings (florin)", "1927", "")
	assert.Contains(t, q, "2+shillings+1927")
	assert.NotContains(t, q, "florin")
}

const sampleResultsPage = `<html><body>
<div class="result description_piece">
  <a href="/catalogue/pieces10739.html">10 Soldi -<br>Pius IX</a>
  <em>Coins › Standard circulation coins</em>
  <p>Silver · KM# 38, Schön# 90</p>
</div>
<div class="result description_piece">
  <a href="/10740">10 Soldi - Pius IX (large bust)</a>
  <em>Coins > Commemorative coins</em>
</div>
<div class="result description_piece">
  <a href="/catalogue/pieces10739.html">10 Soldi - Pius IX</a>
  <em>Coins › Standard circulation coins</em>
</div>
</body></html>`

func TestSearchParsesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla")
		w.Write([]byte(sampleResultsPage))
	}))
	defer server.Close()

	n := NewNumista()
	n.baseURL = server.URL

	matches, err := n.Search("Papal States", "10 soldi", "1867", "KM# 38")
	require.NoError(t, err)
	require.Len(t, matches, 2, "duplicate ids must be dropped")

	assert.Equal(t, 10739, matches[0].NumistaID)
	assert.Equal(t, "10 Soldi - Pius IX", matches[0].Title)
	assert.Equal(t, "Standard circulation coins", matches[0].Category)
	assert.Equal(t, 38, matches[0].KMNumber)

	assert.Equal(t, 10740, matches[1].NumistaID)
	assert.Equal(t, "Commemorative coins", matches[1].Category)
	assert.Equal(t, 0, matches[1].KMNumber)
}

func TestSearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>No results</p></body></html>"))
	}))
	defer server.Close()

	n := NewNumista()
	n.baseURL = server.URL

	matches, err := n.Search("Atlantis", "1 shell", "1200", "")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchRetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(sampleResultsPage))
	}))
	defer server.Close()

	n := NewNumista()
	n.baseURL = server.URL
	n.waits = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

	matches, err := n.Search("Papal States", "10 soldi", "1867", "")
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Len(t, matches, 2)
}

func TestSearchGivesUpAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	n := NewNumista()
	n.baseURL = server.URL
	n.waits = []time.Duration{time.Millisecond, time.Millisecond}

	_, err := n.Search("Papal States", "10 soldi", "1867", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}
