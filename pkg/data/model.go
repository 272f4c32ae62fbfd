package data

import (
	"regexp"
	"strconv"
	"strings"
)

// Coin is one row of a CoinSnap collection export. Fields are kept as
// exported, including currency symbols in the value columns; the Numeric*
// helpers derive the sortable forms.
type Coin struct {
	ID            int64
	Country       string
	Issuer        string
	Year          string
	Denomination  string
	Grade         string
	Composition   string
	Value         string
	CoinSnapValue string
	MetalWeight   string
	MeltValue     string
	KMNumber      int
	Mintmark      string
	Subject       string
	ObverseURL    string
	ReverseURL    string
	Occurrences   int
}

// Match is a Numista catalogue candidate for a coin.
type Match struct {
	ID        int64
	CoinID    int64
	NumistaID int
	Verified  bool
	KMNumber  int
	Category  string
	Title     string
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ParseKMNumber extracts an integer KM number from strings like
// "KM# 38" or "38". Returns 0 when no digits are present.
func ParseKMNumber(raw string) int {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// NumericValue returns the value as a number for sorting. Anything that
// is not a digit or a dot is stripped first; unparseable values are 0 so
// a numeric sort never sees a non-numeric token.
func (c Coin) NumericValue() float64 {
	var b strings.Builder
	for _, r := range c.Value {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// NumericYear returns the year as an integer, 0 when absent or unparseable.
func (c Coin) NumericYear() int {
	y, err := strconv.Atoi(strings.TrimSpace(c.Year))
	if err != nil {
		return 0
	}
	return y
}

// Key identifies a coin type for deduplication: two export rows with the
// same key are the same coin appearing more than once in the collection.
func (c Coin) Key() string {
	return strings.Join([]string{
		c.Issuer, c.Year, c.Denomination,
		strconv.Itoa(c.KMNumber), c.Mintmark, c.Subject,
	}, "\x1f")
}
