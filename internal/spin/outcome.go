package spin

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies a spin result.
type Kind int

const (
	// KindUnknown means no result marker was detected in time.
	KindUnknown Kind = iota
	// KindWin means the win marker was detected.
	KindWin
	// KindLoss means the loss marker was detected.
	KindLoss
)

func (k Kind) String() string {
	switch k {
	case KindWin:
		return "win"
	case KindLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Outcome is a classified spin result. Asset and Amount are only set for
// wins whose prize line parsed.
type Outcome struct {
	Kind   Kind
	Asset  string
	Amount decimal.Decimal
}

// winMarker and lossMarker are the result overlay headings.
const (
	winMarker  = "CONGRATULATIONS"
	lossMarker = "Better luck next time"
)

// prizeRe extracts "<amount> <asset>" from a prize line.
var prizeRe = regexp.MustCompile(`([\d.]+)\s+(\w+)`)

// Classify maps scraped result overlay text to an Outcome. The win marker
// wins over the loss marker if both somehow appear. A win whose prize line
// does not parse is still a win, with a zero amount.
func Classify(text string) Outcome {
	switch {
	case strings.Contains(text, winMarker):
		out := Outcome{Kind: KindWin}
		out.Asset, out.Amount = ParsePrize(text)
		return out
	case strings.Contains(text, lossMarker):
		return Outcome{Kind: KindLoss}
	default:
		return Outcome{Kind: KindUnknown}
	}
}

// ParsePrize extracts the asset symbol and amount from a prize line such
// as "You won 0.00001 WBTC!". A line that does not match returns an empty
// asset and zero amount.
func ParsePrize(text string) (string, decimal.Decimal) {
	m := prizeRe.FindStringSubmatch(text)
	if m == nil {
		return "", decimal.Zero
	}
	amount, err := decimal.NewFromString(m[1])
	if err != nil {
		return "", decimal.Zero
	}
	return m[2], amount
}

// DefaultRemainingSpins is assumed when the remaining-spins counter cannot
// be read or parsed.
const DefaultRemainingSpins = 3000

var digitsRe = regexp.MustCompile(`\d+`)

// ParseRemainingSpins extracts the spin count from the counter text. The
// second return is false when no digits were found.
func ParseRemainingSpins(text string) (int, bool) {
	m := digitsRe.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}
