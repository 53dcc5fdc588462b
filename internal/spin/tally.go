package spin

import "github.com/shopspring/decimal"

// Tally accumulates per-run spin statistics. It is not safe for concurrent
// use; the controller owns it for the duration of a run.
type Tally struct {
	Attempted      int
	Wins           int
	Losses         int
	Unknown        int
	WalletTimeouts int

	// TotalPrize holds winnings summed per asset symbol.
	TotalPrize map[string]decimal.Decimal
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{TotalPrize: make(map[string]decimal.Decimal)}
}

// Record counts one attempted spin and its outcome. Win amounts are added
// to the per-asset totals; zero-amount wins only bump the win counter.
func (t *Tally) Record(o Outcome) {
	t.Attempted++
	switch o.Kind {
	case KindWin:
		t.Wins++
		if o.Asset != "" {
			t.TotalPrize[o.Asset] = t.TotalPrize[o.Asset].Add(o.Amount)
		}
	case KindLoss:
		t.Losses++
	default:
		t.Unknown++
	}
}

// WinRate returns wins as a fraction of attempted spins, 0 when nothing
// was attempted.
func (t *Tally) WinRate() float64 {
	if t.Attempted == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Attempted)
}
