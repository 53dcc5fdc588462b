package spin

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTally_Record(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Record(Outcome{Kind: KindWin, Asset: "WBTC", Amount: decimal.RequireFromString("0.00001")})
	tally.Record(Outcome{Kind: KindLoss})
	tally.Record(Outcome{Kind: KindUnknown})
	tally.Record(Outcome{Kind: KindWin, Asset: "WBTC", Amount: decimal.RequireFromString("0.00002")})

	assert.Equal(t, 4, tally.Attempted)
	assert.Equal(t, 2, tally.Wins)
	assert.Equal(t, 1, tally.Losses)
	assert.Equal(t, 1, tally.Unknown)
	assert.LessOrEqual(t, tally.Wins+tally.Losses, tally.Attempted)
}

func TestTally_PrizeSummationIsExact(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Record(Outcome{Kind: KindWin, Asset: "WBTC", Amount: decimal.RequireFromString("0.00001")})
	tally.Record(Outcome{Kind: KindWin, Asset: "WBTC", Amount: decimal.RequireFromString("0.00002")})

	got, ok := tally.TotalPrize["WBTC"]
	require.True(t, ok)
	assert.Equal(t, "0.00003", got.String())
}

func TestTally_PerAssetTotals(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Record(Outcome{Kind: KindWin, Asset: "MON", Amount: decimal.NewFromInt(5)})
	tally.Record(Outcome{Kind: KindWin, Asset: "ETH", Amount: decimal.RequireFromString("0.002")})
	tally.Record(Outcome{Kind: KindWin, Asset: "MON", Amount: decimal.NewFromInt(3)})

	assert.Len(t, tally.TotalPrize, 2)
	assert.Equal(t, "8", tally.TotalPrize["MON"].String())
	assert.Equal(t, "0.002", tally.TotalPrize["ETH"].String())
}

func TestTally_ZeroAmountWin(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Record(Outcome{Kind: KindWin})

	assert.Equal(t, 1, tally.Wins)
	assert.Empty(t, tally.TotalPrize)
}

func TestTally_WinRate(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	assert.Zero(t, tally.WinRate())

	tally.Record(Outcome{Kind: KindWin})
	tally.Record(Outcome{Kind: KindLoss})
	tally.Record(Outcome{Kind: KindLoss})
	tally.Record(Outcome{Kind: KindLoss})

	assert.InDelta(t, 0.25, tally.WinRate(), 1e-9)
}
