package spin

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		wantKind   Kind
		wantAsset  string
		wantAmount string
	}{
		{
			name:       "win with prize",
			text:       "CONGRATULATIONS\nYou won 0.00001 WBTC!",
			wantKind:   KindWin,
			wantAsset:  "WBTC",
			wantAmount: "0.00001",
		},
		{
			name:       "win with integer prize",
			text:       "CONGRATULATIONS 5 MON",
			wantKind:   KindWin,
			wantAsset:  "MON",
			wantAmount: "5",
		},
		{
			name:       "win without parseable prize",
			text:       "CONGRATULATIONS",
			wantKind:   KindWin,
			wantAsset:  "",
			wantAmount: "0",
		},
		{
			name:     "loss",
			text:     "Better luck next time",
			wantKind: KindLoss,
		},
		{
			name:     "empty text",
			text:     "",
			wantKind: KindUnknown,
		},
		{
			name:     "unrelated text",
			text:     "Spins Remaining 2998",
			wantKind: KindUnknown,
		},
		{
			name:       "win marker beats loss marker",
			text:       "CONGRATULATIONS Better luck next time",
			wantKind:   KindWin,
			wantAmount: "0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.text)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantAsset, got.Asset)
			if tt.wantAmount != "" {
				want, err := decimal.NewFromString(tt.wantAmount)
				require.NoError(t, err)
				assert.True(t, got.Amount.Equal(want),
					"amount = %s, want %s", got.Amount, want)
			}
		})
	}
}

func TestParsePrize(t *testing.T) {
	t.Parallel()

	asset, amount := ParsePrize("You won 0.002 ETH today")
	assert.Equal(t, "ETH", asset)
	assert.True(t, amount.Equal(decimal.RequireFromString("0.002")))

	asset, amount = ParsePrize("no prize here")
	assert.Equal(t, "", asset)
	assert.True(t, amount.IsZero())
}

func TestParseRemainingSpins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   int
		wantOK bool
	}{
		{name: "bare number", text: "2998", want: 2998, wantOK: true},
		{name: "number with label", text: "Spins Remaining: 15", want: 15, wantOK: true},
		{name: "zero", text: "0", want: 0, wantOK: true},
		{name: "no digits", text: "Spins Remaining", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseRemainingSpins(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "win", KindWin.String())
	assert.Equal(t, "loss", KindLoss.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
