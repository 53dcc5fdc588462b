package cli

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/spinbot/internal/config"
	"github.com/thruflo/spinbot/internal/console"
	"github.com/thruflo/spinbot/internal/spin"
)

func TestApplyFlags_OnlyChangedFlagsOverride(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Loop.MaxSpins = 100

	require.NoError(t, runCmd.Flags().Set("spins", "7"))
	require.NoError(t, runCmd.Flags().Set("delay-min", "2"))
	defer func() {
		// Reset shared flag state for other tests.
		runCmd.Flags().Lookup("spins").Changed = false
		runCmd.Flags().Lookup("delay-min").Changed = false
	}()

	applyFlags(runCmd, &cfg)

	assert.Equal(t, 7, cfg.Loop.MaxSpins)
	assert.Equal(t, 2.0, cfg.Loop.DelayMinSeconds)
	// Untouched flags keep the loaded values.
	assert.Equal(t, config.DefaultDelayMaxSeconds, cfg.Loop.DelayMaxSeconds)
	assert.False(t, cfg.Browser.Headless)
}

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	tally := spin.NewTally()
	tally.Record(spin.Outcome{Kind: spin.KindWin, Asset: "WBTC", Amount: decimal.RequireFromString("0.00003")})
	tally.Record(spin.Outcome{Kind: spin.KindWin, Asset: "MON", Amount: decimal.NewFromInt(5)})
	tally.Record(spin.Outcome{Kind: spin.KindLoss})
	tally.Record(spin.Outcome{Kind: spin.KindUnknown})
	tally.WalletTimeouts = 1

	var buf bytes.Buffer
	printSummary(console.NewPlain(&buf), spin.Result{
		Reason:     spin.ExitReasonCompleted,
		Iterations: 4,
		Tally:      tally,
	})

	out := buf.String()
	assert.Contains(t, out, "Run completed after 4 spins")
	assert.Contains(t, out, "Wins: 2 | Losses: 1 | Unknown: 1")
	assert.Contains(t, out, "Win rate: 50.0%")
	assert.Contains(t, out, "Wallet confirmations timed out: 1")
	assert.Contains(t, out, "MON: 5")
	assert.Contains(t, out, "WBTC: 0.00003")
}

func TestPrintSummary_EmptyRun(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printSummary(console.NewPlain(&buf), spin.Result{
		Reason: spin.ExitReasonCancelled,
		Tally:  spin.NewTally(),
	})

	out := buf.String()
	assert.Contains(t, out, "Run cancelled after 0 spins")
	assert.NotContains(t, out, "Win rate")
	assert.NotContains(t, out, "Total winnings")
}
