package spin

import (
	"context"
	"errors"

	"github.com/thruflo/spinbot/internal/browser"
	"github.com/thruflo/spinbot/internal/poll"
)

// confirmWallet approves the prize transaction for a win: wait for the
// wallet modal iframe on the host page, click Confirm inside it, then wait
// bounded for the modal to detach. The win is already recorded by the time
// this runs; confirmation failures warn and continue. Only session loss is
// returned.
//
// The modal drives a real transaction, so confirmation ignores
// cancellation once started; an interrupt takes effect afterwards.
func (c *Controller) confirmWallet(ctx context.Context) error {
	wctx := context.WithoutCancel(ctx)

	c.out.Step("💳 Waiting for wallet modal...")
	if err := c.host.WaitVisible(WalletFrame, c.opts.WalletWait); err != nil {
		if errors.Is(err, browser.ErrSessionLost) {
			return err
		}
		c.out.Info("Transaction confirmation not needed")
		return nil
	}
	c.out.Success("Wallet modal found")

	if err := c.clickConfirm(); err != nil {
		if errors.Is(err, browser.ErrSessionLost) {
			return err
		}
		c.out.Warn("Could not click Confirm button: %v", err)
		return nil
	}
	c.out.Success("Clicked Confirm")

	err := poll.Until(wctx, func() (bool, error) {
		n, err := c.count(c.host, WalletFrame)
		if err != nil {
			return false, err
		}
		return n == 0, nil
	}, poll.Options{
		Interval: c.opts.PollInterval,
		Timeout:  c.opts.WalletWait,
		Sleep:    c.opts.Sleep,
	})
	switch {
	case err == nil:
		c.out.Success("💳 Wallet modal closed")
		return nil
	case errors.Is(err, poll.ErrTimeout):
		c.tally.WalletTimeouts++
		c.out.Warn("Wallet modal may still be open")
		c.log.Warn("wallet confirmation timed out", "iteration", c.iteration)
		return nil
	default:
		return err
	}
}

// clickConfirm tries the confirm control selectors in order.
func (c *Controller) clickConfirm() error {
	err := c.wallet.Click(WalletConfirm, c.opts.WalletWait)
	if err == nil || errors.Is(err, browser.ErrSessionLost) {
		return err
	}
	return c.wallet.Click(WalletConfirmFallback, c.opts.WalletWait)
}
