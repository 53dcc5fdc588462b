package spin

import (
	"context"
	"errors"
	"fmt"

	"github.com/thruflo/spinbot/internal/browser"
	"github.com/thruflo/spinbot/internal/poll"
)

// ensureReady clears known overlays until the spin control is reachable:
// the network-switch prompt, a wallet modal left open by a previous
// iteration, and a leftover result overlay. Bounded by ReadyRetries; a
// still-blocked app skips the iteration.
func (c *Controller) ensureReady(ctx context.Context) error {
	for attempt := 1; attempt <= c.opts.ReadyRetries; attempt++ {
		if n, err := c.count(c.app, SwitchNetworkButton); err != nil {
			return err
		} else if n > 0 {
			c.out.Step("Switching to Monad Testnet...")
			if err := c.app.Click(SwitchNetworkButton, c.opts.TriggerWait); err != nil {
				if errors.Is(err, browser.ErrSessionLost) {
					return err
				}
				c.log.Debug("network switch click failed", "error", err)
			}
			continue
		}

		if n, err := c.count(c.host, WalletFrame); err != nil {
			return err
		} else if n > 0 {
			c.out.Step("Waiting for lingering wallet modal to clear...")
			if err := c.awaitWalletGone(ctx); err != nil {
				return err
			}
			continue
		}

		if n, err := c.count(c.app, SpinAgainButton); err != nil {
			return err
		} else if n > 0 {
			if err := c.app.Click(SpinAgainButton, c.opts.TriggerWait); err != nil {
				if errors.Is(err, browser.ErrSessionLost) {
					return err
				}
			}
			continue
		}

		if n, err := c.count(c.app, SpinButton); err != nil {
			return err
		} else if n > 0 {
			return nil
		}

		if err := c.opts.Sleep(ctx, c.opts.PollInterval); err != nil {
			return err
		}
	}
	return fmt.Errorf("app not ready after %d attempts: %w",
		c.opts.ReadyRetries, browser.ErrNotFound)
}

// count wraps Surface.Count, passing session loss through and treating
// every other failure as zero matches.
func (c *Controller) count(s browser.Surface, selector string) (int, error) {
	n, err := s.Count(selector)
	if err != nil {
		if errors.Is(err, browser.ErrSessionLost) {
			return 0, err
		}
		c.log.Debug("count failed", "selector", selector, "error", err)
		return 0, nil
	}
	return n, nil
}

// awaitWalletGone waits bounded for the wallet modal iframe to detach from
// the host page.
func (c *Controller) awaitWalletGone(ctx context.Context) error {
	err := poll.Until(ctx, func() (bool, error) {
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
	if errors.Is(err, poll.ErrTimeout) {
		return fmt.Errorf("wallet modal still open: %w", browser.ErrNotFound)
	}
	return err
}
