package spin

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/thruflo/spinbot/internal/browser"
	"github.com/thruflo/spinbot/internal/console"
	"github.com/thruflo/spinbot/internal/logging"
	"github.com/thruflo/spinbot/internal/poll"
)

// ExitReason indicates why the run stopped.
type ExitReason int

const (
	ExitReasonUnknown     ExitReason = iota
	ExitReasonCompleted              // Requested number of spins performed
	ExitReasonCancelled              // Context cancelled
	ExitReasonSessionLost            // Browser or page handle died
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitReasonCompleted:
		return "completed"
	case ExitReasonCancelled:
		return "cancelled"
	case ExitReasonSessionLost:
		return "session lost"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a run.
type Result struct {
	Reason     ExitReason
	Iterations int
	Tally      *Tally
	Err        error
}

// Options holds controller configuration. Sleep and Rand are injectable so
// tests can run on synthetic time.
type Options struct {
	MaxSpins     int           // Number of spins to attempt (0 = assume a full allowance)
	DelayMin     time.Duration // Lower bound of the inter-spin delay
	DelayMax     time.Duration // Upper bound of the inter-spin delay
	TriggerWait  time.Duration // How long to wait for the spin control
	ResultWait   time.Duration // How long to wait for a result marker
	PollInterval time.Duration // Result marker poll interval
	ReadyRetries int           // Readiness attempts before skipping an iteration
	WalletWait   time.Duration // Wallet modal appear/clear bound

	Sleep func(ctx context.Context, d time.Duration) error
	Rand  func(n int) int
}

// DefaultOptions returns production defaults.
func DefaultOptions() Options {
	return Options{
		MaxSpins:     DefaultRemainingSpins,
		DelayMin:     5 * time.Second,
		DelayMax:     15 * time.Second,
		TriggerWait:  10 * time.Second,
		ResultWait:   15 * time.Second,
		PollInterval: poll.DefaultInterval,
		ReadyRetries: 3,
		WalletWait:   15 * time.Second,
		Sleep:        poll.Sleep,
		Rand:         rand.Intn,
	}
}

// Controller drives the spin cycle against three surfaces: the mini-app
// frame, the host page and the wallet modal frame.
type Controller struct {
	app    browser.Surface
	host   browser.Surface
	wallet browser.Surface
	out    *console.Console
	log    *logging.Logger
	opts   Options

	tally     *Tally
	iteration int
}

// NewController creates a Controller. Zero-valued Options fields fall back
// to DefaultOptions.
func NewController(app, host, wallet browser.Surface, out *console.Console, opts Options) *Controller {
	def := DefaultOptions()
	if opts.MaxSpins <= 0 {
		opts.MaxSpins = def.MaxSpins
	}
	if opts.DelayMin <= 0 {
		opts.DelayMin = def.DelayMin
	}
	if opts.DelayMax < opts.DelayMin {
		opts.DelayMax = opts.DelayMin
	}
	if opts.TriggerWait <= 0 {
		opts.TriggerWait = def.TriggerWait
	}
	if opts.ResultWait <= 0 {
		opts.ResultWait = def.ResultWait
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = def.PollInterval
	}
	if opts.ReadyRetries <= 0 {
		opts.ReadyRetries = def.ReadyRetries
	}
	if opts.WalletWait <= 0 {
		opts.WalletWait = def.WalletWait
	}
	if opts.Sleep == nil {
		opts.Sleep = def.Sleep
	}
	if opts.Rand == nil {
		opts.Rand = def.Rand
	}

	return &Controller{
		app:    app,
		host:   host,
		wallet: wallet,
		out:    out,
		log:    logging.With("component", "spin"),
		opts:   opts,
		tally:  NewTally(),
	}
}

// Run executes the spin cycle until an exit condition is met. Cancellation
// is observed between iterations and during the inter-spin delay; a spin
// already in flight always runs to classification first.
func (c *Controller) Run(ctx context.Context) Result {
	c.out.Step("Starting spin cycle with %d spins", c.opts.MaxSpins)

	for {
		if ctx.Err() != nil {
			return c.result(ExitReasonCancelled, nil)
		}
		if c.iteration >= c.opts.MaxSpins {
			return c.result(ExitReasonCompleted, nil)
		}

		c.iteration++
		c.out.Step("Spin #%d/%d | Wins: %d | Losses: %d",
			c.iteration, c.opts.MaxSpins, c.tally.Wins, c.tally.Losses)

		if err := c.runIteration(ctx); err != nil {
			if errors.Is(err, browser.ErrSessionLost) {
				c.out.Failure("Browser session lost: %v", err)
				c.log.Error("session lost", "iteration", c.iteration, "error", err)
				return c.result(ExitReasonSessionLost, err)
			}
			// Transient UI variance: skip this iteration and carry on.
			c.out.Warn("Skipping spin: %v", err)
			c.log.Warn("iteration skipped", "iteration", c.iteration, "error", err)
		}

		if err := c.delay(ctx); err != nil {
			return c.result(ExitReasonCancelled, nil)
		}
	}
}

// Tally returns the running tally. Valid after Run returns; also carried
// inside Result.
func (c *Controller) Tally() *Tally {
	return c.tally
}

func (c *Controller) result(reason ExitReason, err error) Result {
	return Result{
		Reason:     reason,
		Iterations: c.iteration,
		Tally:      c.tally,
		Err:        err,
	}
}

// runIteration performs one spin: readiness, trigger, classification and,
// on a win, wallet confirmation. The tally records an attempt only once
// the spin control was actually clicked.
func (c *Controller) runIteration(ctx context.Context) error {
	if err := c.ensureReady(ctx); err != nil {
		return err
	}

	if err := c.app.Click(SpinButton, c.opts.TriggerWait); err != nil {
		return fmt.Errorf("spin trigger: %w", err)
	}
	c.out.Success("Clicked SPIN NOW")

	outcome, err := c.awaitOutcome(ctx)
	if err != nil {
		// The spin was triggered, so it counts even when the result
		// lookup died with the session.
		c.tally.Record(Outcome{Kind: KindUnknown})
		return err
	}
	c.tally.Record(outcome)

	switch outcome.Kind {
	case KindWin:
		c.out.Success("🎉 WIN! Total wins: %d", c.tally.Wins)
		if outcome.Asset != "" {
			c.out.Prize("Prize: %s %s", outcome.Amount.String(), outcome.Asset)
		}
		if err := c.confirmWallet(ctx); err != nil {
			return err
		}
	case KindLoss:
		c.out.Info("Loss. Total losses: %d", c.tally.Losses)
	default:
		c.out.Warn("Could not determine spin result")
	}

	c.dismissResult()
	return nil
}

// awaitOutcome polls the app frame for a result marker. A timeout is not
// an error; it classifies as Unknown.
func (c *Controller) awaitOutcome(ctx context.Context) (Outcome, error) {
	var outcome Outcome

	err := poll.Until(ctx, func() (bool, error) {
		wins, err := c.app.Count(WinHeading)
		if err != nil {
			return false, err
		}
		if wins > 0 {
			outcome = Outcome{Kind: KindWin}
			if text, terr := c.app.Text(PrizeText, c.opts.PollInterval); terr == nil {
				outcome.Asset, outcome.Amount = ParsePrize(text)
			} else if errors.Is(terr, browser.ErrSessionLost) {
				return false, terr
			}
			return true, nil
		}

		losses, err := c.app.Count(LossHeading)
		if err != nil {
			return false, err
		}
		if losses > 0 {
			outcome = Outcome{Kind: KindLoss}
			return true, nil
		}
		return false, nil
	}, poll.Options{
		Interval: c.opts.PollInterval,
		Timeout:  c.opts.ResultWait,
		Sleep:    c.opts.Sleep,
	})

	switch {
	case err == nil:
		return outcome, nil
	case errors.Is(err, poll.ErrTimeout):
		return Outcome{Kind: KindUnknown}, nil
	case errors.Is(err, browser.ErrSessionLost):
		return Outcome{Kind: KindUnknown}, err
	case ctx.Err() != nil:
		// Cancelled mid-result: classify as Unknown, the loop top exits.
		return Outcome{Kind: KindUnknown}, nil
	default:
		// Transient lookup failure while polling; treat like a timeout.
		return Outcome{Kind: KindUnknown}, nil
	}
}

// dismissResult clicks the result overlay away. Best effort; a missing
// control means the overlay already cleared.
func (c *Controller) dismissResult() {
	if err := c.app.Click(SpinAgainButton, c.opts.TriggerWait); err != nil {
		c.log.Debug("spin again control not found", "error", err)
		return
	}
	c.out.Success("Clicked Spin Again")
}

// delay sleeps a random duration between DelayMin and DelayMax, returning
// the context error if cancelled mid-wait.
func (c *Controller) delay(ctx context.Context) error {
	d := c.opts.DelayMin
	if span := c.opts.DelayMax - c.opts.DelayMin; span > 0 {
		d += time.Duration(c.opts.Rand(int(span) + 1))
	}
	c.out.Step("⏳ Waiting %s before next spin...", d.Round(time.Second))
	return c.opts.Sleep(ctx, d)
}

// RemainingSpins reads the app's spins-remaining counter, falling back to
// DefaultRemainingSpins when the counter cannot be read or parsed.
func RemainingSpins(app browser.Surface, timeout time.Duration, out *console.Console) int {
	text, err := app.Text(SpinsRemainingValue, timeout)
	if err != nil {
		out.Warn("Could not read spins counter, using default: %d", DefaultRemainingSpins)
		return DefaultRemainingSpins
	}
	n, ok := ParseRemainingSpins(text)
	if !ok {
		out.Warn("Could not parse spins counter %q, using default: %d", text, DefaultRemainingSpins)
		return DefaultRemainingSpins
	}
	out.Info("📊 Spins remaining: %d", n)
	return n
}
