package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/spinbot/internal/browser"
	"github.com/thruflo/spinbot/internal/config"
	"github.com/thruflo/spinbot/internal/console"
	"github.com/thruflo/spinbot/internal/logging"
	"github.com/thruflo/spinbot/internal/spin"
)

var (
	runSpins     int
	runForever   bool
	runDelayMin  float64
	runDelayMax  float64
	runHeadless  bool
	runConfigDir string
	runVerbose   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the spin cycle",
	Long: `Launches the configured browser profile, navigates to the Monad Spin
mini-app and spins until the requested count is reached, the on-page spin
allowance runs out, or the process is interrupted.

Ctrl-C stops the run cleanly: the current spin finishes (including wallet
confirmation) and the tally is printed before exit.

Example:
  spinbot run --spins 50
  spinbot run --forever --delay-min 8 --delay-max 20
  spinbot run --headless`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVarP(&runSpins, "spins", "n", 0, "number of spins to perform (default: on-page remaining count)")
	runCmd.Flags().BoolVar(&runForever, "forever", false, "spin until the on-page allowance runs out")
	runCmd.Flags().Float64Var(&runDelayMin, "delay-min", 0, "minimum delay between spins in seconds")
	runCmd.Flags().Float64Var(&runDelayMax, "delay-max", 0, "maximum delay between spins in seconds")
	runCmd.Flags().BoolVar(&runHeadless, "headless", false, "run the browser headless")
	runCmd.Flags().StringVarP(&runConfigDir, "config", "c", "", "directory holding spinbot.yaml and .env (default: cwd)")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runVerbose {
		logging.SetLevel(logging.LevelDebug)
	}

	basePath := runConfigDir
	if basePath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		basePath = cwd
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	out := console.New(os.Stdout)

	if err := browser.Install(); err != nil {
		return err
	}

	out.Step("Launching browser...")
	session, err := browser.Launch(browser.LaunchOptions{
		ExecutablePath: cfg.Browser.ExecutablePath,
		UserDataDir:    cfg.Browser.UserDataDir,
		Headless:       cfg.Browser.Headless,
	})
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logging.Warn("browser shutdown", "error", err)
		}
	}()
	out.Success("Browser launched")

	page := session.Page()
	app, err := browser.Navigate(page, browser.NavigateTarget{
		URL:      cfg.Target.URL,
		AppName:  cfg.Target.AppName,
		FrameURL: cfg.Target.FrameURL,
	}, cfg.Timeouts.Navigate(), out)
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	browser.DismissHostModal(page, 2*time.Second)

	maxSpins := cfg.Loop.MaxSpins
	if maxSpins == 0 || cfg.Loop.Forever {
		maxSpins = spin.RemainingSpins(app, cfg.Timeouts.Trigger(), out)
	}

	ctrl := spin.NewController(
		app,
		browser.PageSurface(page),
		browser.FrameSurface(page, spin.WalletFrame),
		out,
		spin.Options{
			MaxSpins:     maxSpins,
			DelayMin:     cfg.Loop.DelayMin(),
			DelayMax:     cfg.Loop.DelayMax(),
			TriggerWait:  cfg.Timeouts.Trigger(),
			ResultWait:   cfg.Timeouts.Result(),
			ReadyRetries: cfg.Timeouts.ReadyRetries,
			WalletWait:   cfg.Timeouts.Wallet(),
		},
	)

	result := ctrl.Run(ctx)
	printSummary(out, result)

	if result.Reason == spin.ExitReasonSessionLost {
		return fmt.Errorf("session lost after %d spins: %w", result.Iterations, result.Err)
	}
	return nil
}

// applyFlags overlays command-line flags onto the loaded config. Only
// explicitly set flags override; re-validation happens in the caller.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("spins") {
		cfg.Loop.MaxSpins = runSpins
	}
	if cmd.Flags().Changed("forever") {
		cfg.Loop.Forever = runForever
	}
	if cmd.Flags().Changed("delay-min") {
		cfg.Loop.DelayMinSeconds = runDelayMin
	}
	if cmd.Flags().Changed("delay-max") {
		cfg.Loop.DelayMaxSeconds = runDelayMax
	}
	if cmd.Flags().Changed("headless") {
		cfg.Browser.Headless = runHeadless
	}
}

// printSummary renders the final tally.
func printSummary(out *console.Console, result spin.Result) {
	t := result.Tally

	out.Info("Run %s after %d spins", result.Reason, result.Iterations)
	out.Info("Wins: %d | Losses: %d | Unknown: %d", t.Wins, t.Losses, t.Unknown)
	if t.Attempted > 0 {
		out.Info("Win rate: %.1f%%", t.WinRate()*100)
	}
	if t.WalletTimeouts > 0 {
		out.Warn("Wallet confirmations timed out: %d", t.WalletTimeouts)
	}
	if len(t.TotalPrize) > 0 {
		out.Prize("Total winnings:")
		assets := make([]string, 0, len(t.TotalPrize))
		for asset := range t.TotalPrize {
			assets = append(assets, asset)
		}
		sort.Strings(assets)
		for _, asset := range assets {
			out.Prize("   %s: %s", asset, t.TotalPrize[asset].String())
		}
	}
}
