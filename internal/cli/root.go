package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "spinbot",
	Short: "Automated spinner for the Monad Spin mini-app on Farcaster",
	Long: `Spinbot drives a real logged-in browser session against the Monad Spin
mini-app: it navigates to the app, triggers spins, classifies each result,
confirms prize transactions in the Farcaster wallet modal and reports a
final win/loss tally.`,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("spinbot version {{.Version}}\n")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
