package config

import "time"

// Browser configures the Chromium session the bot drives. The executable
// path and user data directory point at an existing browser profile so the
// Farcaster login survives restarts.
type Browser struct {
	ExecutablePath string `yaml:"executable_path"`
	UserDataDir    string `yaml:"user_data_dir"`
	Headless       bool   `yaml:"headless"`
}

// Target identifies the mini-app the bot automates.
type Target struct {
	URL      string `yaml:"url"`      // host page, e.g. https://farcaster.xyz
	AppName  string `yaml:"app_name"` // mini-app tile name, e.g. "Monad Spin"
	FrameURL string `yaml:"frame_url"` // src of the mini-app iframe
}

// Loop bounds the spin cycle.
type Loop struct {
	MaxSpins        int     `yaml:"max_spins"` // 0 means use the on-page remaining count
	Forever         bool    `yaml:"forever"`
	DelayMinSeconds float64 `yaml:"delay_min_seconds"`
	DelayMaxSeconds float64 `yaml:"delay_max_seconds"`
}

// Timeouts bounds the individual waits inside an iteration.
type Timeouts struct {
	NavigateSeconds float64 `yaml:"navigate_seconds"`
	TriggerSeconds  float64 `yaml:"trigger_seconds"`
	ResultSeconds   float64 `yaml:"result_seconds"`
	WalletSeconds   float64 `yaml:"wallet_seconds"`
	ReadyRetries    int     `yaml:"ready_retries"`
}

// Config represents the spinbot.yaml file plus environment overrides.
type Config struct {
	Browser  Browser  `yaml:"browser"`
	Target   Target   `yaml:"target"`
	Loop     Loop     `yaml:"loop"`
	Timeouts Timeouts `yaml:"timeouts"`
}

// DelayMin returns the lower bound of the inter-spin delay.
func (l Loop) DelayMin() time.Duration {
	return secondsToDuration(l.DelayMinSeconds)
}

// DelayMax returns the upper bound of the inter-spin delay.
func (l Loop) DelayMax() time.Duration {
	return secondsToDuration(l.DelayMaxSeconds)
}

// Navigate returns the timeout for each navigation step.
func (t Timeouts) Navigate() time.Duration {
	return secondsToDuration(t.NavigateSeconds)
}

// Trigger returns the timeout for locating the spin control.
func (t Timeouts) Trigger() time.Duration {
	return secondsToDuration(t.TriggerSeconds)
}

// Result returns the total wait for a result marker to appear.
func (t Timeouts) Result() time.Duration {
	return secondsToDuration(t.ResultSeconds)
}

// Wallet returns the wait bound for wallet confirmation.
func (t Timeouts) Wallet() time.Duration {
	return secondsToDuration(t.WalletSeconds)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
