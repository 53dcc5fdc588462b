package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultTargetURL       = "https://farcaster.xyz"
	DefaultAppName         = "Monad Spin"
	DefaultFrameURL        = "https://monadspin.xyz"
	DefaultDelayMinSeconds = 5.0
	DefaultDelayMaxSeconds = 15.0
	DefaultNavigateSeconds = 20.0
	DefaultTriggerSeconds  = 10.0
	DefaultResultSeconds   = 15.0
	DefaultWalletSeconds   = 15.0
	DefaultReadyRetries    = 3
)

// Environment variable names. The browser paths carry no default; they are
// machine-specific and required.
const (
	EnvExecutablePath = "SPINBOT_EXECUTABLE_PATH"
	EnvUserDataDir    = "SPINBOT_USER_DATA_DIR"
	EnvTargetURL      = "SPINBOT_TARGET_URL"
	EnvHeadless       = "SPINBOT_HEADLESS"
)

// ConfigFileName is the optional YAML config file looked up in the base path.
const ConfigFileName = "spinbot.yaml"

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Target: Target{
			URL:      DefaultTargetURL,
			AppName:  DefaultAppName,
			FrameURL: DefaultFrameURL,
		},
		Loop: Loop{
			DelayMinSeconds: DefaultDelayMinSeconds,
			DelayMaxSeconds: DefaultDelayMaxSeconds,
		},
		Timeouts: Timeouts{
			NavigateSeconds: DefaultNavigateSeconds,
			TriggerSeconds:  DefaultTriggerSeconds,
			ResultSeconds:   DefaultResultSeconds,
			WalletSeconds:   DefaultWalletSeconds,
			ReadyRetries:    DefaultReadyRetries,
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// Load builds the effective configuration for the given base path:
// defaults, overlaid by spinbot.yaml if present, overlaid by a .env file
// and process environment variables. The result is validated.
func Load(basePath string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := filepath.Join(basePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	// .env is optional; process env still applies without it.
	if err := godotenv.Load(filepath.Join(basePath, ".env")); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	applyEnv(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overlays environment variables onto cfg.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvExecutablePath); v != "" {
		cfg.Browser.ExecutablePath = v
	}
	if v := os.Getenv(EnvUserDataDir); v != "" {
		cfg.Browser.UserDataDir = v
	}
	if v := os.Getenv(EnvTargetURL); v != "" {
		cfg.Target.URL = v
	}
	if v := os.Getenv(EnvHeadless); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Browser.Headless = b
		}
	}
}

// Validate checks that all config values are usable.
func Validate(cfg *Config) error {
	if cfg.Browser.ExecutablePath == "" {
		return ValidationError{Field: "browser.executable_path", Message: "required (set " + EnvExecutablePath + ")"}
	}
	if cfg.Browser.UserDataDir == "" {
		return ValidationError{Field: "browser.user_data_dir", Message: "required (set " + EnvUserDataDir + ")"}
	}
	if cfg.Target.URL == "" {
		return ValidationError{Field: "target.url", Message: "required field is empty"}
	}
	if cfg.Target.AppName == "" {
		return ValidationError{Field: "target.app_name", Message: "required field is empty"}
	}
	if cfg.Target.FrameURL == "" {
		return ValidationError{Field: "target.frame_url", Message: "required field is empty"}
	}
	if cfg.Loop.MaxSpins < 0 {
		return ValidationError{Field: "loop.max_spins", Message: "must not be negative"}
	}
	if cfg.Loop.DelayMinSeconds < 0 {
		return ValidationError{Field: "loop.delay_min_seconds", Message: "must not be negative"}
	}
	if cfg.Loop.DelayMaxSeconds < cfg.Loop.DelayMinSeconds {
		return ValidationError{Field: "loop.delay_max_seconds", Message: "must be >= delay_min_seconds"}
	}
	if cfg.Timeouts.NavigateSeconds <= 0 {
		return ValidationError{Field: "timeouts.navigate_seconds", Message: "must be positive"}
	}
	if cfg.Timeouts.TriggerSeconds <= 0 {
		return ValidationError{Field: "timeouts.trigger_seconds", Message: "must be positive"}
	}
	if cfg.Timeouts.ResultSeconds <= 0 {
		return ValidationError{Field: "timeouts.result_seconds", Message: "must be positive"}
	}
	if cfg.Timeouts.WalletSeconds <= 0 {
		return ValidationError{Field: "timeouts.wallet_seconds", Message: "must be positive"}
	}
	if cfg.Timeouts.ReadyRetries <= 0 {
		return ValidationError{Field: "timeouts.ready_retries", Message: "must be positive"}
	}
	return nil
}
