package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// LaunchOptions configures the persistent browser session. The user data
// directory carries the Farcaster login, so the bot never handles
// credentials itself.
type LaunchOptions struct {
	ExecutablePath string
	UserDataDir    string
	Headless       bool
}

// Session owns the driver handle and the persistent browser context for
// the duration of a run. Exactly one Session exists per process.
type Session struct {
	pw      *playwright.Playwright
	context playwright.BrowserContext
	page    playwright.Page
}

// Install ensures the playwright driver is available. Browser download is
// skipped because the session uses a locally installed executable.
func Install() error {
	err := playwright.Install(&playwright.RunOptions{
		SkipInstallBrowsers: true,
	})
	if err != nil {
		return fmt.Errorf("failed to install playwright driver: %w", err)
	}
	return nil
}

// Launch starts the driver and opens a persistent context bound to the
// configured profile, returning a Session with a fresh page.
func Launch(opts LaunchOptions) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	context, err := pw.Chromium.LaunchPersistentContext(opts.UserDataDir,
		playwright.BrowserTypeLaunchPersistentContextOptions{
			ExecutablePath: playwright.String(opts.ExecutablePath),
			Headless:       playwright.Bool(opts.Headless),
		})
	if err != nil {
		stopErr := pw.Stop()
		if stopErr != nil {
			return nil, fmt.Errorf("could not launch browser: %w (driver stop: %v)", err, stopErr)
		}
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	return &Session{pw: pw, context: context, page: page}, nil
}

// Page returns the session's page handle.
func (s *Session) Page() playwright.Page {
	return s.page
}

// Close shuts down the browser context and the driver. Close errors from an
// already-dead browser are expected during shutdown and are not reported.
func (s *Session) Close() error {
	if s.context != nil {
		if err := s.context.Close(); err != nil && !isAlreadyClosed(err) {
			_ = s.pw.Stop()
			return fmt.Errorf("failed to close browser context: %w", err)
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			return fmt.Errorf("failed to stop playwright: %w", err)
		}
	}
	return nil
}

func isAlreadyClosed(err error) bool {
	return errors.Is(mapErr(err), ErrSessionLost)
}
