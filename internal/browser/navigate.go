package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/thruflo/spinbot/internal/console"
)

// Host page selectors for reaching the mini-app. Kept together because
// the host site changes its DOM without notice; update here when
// navigation breaks.
const (
	miniAppsLink   = `a[href="/miniapps"]`
	viewAllButton  = `button:has-text("View All")`
	hostCloseModal = `button:has(svg.octicon-x)`
)

// NavigateTarget describes where the mini-app lives on the host site.
type NavigateTarget struct {
	URL      string // host page URL
	AppName  string // mini-app tile name
	FrameURL string // src of the mini-app iframe
}

// Navigate walks the host site to the mini-app and returns a Surface over
// its iframe: load the host page, open the mini-apps directory, expand the
// full list, and launch the app by its tile. Navigation failures are not
// recoverable by skipping, so every step error is returned to the caller.
func Navigate(page playwright.Page, target NavigateTarget, timeout time.Duration, out *console.Console) (Surface, error) {
	out.Step("Navigating to %s...", target.URL)
	_, err := page.Goto(target.URL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   pwTimeout(timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("could not load host page: %w", mapErr(err))
	}
	out.Success("Page loaded")

	host := PageSurface(page)

	out.Step("Opening mini apps directory...")
	if err := host.Click(miniAppsLink, timeout); err != nil {
		return nil, fmt.Errorf("could not open mini apps: %w", err)
	}
	if err := host.Click(viewAllButton, timeout); err != nil {
		return nil, fmt.Errorf("could not expand mini app list: %w", err)
	}

	out.Step("Launching %s...", target.AppName)
	tile := fmt.Sprintf(`img[alt=%q]`, target.AppName)
	if err := host.WaitVisible(tile, timeout); err != nil {
		return nil, fmt.Errorf("mini app tile not found: %w", err)
	}
	if err := host.Click(fmt.Sprintf("text=%s", target.AppName), timeout); err != nil {
		return nil, fmt.Errorf("could not launch mini app: %w", err)
	}

	frameSelector := fmt.Sprintf(`iframe[src=%q]`, target.FrameURL)
	if err := host.WaitVisible(frameSelector, timeout); err != nil {
		return nil, fmt.Errorf("mini app frame did not load: %w", err)
	}
	out.Success("%s loaded", target.AppName)

	return FrameSurface(page, frameSelector), nil
}

// DismissHostModal closes a host-page modal if one is open. Best effort;
// a missing close control is not an error.
func DismissHostModal(page playwright.Page, timeout time.Duration) {
	_ = PageSurface(page).Click(hostCloseModal, timeout)
}
