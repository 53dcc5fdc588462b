package browser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Sentinel errors for the two failure classes the controller distinguishes.
// ErrNotFound covers all transient UI variance (element missing, hidden, or
// slow); ErrSessionLost covers an invalid page or browser handle.
var (
	ErrNotFound    = errors.New("browser: element not found")
	ErrSessionLost = errors.New("browser: session lost")
)

// Surface is the subset of page operations the spin controller consumes.
// A Surface may be backed by a page or by an iframe within one; the
// controller never sees the difference.
type Surface interface {
	// Click locates selector and clicks it, waiting up to timeout for it
	// to become actionable.
	Click(selector string, timeout time.Duration) error

	// Text returns the text content of the first match for selector.
	Text(selector string, timeout time.Duration) (string, error)

	// WaitVisible waits up to timeout for selector to become visible.
	WaitVisible(selector string, timeout time.Duration) error

	// Count returns the number of elements currently matching selector.
	Count(selector string) (int, error)
}

// pageSurface adapts a playwright Page to Surface.
type pageSurface struct {
	page playwright.Page
}

// PageSurface returns a Surface over the top-level page.
func PageSurface(page playwright.Page) Surface {
	return &pageSurface{page: page}
}

func (s *pageSurface) Click(selector string, timeout time.Duration) error {
	err := s.page.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: pwTimeout(timeout),
	})
	return mapErr(err)
}

func (s *pageSurface) Text(selector string, timeout time.Duration) (string, error) {
	text, err := s.page.Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: pwTimeout(timeout),
	})
	return text, mapErr(err)
}

func (s *pageSurface) WaitVisible(selector string, timeout time.Duration) error {
	err := s.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: pwTimeout(timeout),
	})
	return mapErr(err)
}

func (s *pageSurface) Count(selector string) (int, error) {
	n, err := s.page.Locator(selector).Count()
	if err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

// frameSurface adapts a playwright FrameLocator to Surface.
type frameSurface struct {
	frame playwright.FrameLocator
}

// FrameSurface returns a Surface over the iframe matching frameSelector on
// the given page. The frame is resolved lazily, so the iframe does not need
// to be attached yet.
func FrameSurface(page playwright.Page, frameSelector string) Surface {
	return &frameSurface{frame: page.FrameLocator(frameSelector)}
}

func (s *frameSurface) Click(selector string, timeout time.Duration) error {
	err := s.frame.Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: pwTimeout(timeout),
	})
	return mapErr(err)
}

func (s *frameSurface) Text(selector string, timeout time.Duration) (string, error) {
	text, err := s.frame.Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: pwTimeout(timeout),
	})
	return text, mapErr(err)
}

func (s *frameSurface) WaitVisible(selector string, timeout time.Duration) error {
	err := s.frame.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: pwTimeout(timeout),
	})
	return mapErr(err)
}

func (s *frameSurface) Count(selector string) (int, error) {
	n, err := s.frame.Locator(selector).Count()
	if err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

// pwTimeout converts a duration to playwright's float milliseconds.
func pwTimeout(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}

// sessionLostMarkers are substrings the driver uses to report a closed or
// crashed target. The driver returns various formats, so this is a
// substring check rather than a typed error match.
var sessionLostMarkers = []string{
	"target closed",
	"target crashed",
	"browser has been closed",
	"context or browser has been closed",
	"page has been closed",
	"connection closed",
}

// mapErr classifies a driver error into ErrSessionLost or ErrNotFound.
// Everything that is not a dead session is treated as transient UI variance.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range sessionLostMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", ErrSessionLost, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrNotFound, err)
}
