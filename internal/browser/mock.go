package browser

import (
	"fmt"
	"sync"
	"time"
)

// MockSurface implements Surface for tests. Visibility and text are
// scripted per selector, errors can be injected, and every call is
// recorded. An OnClick hook lets tests advance the scripted page state in
// response to controller actions.
type MockSurface struct {
	mu sync.Mutex

	visible map[string]bool
	texts   map[string]string
	errs    map[string]error

	onClick func(selector string)

	clicks []string
	waits  []string
	reads  []string
	counts []string
}

// NewMockSurface creates an empty MockSurface. Nothing is visible until
// SetVisible is called.
func NewMockSurface() *MockSurface {
	return &MockSurface{
		visible: make(map[string]bool),
		texts:   make(map[string]string),
		errs:    make(map[string]error),
	}
}

// SetVisible scripts the visibility of a selector.
func (m *MockSurface) SetVisible(selector string, visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible[selector] = visible
}

// SetText scripts the text content of a selector and makes it visible.
func (m *MockSurface) SetText(selector, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible[selector] = true
	m.texts[selector] = text
}

// SetError injects an error for every operation touching selector.
func (m *MockSurface) SetError(selector string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[selector] = err
}

// OnClick registers a hook invoked after each successful Click.
func (m *MockSurface) OnClick(fn func(selector string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onClick = fn
}

// Clicks returns a copy of the recorded Click selectors.
func (m *MockSurface) Clicks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.clicks))
	copy(out, m.clicks)
	return out
}

// Click records the call and fails unless the selector is scripted visible.
func (m *MockSurface) Click(selector string, timeout time.Duration) error {
	m.mu.Lock()
	m.clicks = append(m.clicks, selector)
	err, injected := m.errs[selector]
	visible := m.visible[selector]
	hook := m.onClick
	m.mu.Unlock()

	if injected {
		return err
	}
	if !visible {
		return fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	if hook != nil {
		hook(selector)
	}
	return nil
}

// Text records the call and returns the scripted text.
func (m *MockSurface) Text(selector string, timeout time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads = append(m.reads, selector)

	if err, ok := m.errs[selector]; ok {
		return "", err
	}
	if !m.visible[selector] {
		return "", fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return m.texts[selector], nil
}

// WaitVisible records the call and resolves instantly from scripted state;
// the mock never actually waits.
func (m *MockSurface) WaitVisible(selector string, timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.waits = append(m.waits, selector)

	if err, ok := m.errs[selector]; ok {
		return err
	}
	if !m.visible[selector] {
		return fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return nil
}

// Count records the call and reports 1 for visible selectors, 0 otherwise.
func (m *MockSurface) Count(selector string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts = append(m.counts, selector)

	if err, ok := m.errs[selector]; ok {
		return 0, err
	}
	if m.visible[selector] {
		return 1, nil
	}
	return 0, nil
}

// Verify MockSurface implements Surface.
var _ Surface = (*MockSurface)(nil)
