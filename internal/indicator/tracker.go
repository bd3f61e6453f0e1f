package indicator

import (
	"sync"

	"imgupload/internal/port"
)

// Tracker shares one display between concurrent uploads. Show and Hide are
// counted rather than applied directly: the display is shown when the first
// upload begins and hidden when the last one ends, so an early finisher
// cannot hide the indicator while another upload is still running.
type Tracker struct {
	mu       sync.Mutex
	display  port.LoadingIndicator
	inFlight int
}

// NewTracker wraps display.
func NewTracker(display port.LoadingIndicator) *Tracker {
	return &Tracker{display: display}
}

// Show marks one upload as started.
func (t *Tracker) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inFlight++
	if t.inFlight == 1 {
		t.display.Show()
	}
}

// Hide marks one upload as finished. Unbalanced calls are ignored.
func (t *Tracker) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inFlight == 0 {
		return
	}
	t.inFlight--
	if t.inFlight == 0 {
		t.display.Hide()
	}
}

// InFlight returns the number of uploads currently running.
func (t *Tracker) InFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight
}

// Visible reports the display state.
func (t *Tracker) Visible() bool {
	return t.display.Visible()
}
