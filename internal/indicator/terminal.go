// Package indicator implements the loading indicator shown while uploads are in flight.
package indicator

import (
	"fmt"
	"io"
	"sync"
)

const clearLine = "\r\033[K"

// Terminal renders the indicator as a single status line on a writer.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	label   string
	visible bool
	// drawn is false once other output has replaced the label line.
	drawn bool
}

// NewTerminal creates a hidden indicator writing to out.
func NewTerminal(out io.Writer, label string) *Terminal {
	if label == "" {
		label = "uploading..."
	}
	return &Terminal{out: out, label: label}
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.visible {
		return
	}
	t.visible = true
	t.drawn = true
	_, _ = fmt.Fprint(t.out, t.label)
}

func (t *Terminal) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.visible {
		return
	}
	t.visible = false
	if t.drawn {
		t.drawn = false
		_, _ = fmt.Fprint(t.out, clearLine)
	}
}

func (t *Terminal) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Writer returns a writer sharing the indicator's output. Writes first erase
// the label if it is on screen, so messages start at the beginning of a line.
func (t *Terminal) Writer() io.Writer {
	return terminalWriter{t}
}

type terminalWriter struct {
	t *Terminal
}

func (w terminalWriter) Write(p []byte) (int, error) {
	w.t.mu.Lock()
	defer w.t.mu.Unlock()
	if w.t.drawn {
		w.t.drawn = false
		if _, err := fmt.Fprint(w.t.out, clearLine); err != nil {
			return 0, err
		}
	}
	return w.t.out.Write(p)
}
