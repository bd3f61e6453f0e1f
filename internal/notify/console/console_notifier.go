package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Notifier prints failure messages for the user and, when waitForAck is set,
// blocks until the user presses Enter. Concurrent calls are serialized so
// each notification takes exactly one acknowledgement.
type Notifier struct {
	mu         sync.Mutex
	out        io.Writer
	in         *bufio.Reader
	waitForAck bool

	readerOnce sync.Once
	acks       chan error
}

// NewNotifier creates a console notifier. in is only read when waitForAck is true.
func NewNotifier(out io.Writer, in io.Reader, waitForAck bool) *Notifier {
	n := &Notifier{out: out, waitForAck: waitForAck, acks: make(chan error)}
	if in != nil {
		n.in = bufio.NewReader(in)
	}
	return n
}

// StdinIsTerminal reports whether acknowledgements can be read from stdin.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (n *Notifier) Notify(ctx context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintf(n.out, "Upload failed: %s\n", message); err != nil {
		return fmt.Errorf("writing notification: %w", err)
	}
	if !n.waitForAck || n.in == nil {
		return nil
	}

	if _, err := fmt.Fprint(n.out, "Press Enter to continue..."); err != nil {
		return fmt.Errorf("writing notification: %w", err)
	}

	n.readerOnce.Do(func() { go n.readAcks() })

	select {
	case err, ok := <-n.acks:
		if ok && err != nil {
			return fmt.Errorf("reading acknowledgement: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// readAcks is the only goroutine reading input. Each line is one
// acknowledgement; end of input closes acks, which acknowledges every
// later notification.
func (n *Notifier) readAcks() {
	defer close(n.acks)
	for {
		_, err := n.in.ReadString('\n')
		if err == io.EOF {
			return
		}
		n.acks <- err
		if err != nil {
			return
		}
	}
}
