// Package notify dispatches transactional email off the request path.
// Delivery is best-effort: every send runs on its own goroutine after the
// HTTP response is written, failures are logged and never reach the caller,
// and there is no retry or dead-letter queue.
package notify

import (
	"log"
	"sync"

	"payroll/internal/mailer"
)

// Notifier fans out fire-and-forget emails.
type Notifier struct {
	mailer mailer.Mailer
	wg     sync.WaitGroup
}

// New creates a notifier over the given mailer.
func New(m mailer.Mailer) *Notifier {
	return &Notifier{mailer: m}
}

// Dispatch sends one message asynchronously.
func (n *Notifier) Dispatch(to, subject, body string) {
	if n == nil || n.mailer == nil || to == "" {
		return
	}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.mailer.Send(to, subject, body); err != nil {
			log.Printf("notify: %v", err)
		}
	}()
}

// Wait blocks until all in-flight sends finish. Used on shutdown and in tests.
func (n *Notifier) Wait() {
	n.wg.Wait()
}
