package dashboard

import (
	"sync"
	"time"

	"scheduledash/models"
)

// Notifier holds the session's single transient notification. A new message
// replaces the current one; each message auto-clears after the configured
// TTL unless dismissed first.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *models.Notification
	gen     int
}

func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

// Show replaces the active notification and arms the auto-clear timer.
func (n *Notifier) Show(message string, severity models.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = &models.Notification{Message: message, Severity: severity}
	n.gen++
	gen := n.gen

	if n.ttl <= 0 {
		return
	}
	time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// Only clear if no newer notification replaced this one.
		if n.gen == gen {
			n.current = nil
		}
	})
}

// Current returns the active notification, or nil.
func (n *Notifier) Current() *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	copied := *n.current
	return &copied
}

// Dismiss clears the active notification immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
	n.gen++
}
