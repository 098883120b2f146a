package notification

import (
	"log"
	"sync"
)

// Severity of a user-facing notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Message is a single user-facing notification.
type Message struct {
	UserID      int64
	Title       string
	Description string
	Severity    Severity
}

// Notifier surfaces outcome messages to the user. Purely presentational:
// callers never branch on whether delivery happened.
type Notifier interface {
	Notify(userID int64, title, description string, severity Severity)
}

// LogNotifier writes notifications to the standard logger.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Notify(userID int64, title, description string, severity Severity) {
	log.Printf("notify user_id=%d severity=%s title=%q description=%q", userID, severity, title, description)
}

// MemoryNotifier records notifications so tests can assert on them.
type MemoryNotifier struct {
	mu       sync.Mutex
	messages []Message
}

func NewMemoryNotifier() *MemoryNotifier { return &MemoryNotifier{} }

func (n *MemoryNotifier) Notify(userID int64, title, description string, severity Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, Message{UserID: userID, Title: title, Description: description, Severity: severity})
}

func (n *MemoryNotifier) Messages() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Message, len(n.messages))
	copy(out, n.messages)
	return out
}
