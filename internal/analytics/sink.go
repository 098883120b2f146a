package analytics

import (
	"log"
	"sync"
	"time"
)

// Event names emitted by the pricing flow.
const (
	EventPricingView       = "pricing_view"
	EventPricingModeToggle = "pricing_mode_toggle"
	EventBillingToggle     = "billing_cycle_toggle"
	EventPlanSelect        = "plan_select"
	EventPackSelect        = "pack_select"
	EventRecoApply         = "reco_apply"
	EventCheckoutPayClick  = "checkout_pay_click"
	EventCheckoutSuccess   = "checkout_success"
	EventCheckoutError     = "checkout_error"
)

// Event is a single tracked analytics event.
type Event struct {
	Name       string         `json:"name"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// Sink receives analytics events. Fire-and-forget: implementations must not
// block the caller and delivery is best-effort.
type Sink interface {
	Track(name string, payload map[string]any)
}

// LogSink writes events to the standard logger.
type LogSink struct{}

func NewLogSink() *LogSink { return &LogSink{} }

func (s *LogSink) Track(name string, payload map[string]any) {
	log.Printf("analytics event=%s payload=%v", name, payload)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Track(string, map[string]any) {}

// MemorySink records events in memory so tests can assert on them.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) Track(name string, payload map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{Name: name, Payload: payload, OccurredAt: time.Now()})
}

// Events returns a copy of everything tracked so far.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Names returns tracked event names in order.
func (s *MemorySink) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.events))
	for _, e := range s.events {
		names = append(names, e.Name)
	}
	return names
}

// MultiSink fans events out to several sinks.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (s *MultiSink) Track(name string, payload map[string]any) {
	for _, sink := range s.sinks {
		sink.Track(name, payload)
	}
}
