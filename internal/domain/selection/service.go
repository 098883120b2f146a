package selection

import (
	"sync"

	"jugad/internal/analytics"
	"jugad/internal/domain/pricing"
)

// Service is the selection controller. It owns the per-session states and
// is the only writer, so the mutual-exclusivity invariant holds after every
// call. Sessions are in-memory only: a selection does not survive a restart,
// mirroring page view state.
type Service struct {
	catalog *pricing.Catalog
	events  analytics.Sink

	mu       sync.Mutex
	sessions map[string]State
}

func NewService(catalog *pricing.Catalog, events analytics.Sink) *Service {
	if events == nil {
		events = analytics.NopSink{}
	}
	return &Service{
		catalog:  catalog,
		events:   events,
		sessions: make(map[string]State),
	}
}

// Get returns the session state, creating defaults for new sessions.
func (s *Service) Get(sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked(sessionID)
}

// SelectPlan picks a subscription plan and clears any selected pack.
func (s *Service) SelectPlan(sessionID, planID string) (State, error) {
	if _, ok := s.catalog.PlanByID(planID); !ok {
		return State{}, ErrPlanNotFound
	}

	s.mu.Lock()
	state := s.stateLocked(sessionID)
	state.SelectedPlanID = planID
	state.SelectedPackID = ""
	s.sessions[sessionID] = state
	s.mu.Unlock()

	s.events.Track(analytics.EventPlanSelect, map[string]any{
		"plan_id":       planID,
		"billing_cycle": string(state.BillingCycle),
	})
	return state, nil
}

// SelectPack picks a credit pack and clears any selected plan.
func (s *Service) SelectPack(sessionID, packID string) (State, error) {
	if _, ok := s.catalog.PackByID(packID); !ok {
		return State{}, ErrPackNotFound
	}

	s.mu.Lock()
	state := s.stateLocked(sessionID)
	state.SelectedPackID = packID
	state.SelectedPlanID = ""
	s.sessions[sessionID] = state
	s.mu.Unlock()

	s.events.Track(analytics.EventPackSelect, map[string]any{"pack_id": packID})
	return state, nil
}

// SetMode switches between subscription and credits pricing. The current
// selection is kept; the resolver ignores a selection that no longer matches
// and the next recommendation run typically overwrites it.
func (s *Service) SetMode(sessionID string, mode pricing.Mode) (State, error) {
	if mode != pricing.ModeSubscription && mode != pricing.ModeCredits {
		return State{}, ErrInvalidMode
	}

	s.mu.Lock()
	state := s.stateLocked(sessionID)
	state.Mode = mode
	s.sessions[sessionID] = state
	s.mu.Unlock()

	s.events.Track(analytics.EventPricingModeToggle, map[string]any{"mode": string(mode)})
	return state, nil
}

// SetBillingCycle changes the subscription pricing period. Only affects the
// resolved price of a selected plan, never a pack.
func (s *Service) SetBillingCycle(sessionID string, cycle pricing.BillingCycle) (State, error) {
	if cycle != pricing.BillingMonthly && cycle != pricing.BillingYearly {
		return State{}, ErrInvalidCycle
	}

	s.mu.Lock()
	state := s.stateLocked(sessionID)
	state.BillingCycle = cycle
	s.sessions[sessionID] = state
	s.mu.Unlock()

	s.events.Track(analytics.EventBillingToggle, map[string]any{"cycle": string(cycle)})
	return state, nil
}

// ApplyRecommendation runs the engine for the session's current mode and
// applies the result to the selection. When no pack is large enough the
// selection is left untouched and the error is surfaced to the caller.
func (s *Service) ApplyRecommendation(sessionID string, days int) (State, *pricing.Recommendation, error) {
	s.mu.Lock()
	state := s.stateLocked(sessionID)
	mode := state.Mode
	s.mu.Unlock()

	reco, err := s.catalog.Recommend(days, mode)
	if err != nil {
		return state, nil, err
	}

	s.mu.Lock()
	state = s.stateLocked(sessionID)
	state.TripDurationDays = days
	if reco.Plan != nil {
		state.SelectedPlanID = reco.Plan.ID
		state.SelectedPackID = ""
	} else if reco.Pack != nil {
		state.SelectedPackID = reco.Pack.ID
		state.SelectedPlanID = ""
	}
	s.sessions[sessionID] = state
	s.mu.Unlock()

	s.events.Track(analytics.EventRecoApply, map[string]any{
		"trip_duration":  days,
		"mode":           string(mode),
		"recommendation": reco.OfferID(),
	})
	return state, reco, nil
}

// Resolve derives the checkout summary for the session.
func (s *Service) Resolve(sessionID string) (*ResolvedOffer, bool) {
	return Resolve(s.Get(sessionID), s.catalog)
}

// Clear drops the session after a completed purchase.
func (s *Service) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *Service) stateLocked(sessionID string) State {
	if state, ok := s.sessions[sessionID]; ok {
		return state
	}
	state := NewState()
	s.sessions[sessionID] = state
	return state
}
