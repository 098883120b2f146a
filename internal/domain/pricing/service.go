package pricing

import (
	"jugad/internal/analytics"
)

// Service exposes the offer catalog and the recommendation engine.
// The catalog is injected once at startup and never mutated, so all
// methods are safe for concurrent use.
type Service struct {
	catalog *Catalog
	events  analytics.Sink
}

func NewService(catalog *Catalog, events analytics.Sink) *Service {
	if events == nil {
		events = analytics.NopSink{}
	}
	return &Service{catalog: catalog, events: events}
}

// Catalog returns the shared immutable catalog for other modules.
func (s *Service) Catalog() *Catalog {
	return s.catalog
}

// Page builds the full pricing-page payload and tracks the view.
func (s *Service) Page(variant string) PageResponse {
	s.events.Track(analytics.EventPricingView, map[string]any{"variant": variant})

	return PageResponse{
		VATLabel:            VATLabel,
		DefaultDurationDays: DefaultDurationDays,
		SocialProof:         SocialProofCount,
		Plans:               s.Plans(),
		Packs:               s.Packs(),
		CreditScale:         s.catalog.Scale,
	}
}

func (s *Service) Plans() []PlanResponse {
	resp := make([]PlanResponse, 0, len(s.catalog.Plans))
	for i := range s.catalog.Plans {
		resp = append(resp, planToResponse(&s.catalog.Plans[i]))
	}
	return resp
}

func (s *Service) Packs() []PackResponse {
	resp := make([]PackResponse, 0, len(s.catalog.Packs))
	for i := range s.catalog.Packs {
		resp = append(resp, packToResponse(&s.catalog.Packs[i]))
	}
	return resp
}

func (s *Service) CreditScale() []CreditActionCost {
	return s.catalog.Scale
}

// Recommend maps a trip duration to the suggested offer for the mode.
func (s *Service) Recommend(days int, mode Mode) (*RecommendationResponse, error) {
	reco, err := s.catalog.Recommend(days, mode)
	if err != nil {
		return nil, err
	}

	resp := &RecommendationResponse{
		Mode:          string(reco.Mode),
		TripDuration:  days,
		CreditsNeeded: reco.CreditsNeeded,
	}
	if reco.Plan != nil {
		p := planToResponse(reco.Plan)
		resp.Plan = &p
	}
	if reco.Pack != nil {
		p := packToResponse(reco.Pack)
		resp.Pack = &p
	}
	return resp, nil
}
