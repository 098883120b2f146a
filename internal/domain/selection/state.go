package selection

import (
	"jugad/internal/domain/pricing"
)

// State is the per-session selection on the pricing page.
// Invariant: at most one of SelectedPlanID / SelectedPackID is non-empty,
// and the set one matches Mode. Mutations go through the Service, which
// enforces this after every call.
type State struct {
	Mode             pricing.Mode         `json:"mode"`
	BillingCycle     pricing.BillingCycle `json:"billing_cycle"`
	SelectedPlanID   string               `json:"selected_plan_id,omitempty"`
	SelectedPackID   string               `json:"selected_pack_id,omitempty"`
	TripDurationDays int                  `json:"trip_duration_days"`
}

// NewState returns the defaults a fresh visitor starts with: subscription
// mode, yearly billing, nothing selected until the recommender runs.
func NewState() State {
	return State{
		Mode:             pricing.ModeSubscription,
		BillingCycle:     pricing.BillingYearly,
		TripDurationDays: pricing.DefaultDurationDays,
	}
}
