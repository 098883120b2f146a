package selection

import (
	"jugad/internal/domain/pricing"
)

// ResolvedOffer is the currently selected purchasable item, normalized for
// the checkout summary regardless of whether it is a plan or a pack.
// Derived on every read, never stored.
type ResolvedOffer struct {
	Kind         pricing.Mode         `json:"kind"`
	OfferID      string               `json:"offer_id"`
	DisplayName  string               `json:"display_name"`
	Price        float64              `json:"price"`
	PeriodSuffix string               `json:"period_suffix"`
	Credits      int                  `json:"credits,omitempty"`
	BillingCycle pricing.BillingCycle `json:"billing_cycle,omitempty"`
}

// Resolve derives the offer from the state and catalog. A selected plan
// takes precedence over a selected pack; the invariant makes both being set
// impossible through the Service, but the precedence keeps resolution
// deterministic regardless. Returns false when nothing is selected.
func Resolve(state State, catalog *pricing.Catalog) (*ResolvedOffer, bool) {
	if state.SelectedPlanID != "" {
		plan, ok := catalog.PlanByID(state.SelectedPlanID)
		if ok {
			suffix := "/month"
			if state.BillingCycle == pricing.BillingYearly {
				suffix = "/year"
			}
			return &ResolvedOffer{
				Kind:         pricing.ModeSubscription,
				OfferID:      plan.ID,
				DisplayName:  plan.Name,
				Price:        plan.Price(state.BillingCycle),
				PeriodSuffix: suffix,
				BillingCycle: state.BillingCycle,
			}, true
		}
	}

	if state.SelectedPackID != "" {
		pack, ok := catalog.PackByID(state.SelectedPackID)
		if ok {
			return &ResolvedOffer{
				Kind:        pricing.ModeCredits,
				OfferID:     pack.ID,
				DisplayName: "Pack " + pack.Name,
				Price:       pack.Price,
				Credits:     pack.Credits,
			}, true
		}
	}

	return nil, false
}
