package selection

// SelectPlanRequest picks a subscription plan for the session
type SelectPlanRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// SelectPackRequest picks a credit pack for the session
type SelectPackRequest struct {
	PackID string `json:"pack_id" binding:"required"`
}

// SetModeRequest switches the pricing mode
type SetModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=subscription credits"`
}

// SetBillingCycleRequest switches the subscription pricing period
type SetBillingCycleRequest struct {
	Cycle string `json:"cycle" binding:"required,oneof=monthly yearly"`
}

// ApplyRecommendationRequest runs the recommender for the session's mode
type ApplyRecommendationRequest struct {
	TripDurationDays int `json:"trip_duration_days" binding:"required,min=2,max=30"`
}

// StateResponse pairs the raw state with its resolved offer
type StateResponse struct {
	State State          `json:"state"`
	Offer *ResolvedOffer `json:"offer,omitempty"`
}
