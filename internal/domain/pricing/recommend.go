package pricing

// Well-known plan ids used by the recommendation thresholds.
const (
	PlanEssential = "essential"
	PlanPro       = "pro"
)

// CreditsPerDay is the cost of generating one detailed itinerary day.
const CreditsPerDay = 4

// Supported trip duration range for the recommender.
const (
	MinTripDays = 2
	MaxTripDays = 30
)

// Essential covers itineraries up to this many days; longer trips need Pro.
const essentialMaxDays = 10

// CreditsNeeded returns the credits required to generate a full trip of the
// given duration.
func CreditsNeeded(days int) int {
	return days * CreditsPerDay
}

// Recommendation is a suggested offer for a trip duration.
type Recommendation struct {
	Mode          Mode        `json:"mode"`
	CreditsNeeded int         `json:"credits_needed,omitempty"`
	Plan          *Plan       `json:"plan,omitempty"`
	Pack          *CreditPack `json:"pack,omitempty"`
}

// OfferID returns the id of the recommended plan or pack.
func (r *Recommendation) OfferID() string {
	if r.Plan != nil {
		return r.Plan.ID
	}
	if r.Pack != nil {
		return r.Pack.ID
	}
	return ""
}

// RecommendPlan maps a trip duration to a subscription tier. Durations of
// exactly ten days still fit Essential.
func (c *Catalog) RecommendPlan(days int) (*Plan, error) {
	if days < MinTripDays || days > MaxTripDays {
		return nil, ErrDurationOutOfRange
	}
	id := PlanEssential
	if days > essentialMaxDays {
		id = PlanPro
	}
	plan, ok := c.PlanByID(id)
	if !ok {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

// RecommendPack returns the smallest pack, in catalog order, covering the
// trip's credit need. Very long trips can exceed every pack on offer; the
// caller gets ErrNoPackLargeEnough and should leave the selection empty
// rather than silently suggest an insufficient pack.
func (c *Catalog) RecommendPack(days int) (*CreditPack, error) {
	if days < MinTripDays || days > MaxTripDays {
		return nil, ErrDurationOutOfRange
	}
	needed := CreditsNeeded(days)
	for i := range c.Packs {
		if c.Packs[i].Credits >= needed {
			return &c.Packs[i], nil
		}
	}
	return nil, ErrNoPackLargeEnough
}

// Recommend runs the engine for the given pricing mode. Pure and
// deterministic over [MinTripDays, MaxTripDays].
func (c *Catalog) Recommend(days int, mode Mode) (*Recommendation, error) {
	switch mode {
	case ModeCredits:
		pack, err := c.RecommendPack(days)
		if err != nil {
			return nil, err
		}
		return &Recommendation{Mode: ModeCredits, CreditsNeeded: CreditsNeeded(days), Pack: pack}, nil
	case ModeSubscription:
		plan, err := c.RecommendPlan(days)
		if err != nil {
			return nil, err
		}
		return &Recommendation{Mode: ModeSubscription, Plan: plan}, nil
	}
	return nil, ErrInvalidMode
}
