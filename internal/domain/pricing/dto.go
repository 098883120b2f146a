package pricing

// PlanResponse is the public representation of a plan
type PlanResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	PriceMonthly         float64  `json:"price_monthly"`
	PriceYearly          float64  `json:"price_yearly"`
	YearlySavingsPercent int      `json:"yearly_savings_percent"`
	Features             []string `json:"features"`
	BadgeLabel           string   `json:"badge_label,omitempty"`
	Description          string   `json:"description"`
}

// PackResponse is the public representation of a credit pack
type PackResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Credits     int     `json:"credits"`
	Price       float64 `json:"price"`
	DaysCovered int     `json:"days_covered"`
	Description string  `json:"description"`
}

// PageResponse is everything the pricing page needs in one payload
type PageResponse struct {
	VATLabel            string             `json:"vat_label"`
	DefaultDurationDays int                `json:"default_duration_days"`
	SocialProof         int                `json:"social_proof"`
	Plans               []PlanResponse     `json:"plans"`
	Packs               []PackResponse     `json:"packs"`
	CreditScale         []CreditActionCost `json:"credit_scale"`
}

// RecommendationResponse is the engine output for a duration/mode pair
type RecommendationResponse struct {
	Mode          string        `json:"mode"`
	TripDuration  int           `json:"trip_duration_days"`
	CreditsNeeded int           `json:"credits_needed,omitempty"`
	Plan          *PlanResponse `json:"plan,omitempty"`
	Pack          *PackResponse `json:"pack,omitempty"`
}

func planToResponse(p *Plan) PlanResponse {
	return PlanResponse{
		ID:                   p.ID,
		Name:                 p.Name,
		PriceMonthly:         p.PriceMonthly,
		PriceYearly:          p.PriceYearly,
		YearlySavingsPercent: p.YearlySavingsPercent(),
		Features:             p.Features,
		BadgeLabel:           p.BadgeLabel,
		Description:          p.Description,
	}
}

func packToResponse(p *CreditPack) PackResponse {
	return PackResponse{
		ID:          p.ID,
		Name:        p.Name,
		Credits:     p.Credits,
		Price:       p.Price,
		DaysCovered: p.DaysCovered(),
		Description: p.Description,
	}
}
