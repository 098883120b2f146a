package pricing

// Mode distinguishes the two ways to buy itinerary generation.
type Mode string

const (
	ModeSubscription Mode = "subscription"
	ModeCredits      Mode = "credits"
)

func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeSubscription, ModeCredits:
		return Mode(s), true
	}
	return "", false
}

// BillingCycle selects the pricing period for subscription plans.
// It never affects credit pack prices.
type BillingCycle string

const (
	BillingMonthly BillingCycle = "monthly"
	BillingYearly  BillingCycle = "yearly"
)

func ParseBillingCycle(s string) (BillingCycle, bool) {
	switch BillingCycle(s) {
	case BillingMonthly, BillingYearly:
		return BillingCycle(s), true
	}
	return "", false
}

// Plan is a recurring subscription tier. Catalog rows are written once by
// the seeder and never mutated at runtime.
type Plan struct {
	ID           string   `gorm:"column:id;primaryKey" json:"id"`
	Name         string   `gorm:"column:name" json:"name"`
	PriceMonthly float64  `gorm:"column:price_monthly" json:"price_monthly"`
	PriceYearly  float64  `gorm:"column:price_yearly" json:"price_yearly"`
	Features     []string `gorm:"column:features;serializer:json" json:"features"`
	BadgeLabel   string   `gorm:"column:badge_label" json:"badge_label,omitempty"`
	Description  string   `gorm:"column:description" json:"description"`
	SortOrder    int      `gorm:"column:sort_order" json:"-"`
}

func (Plan) TableName() string { return "plans" }

// Price returns the plan price for the given billing cycle.
func (p *Plan) Price(cycle BillingCycle) float64 {
	if cycle == BillingYearly {
		return p.PriceYearly
	}
	return p.PriceMonthly
}

// YearlySavingsPercent is the rounded discount of the yearly price versus
// twelve monthly payments.
func (p *Plan) YearlySavingsPercent() int {
	full := p.PriceMonthly * 12
	if full <= 0 {
		return 0
	}
	return int((full - p.PriceYearly) / full * 100)
}

// CreditPack is a one-time purchase of consumable credits.
type CreditPack struct {
	ID          string  `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	Credits     int     `gorm:"column:credits" json:"credits"`
	Price       float64 `gorm:"column:price" json:"price"`
	Description string  `gorm:"column:description" json:"description"`
	SortOrder   int     `gorm:"column:sort_order" json:"-"`
}

func (CreditPack) TableName() string { return "credit_packs" }

// DaysCovered estimates how many detailed itinerary days the pack buys.
func (p *CreditPack) DaysCovered() int {
	return p.Credits / CreditsPerDay
}

// CreditActionCost maps one itinerary action to its credit cost.
// Display-only reference table.
type CreditActionCost struct {
	ID     int64  `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Action string `gorm:"column:action;uniqueIndex" json:"action"`
	Cost   int    `gorm:"column:cost" json:"cost"`
}

func (CreditActionCost) TableName() string { return "credit_action_costs" }
