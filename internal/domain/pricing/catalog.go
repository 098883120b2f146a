package pricing

// Page metadata shown alongside the offers. Static copy, not persisted.
const (
	VATLabel            = "TVA France 20 % incluse"
	DefaultDurationDays = 7
	SocialProofCount    = 12548
)

// Catalog is the immutable offer table every other module consumes.
// Built once at startup from the repository; callers must not mutate it.
type Catalog struct {
	Plans []Plan
	Packs []CreditPack
	Scale []CreditActionCost
}

// PlanByID looks up a plan. Second return is false for unknown ids.
func (c *Catalog) PlanByID(id string) (*Plan, bool) {
	for i := range c.Plans {
		if c.Plans[i].ID == id {
			return &c.Plans[i], true
		}
	}
	return nil, false
}

// PackByID looks up a credit pack.
func (c *Catalog) PackByID(id string) (*CreditPack, bool) {
	for i := range c.Packs {
		if c.Packs[i].ID == id {
			return &c.Packs[i], true
		}
	}
	return nil, false
}

// MaxPackCredits is the largest pack size on offer.
func (c *Catalog) MaxPackCredits() int {
	max := 0
	for _, p := range c.Packs {
		if p.Credits > max {
			max = p.Credits
		}
	}
	return max
}

// DefaultCatalog returns the launch offer table. The seeder writes it to the
// database; tests use it directly.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Plans: []Plan{
			{
				ID:           PlanEssential,
				Name:         "Essential",
				PriceMonthly: 6.99,
				PriceYearly:  59,
				Features: []string{
					"Itinéraires ≤ 10 jours",
					"100 crédits / mois (report 1 mois)",
					"Export complet (PDF/ICS/Maps)",
					"Collaboration 1 invité",
					"Suggestions hôtels/activités",
				},
				BadgeLabel:  "Meilleur départ",
				Description: "L'essentiel pour transformer votre teaser en itinéraire prêt à partir.",
				SortOrder:   1,
			},
			{
				ID:           PlanPro,
				Name:         "Pro",
				PriceMonthly: 11.99,
				PriceYearly:  99,
				Features: []string{
					"Itinéraires ≤ 30 jours + multi-destinations",
					"300 crédits / mois (report 2 mois)",
					"Multi-invités, versions & comparaisons",
					"Alertes horaires/transports, plans B météo",
					"Optimisations avancées",
				},
				BadgeLabel:  "Le plus complet",
				Description: "Pensé pour les voyages longs, les comparaisons et la collaboration avancée.",
				SortOrder:   2,
			},
		},
		Packs: []CreditPack{
			{ID: "start20", Name: "Start", Credits: 20, Price: 9.90, Description: "Parfait pour débuter", SortOrder: 1},
			{ID: "smart60", Name: "Smart", Credits: 60, Price: 24.90, Description: "Idéal pour un voyage d'une semaine, avec marge pour ajustements.", SortOrder: 2},
			{ID: "power150", Name: "Power", Credits: 150, Price: 49.90, Description: "Pour les explorateurs assidus", SortOrder: 3},
			{ID: "pro400", Name: "Pro", Credits: 400, Price: 99.00, Description: "Le pack ultime pour tous vos voyages", SortOrder: 4},
		},
		Scale: []CreditActionCost{
			{Action: "Générer 1 jour détaillé", Cost: 4},
			{Action: "Re-planifier 1 jour", Cost: 2},
			{Action: "Hôtels (5 options / nuit)", Cost: 2},
			{Action: "Restaurants d'un jour", Cost: 1},
			{Action: "Export premium (PDF + offline + ICS)", Cost: 2},
			{Action: "Traduction intégrale d'un trip", Cost: 2},
		},
	}
}
