package plans

// Catalog is the authoritative, immutable plan list. One value is built at
// startup and injected into both the display surface and the charge resolver,
// so the rendering copy and the settlement copy can never drift apart.
type Catalog struct {
	ordered []Plan
	byID    map[uint]Plan
}

func NewCatalog(list []Plan) *Catalog {
	byID := make(map[uint]Plan, len(list))
	ordered := make([]Plan, len(list))
	copy(ordered, list)
	for _, p := range ordered {
		byID[p.ID] = p
	}
	return &Catalog{ordered: ordered, byID: byID}
}

func (c *Catalog) Get(id uint) (Plan, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the plans in display order. The slice is a copy; mutating it
// does not touch the catalog.
func (c *Catalog) All() []Plan {
	out := make([]Plan, len(c.ordered))
	copy(out, c.ordered)
	return out
}

func (c *Catalog) Len() int { return len(c.ordered) }

// Default is the production catalog for the 6-month enrollment program.
func Default() *Catalog {
	return NewCatalog([]Plan{
		{
			ID:                  1,
			Title:               "Pay in Full (6 months)",
			TotalPriceCents:     450000,
			Installments:        1,
			DaysInPlan:          180,
			Currency:            "usd",
			MonthlySavingsCents: 450000,
			IncludesGift:        true,
			BestValue:           true,
		},
		{
			ID:                  2,
			Title:               "2 Installments",
			TotalPriceCents:     720000,
			Installments:        2,
			DaysInPlan:          180,
			Currency:            "usd",
			MonthlySavingsCents: 180000,
			IncludesGift:        true,
		},
		{
			ID:                  3,
			Title:               "3 Installments",
			TotalPriceCents:     765000,
			Installments:        3,
			DaysInPlan:          180,
			Currency:            "usd",
			MonthlySavingsCents: 135000,
			IncludesGift:        true,
		},
		{
			ID:              4,
			Title:           "Monthly (6 × $1,500)",
			TotalPriceCents: 900000,
			Installments:    6,
			DaysInPlan:      180,
			Currency:        "usd",
			IncludesGift:    true,
		},
	})
}
