package plans

// Plan is a priced enrollment option. Prices are integer minor units (cents)
// so the settlement amount is never subject to float drift.
type Plan struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	TotalPriceCents int64  `json:"total_price_cents"`
	Installments    int    `json:"installments"`
	DaysInPlan      int    `json:"days_in_plan"`
	Currency        string `json:"currency"`

	// Marketing metadata, display only.
	MonthlySavingsCents int64 `json:"monthly_savings_cents,omitempty"`
	IncludesGift        bool  `json:"includes_gift,omitempty"`
	BestValue           bool  `json:"best_value,omitempty"`
}

// AmountDueCents is the amount collected today: the full total for a
// single-payment plan, otherwise one installment share, rounded half-up.
// Remaining installments are collected out of band.
func AmountDueCents(p Plan) int64 {
	if p.Installments <= 1 {
		return p.TotalPriceCents
	}
	n := int64(p.Installments)
	return (p.TotalPriceCents + n/2) / n
}
