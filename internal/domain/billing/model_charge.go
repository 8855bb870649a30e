package billing

import (
	"time"

	"enrollment-app/internal/domain/payers"
)

// Charge statuses mirror the PaymentIntent lifecycle states this system
// actually acts on. Anything else Stripe reports is treated as a failure.
const (
	StatusRequiresAction = "requires_action"
	StatusSucceeded      = "succeeded"
	StatusFailed         = "failed"
)

// Charge is one collection attempt against a plan. PlanID references the
// static catalog, not a database table, so there is no foreign key for it.
type Charge struct {
	ID                    uint `gorm:"primaryKey"`
	PayerID               uint
	Payer                 payers.Payer
	PlanID                uint
	StripePaymentIntentID string `gorm:"uniqueIndex"`
	AmountCents           int64
	Currency              string
	Status                string
	CreatedAt             time.Time
}
