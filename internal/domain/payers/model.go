package payers

import "time"

// Payer is the local record for a checkout customer, keyed by email.
// The unique index is the storage-level guard for the find-or-create step:
// an insert that loses the race fails and the caller re-finds.
type Payer struct {
	ID               uint   `gorm:"primaryKey"`
	FullName         string
	Email            string `gorm:"not null;uniqueIndex:idx_payers_email"`
	StripeCustomerID string `gorm:"column:stripe_customer_id"`
	CreatedAt        time.Time
}
